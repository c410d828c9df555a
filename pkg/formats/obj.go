package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrEmptyOBJ        = errors.New("OBJ has no faces")
	ErrInvalidOBJValue = errors.New("invalid OBJ value")
	ErrOBJIndexRange   = errors.New("OBJ face index out of range")
)

// maxOBJLine bounds a single record; exporters write long face lines for
// large polygons.
const maxOBJLine = 16 << 20

// OBJ is the geometry subset of a Wavefront OBJ file: positions and
// triangular faces. Face indices are 1-based, as in the file.
type OBJ struct {
	Name     string
	Vertices [][3]float32
	Faces    [][3]int
}

// ParseOBJ parses OBJ text. Only "o", "v" and "f" records are read.
// Texture and normal references in faces ("1/2/3", "1//3") are ignored,
// negative indices are resolved relative to the current vertex count and
// polygons with more than three corners are fan-triangulated.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxOBJLine)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "o":
			if len(fields) > 1 {
				obj.Name = strings.Join(fields[1:], " ")
			}

		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %w: vertex needs 3 coordinates", lineNo, ErrInvalidOBJValue)
			}
			var v [3]float32
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
					return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrInvalidOBJValue, fields[i+1])
				}
				v[i] = float32(f)
			}
			obj.Vertices = append(obj.Vertices, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %w: face needs 3 corners", lineNo, ErrInvalidOBJValue)
			}
			corners := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := parseFaceIndex(ref, len(obj.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners = append(corners, idx)
			}
			for i := 1; i+1 < len(corners); i++ {
				obj.Faces = append(obj.Faces, [3]int{corners[0], corners[i], corners[i+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: reading OBJ: %w", lineNo+1, err)
	}

	if len(obj.Faces) == 0 {
		return nil, ErrEmptyOBJ
	}

	return obj, nil
}

// parseFaceIndex resolves one face corner reference to a 1-based position index.
func parseFaceIndex(ref string, vertexCount int) (int, error) {
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		ref = ref[:slash]
	}
	idx, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOBJValue, ref)
	}
	if idx < 0 {
		idx = vertexCount + idx + 1
	}
	if idx < 1 || idx > vertexCount {
		return 0, fmt.Errorf("%w: %s (have %d vertices)", ErrOBJIndexRange, ref, vertexCount)
	}
	return idx, nil
}

// LoadOBJ loads an OBJ file from disk.
func LoadOBJ(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	obj, err := ParseOBJ(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return obj, nil
}
