package mesh

import (
	"fmt"

	"github.com/Faultbox/cowviewer/pkg/math"
)

// FaceNormal returns normalize(cross(v2-v1, v3-v1)). Counter-clockwise
// winding seen from +Z yields +Z. Degenerate faces give the zero vector.
func FaceNormal(v1, v2, v3 [3]float32) [3]float32 {
	a, b, c := math.V3(v1), math.V3(v2), math.V3(v3)
	return b.Sub(a).Cross(c.Sub(a)).Normalize().Array()
}

// VertexNormals returns one unit normal per vertex: the normalized sum of the
// normals of every face that references it. Faces use 1-based indices.
// A vertex no face references keeps the zero vector.
func VertexNormals(vertices [][3]float32, faces [][3]int) ([][3]float32, error) {
	sums := make([]math.Vec3, len(vertices))

	for i, face := range faces {
		if err := checkFace(face, len(vertices)); err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		n := math.V3(FaceNormal(vertices[face[0]-1], vertices[face[1]-1], vertices[face[2]-1]))
		for _, idx := range face {
			sums[idx-1] = sums[idx-1].Add(n)
		}
	}

	normals := make([][3]float32, len(vertices))
	for i, s := range sums {
		normals[i] = s.Normalize().Array()
	}
	return normals, nil
}

// Build expands an indexed triangle mesh into a flat buffer with one entry
// per triangle corner, a uniform color and smooth vertex normals.
func Build(vertices [][3]float32, faces [][3]int, color [4]float32) (*Buffer, error) {
	normals, err := VertexNormals(vertices, faces)
	if err != nil {
		return nil, err
	}

	buf := &Buffer{
		Primitive: Triangles,
		Positions: make([]float32, 0, len(faces)*9),
		Colors:    make([]float32, 0, len(faces)*12),
		Normals:   make([]float32, 0, len(faces)*9),
	}
	for _, face := range faces {
		for _, idx := range face {
			buf.append(vertices[idx-1], color, normals[idx-1])
		}
	}
	return buf, nil
}

func checkFace(face [3]int, vertexCount int) error {
	for _, idx := range face {
		if idx < 1 || idx > vertexCount {
			return fmt.Errorf("vertex index %d out of range [1,%d]", idx, vertexCount)
		}
	}
	return nil
}
