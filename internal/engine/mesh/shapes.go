package mesh

import (
	gomath "math"

	"github.com/Faultbox/cowviewer/pkg/math"
)

// CubeVertexCount is the number of vertices of a wireframe cube (12 edges × 2).
const CubeVertexCount = 24

// unitCubeEdges are the 12 edges of the cube spanning [-1,1] on every axis.
var unitCubeEdges = [12][2][3]float32{
	// Bottom face
	{{-1, -1, -1}, {1, -1, -1}},
	{{1, -1, -1}, {1, -1, 1}},
	{{1, -1, 1}, {-1, -1, 1}},
	{{-1, -1, 1}, {-1, -1, -1}},
	// Top face
	{{-1, 1, -1}, {1, 1, -1}},
	{{1, 1, -1}, {1, 1, 1}},
	{{1, 1, 1}, {-1, 1, 1}},
	{{-1, 1, 1}, {-1, 1, -1}},
	// Vertical edges
	{{-1, -1, -1}, {-1, 1, -1}},
	{{1, -1, -1}, {1, 1, -1}},
	{{1, -1, 1}, {1, 1, 1}},
	{{-1, -1, 1}, {-1, 1, 1}},
}

// Cube creates a wireframe cube centered on center, drawn as lines.
func Cube(center [3]float32, halfSize float32, color [4]float32) *Buffer {
	place := math.Translate(center[0], center[1], center[2]).
		Mul(math.Scale(halfSize, halfSize, halfSize))

	buf := &Buffer{Primitive: Lines}
	for _, e := range unitCubeEdges {
		buf.append(place.TransformVec3(math.V3(e[0])).Array(), color, [3]float32{})
		buf.append(place.TransformVec3(math.V3(e[1])).Array(), color, [3]float32{})
	}
	return buf
}

// ConeSpec describes a cone with its apex at the origin opening down -Y.
type ConeSpec struct {
	Radius   float32
	Height   float32
	Segments int
	Color    [4]float32
}

// ring returns the base ring points, counter-clockwise seen from below.
func (s ConeSpec) ring() [][3]float32 {
	segments := s.Segments
	if segments < 3 {
		segments = 3
	}
	pts := make([][3]float32, segments)
	for i := range pts {
		theta := 2 * gomath.Pi * float64(i) / float64(segments)
		pts[i] = [3]float32{
			s.Radius * float32(gomath.Cos(theta)),
			-s.Height,
			s.Radius * float32(gomath.Sin(theta)),
		}
	}
	return pts
}

// ConeLines creates a wireframe cone: the base ring closed as a loop plus a
// spoke from the apex to every ring point, drawn as lines.
func ConeLines(s ConeSpec) *Buffer {
	ring := s.ring()
	apex := [3]float32{0, 0, 0}

	buf := &Buffer{Primitive: Lines}
	for i, p := range ring {
		next := ring[(i+1)%len(ring)]
		buf.append(p, s.Color, [3]float32{})
		buf.append(next, s.Color, [3]float32{})
		buf.append(apex, s.Color, [3]float32{})
		buf.append(p, s.Color, [3]float32{})
	}
	return buf
}

// ConeFan creates a solid cone mantle as a triangle fan around the apex.
// The first ring point is repeated at the end to close the fan.
func ConeFan(s ConeSpec) *Buffer {
	ring := s.ring()

	buf := &Buffer{Primitive: TriangleFan}
	buf.append([3]float32{0, 0, 0}, s.Color, [3]float32{0, 1, 0})
	for i := 0; i <= len(ring); i++ {
		p := ring[i%len(ring)]
		n := [3]float32{p[0], 0, p[2]}
		if s.Height != 0 {
			n[1] = s.Radius * s.Radius / s.Height
		}
		buf.append(p, s.Color, normalize(n))
	}
	return buf
}

func normalize(v [3]float32) [3]float32 {
	l := float32(gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
