// Package mesh builds flat vertex buffers for the viewer: the smooth-shaded
// model from an indexed triangle mesh, and the wireframe light markers.
package mesh

// Primitive is the way a buffer's vertices are assembled when drawn.
type Primitive int

const (
	Triangles Primitive = iota
	Lines
	TriangleFan
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	case TriangleFan:
		return "triangle-fan"
	default:
		return "unknown"
	}
}

// Vertex is one expanded mesh corner.
type Vertex struct {
	Position [3]float32
	Color    [4]float32
	Normal   [3]float32
}

// Buffer holds parallel flat arrays ready for GPU upload.
// Positions has 3 floats per vertex, Colors 4 and Normals 3.
type Buffer struct {
	Primitive Primitive
	Positions []float32
	Colors    []float32
	Normals   []float32
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	return len(b.Positions) / 3
}

// Vertex returns the i-th vertex.
func (b *Buffer) Vertex(i int) Vertex {
	var v Vertex
	copy(v.Position[:], b.Positions[i*3:i*3+3])
	copy(v.Color[:], b.Colors[i*4:i*4+4])
	if len(b.Normals) > 0 {
		copy(v.Normal[:], b.Normals[i*3:i*3+3])
	}
	return v
}

// append adds a vertex to all three arrays.
func (b *Buffer) append(pos [3]float32, color [4]float32, normal [3]float32) {
	b.Positions = append(b.Positions, pos[0], pos[1], pos[2])
	b.Colors = append(b.Colors, color[0], color[1], color[2], color[3])
	b.Normals = append(b.Normals, normal[0], normal[1], normal[2])
}

// Bounds holds the axis-aligned bounding box of a buffer.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Bounds computes the axis-aligned bounding box of the buffer positions.
func (b *Buffer) Bounds() Bounds {
	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for i := 0; i+2 < len(b.Positions); i += 3 {
		for a := 0; a < 3; a++ {
			p := b.Positions[i+a]
			if p < bounds.Min[a] {
				bounds.Min[a] = p
			}
			if p > bounds.Max[a] {
				bounds.Max[a] = p
			}
		}
	}
	return bounds
}

// Size returns the extent of the box on each axis.
func (bb Bounds) Size() [3]float32 {
	return [3]float32{bb.Max[0] - bb.Min[0], bb.Max[1] - bb.Min[1], bb.Max[2] - bb.Min[2]}
}
