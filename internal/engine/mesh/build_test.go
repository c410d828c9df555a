package mesh

import (
	gomath "math"
	"strings"
	"testing"
)

// tetra is a small closed mesh with outward-facing counter-clockwise faces.
var (
	tetraVertices = [][3]float32{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	tetraFaces = [][3]int{
		{1, 3, 2},
		{1, 2, 4},
		{1, 4, 3},
		{2, 3, 4},
	}
)

func TestFaceNormalCCWPointsToPlusZ(t *testing.T) {
	n := FaceNormal([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0})
	if n != [3]float32{0, 0, 1} {
		t.Errorf("FaceNormal = %v, want [0 0 1]", n)
	}

	// Clockwise winding flips it
	n = FaceNormal([3]float32{0, 0, 0}, [3]float32{0, 1, 0}, [3]float32{1, 0, 0})
	if n != [3]float32{0, 0, -1} {
		t.Errorf("FaceNormal (CW) = %v, want [0 0 -1]", n)
	}
}

func TestFaceNormalDegenerate(t *testing.T) {
	n := FaceNormal([3]float32{1, 1, 1}, [3]float32{2, 2, 2}, [3]float32{3, 3, 3})
	if n != [3]float32{} {
		t.Errorf("degenerate FaceNormal = %v, want zero", n)
	}
}

func TestBuildSingleTriangle(t *testing.T) {
	color := [4]float32{0.067, 0.039, 0.012, 1.0}
	buf, err := Build([][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int{{1, 2, 3}}, color)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if buf.VertexCount() != 3 {
		t.Fatalf("expected 3 vertices, got %d", buf.VertexCount())
	}
	if len(buf.Colors) != 12 || len(buf.Normals) != 9 {
		t.Errorf("parallel arrays mismatch: colors=%d normals=%d", len(buf.Colors), len(buf.Normals))
	}
	for i := 0; i < 3; i++ {
		v := buf.Vertex(i)
		if v.Normal != [3]float32{0, 0, 1} {
			t.Errorf("vertex %d normal = %v, want [0 0 1]", i, v.Normal)
		}
		if v.Color != color {
			t.Errorf("vertex %d color = %v, want %v", i, v.Color, color)
		}
	}
	if buf.Vertex(1).Position != [3]float32{1, 0, 0} {
		t.Errorf("vertex 1 position = %v", buf.Vertex(1).Position)
	}
}

func TestBuildInvariants(t *testing.T) {
	buf, err := Build(tetraVertices, tetraFaces, [4]float32{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	n := buf.VertexCount()
	if n != len(tetraFaces)*3 {
		t.Errorf("expected %d vertices, got %d", len(tetraFaces)*3, n)
	}
	if n%3 != 0 {
		t.Errorf("vertex count %d is not a multiple of 3", n)
	}
	if len(buf.Colors)/4 != n || len(buf.Normals)/3 != n {
		t.Errorf("parallel arrays disagree: positions=%d colors=%d normals=%d",
			n, len(buf.Colors)/4, len(buf.Normals)/3)
	}
	for i := 0; i < n; i++ {
		nrm := buf.Vertex(i).Normal
		if l := length(nrm); gomath.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("vertex %d normal %v has length %f", i, nrm, l)
		}
	}
}

func TestVertexNormalsAverage(t *testing.T) {
	normals, err := VertexNormals(tetraVertices, tetraFaces)
	if err != nil {
		t.Fatalf("VertexNormals failed: %v", err)
	}

	// The corner at the origin touches the three axis-aligned faces,
	// so its normal points along -(1,1,1).
	want := float32(-1 / gomath.Sqrt(3))
	for a := 0; a < 3; a++ {
		if gomath.Abs(float64(normals[0][a]-want)) > 1e-5 {
			t.Errorf("origin normal = %v, want all components %f", normals[0], want)
			break
		}
	}
}

func TestVertexNormalsOrderInvariant(t *testing.T) {
	forward, err := VertexNormals(tetraVertices, tetraFaces)
	if err != nil {
		t.Fatalf("VertexNormals failed: %v", err)
	}

	orders := [][]int{
		{3, 2, 1, 0},
		{2, 0, 3, 1},
		{1, 3, 0, 2},
	}
	for _, order := range orders {
		faces := make([][3]int, len(order))
		for i, idx := range order {
			faces[i] = tetraFaces[idx]
		}
		got, err := VertexNormals(tetraVertices, faces)
		if err != nil {
			t.Fatalf("VertexNormals failed: %v", err)
		}
		for v := range got {
			for a := 0; a < 3; a++ {
				if gomath.Abs(float64(got[v][a]-forward[v][a])) > 1e-5 {
					t.Errorf("order %v: vertex %d normal %v, want %v", order, v, got[v], forward[v])
				}
			}
		}
	}
}

func TestVertexNormalsUnreferencedVertex(t *testing.T) {
	vertices := append([][3]float32{}, tetraVertices...)
	vertices = append(vertices, [3]float32{5, 5, 5})

	normals, err := VertexNormals(vertices, tetraFaces)
	if err != nil {
		t.Fatalf("VertexNormals failed: %v", err)
	}
	if normals[4] != [3]float32{} {
		t.Errorf("unreferenced vertex normal = %v, want zero", normals[4])
	}
}

func TestBuildRejectsBadIndex(t *testing.T) {
	tests := []struct {
		name  string
		faces [][3]int
	}{
		{"zero", [][3]int{{0, 1, 2}}},
		{"past end", [][3]int{{1, 2, 5}}},
		{"negative", [][3]int{{1, -2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tetraVertices, tt.faces, [4]float32{})
			if err == nil || !strings.Contains(err.Error(), "out of range") {
				t.Errorf("expected out of range error, got %v", err)
			}
		})
	}
}

func TestBufferBounds(t *testing.T) {
	buf, err := Build(tetraVertices, tetraFaces, [4]float32{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	b := buf.Bounds()
	if b.Min != [3]float32{0, 0, 0} || b.Max != [3]float32{1, 1, 1} {
		t.Errorf("Bounds = %+v, want [0,0,0]-[1,1,1]", b)
	}
	if b.Size() != [3]float32{1, 1, 1} {
		t.Errorf("Size = %v", b.Size())
	}
}

func length(v [3]float32) float32 {
	return float32(gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}
