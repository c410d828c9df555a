// Package gpu owns the vertex buffers uploaded to OpenGL.
package gpu

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cowviewer/internal/engine/mesh"
	"github.com/Faultbox/cowviewer/internal/logger"
)

// Attribute locations shared with the shaders.
const (
	AttribPosition = 0
	AttribColor    = 1
	AttribNormal   = 2
)

// VertexArray is a VAO with one VBO per attribute.
type VertexArray struct {
	vao   uint32
	vbos  [3]uint32
	count int32
	mode  uint32
}

// Upload copies a mesh buffer to the GPU.
func Upload(name string, b *mesh.Buffer) (*VertexArray, error) {
	n := b.VertexCount()
	if n == 0 {
		return nil, fmt.Errorf("%s: empty buffer", name)
	}
	if len(b.Colors) != n*4 || len(b.Normals) != n*3 {
		return nil, fmt.Errorf("%s: attribute arrays disagree on vertex count %d", name, n)
	}

	va := &VertexArray{
		count: int32(n),
		mode:  Mode(b.Primitive),
	}

	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)
	gl.GenBuffers(int32(len(va.vbos)), &va.vbos[0])

	attribute(va.vbos[0], AttribPosition, 3, b.Positions)
	attribute(va.vbos[1], AttribColor, 4, b.Colors)
	attribute(va.vbos[2], AttribNormal, 3, b.Normals)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("vertex array uploaded",
		zap.String("name", name),
		zap.Uint32("vao", va.vao),
		zap.Int("vertices", n),
		zap.Stringer("primitive", b.Primitive),
	)
	return va, nil
}

func attribute(vbo, location uint32, size int32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(location, size, gl.FLOAT, false, size*4, 0)
	gl.EnableVertexAttribArray(location)
}

// Mode returns the GL draw mode for a primitive.
func Mode(p mesh.Primitive) uint32 {
	switch p {
	case mesh.Lines:
		return gl.LINES
	case mesh.TriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

// Draw issues the draw call for the whole array.
func (va *VertexArray) Draw() {
	if va == nil || va.vao == 0 {
		return
	}
	gl.BindVertexArray(va.vao)
	gl.DrawArrays(va.mode, 0, va.count)
	gl.BindVertexArray(0)
}

// Close releases the VAO and its buffers.
func (va *VertexArray) Close() {
	if va == nil || va.vao == 0 {
		return
	}
	gl.DeleteBuffers(int32(len(va.vbos)), &va.vbos[0])
	gl.DeleteVertexArrays(1, &va.vao)
	va.vao = 0
	va.vbos = [3]uint32{}
}
