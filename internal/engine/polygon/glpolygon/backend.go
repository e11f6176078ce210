package glpolygon

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/rubiks-gl/internal/engine/polygon"
)

// Backend streams vertex data through one buffer per attribute index.
// Core profile has no client-side arrays, so every draw uploads its data.
type Backend struct {
	vao     uint32
	buffers map[uint32]uint32
	enabled []uint32
}

// NewBackend returns a backend. GL objects are created on first use.
func NewBackend() *Backend {
	return &Backend{buffers: make(map[uint32]uint32)}
}

// VertexAttribPointer uploads data and points attribute index at it.
func (b *Backend) VertexAttribPointer(index uint32, size int, data []float32) {
	if b.vao == 0 {
		gl.GenVertexArrays(1, &b.vao)
	}
	gl.BindVertexArray(b.vao)

	vbo, ok := b.buffers[index]
	if !ok {
		gl.GenBuffers(1, &vbo)
		b.buffers[index] = vbo
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, ptr, gl.STREAM_DRAW)
	gl.VertexAttribPointer(index, int32(size), gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(index)
	b.enabled = append(b.enabled, index)
}

// DrawArrays draws count vertices and disables the attributes sourced
// since the previous draw.
func (b *Backend) DrawArrays(kind polygon.Primitive, first, count int) {
	if count > 0 {
		gl.DrawArrays(glPrimitive(kind), int32(first), int32(count))
	}

	for _, idx := range b.enabled {
		gl.DisableVertexAttribArray(idx)
	}
	b.enabled = b.enabled[:0]
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Close deletes the buffers and the vertex array.
func (b *Backend) Close() {
	for idx, vbo := range b.buffers {
		gl.DeleteBuffers(1, &vbo)
		delete(b.buffers, idx)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}

func glPrimitive(kind polygon.Primitive) uint32 {
	switch kind {
	case polygon.Points:
		return gl.POINTS
	case polygon.Lines:
		return gl.LINES
	case polygon.LineStrip:
		return gl.LINE_STRIP
	case polygon.LineLoop:
		return gl.LINE_LOOP
	case polygon.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case polygon.TriangleFan:
		return gl.TRIANGLE_FAN
	case polygon.TrianglesAdjacency:
		return gl.TRIANGLES_ADJACENCY
	case polygon.TriangleStripAdjacency:
		return gl.TRIANGLE_STRIP_ADJACENCY
	default:
		return gl.TRIANGLES
	}
}

// NewRenderer returns a polygon renderer drawing through GL. The program
// is returned as well so callers can set its projection.
func NewRenderer(minCacheElems int) (*polygon.Renderer, *Program, *Backend) {
	prog := NewProgram()
	backend := NewBackend()
	r := polygon.NewRenderer(minCacheElems, func() polygon.Program { return prog }, backend)
	return r, prog, backend
}
