package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// floatsPerVertex is position (3) + color (4)
const floatsPerVertex = 7

// Mesh represents an indexed triangle mesh with position and color attributes
type Mesh struct {
	vao     *VertexArrayObject
	vbo     *BufferObject
	ebo     *BufferObject
	indices []uint32
}

// NewMesh creates a new mesh from interleaved vertices and indices
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	stride := int32(floatsPerVertex * 4)
	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	// Color attribute (4 floats)
	vao.SetVertexAttribPointer(1, 4, gl.FLOAT, false, stride, 3*4)

	vao.Unbind()

	return &Mesh{
		vao:     vao,
		vbo:     vbo,
		ebo:     ebo,
		indices: indices,
	}
}

// Draw renders the mesh with whatever program is currently in use
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, int32(len(m.indices)), gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}

// NewQuad creates a unit quad in the XY plane centered on the origin, facing +Z.
// Corners carry distinct colors so orientation is visible without textures.
func NewQuad() *Mesh {
	vertices := []float32{
		// x, y, z, r, g, b, a
		-0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, // Top-left
		0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0, // Top-right
		0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 1.0, // Bottom-right
		-0.5, -0.5, 0.0, 1.0, 1.0, 0.0, 1.0, // Bottom-left
	}

	indices := []uint32{
		0, 1, 2,
		0, 2, 3,
	}

	return NewMesh(vertices, indices)
}
