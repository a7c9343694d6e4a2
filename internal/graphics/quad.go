/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

import "github.com/go-gl/gl/v4.1-core/gl"

// FullscreenQuad covers clip space with a triangle fan fed from attribute 0.
type FullscreenQuad struct {
	vao uint32
	vbo uint32
}

func NewFullscreenQuad() *FullscreenQuad {
	q := &FullscreenQuad{}
	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	vertices := []float32{-1, -1, 1, -1, 1, 1, -1, 1}
	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 0, 0)
	return q
}

func (q *FullscreenQuad) Draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
}

func (q *FullscreenQuad) Delete() {
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteVertexArrays(1, &q.vao)
}
