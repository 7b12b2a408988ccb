package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// GPU handle wrappers. Each carries a live tag checked before every native
// call; Destroy flips the tag and releases the GL object exactly once.

type pipelineGL struct {
	program   uint32
	depthTest bool
	blend     bool
	live      bool
	locs      map[string]int32
}

func (p *pipelineGL) Live() bool { return p.live }

func (p *pipelineGL) Destroy() {
	if !p.live {
		return
	}
	p.live = false
	gl.DeleteProgram(p.program)
	p.program = 0
}

func (p *pipelineGL) uniformLoc(name string) int32 {
	if p.locs == nil {
		p.locs = map[string]int32{}
	}
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	p.locs[name] = loc
	return loc
}

func (p *pipelineGL) setUniform(name string, val any) {
	loc := p.uniformLoc(name)
	if loc < 0 {
		return
	}
	switch v := val.(type) {
	case float32:
		gl.Uniform1f(loc, v)
	case int32:
		gl.Uniform1i(loc, v)
	case [2]float32:
		gl.Uniform2f(loc, v[0], v[1])
	case [4]float32:
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	case [16]float32:
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	}
}

type textureGL struct {
	id   uint32
	w, h int
	live bool
}

func (t *textureGL) Live() bool       { return t.live }
func (t *textureGL) Size() (int, int) { return t.w, t.h }

func (t *textureGL) Update(pixels []byte) bool {
	if !t.live || len(pixels) < t.w*t.h*4 {
		return false
	}
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(t.w), int32(t.h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return true
}

func (t *textureGL) Destroy() {
	if !t.live {
		return
	}
	t.live = false
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}

type meshGL struct {
	vao, vbo, ibo    uint32
	vertCap, indCap  int
	live             bool
}

func (m *meshGL) Live() bool { return m.live }

func (m *meshGL) UpdateVertices(verts []float32) bool {
	if !m.live || len(verts) > m.vertCap {
		return false
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return true
}

func (m *meshGL) UpdateIndices(inds []uint32) bool {
	if !m.live || len(inds) > m.indCap {
		return false
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(inds)*4, gl.Ptr(inds))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return true
}

func (m *meshGL) Destroy() {
	if !m.live {
		return
	}
	m.live = false
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ibo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.vao, m.vbo, m.ibo = 0, 0, 0
}
