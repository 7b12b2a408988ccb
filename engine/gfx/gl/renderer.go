package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/grapengine/grape/engine/core"
)

// RendererGL implements core.Renderer on OpenGL 3.2 core. It owns every
// pipeline/texture/mesh created through it; Shutdown destroys whatever the
// caller has not destroyed already, exactly once.
type RendererGL struct {
	win core.Window

	pipelines []*pipelineGL
	textures  []*textureGL
	meshes    []*meshGL
	dead      bool
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

// Shutdown cascades destruction to all surviving GPU objects.
func (r *RendererGL) Shutdown() {
	if r.dead {
		return
	}
	r.dead = true
	for _, m := range r.meshes {
		m.Destroy()
	}
	for _, t := range r.textures {
		t.Destroy()
	}
	for _, p := range r.pipelines {
		p.Destroy()
	}
	r.meshes, r.textures, r.pipelines = nil, nil, nil
}

func (r *RendererGL) Resize(w, h int) {
	if r.dead {
		return
	}
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	if r.dead {
		return
	}
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	if r.dead {
		return nil, fmt.Errorf("create pipeline: renderer is shut down")
	}
	prog, err := makeProgram(desc.VertexSource, desc.FragmentSource)
	if err != nil {
		return nil, err
	}
	p := &pipelineGL{program: prog, depthTest: desc.DepthTest, blend: desc.Blend, live: true}
	r.pipelines = append(r.pipelines, p)
	return p, nil
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if r.dead {
		return nil, fmt.Errorf("create texture: renderer is shut down")
	}
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("create texture: bad size %dx%d", desc.Width, desc.Height)
	}
	if desc.Pixels != nil && len(desc.Pixels) < desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("create texture: %d pixel bytes for %dx%d RGBA", len(desc.Pixels), desc.Width, desc.Height)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterEnum(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterEnum(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapEnum(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapEnum(desc.WrapV))

	if desc.Pixels != nil {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	t := &textureGL{id: id, w: desc.Width, h: desc.Height, live: true}
	r.textures = append(r.textures, t)
	return t, nil
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if r.dead {
		return nil, fmt.Errorf("create mesh: renderer is shut down")
	}
	if desc.Layout.Stride <= 0 || len(desc.Layout.Attributes) == 0 {
		return nil, fmt.Errorf("create mesh: empty vertex layout")
	}

	usage := uint32(gl.STATIC_DRAW)
	if desc.Dynamic {
		usage = gl.DYNAMIC_DRAW
	}

	m := &meshGL{live: true, vertCap: len(desc.Vertices), indCap: len(desc.Indices)}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, gl.Ptr(desc.Vertices), usage)

	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, gl.Ptr(desc.Indices), usage)

	for _, a := range desc.Layout.Attributes {
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointerWithOffset(uint32(a.Location), int32(a.Size), gl.FLOAT, false,
			int32(desc.Layout.Stride), uintptr(a.Offset))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	r.meshes = append(r.meshes, m)
	return m, nil
}

// Draw executes one indexed draw. Dead handles anywhere in the command make
// it a silent no-op; a lost frame beats a crash mid-loop.
func (r *RendererGL) Draw(cmd core.DrawCmd) {
	if r.dead {
		return
	}
	p, ok := cmd.Pipeline.(*pipelineGL)
	if !ok || !p.live {
		return
	}
	m, ok := cmd.Mesh.(*meshGL)
	if !ok || !m.live {
		return
	}

	gl.UseProgram(p.program)
	if p.depthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if p.blend {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}

	for name, val := range cmd.Uniforms {
		p.setUniform(name, val)
	}
	for slot, s := range cmd.Samplers {
		t, ok := s.Tex.(*textureGL)
		if !ok || !t.live {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
		gl.BindTexture(gl.TEXTURE_2D, t.id)
		p.setUniform(s.Name, int32(slot))
	}

	gl.BindVertexArray(m.vao)
	count := int32(cmd.IndexCount)
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func filterEnum(s string) int32 {
	if s == "nearest" {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrapEnum(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}
