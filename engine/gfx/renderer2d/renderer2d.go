package renderer2d

import (
	"math"
	"strconv"

	"github.com/grapengine/grape/engine/colors"
	"github.com/grapengine/grape/engine/core"
)

// Max textures per batch (common GL limit is 16)
const maxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const vStride = 9
const vertsPerQuad = 4
const indsPerQuad = 6

var quadVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 2 * 4}, // color
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4}, // uv
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 8 * 4}, // texIndex
	},
}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

type Renderer2D struct {
	r      core.Renderer
	pipe   core.Pipeline
	white  core.Texture // 1x1 white (slot 0)
	texArr [maxTexSlots]core.Texture
	texCnt int

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	mesh     core.Mesh
	uniforms map[string]any
	texNames [maxTexSlots]string

	vp    [16]float32
	stats Statistics
}

// New creates the renderer and compiles the shader pipeline. Pass
// DefaultVertexShader/DefaultFragmentShader unless a custom pair is needed.
func New(r core.Renderer, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		DepthTest:      false,
		Blend:          true,
	})
	if err != nil {
		return nil, err
	}

	// build 1x1 white texture
	whitePix := []byte{255, 255, 255, 255}
	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    whitePix,
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, err
	}

	rd := &Renderer2D{
		r: r, pipe: pipe, white: white, maxQuads: maxQuads,
		verts: make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:  make([]uint32, 0, maxQuads*indsPerQuad),
	}

	// Create a reusable mesh large enough for the biggest batch.
	mesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, maxQuads*vertsPerQuad*vStride),
		Indices:  make([]uint32, maxQuads*indsPerQuad),
		Layout:   quadVertexLayout,
		Dynamic:  true,
	})
	if err != nil {
		return nil, err
	}
	rd.mesh = mesh

	rd.uniforms = make(map[string]any, 4)
	for i := 0; i < maxTexSlots; i++ {
		rd.texNames[i] = "uTex[" + strconv.Itoa(i) + "]"
	}

	return rd, nil
}

// BeginScene starts a batch under the given view-projection matrix.
func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.resetBatch()
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// DrawQuad draws a solid color quad (uses white texture in slot 0).
func (rd *Renderer2D) DrawQuad(x, y, w, h float32, color colors.Color, rotationRad float32) {
	rd.ensureQuadCapacity()
	rd.drawQuadInternal(x, y, w, h, color, rotationRad, rd.texSlot(rd.white), 0, 0, 1, 1)
}

// DrawTexturedQuad draws a full texture with a tint.
func (rd *Renderer2D) DrawTexturedQuad(x, y, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32) {
	rd.ensureQuadCapacity()
	slot := rd.texSlot(tex)
	rd.drawQuadInternal(x, y, w, h, tint, rotationRad, slot, 0, 0, 1, 1)
}

// DrawTexturedQuadUV draws a textured sub-rect (UV rect: u0,v0 -> u1,v1).
func (rd *Renderer2D) DrawTexturedQuadUV(x, y, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32) {
	rd.ensureQuadCapacity()
	slot := rd.texSlot(tex)
	rd.drawQuadInternal(x, y, w, h, tint, rotationRad, slot, u0, v0, u1, v1)
}

// DrawSubTexQuad draws a quad using a SubTexture2D (tint + rotation optional).
func (rd *Renderer2D) DrawSubTexQuad(x, y, w, h float32, sub SubTexture2D, tint colors.Color, rotationRad float32) {
	rd.DrawSprite(x, y, w, h, sub, tint, rotationRad, false)
}

// DrawSprite draws a subtexture quad with optional horizontal flip.
func (rd *Renderer2D) DrawSprite(x, y, w, h float32, sub SubTexture2D, tint colors.Color, rotationRad float32, flipX bool) {
	rd.ensureQuadCapacity()
	slot := rd.texSlot(sub.Texture)
	u0, u1 := sub.U0, sub.U1
	if flipX {
		u0, u1 = u1, u0
	}
	rd.drawQuadInternal(x, y, w, h, tint, rotationRad, slot, u0, sub.V0, u1, sub.V1)
}

// --- internals ---

func (rd *Renderer2D) texSlot(t core.Texture) float32 {
	// already in batch?
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == t {
			return float32(i)
		}
	}
	// need a new slot
	if rd.texCnt >= maxTexSlots {
		// flush and reset texture bindings
		rd.flush()
		rd.resetBatch()
	}
	rd.texArr[rd.texCnt] = t
	rd.texCnt++
	rd.stats.TextureCount = rd.texCnt
	return float32(rd.texCnt - 1)
}

func (rd *Renderer2D) ensureQuadCapacity() {
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
		rd.resetBatch()
	}
}

func (rd *Renderer2D) drawQuadInternal(x, y, w, h float32, color colors.Color, rotationRad float32, texIndex float32, u0, v0, u1, v1 float32) {
	halfW := w * 0.5
	halfH := h * 0.5

	// corners (TL, TR, BL, BR) with UVs. Positive Y goes down so top is -halfH.
	corners := [4][4]float32{
		{-halfW, -halfH, u0, v0},
		{halfW, -halfH, u1, v0},
		{-halfW, halfH, u0, v1},
		{halfW, halfH, u1, v1},
	}

	var sin, cos float32 = 0, 1
	if rotationRad != 0 {
		sin = float32(math.Sin(float64(rotationRad)))
		cos = float32(math.Cos(float64(rotationRad)))
	}

	base := uint32(rd.quadCount * vertsPerQuad)
	for _, c := range corners {
		px := x + c[0]*cos - c[1]*sin
		py := y + c[0]*sin + c[1]*cos
		rd.verts = append(rd.verts,
			px, py,
			color[0], color[1], color[2], color[3],
			c[2], c[3],
			texIndex,
		)
	}
	rd.inds = append(rd.inds,
		base, base+1, base+2,
		base+2, base+1, base+3,
	)

	rd.quadCount++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quadCount = 0
	rd.texCnt = 0
	// white always occupies slot 0 so solid quads never force a rebind
	rd.texArr[0] = rd.white
	rd.texCnt = 1
}

func (rd *Renderer2D) flush() {
	if rd.quadCount == 0 {
		return
	}
	rd.mesh.UpdateVertices(rd.verts)
	rd.mesh.UpdateIndices(rd.inds)

	clear(rd.uniforms)
	rd.uniforms["uViewProj"] = rd.vp

	samplers := make([]core.SamplerBinding, rd.texCnt)
	for i := 0; i < rd.texCnt; i++ {
		samplers[i] = core.SamplerBinding{Name: rd.texNames[i], Tex: rd.texArr[i]}
	}

	rd.r.Draw(core.DrawCmd{
		Pipeline:   rd.pipe,
		Mesh:       rd.mesh,
		IndexCount: rd.quadCount * indsPerQuad,
		Uniforms:   rd.uniforms,
		Samplers:   samplers,
	})
	rd.stats.DrawCalls++
}
