package core

// Renderer abstraction. Creation methods fail loudly; everything created
// through a renderer is owned by it and destroyed (at the latest) by
// Shutdown. Frame-path methods on destroyed objects are silent no-ops.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	Draw(cmd DrawCmd)
	Shutdown()
}

// Pipeline is a compiled shader program plus fixed-function state.
type Pipeline interface {
	Live() bool
	Destroy()
}

// Texture is a GPU-resident image. Update re-uploads the full pixel data
// and reports false once the texture has been destroyed.
type Texture interface {
	Size() (w, h int)
	Update(pixels []byte) bool
	Live() bool
	Destroy()
}

// Mesh is a vertex/index buffer pair with a fixed layout. The Update
// methods replace a prefix of the buffer contents.
type Mesh interface {
	UpdateVertices(verts []float32) bool
	UpdateIndices(inds []uint32) bool
	Live() bool
	Destroy()
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte // may be nil for an uninitialized texture
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU         string // "clamp" | "repeat"
	WrapV         string
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int // component count
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
	Dynamic  bool
}

// SamplerBinding names a texture for the draw call; slot order follows the
// binding order in DrawCmd.Samplers.
type SamplerBinding struct {
	Name string
	Tex  Texture
}

// DrawCmd is one indexed draw. Uniform values may be float32, int32,
// [2]float32, [4]float32 or [16]float32 (column-major mat4).
type DrawCmd struct {
	Pipeline   Pipeline
	Mesh       Mesh
	IndexCount int
	Uniforms   map[string]any
	Samplers   []SamplerBinding
}
