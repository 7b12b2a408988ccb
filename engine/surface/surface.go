// Package surface provides CPU-side RGBA pixel buffers: the staging ground
// between decoded images / procedural drawing and GPU textures.
package surface

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/grapengine/grape/engine/colors"
	"github.com/grapengine/grape/engine/core"
)

// Surface is a tightly packed RGBA8 buffer (stride == 4*W, top-left origin).
type Surface struct {
	W, H int
	Pix  []byte
}

// New allocates a transparent surface.
func New(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("surface: bad size %dx%d", w, h)
	}
	return &Surface{W: w, H: h, Pix: make([]byte, w*h*4)}, nil
}

// FromImage repacks any image into a tight RGBA surface.
func FromImage(img image.Image) *Surface {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba := toRGBA(img)

	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+w*4])
	}
	return &Surface{W: w, H: h, Pix: out}
}

// Fill paints the rect (clipped to the surface) with a solid color.
func (s *Surface) Fill(x, y, w, h int, c colors.Color) {
	r, g, b, a := c.RGBA8()
	x0, y0, x1, y1 := clipRect(x, y, w, h, s.W, s.H)
	for py := y0; py < y1; py++ {
		row := py * s.W * 4
		for px := x0; px < x1; px++ {
			i := row + px*4
			s.Pix[i+0] = r
			s.Pix[i+1] = g
			s.Pix[i+2] = b
			s.Pix[i+3] = a
		}
	}
}

// Blit copies src onto s at (dx,dy) with source-over alpha, clipped.
func (s *Surface) Blit(src *Surface, dx, dy int) {
	draw.Draw(s.rgbaView(), image.Rect(dx, dy, dx+src.W, dy+src.H), src.rgbaView(), image.Point{}, draw.Over)
}

// Scaled returns a bilinear-resampled copy at the new size.
func (s *Surface) Scaled(w, h int) (*Surface, error) {
	dst, err := New(w, h)
	if err != nil {
		return nil, err
	}
	xdraw.ApproxBiLinear.Scale(dst.rgbaView(), dst.rgbaView().Bounds(), s.rgbaView(), s.rgbaView().Bounds(), xdraw.Src, nil)
	return dst, nil
}

// FlippedV returns a copy with rows reversed (for GL's bottom-left origin).
func (s *Surface) FlippedV() *Surface {
	out := make([]byte, len(s.Pix))
	rowLen := s.W * 4
	for y := 0; y < s.H; y++ {
		copy(out[y*rowLen:(y+1)*rowLen], s.Pix[(s.H-1-y)*rowLen:(s.H-y)*rowLen])
	}
	return &Surface{W: s.W, H: s.H, Pix: out}
}

// Upload creates a GPU texture from the surface.
func (s *Surface) Upload(r core.Renderer, filter string) (core.Texture, error) {
	return r.CreateTexture(core.TextureDesc{
		Width: s.W, Height: s.H,
		Format:    core.TextureRGBA8,
		Pixels:    s.Pix,
		MinFilter: filter, MagFilter: filter,
		WrapU: "clamp", WrapV: "clamp",
	})
}

// At returns the RGBA8 value at (x,y); zeros outside the surface.
func (s *Surface) At(x, y int) (r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return 0, 0, 0, 0
	}
	i := (y*s.W + x) * 4
	return s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3]
}

// rgbaView wraps the buffer as *image.RGBA without copying.
func (s *Surface) rgbaView() *image.RGBA {
	return &image.RGBA{Pix: s.Pix, Stride: s.W * 4, Rect: image.Rect(0, 0, s.W, s.H)}
}

func toRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

func clipRect(x, y, w, h, maxW, maxH int) (x0, y0, x1, y1 int) {
	x0, y0 = max(x, 0), max(y, 0)
	x1, y1 = min(x+w, maxW), min(y+h, maxH)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return
}
