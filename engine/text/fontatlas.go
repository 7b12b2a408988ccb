package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/grapengine/grape/engine/core"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Font is a rasterized glyph atlas for one face at one size. The texture
// is owned by the renderer that created it.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Texture                  core.Texture
	AtlasW, AtlasH           int
	Face                     font.Face
}

func (f *Font) Close() {
	if f != nil && f.Face != nil {
		f.Face.Close()
		f.Face = nil
	}
}

const (
	firstGlyph = rune(32)
	lastGlyph  = rune(126)
	atlasPad   = 1
)

// LoadTTF builds a monochrome (white) glyph atlas (alpha coverage) from
// assets/fonts/<ttfRelPath> and uploads it as an RGBA texture.
func LoadTTF(r core.Renderer, ttfRelPath string, sizePx float32) (*Font, error) {
	path := filepath.Join("assets", "fonts", ttfRelPath)
	ttfData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}

	metrics := face.Metrics()
	f := &Font{
		SizePx:  sizePx,
		Ascent:  fixedToPx(metrics.Ascent),
		Descent: -fixedToPx(metrics.Descent),
		LineGap: fixedToPx(metrics.Height - metrics.Ascent - metrics.Descent),
		Glyphs:  make(map[rune]Glyph, lastGlyph-firstGlyph+1),
		Face:    face,
	}

	// Rough square-ish atlas: rows of glyphs at full line height.
	lineH := int(fixedToPx(metrics.Height)) + 2*atlasPad
	atlasW := 512
	penX, penY := atlasPad, atlasPad

	img := image.NewRGBA(image.Rect(0, 0, atlasW, atlasW*2))
	maxY := 0

	for ch := firstGlyph; ch <= lastGlyph; ch++ {
		dr, mask, maskp, adv, ok := face.Glyph(fixed.P(0, 0), ch)
		if !ok {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		if penX+gw+atlasPad > atlasW {
			penX = atlasPad
			penY += lineH
		}

		// White glyph, alpha from coverage mask.
		dst := image.Rect(penX, penY, penX+gw, penY+gh)
		draw.DrawMask(img, dst, image.NewUniform(color.White), image.Point{}, mask, maskp, draw.Over)

		f.Glyphs[ch] = Glyph{
			Rune:     ch,
			Advance:  fixedToPx(adv),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			W:        gw,
			H:        gh,
		}
		// UVs filled in once the atlas height is known; remember position
		// via the bitmap rect for now.
		g := f.Glyphs[ch]
		g.U0, g.V0 = float32(penX), float32(penY)
		f.Glyphs[ch] = g

		penX += gw + 2*atlasPad
		if penY+lineH > maxY {
			maxY = penY + lineH
		}
	}

	atlasH := maxY + atlasPad
	f.AtlasW, f.AtlasH = atlasW, atlasH

	// Normalize the stashed pixel positions into UVs.
	for ch, g := range f.Glyphs {
		px, py := g.U0, g.V0
		g.U0 = px / float32(atlasW)
		g.V0 = py / float32(atlasH)
		g.U1 = (px + float32(g.W)) / float32(atlasW)
		g.V1 = (py + float32(g.H)) / float32(atlasH)
		f.Glyphs[ch] = g
	}

	// Crop and repack tight rows for upload.
	pix := make([]byte, atlasW*atlasH*4)
	for y := 0; y < atlasH; y++ {
		copy(pix[y*atlasW*4:(y+1)*atlasW*4], img.Pix[y*img.Stride:y*img.Stride+atlasW*4])
	}

	tex, err := r.CreateTexture(core.TextureDesc{
		Width: atlasW, Height: atlasH,
		Format:    core.TextureRGBA8,
		Pixels:    pix,
		MinFilter: "linear", MagFilter: "linear",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		face.Close()
		return nil, fmt.Errorf("upload atlas: %w", err)
	}
	f.Texture = tex
	return f, nil
}

func fixedToPx(v fixed.Int26_6) float32 { return float32(v) / 64.0 }
