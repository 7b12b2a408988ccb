package surface

import (
	"image"
	"image/color"
	"testing"

	"github.com/grapengine/grape/engine/colors"
)

// TestNewValidation: zero or negative sizes fail loudly.
func TestNewValidation(t *testing.T) {
	if _, err := New(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := New(10, -1); err == nil {
		t.Error("expected error for negative height")
	}
	s, err := New(4, 3)
	if err != nil {
		t.Fatalf("New(4,3): %v", err)
	}
	if len(s.Pix) != 4*3*4 {
		t.Errorf("pix len = %d, want %d", len(s.Pix), 4*3*4)
	}
}

// TestFillAndAt: fill writes the requested pixels and At reads them back;
// out-of-bounds reads are zero.
func TestFillAndAt(t *testing.T) {
	s, _ := New(8, 8)
	s.Fill(2, 2, 3, 3, colors.Red)

	if r, g, b, a := s.At(2, 2); r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("filled pixel = (%d,%d,%d,%d), want red", r, g, b, a)
	}
	if _, _, _, a := s.At(1, 1); a != 0 {
		t.Error("pixel outside the fill is not transparent")
	}
	if _, _, _, a := s.At(100, 100); a != 0 {
		t.Error("out-of-bounds read not zero")
	}
}

// TestFillClips: fills crossing the edge clip instead of panicking.
func TestFillClips(t *testing.T) {
	s, _ := New(4, 4)
	s.Fill(-2, -2, 100, 100, colors.White)
	if _, _, _, a := s.At(3, 3); a != 255 {
		t.Error("clipped fill missed the corner")
	}
	s.Fill(10, 10, 4, 4, colors.Red) // fully outside, no-op
}

// TestFromImageRepack: non-RGBA images convert to a tight RGBA buffer.
func TestFromImageRepack(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	s := FromImage(img)
	if s.W != 3 || s.H != 2 {
		t.Fatalf("size = %dx%d, want 3x2", s.W, s.H)
	}
	if r, g, b, _ := s.At(1, 1); r != 10 || g != 20 || b != 30 {
		t.Errorf("pixel = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
}

// TestBlit: source-over copy lands at the destination offset.
func TestBlit(t *testing.T) {
	dst, _ := New(8, 8)
	src, _ := New(2, 2)
	src.Fill(0, 0, 2, 2, colors.Green)

	dst.Blit(src, 3, 4)
	if _, g, _, _ := dst.At(3, 4); g != 255 {
		t.Error("blit missed (3,4)")
	}
	if _, g, _, _ := dst.At(2, 4); g != 0 {
		t.Error("blit bled outside the source rect")
	}
}

// TestScaled: resampling produces the requested dimensions and keeps
// solid regions solid.
func TestScaled(t *testing.T) {
	s, _ := New(4, 4)
	s.Fill(0, 0, 4, 4, colors.Blue)

	big, err := s.Scaled(8, 2)
	if err != nil {
		t.Fatalf("Scaled: %v", err)
	}
	if big.W != 8 || big.H != 2 {
		t.Fatalf("size = %dx%d, want 8x2", big.W, big.H)
	}
	if _, _, b, _ := big.At(4, 1); b != 255 {
		t.Error("solid blue lost in resample")
	}
}

// TestFlippedV: rows are mirrored around the horizontal center.
func TestFlippedV(t *testing.T) {
	s, _ := New(2, 3)
	s.Fill(0, 0, 2, 1, colors.Red) // top row

	f := s.FlippedV()
	if r, _, _, _ := f.At(0, 2); r != 255 {
		t.Error("top row did not move to the bottom")
	}
	if _, _, _, a := f.At(0, 0); a != 0 {
		t.Error("bottom row did not move to the top")
	}
}
