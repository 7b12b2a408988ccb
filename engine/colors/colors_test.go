package colors

import (
	"math"
	"testing"
)

func close32(a, b float32) bool { return math.Abs(float64(a-b)) < 0.01 }

// TestWithAlpha: only the alpha channel changes.
func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.25)
	if c[0] != 1 || c[1] != 0 || c[2] != 0 {
		t.Errorf("rgb changed: %v", c)
	}
	if c[3] != 0.25 {
		t.Errorf("alpha = %v, want 0.25", c[3])
	}
	if Red[3] != 1 {
		t.Error("WithAlpha mutated the original")
	}
}

// TestRGBA8: float channels convert to clamped bytes.
func TestRGBA8(t *testing.T) {
	r, g, b, a := (Color{1, 0.5, 0, 1}).RGBA8()
	if r != 255 || g != 127 || b != 0 || a != 255 {
		t.Errorf("RGBA8 = (%d,%d,%d,%d)", r, g, b, a)
	}
	r, _, _, _ = (Color{2, 0, 0, -1}).RGBA8()
	if r != 255 {
		t.Errorf("unclamped channel leaked: %d", r)
	}
}

// TestFromHSV: primary hues land on the expected corners.
func TestFromHSV(t *testing.T) {
	red := FromHSV(0, 1, 1)
	if !close32(red[0], 1) || !close32(red[1], 0) || !close32(red[2], 0) {
		t.Errorf("hue 0 = %v, want red", red)
	}
	green := FromHSV(120, 1, 1)
	if !close32(green[1], 1) || !close32(green[0], 0) {
		t.Errorf("hue 120 = %v, want green", green)
	}
}

// TestLerp: midpoint blending and clamping.
func TestLerp(t *testing.T) {
	mid := Lerp(Black, White, 0.5)
	for i := 0; i < 3; i++ {
		if !close32(mid[i], 0.5) {
			t.Errorf("channel %d = %v, want 0.5", i, mid[i])
		}
	}
	if got := Lerp(Black, White, 2); !close32(got[0], 1) {
		t.Errorf("t>1 not clamped: %v", got)
	}
	if got := Lerp(Black, White, -1); !close32(got[0], 0) {
		t.Errorf("t<0 not clamped: %v", got)
	}
}
