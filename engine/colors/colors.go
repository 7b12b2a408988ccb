package colors

import colorful "github.com/lucasb-eyer/go-colorful"

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGBA8 returns the color as 8-bit channel values.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(clamp01(c[0]) * 255), uint8(clamp01(c[1]) * 255),
		uint8(clamp01(c[2]) * 255), uint8(clamp01(c[3]) * 255)
}

// FromHSV converts hue [0..360), saturation and value [0..1] to a Color.
func FromHSV(h, s, v float32) Color {
	c := colorful.Hsv(float64(h), float64(s), float64(v))
	return Color{float32(c.R), float32(c.G), float32(c.B), 1}
}

// Lerp blends a towards b in RGB space; t outside [0,1] is clamped.
// Alpha interpolates linearly.
func Lerp(a, b Color, t float32) Color {
	t = clamp01(t)
	ca := colorful.Color{R: float64(a[0]), G: float64(a[1]), B: float64(a[2])}
	cb := colorful.Color{R: float64(b[0]), G: float64(b[1]), B: float64(b[2])}
	m := ca.BlendRgb(cb, float64(t)).Clamped()
	return Color{float32(m.R), float32(m.G), float32(m.B), a[3] + (b[3]-a[3])*t}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
