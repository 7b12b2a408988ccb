package text

import "testing"

func testFont() *Font {
	return &Font{
		SizePx:  10,
		Ascent:  10,
		Descent: -2,
		LineGap: 1,
		Glyphs: map[rune]Glyph{
			'a': {Rune: 'a', Advance: 5},
			'b': {Rune: 'b', Advance: 7},
			' ': {Rune: ' ', Advance: 3},
		},
	}
}

// TestMeasureSingleLine: width is the sum of glyph advances, line height
// comes from the face metrics.
func TestMeasureSingleLine(t *testing.T) {
	f := testFont()
	w, lineH := Measure(f, "ab a")
	if want := float32(5 + 7 + 3 + 5); w != want {
		t.Errorf("width = %v, want %v", w, want)
	}
	if want := float32(10 - (-2) + 1); lineH != want {
		t.Errorf("line height = %v, want %v", lineH, want)
	}
}

// TestMeasureMultiLine: width is the widest line, newlines add nothing.
func TestMeasureMultiLine(t *testing.T) {
	f := testFont()
	w, _ := Measure(f, "a\nbb\nb")
	if want := float32(14); w != want {
		t.Errorf("width = %v, want %v (widest line)", w, want)
	}
}

// TestMeasureUnknownRunes: runes outside the atlas contribute no width.
func TestMeasureUnknownRunes(t *testing.T) {
	f := testFont()
	w, _ := Measure(f, "aéa")
	if want := float32(10); w != want {
		t.Errorf("width = %v, want %v", w, want)
	}
}

// TestMeasureEmpty: the empty string has zero width but a real line height.
func TestMeasureEmpty(t *testing.T) {
	f := testFont()
	w, lineH := Measure(f, "")
	if w != 0 {
		t.Errorf("width = %v, want 0", w)
	}
	if lineH != 13 {
		t.Errorf("line height = %v, want 13", lineH)
	}
}
