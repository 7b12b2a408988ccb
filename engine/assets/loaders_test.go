package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoadShaderNullTerminated: shader sources come back with the
// terminator gl.Str requires.
func TestLoadShaderNullTerminated(t *testing.T) {
	t.Chdir(t.TempDir())
	writeAsset(t, filepath.Join("assets", "shaders", "quad.vert"), []byte("void main() {}\n"))

	src, err := LoadShader("quad.vert")
	if err != nil {
		t.Fatalf("LoadShader: %v", err)
	}
	if !strings.HasPrefix(src, "void main()") {
		t.Errorf("source mangled: %q", src)
	}
	if !strings.HasSuffix(src, "\x00") {
		t.Error("source not null-terminated")
	}

	// already-terminated files must not grow a second terminator
	writeAsset(t, filepath.Join("assets", "shaders", "quad.frag"), []byte("x\x00"))
	src, err = LoadShader("quad.frag")
	if err != nil {
		t.Fatalf("LoadShader: %v", err)
	}
	if strings.HasSuffix(src, "\x00\x00") {
		t.Error("terminator doubled")
	}
}

// TestLoadShaderMissing: a missing file fails loudly with the path in the
// error.
func TestLoadShaderMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := LoadShader("nope.vert"); err == nil {
		t.Error("expected error for missing shader")
	}
}

// TestLoadPNG: decoded images land in a tight RGBA surface with the
// original pixels.
func TestLoadPNG(t *testing.T) {
	t.Chdir(t.TempDir())

	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	writeAsset(t, filepath.Join("assets", "textures", "rocket.png"), buf.Bytes())

	s, err := LoadPNG("rocket.png")
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if s.W != 3 || s.H != 2 {
		t.Fatalf("size = %dx%d, want 3x2", s.W, s.H)
	}
	if r, g, b, _ := s.At(1, 1); r != 10 || g != 20 || b != 30 {
		t.Errorf("pixel = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
}

// TestLoadPNGMissing: missing textures fail loudly.
func TestLoadPNGMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := LoadPNG("nope.png"); err == nil {
		t.Error("expected error for missing texture")
	}
}

func writeAsset(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
