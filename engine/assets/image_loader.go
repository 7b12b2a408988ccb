package assets

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/grapengine/grape/engine/surface"
)

// LoadPNG decodes assets/textures/<relPath> into a CPU surface
// (row-major, top-left origin).
func LoadPNG(relPath string) (*surface.Surface, error) {
	path := filepath.Join("assets", "textures", relPath)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", path, err)
	}
	return surface.FromImage(img), nil
}
