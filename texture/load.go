package texture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultMaxSize bounds the edge length of loaded textures.
const DefaultMaxSize = 256

// Load decodes the image at path into a Cache.
func Load(path string, maxSize int) (*Cache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}

	c, err := FromImage(img, maxSize)
	if err != nil {
		return nil, fmt.Errorf("texture %s (%s): %w", path, format, err)
	}
	return c, nil
}
