// Package texture holds decoded texture pixels and samples them by
// normalized (u, v) coordinates.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/image/draw"
)

var ErrEmptyTexture = errors.New("texture has no pixels")

// Cache is an immutable row-major RGBA pixel buffer.
type Cache struct {
	width  int
	height int
	pixels []color.RGBA
}

// NewCache wraps pixels, which must hold width*height entries.
func NewCache(width, height int, pixels []color.RGBA) (*Cache, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyTexture
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("texture %dx%d needs %d pixels, got %d", width, height, width*height, len(pixels))
	}
	return &Cache{width: width, height: height, pixels: pixels}, nil
}

func (c *Cache) Width() int  { return c.width }
func (c *Cache) Height() int { return c.height }

// At returns the texel nearest to (u, v). Both coordinates are clamped to
// [0,1] first.
func (c *Cache) At(u, v float64) color.RGBA {
	u = geom.Clamp(u, 0, 1)
	v = geom.Clamp(v, 0, 1)

	x := int(u * float64(c.width))
	if x > c.width-1 {
		x = c.width - 1
	}
	y := int(v * float64(c.height))
	if y > c.height-1 {
		y = c.height - 1
	}
	return c.pixels[y*c.width+x]
}

// FromImage copies img into a Cache. Images wider or taller than maxSize
// are first scaled down with nearest-neighbor sampling, keeping the aspect
// ratio. A maxSize of 0 disables scaling.
func FromImage(img image.Image, maxSize int) (*Cache, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyTexture
	}

	if maxSize > 0 && (w > maxSize || h > maxSize) {
		if w >= h {
			h = max(1, h*maxSize/w)
			w = maxSize
		} else {
			w = max(1, w*maxSize/h)
			h = maxSize
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}

	pixels := make([]color.RGBA, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pixels[y*w+x] = dst.RGBAAt(x, y)
		}
	}
	return &Cache{width: w, height: h, pixels: pixels}, nil
}
