package texture

import (
	"image/color"
	"math"
)

// FloorFallback is returned by SampleFloor when no floor texture is loaded.
var FloorFallback = color.RGBA{80, 60, 40, 255}

// SampleWall samples c at (u, v). A nil cache yields a procedural gradient
// so walls stay readable without any texture asset.
func SampleWall(c *Cache, u, v float64) color.RGBA {
	if c != nil {
		return c.At(u, v)
	}
	return color.RGBA{
		R: uint8(math.Max(u*255, 100)),
		G: uint8(math.Max(v*255, 80)),
		B: uint8(math.Max((u+v)*127.5, 60)),
		A: 255,
	}
}

// SampleFloor samples c at (u, v), or returns FloorFallback for a nil cache.
func SampleFloor(c *Cache, u, v float64) color.RGBA {
	if c != nil {
		return c.At(u, v)
	}
	return FloorFallback
}
