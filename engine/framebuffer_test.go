package engine

import (
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ draw.Image = (*Framebuffer)(nil)
var _ Surface = (*Framebuffer)(nil)

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.SetBackgroundColor(color.RGBA{50, 50, 100, 255})
	fb.Clear()

	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			assert.Equal(t, color.RGBA{50, 50, 100, 255}, fb.RGBAAt(x, y))
		}
	}
	require.Len(t, fb.Pix(), 4*3*4)
}

func TestFramebufferSetPixel(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetActiveColor(color.RGBA{1, 2, 3, 255})
	fb.SetPixel(1, 0)
	fb.SetPixel(-1, 0)
	fb.SetPixel(0, 2)

	assert.Equal(t, color.RGBA{1, 2, 3, 255}, fb.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{}, fb.RGBAAt(0, 0))
	assert.Equal(t, []byte{0, 0, 0, 0, 1, 2, 3, 255}, fb.Pix()[:8])
}

func TestFramebufferSetBlends(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.SetBackgroundColor(color.RGBA{0, 0, 0, 255})
	fb.Clear()

	fb.Set(0, 0, color.RGBA{255, 255, 255, 255})
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, fb.RGBAAt(0, 0))

	fb.Clear()
	// half-covered white over black
	fb.Set(0, 0, color.NRGBA{255, 255, 255, 128})
	got := fb.RGBAAt(0, 0)
	assert.InDelta(t, 128, int(got.R), 1)
	assert.Equal(t, uint8(255), got.A)

	fb.Set(0, 0, color.RGBA{})
	assert.Equal(t, got, fb.RGBAAt(0, 0))
}
