package engine

import (
	"image"
	"image/color"
)

// Surface is the pixel sink the renderers draw into.
type Surface interface {
	Width() int
	Height() int
	Clear()
	SetActiveColor(c color.RGBA)
	// SetPixel paints the active color at (x, y). Out of range is a no-op.
	SetPixel(x, y int)
}

// Framebuffer is an RGBA pixel buffer. It is also a draw.Image so text and
// image overlays can be composited onto it.
type Framebuffer struct {
	pixels     []byte
	width      int
	height     int
	active     color.RGBA
	background color.RGBA
}

func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		pixels:     make([]byte, width*height*4),
		width:      width,
		height:     height,
		active:     color.RGBA{255, 255, 255, 255},
		background: color.RGBA{0, 0, 0, 255},
	}
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

func (fb *Framebuffer) SetBackgroundColor(c color.RGBA) {
	fb.background = c
}

// Clear fills the whole buffer with the background color.
func (fb *Framebuffer) Clear() {
	c := fb.background
	for i := 0; i < len(fb.pixels); i += 4 {
		fb.pixels[i] = c.R
		fb.pixels[i+1] = c.G
		fb.pixels[i+2] = c.B
		fb.pixels[i+3] = c.A
	}
}

func (fb *Framebuffer) SetActiveColor(c color.RGBA) {
	fb.active = c
}

func (fb *Framebuffer) SetPixel(x, y int) {
	fb.put(x, y, fb.active)
}

func (fb *Framebuffer) put(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	index := (y*fb.width + x) * 4
	fb.pixels[index] = c.R
	fb.pixels[index+1] = c.G
	fb.pixels[index+2] = c.B
	fb.pixels[index+3] = c.A
}

// RGBAAt returns the pixel at (x, y), or transparent black out of range.
func (fb *Framebuffer) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return color.RGBA{}
	}
	index := (y*fb.width + x) * 4
	return color.RGBA{fb.pixels[index], fb.pixels[index+1], fb.pixels[index+2], fb.pixels[index+3]}
}

func (fb *Framebuffer) At(x, y int) color.Color { return fb.RGBAAt(x, y) }

func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

func (fb *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

// Set blends c over the existing pixel, so anti-aliased glyph masks from
// font drawers composite correctly.
func (fb *Framebuffer) Set(x, y int, c color.Color) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	sr, sg, sb, sa := c.RGBA()
	if sa == 0 {
		return
	}
	if sa == 0xffff {
		fb.put(x, y, color.RGBA{uint8(sr >> 8), uint8(sg >> 8), uint8(sb >> 8), 255})
		return
	}

	// premultiplied source over destination
	dst := fb.RGBAAt(x, y)
	inv := 0xffff - sa
	blend := func(s uint32, d uint8) uint8 {
		return uint8((s + uint32(d)*0x101*inv/0xffff) >> 8)
	}
	fb.put(x, y, color.RGBA{
		R: blend(sr, dst.R),
		G: blend(sg, dst.G),
		B: blend(sb, dst.B),
		A: blend(sa, dst.A),
	})
}

// Pix returns the backing RGBA bytes, row-major, 4 bytes per pixel.
func (fb *Framebuffer) Pix() []byte {
	return fb.pixels
}
