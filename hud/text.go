// Package hud draws overlays (text, minimap, victory banner) on top of the
// rendered frame.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Text renders strings with a TrueType face.
type Text struct {
	face font.Face
}

// NewText parses ttf at the given point size. A nil ttf uses Go Regular.
func NewText(ttf []byte, size float64) (*Text, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Text{
		face: truetype.NewFace(f, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}),
	}, nil
}

// Width is the advance width of s in pixels.
func (t *Text) Width(s string) int {
	return font.MeasureString(t.face, s).Ceil()
}

// LineHeight is the distance between baselines in pixels.
func (t *Text) LineHeight() int {
	return t.face.Metrics().Height.Ceil()
}

// Draw writes s with its top-left corner at (x, y).
func (t *Text) Draw(dst draw.Image, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: t.face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + t.face.Metrics().Ascent},
	}
	d.DrawString(s)
}

// DrawOutlined draws s in fg over a one-pixel outline in bg.
func (t *Text) DrawOutlined(dst draw.Image, s string, x, y int, fg, bg color.Color) {
	for _, o := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		t.Draw(dst, s, x+o[0], y+o[1], bg)
	}
	t.Draw(dst, s, x, y, fg)
}

// DrawCentered draws s horizontally centred on cx with its top at y.
func (t *Text) DrawCentered(dst draw.Image, s string, cx, y int, fg, bg color.Color) {
	t.DrawOutlined(dst, s, cx-t.Width(s)/2, y, fg, bg)
}
