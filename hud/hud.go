package hud

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"mazecaster/engine"
)

// Canvas is a Surface that text can also be composited onto.
type Canvas interface {
	engine.Surface
	draw.Image
}

var (
	textColor    = color.RGBA{255, 255, 255, 255}
	outlineColor = color.RGBA{0, 0, 0, 255}
	hintColor    = color.RGBA{255, 255, 0, 255}
	bannerColor  = color.RGBA{0, 0, 0, 255}
)

type HUD struct {
	status *Text
	title  *Text
	body   *Text
}

// New builds the HUD faces from ttf, or Go Regular when ttf is nil.
func New(ttf []byte) (*HUD, error) {
	var h HUD
	var err error
	if h.status, err = NewText(ttf, 16); err != nil {
		return nil, fmt.Errorf("hud status font: %w", err)
	}
	if h.title, err = NewText(ttf, 64); err != nil {
		return nil, fmt.Errorf("hud title font: %w", err)
	}
	if h.body, err = NewText(ttf, 28); err != nil {
		return nil, fmt.Errorf("hud body font: %w", err)
	}
	return &h, nil
}

// DrawStatus writes lines top-left, one per row.
func (h *HUD) DrawStatus(dst Canvas, lines ...string) {
	y := 10
	for _, l := range lines {
		h.status.DrawOutlined(dst, l, 10, y, textColor, outlineColor)
		y += h.status.LineHeight() + 4
	}
}

// DrawVictory paints the goal-reached banner in the middle of dst.
func (h *HUD) DrawVictory(dst Canvas) {
	cx, cy := dst.Width()/2, dst.Height()/2
	w, ht := min(600, dst.Width()), min(200, dst.Height())

	banner := image.Rect(cx-w/2, cy-ht/2, cx-w/2+w, cy-ht/2+ht)
	draw.Draw(dst, banner, image.NewUniform(bannerColor), image.Point{}, draw.Src)

	h.title.DrawCentered(dst, "SUCCESS!", cx, cy-90, textColor, outlineColor)
	h.body.DrawCentered(dst, "You reached the goal!", cx, cy-5, textColor, outlineColor)
	h.status.DrawCentered(dst, "Press R or Select to restart", cx, cy+50, hintColor, outlineColor)
}
