package hud

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"mazecaster/model"
	"mazecaster/sprite"
)

const (
	DefaultMinimapScale  = 12
	DefaultMinimapMargin = 10
)

var (
	minimapBackground = color.RGBA{0, 0, 0, 255}
	minimapWall       = color.RGBA{255, 255, 255, 255}
	minimapSolid      = color.RGBA{130, 130, 130, 255}
	minimapPlayer     = color.RGBA{255, 0, 0, 255}
	minimapHeading    = color.RGBA{255, 255, 0, 255}
	minimapSprite     = color.RGBA{255, 165, 0, 255}
)

// Minimap draws the maze top-down with the player and sprites on it. Each
// cell is Scale pixels square.
type Minimap struct {
	Scale  int
	Margin int
	// Anchored to the top-right corner unless Centered is set.
	Centered bool
}

func NewMinimap() Minimap {
	return Minimap{Scale: DefaultMinimapScale, Margin: DefaultMinimapMargin}
}

// FitScale returns the largest cell scale at which g fits in w×h.
func FitScale(g model.Grid, w, h int) int {
	if g.Width() == 0 || g.Height() == 0 {
		return 1
	}
	return max(1, min(w/g.Width(), h/g.Height()))
}

// Origin is the top-left pixel of the map for a surface of the given size.
func (m Minimap) Origin(g model.Grid, w, h int) (int, int) {
	mw, mh := g.Width()*m.Scale, g.Height()*m.Scale
	if m.Centered {
		return (w - mw) / 2, (h - mh) / 2
	}
	return w - mw - m.Margin, m.Margin
}

func cellColor(c model.Cell) (color.RGBA, bool) {
	switch {
	case c == model.Empty:
		return color.RGBA{}, false
	case c.IsWall():
		return minimapWall, true
	case c == model.Goal:
		return model.CellColorGoal, true
	default:
		return minimapSolid, true
	}
}

func (m Minimap) Draw(dst Canvas, g model.Grid, pose model.Pose, blockSize float64, sprites []sprite.AnimatedSprite) {
	if m.Scale <= 0 || blockSize <= 0 {
		return
	}
	ox, oy := m.Origin(g, dst.Width(), dst.Height())
	mw, mh := g.Width()*m.Scale, g.Height()*m.Scale
	bounds := image.Rect(ox, oy, ox+mw, oy+mh)
	if bounds.Empty() {
		return
	}

	draw.Draw(dst, bounds, image.NewUniform(minimapBackground), image.Point{}, draw.Src)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			c, ok := cellColor(g.At(col, row))
			if !ok {
				continue
			}
			cell := image.Rect(0, 0, m.Scale, m.Scale).Add(image.Pt(ox+col*m.Scale, oy+row*m.Scale))
			draw.Draw(dst, cell, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}

	// shapes are rasterized in map-local coordinates
	toMap := func(x, y float64) (float32, float32) {
		return float32(x / blockSize * float64(m.Scale)), float32(y / blockSize * float64(m.Scale))
	}
	z := vector.NewRasterizer(mw, mh)

	for _, sp := range sprites {
		if !sp.Visible {
			continue
		}
		x, y := toMap(sp.Position.X, sp.Position.Y)
		disc(z, x, y, float32(max(1, m.Scale/6)))
	}
	z.Draw(dst, bounds, image.NewUniform(minimapSprite), image.Point{})

	px, py := toMap(pose.Position.X, pose.Position.Y)
	z.Reset(mw, mh)
	disc(z, px, py, float32(max(1, m.Scale/4)))
	z.Draw(dst, bounds, image.NewUniform(minimapPlayer), image.Point{})

	dx, dy := pose.Direction()
	length := float64(m.Scale) * 1.25
	z.Reset(mw, mh)
	segment(z, px, py, px+float32(dx*length), py+float32(dy*length), 1)
	z.Draw(dst, bounds, image.NewUniform(minimapHeading), image.Point{})

	border := image.NewUniform(minimapWall)
	for _, edge := range []image.Rectangle{
		image.Rect(ox, oy, ox+mw, oy+1),
		image.Rect(ox, oy+mh-1, ox+mw, oy+mh),
		image.Rect(ox, oy, ox+1, oy+mh),
		image.Rect(ox+mw-1, oy, ox+mw, oy+mh),
	} {
		draw.Draw(dst, edge, border, image.Point{}, draw.Src)
	}
}

const discSegments = 32

// disc adds a closed polygon approximating a circle of radius r.
func disc(z *vector.Rasterizer, cx, cy, r float32) {
	z.MoveTo(cx+r, cy)
	for i := 1; i < discSegments; i++ {
		a := 2 * math.Pi * float64(i) / discSegments
		z.LineTo(cx+r*float32(math.Cos(a)), cy+r*float32(math.Sin(a)))
	}
	z.ClosePath()
}

// segment adds the line from (x0, y0) to (x1, y1) as a quad half-width w
// either side.
func segment(z *vector.Rasterizer, x0, y0, x1, y1, w float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*w, dx/l*w
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}
