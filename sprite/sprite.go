// Package sprite renders animated billboards placed in the maze.
package sprite

import (
	"image/color"
	"time"

	"github.com/harbdog/raycaster-go/geom"
)

// Kind selects which AnimatedTexture a sprite draws with.
type Kind int

const (
	KindWisp Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindWisp:
		return "wisp"
	default:
		return "unknown"
	}
}

// AnimatedSprite is one billboard in world space.
type AnimatedSprite struct {
	Position geom.Vector2
	Kind     Kind
	// Frame may exceed the texture's frame count; Render clamps it.
	Frame   int
	Timer   time.Duration
	Scale   float64
	Visible bool
}

// Frame is one row-major RGBA animation frame.
type Frame struct {
	Width  int
	Height int
	Pixels []color.RGBA
}

func (f Frame) valid() bool {
	return f.Width > 0 && f.Height > 0 && len(f.Pixels) >= f.Width*f.Height
}

// AnimatedTexture is the ordered frame list of one sprite kind.
type AnimatedTexture struct {
	Frames []Frame
}

func (t AnimatedTexture) Len() int { return len(t.Frames) }

// frame returns frame i clamped into range, and false when there is nothing
// drawable.
func (t AnimatedTexture) frame(i int) (Frame, bool) {
	if len(t.Frames) == 0 {
		return Frame{}, false
	}
	if i >= len(t.Frames) {
		i = len(t.Frames) - 1
	}
	if i < 0 {
		i = 0
	}
	f := t.Frames[i]
	return f, f.valid()
}
