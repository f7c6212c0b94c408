// Package caster marches rays through a maze grid at a fixed step.
package caster

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"mazecaster/model"
)

const (
	DefaultBlockSize   = 100.0
	DefaultMaxDistance = 1000.0
	DefaultStep        = 1.0
	// DefaultSightSpacing is the world distance between line-of-sight samples.
	DefaultSightSpacing = 5.0
)

// Params controls the march. Zero or negative BlockSize and Step are
// replaced by 1 so a cast always terminates.
type Params struct {
	BlockSize   float64
	MaxDistance float64
	Step        float64
}

func DefaultParams() Params {
	return Params{
		BlockSize:   DefaultBlockSize,
		MaxDistance: DefaultMaxDistance,
		Step:        DefaultStep,
	}
}

func (p Params) normalized() Params {
	if p.BlockSize <= 0 {
		p.BlockSize = 1
	}
	if p.Step <= 0 {
		p.Step = 1
	}
	if p.MaxDistance < 0 {
		p.MaxDistance = 0
	}
	return p
}

// Intersect is the result of a single cast.
type Intersect struct {
	Distance float64
	Impact   model.Cell
	// TX is the horizontal texture coordinate of the hit in [0,1).
	TX float64
}

// cellAt resolves a world point to its cell. ok is false when the point lies
// outside the grid, negative coordinates included.
func cellAt(g model.Grid, blockSize, x, y float64) (model.Cell, bool) {
	if x < 0 || y < 0 {
		return model.Empty, false
	}
	col, row := int(x/blockSize), int(y/blockSize)
	if !g.InBounds(col, row) {
		return model.Empty, false
	}
	return g.At(col, row), true
}

// Cast marches from pos along angle until it leaves the grid, passes
// MaxDistance, or enters a non-empty cell.
func Cast(g model.Grid, pos geom.Vector2, angle float64, params Params) Intersect {
	p := params.normalized()
	cos, sin := math.Cos(angle), math.Sin(angle)

	for d := 0.0; ; d += p.Step {
		if d > p.MaxDistance {
			return Intersect{Distance: p.MaxDistance, Impact: model.DefaultWall}
		}

		hx, hy := pos.X+d*cos, pos.Y+d*sin
		cell, ok := cellAt(g, p.BlockSize, hx, hy)
		if !ok {
			return Intersect{Distance: d, Impact: model.DefaultWall}
		}
		if cell != model.Empty {
			// both axes feed one coordinate, so faces of either orientation
			// share the same texture run
			_, frac := math.Modf((hx + hy) / p.BlockSize)
			return Intersect{Distance: d, Impact: cell, TX: math.Abs(frac)}
		}
	}
}

// Obstructed reports whether any non-empty cell lies strictly between from
// and to, sampling every spacing world units. Samples outside the grid are
// ignored.
func Obstructed(g model.Grid, from, to geom.Vector2, blockSize, spacing float64) bool {
	if blockSize <= 0 {
		blockSize = 1
	}
	if spacing <= 0 {
		spacing = DefaultSightSpacing
	}

	dx, dy := to.X-from.X, to.Y-from.Y
	dist := math.Hypot(dx, dy)
	steps := int(math.Ceil(dist / spacing))
	if steps <= 0 {
		return false
	}

	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		cell, ok := cellAt(g, blockSize, from.X+dx*t, from.Y+dy*t)
		if ok && cell != model.Empty {
			return true
		}
	}
	return false
}
