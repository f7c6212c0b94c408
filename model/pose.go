package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Pose is the player's viewpoint in world units. The renderers only read it.
type Pose struct {
	Position geom.Vector2
	// Angle is the heading in radians; it is never wrapped.
	Angle float64
	// FOV is the horizontal field of view in radians.
	FOV float64
}

func NewPose(x, y, angle, fov float64) Pose {
	return Pose{
		Position: geom.Vector2{X: x, Y: y},
		Angle:    angle,
		FOV:      fov,
	}
}

// Direction returns the unit heading vector.
func (p *Pose) Direction() (float64, float64) {
	return math.Cos(p.Angle), math.Sin(p.Angle)
}

// Rotate turns the heading by delta radians.
func (p *Pose) Rotate(delta float64) {
	p.Angle += delta
}

// TryMove shifts the position by (dx, dy) if the destination cell is open
// floor, and reports whether it moved.
func (p *Pose) TryMove(g Grid, blockSize, dx, dy float64) bool {
	next := geom.Vector2{X: p.Position.X + dx, Y: p.Position.Y + dy}
	if !Walkable(g, blockSize, next.X, next.Y) {
		return false
	}
	p.Position = next
	return true
}

// Walkable reports whether the world point (x, y) lies in an empty cell.
func Walkable(g Grid, blockSize, x, y float64) bool {
	if x < 0 || y < 0 || blockSize <= 0 {
		return false
	}
	col, row := int(x/blockSize), int(y/blockSize)
	if !g.InBounds(col, row) {
		return false
	}
	return g.At(col, row) == Empty
}

// CellCenter returns the world position of the center of cell (col, row).
func CellCenter(col, row int, blockSize float64) geom.Vector2 {
	return geom.Vector2{
		X: float64(col)*blockSize + blockSize/2,
		Y: float64(row)*blockSize + blockSize/2,
	}
}

// Advance moves dist units along the heading. Negative dist walks backwards.
func (p *Pose) Advance(g Grid, blockSize, dist float64) bool {
	cos, sin := p.Direction()
	return p.TryMove(g, blockSize, dist*cos, dist*sin)
}

// Strafe moves dist units sideways; positive dist is to the right of the
// heading on screen.
func (p *Pose) Strafe(g Grid, blockSize, dist float64) bool {
	a := p.Angle + math.Pi/2
	return p.TryMove(g, blockSize, dist*math.Cos(a), dist*math.Sin(a))
}

// ReachedGoal reports whether pos is within one block of the center of any
// goal cell.
func ReachedGoal(g Grid, pos geom.Vector2, blockSize float64) bool {
	for _, c := range g.Goals() {
		center := CellCenter(c.Col, c.Row, blockSize)
		if math.Hypot(center.X-pos.X, center.Y-pos.Y) <= blockSize {
			return true
		}
	}
	return false
}
