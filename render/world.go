// Package render projects cast rays onto a Surface as vertical wall slabs
// with ceiling and floor fills.
package render

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"mazecaster/caster"
	"mazecaster/engine"
	"mazecaster/model"
	"mazecaster/texture"
)

// DefaultProjection is the distance to the projection plane used for wall
// slab heights.
const DefaultProjection = 70.0

type Renderer struct {
	Params caster.Params

	// WallTexture and FloorTexture are optional. A nil wall texture falls
	// back to a procedural gradient; a nil floor texture to FloorColor.
	WallTexture  *texture.Cache
	FloorTexture *texture.Cache

	ProjectionConstant float64
	FloorColor         color.RGBA
	CeilingColor       color.RGBA

	// KindColors overrides KindColor for non-wall impacts.
	KindColors map[model.Cell]color.RGBA
}

func NewRenderer(params caster.Params) *Renderer {
	return &Renderer{
		Params:             params,
		ProjectionConstant: DefaultProjection,
		FloorColor:         DefaultFloorColor,
		CeilingColor:       DefaultCeilingColor,
	}
}

func (r *Renderer) kindColor(c model.Cell) color.RGBA {
	if col, ok := r.KindColors[c]; ok {
		return col
	}
	return KindColor(c)
}

// column is the projected slab for one screen column.
type column struct {
	angle  float64
	hit    caster.Intersect
	top    int
	bottom int
}

func (r *Renderer) project(g model.Grid, pose model.Pose, i, width, height int) column {
	angle := pose.Angle - pose.FOV/2 + pose.FOV*float64(i)/float64(width)
	hit := caster.Cast(g, pose.Position, angle, r.Params)

	dist := math.Max(hit.Distance, 1)
	half := float64(height) / 2
	slab := (half / dist) * r.ProjectionConstant

	top := int(geom.Clamp(half-slab/2, 0, float64(height)))
	bottom := int(geom.Clamp(half+slab/2, 0, float64(height)))

	return column{angle: angle, hit: hit, top: top, bottom: bottom}
}

// RenderWorld draws the wall, floor and ceiling pass. Every pixel of the
// surface is written.
func (r *Renderer) RenderWorld(s engine.Surface, g model.Grid, pose model.Pose) {
	width, height := s.Width(), s.Height()
	if width <= 0 || height <= 0 {
		return
	}

	for i := 0; i < width; i++ {
		col := r.project(g, pose, i, width, height)

		s.SetActiveColor(r.CeilingColor)
		for y := 0; y < col.top; y++ {
			s.SetPixel(i, y)
		}

		r.drawWall(s, i, col)
		r.drawFloor(s, i, col, pose, height)
	}
}

func (r *Renderer) drawWall(s engine.Surface, x int, col column) {
	if col.bottom <= col.top {
		return
	}

	if !col.hit.Impact.IsWall() {
		s.SetActiveColor(r.kindColor(col.hit.Impact))
		for y := col.top; y < col.bottom; y++ {
			s.SetPixel(x, y)
		}
		return
	}

	u := geom.Clamp(col.hit.TX, 0, 1)
	span := float64(col.bottom - col.top)
	for y := col.top; y < col.bottom; y++ {
		v := geom.Clamp(float64(y-col.top)/span, 0, 1)
		s.SetActiveColor(texture.SampleWall(r.WallTexture, u, v))
		s.SetPixel(x, y)
	}
}

func (r *Renderer) drawFloor(s engine.Surface, x int, col column, pose model.Pose, height int) {
	if r.FloorTexture == nil {
		s.SetActiveColor(r.FloorColor)
		for y := col.bottom; y < height; y++ {
			s.SetPixel(x, y)
		}
		return
	}

	block := r.Params.BlockSize
	if block <= 0 {
		block = 1
	}
	half := float64(height) / 2
	cos, sin := math.Cos(col.angle), math.Sin(col.angle)

	for y := col.bottom; y < height; y++ {
		// rows on the horizon line map to the farthest sample
		below := math.Max(float64(y)-half, 0.5)
		rowDist := half * r.ProjectionConstant / (2 * below)

		fx := pose.Position.X + rowDist*cos
		fy := pose.Position.Y + rowDist*sin
		u := fx/block - math.Floor(fx/block)
		v := fy/block - math.Floor(fy/block)

		s.SetActiveColor(texture.SampleFloor(r.FloorTexture, u, v))
		s.SetPixel(x, y)
	}
}
