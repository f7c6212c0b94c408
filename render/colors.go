package render

import (
	"image/color"

	"mazecaster/model"
)

var (
	DefaultFloorColor   = color.RGBA{192, 201, 135, 255}
	DefaultCeilingColor = color.RGBA{50, 50, 100, 255}
)

// KindColor is the flat fill for cells that are not textured walls.
func KindColor(c model.Cell) color.RGBA {
	switch c {
	case model.Goal:
		return model.CellColorGoal
	case model.WallPost, model.WallHorizontal, model.WallVertical:
		return model.CellColorWall
	default:
		return color.RGBA{255, 255, 255, 255}
	}
}
