package model

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
)

// GridFromImage builds a grid from a level image where each pixel is one
// cell: white is open floor, black is wall, green is the goal. Any other
// color is treated as open floor.
func GridFromImage(img image.Image) (Grid, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	g := make(Grid, height)
	for i := range g {
		g[i] = make([]Cell, width)
	}

	// fill matrix based on pixel colors
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)

			switch c {
			case CellColorWall:
				g[y][x] = WallPost
			case CellColorGoal:
				g[y][x] = Goal
			default:
				g[y][x] = Empty
			}
		}
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("level image: %w", err)
	}
	return g, nil
}

// DecodeGridImage decodes a PNG level image from r.
func DecodeGridImage(r io.Reader) (Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode level image: %w", err)
	}
	return GridFromImage(img)
}
