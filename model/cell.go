package model

import "image/color"

// Cell is the kind of a single maze cell.
type Cell int

const (
	Empty Cell = iota
	WallPost
	WallHorizontal
	WallVertical
	Goal
	// Solid is any non-empty cell without a dedicated kind.
	Solid
)

// DefaultWall is reported for rays that leave the grid or run out of range.
const DefaultWall = WallPost

// CellFromRune maps a maze file character to its cell kind.
func CellFromRune(r rune) Cell {
	switch r {
	case ' ':
		return Empty
	case '+':
		return WallPost
	case '-':
		return WallHorizontal
	case '|':
		return WallVertical
	case 'g':
		return Goal
	default:
		return Solid
	}
}

// Rune returns the canonical maze file character for c.
func (c Cell) Rune() rune {
	switch c {
	case Empty:
		return ' '
	case WallPost:
		return '+'
	case WallHorizontal:
		return '-'
	case WallVertical:
		return '|'
	case Goal:
		return 'g'
	default:
		return '#'
	}
}

// IsWall reports whether c is one of the textured wall variants.
func (c Cell) IsWall() bool {
	return c == WallPost || c == WallHorizontal || c == WallVertical
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case WallPost:
		return "wall-post"
	case WallHorizontal:
		return "wall-horizontal"
	case WallVertical:
		return "wall-vertical"
	case Goal:
		return "goal"
	default:
		return "solid"
	}
}

// Map colors used by PNG level images.
var (
	CellColorEmpty = color.RGBA{255, 255, 255, 255}
	CellColorWall  = color.RGBA{0, 0, 0, 255}
	CellColorGoal  = color.RGBA{0, 255, 0, 255}
)
