package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmptyGrid  = errors.New("grid has no cells")
	ErrRaggedGrid = errors.New("grid rows differ in length")
)

// Grid is the maze as rows of columns. Index it as grid[row][col].
type Grid [][]Cell

// CellPos is an integer (col, row) grid coordinate.
type CellPos struct {
	Col, Row int
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) Height() int { return len(g) }

// At returns the cell at (col, row). Callers must check InBounds first.
func (g Grid) At(col, row int) Cell { return g[row][col] }

func (g Grid) InBounds(col, row int) bool {
	return row >= 0 && row < len(g) && col >= 0 && col < len(g[row])
}

// Validate checks the grid is non-empty and rectangular.
func (g Grid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(g[0])
	for row, cells := range g {
		if len(cells) != w {
			return fmt.Errorf("row %d has %d cells, want %d: %w", row, len(cells), w, ErrRaggedGrid)
		}
	}
	return nil
}

// Goals returns the positions of every goal cell in row-major order.
func (g Grid) Goals() []CellPos {
	var goals []CellPos
	for row, cells := range g {
		for col, c := range cells {
			if c == Goal {
				goals = append(goals, CellPos{Col: col, Row: row})
			}
		}
	}
	return goals
}

// String renders the grid back to maze text.
func (g Grid) String() string {
	var sb strings.Builder
	for i, cells := range g {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range cells {
			sb.WriteRune(c.Rune())
		}
	}
	return sb.String()
}

// ParseGrid reads a text maze: one row per line, ' ' for open floor,
// '+', '-' and '|' for walls, 'g' for the goal.
func ParseGrid(r io.Reader) (Grid, error) {
	var g Grid
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			row = append(row, CellFromRune(ch))
		}
		g = append(g, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("parse maze: %w", err)
	}
	return g, nil
}

// MustParseGrid is ParseGrid for literals known to be valid.
func MustParseGrid(s string) Grid {
	g, err := ParseGrid(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return g
}
