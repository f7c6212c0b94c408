package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mazecaster/model"
)

// loadMaze reads the maze at path. Text files use the character format,
// .png files the color-coded level image. An empty path loads the built-in
// maze.
func loadMaze(path string) (model.Grid, error) {
	if path == "" {
		data, err := assets.ReadFile("assets/maze.txt")
		if err != nil {
			return nil, fmt.Errorf("built-in maze: %w", err)
		}
		return model.ParseGrid(bytes.NewReader(data))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		return model.DecodeGridImage(f)
	}
	return model.ParseGrid(f)
}
