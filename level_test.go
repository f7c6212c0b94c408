package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazecaster/model"
)

func TestLoadMazeBuiltin(t *testing.T) {
	g, err := loadMaze("")
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.NotEmpty(t, g.Goals())

	// default start pose (150, 150) sits in open floor
	assert.True(t, model.Walkable(g, 100, 150, 150))
}

func TestLoadMazeText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.txt")
	require.NoError(t, os.WriteFile(path, []byte("+-+\n|g|\n+-+\n"), 0o644))

	g, err := loadMaze(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, model.Goal, g.At(1, 1))
}

func TestLoadMazeMissing(t *testing.T) {
	_, err := loadMaze(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
