package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1300, c.Window.Width)
	assert.Equal(t, 900, c.Window.Height)
	assert.Equal(t, 15, c.Window.TargetFPS)
	assert.Equal(t, 100.0, c.Maze.BlockSize)
	assert.Equal(t, 1000.0, c.Caster.MaxDistance)
	assert.Equal(t, 1.0, c.Caster.Step)
	assert.Equal(t, 70.0, c.Render.Projection)
	assert.Equal(t, 80*time.Millisecond, c.Sprites.FrameDuration)
	assert.Equal(t, 8, c.Sprites.TargetCount)
	assert.True(t, c.HUD.ShowMinimap)

	assert.InDelta(t, math.Pi/3, c.FOVRadians(), 1e-12)
	assert.InDelta(t, math.Pi/3, c.StartAngleRadians(), 1e-12)
	assert.Equal(t, time.Second/15, c.FrameInterval())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mazecaster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 640
  height: 480
maze:
  path: levels/one.png
caster:
  step: 2.5
sprites:
  frame_duration: 120ms
  seed: 42
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, c.Window.Width)
	assert.Equal(t, 480, c.Window.Height)
	assert.Equal(t, "levels/one.png", c.Maze.Path)
	assert.Equal(t, 2.5, c.Caster.Step)
	assert.Equal(t, 120*time.Millisecond, c.Sprites.FrameDuration)
	assert.Equal(t, int64(42), c.Sprites.Seed)

	// untouched keys keep their defaults
	assert.Equal(t, 15, c.Window.TargetFPS)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "window:\n  width: 640\n")
	t.Setenv("MAZECASTER_WINDOW_WIDTH", "800")
	t.Setenv("MAZECASTER_HUD_SHOW_MINIMAP", "false")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, c.Window.Width)
	assert.False(t, c.HUD.ShowMinimap)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero step", "caster:\n  step: 0\n"},
		{"fov too wide", "player:\n  fov: 180\n"},
		{"negative block", "maze:\n  block_size: -1\n"},
		{"no fps", "window:\n  target_fps: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
