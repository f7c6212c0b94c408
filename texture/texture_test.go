package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad() *Cache {
	c, err := NewCache(2, 2, []color.RGBA{
		{255, 0, 0, 255}, {0, 255, 0, 255},
		{0, 0, 255, 255}, {255, 255, 255, 255},
	})
	if err != nil {
		panic(err)
	}
	return c
}

func TestCacheAt(t *testing.T) {
	c := quad()

	tests := []struct {
		name string
		u, v float64
		want color.RGBA
	}{
		{"origin", 0, 0, color.RGBA{255, 0, 0, 255}},
		{"right edge", 1, 0, color.RGBA{0, 255, 0, 255}},
		{"bottom right", 1, 1, color.RGBA{255, 255, 255, 255}},
		{"just under half", 0.49, 0.51, color.RGBA{0, 0, 255, 255}},
		{"clamped low", -3, -3, color.RGBA{255, 0, 0, 255}},
		{"clamped high", 7, 7, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.At(tt.u, tt.v))
		})
	}
}

func TestNewCache_Invalid(t *testing.T) {
	_, err := NewCache(0, 4, nil)
	assert.ErrorIs(t, err, ErrEmptyTexture)

	_, err = NewCache(2, 2, make([]color.RGBA, 3))
	assert.Error(t, err)
}

func TestSampleWall_Fallback(t *testing.T) {
	assert.Equal(t, color.RGBA{100, 80, 60, 255}, SampleWall(nil, 0, 0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, SampleWall(nil, 1, 1))
	assert.Equal(t, color.RGBA{127, 80, 63, 255}, SampleWall(nil, 0.5, 0))

	// deterministic
	assert.Equal(t, SampleWall(nil, 0.3, 0.7), SampleWall(nil, 0.3, 0.7))
}

func TestSampleFloor(t *testing.T) {
	assert.Equal(t, FloorFallback, SampleFloor(nil, 0.5, 0.5))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, SampleFloor(quad(), 0.9, 0))
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	img.Set(10, 10, color.NRGBA{1, 2, 3, 255})
	img.Set(12, 11, color.NRGBA{4, 5, 6, 255})

	c, err := FromImage(img, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 2, c.Height())
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, c.At(0, 0))
	assert.Equal(t, color.RGBA{4, 5, 6, 255}, c.At(1, 1))
}

func TestFromImage_Downscales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if x < 32 {
				img.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}

	c, err := FromImage(img, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, c.Width())
	assert.Equal(t, 8, c.Height())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c.At(0.1, 0.5))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, c.At(0.9, 0.5))
}

func TestLoad(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{10, 20, 30, 255})
	img.SetRGBA(1, 0, color.RGBA{40, 50, 60, 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "wall.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	c, err := Load(path, DefaultMaxSize)
	require.NoError(t, err)

	want := []color.RGBA{{10, 20, 30, 255}, {40, 50, 60, 255}}
	got := []color.RGBA{c.At(0, 0), c.At(1, 0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("texels mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"), DefaultMaxSize)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err = Load(path, DefaultMaxSize)
	assert.ErrorIs(t, err, image.ErrFormat)
}
