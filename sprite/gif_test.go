package sprite

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gifClear = color.RGBA{}
	gifRed   = color.RGBA{255, 0, 0, 255}
)

func encodeGIF(t *testing.T, frames int) []byte {
	t.Helper()
	palette := color.Palette{color.RGBA{0, 0, 0, 0}, gifRed}

	anim := &gif.GIF{}
	for i := 0; i < frames; i++ {
		img := image.NewPaletted(image.Rect(0, 0, 2, 2), palette)
		img.SetColorIndex(i%2, i/2%2, 1)
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, 8)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}

	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, anim))
	return buf.Bytes()
}

func TestDecodeGIF(t *testing.T) {
	tex, err := DecodeGIF(bytes.NewReader(encodeGIF(t, 3)), DefaultMaxFrames)
	require.NoError(t, err)
	require.Equal(t, 3, tex.Len())

	want := []Frame{
		{Width: 2, Height: 2, Pixels: []color.RGBA{gifRed, gifClear, gifClear, gifClear}},
		{Width: 2, Height: 2, Pixels: []color.RGBA{gifClear, gifRed, gifClear, gifClear}},
		{Width: 2, Height: 2, Pixels: []color.RGBA{gifClear, gifClear, gifRed, gifClear}},
	}
	if diff := cmp.Diff(want, tex.Frames); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeGIF_MaxFrames(t *testing.T) {
	tex, err := DecodeGIF(bytes.NewReader(encodeGIF(t, 12)), DefaultMaxFrames)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxFrames, tex.Len())

	tex, err = DecodeGIF(bytes.NewReader(encodeGIF(t, 12)), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, tex.Len())
}

func TestLoadGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wisp.gif")
	require.NoError(t, os.WriteFile(path, encodeGIF(t, 2), 0o644))

	tex, err := LoadGIF(path, DefaultMaxFrames)
	require.NoError(t, err)
	assert.Equal(t, 2, tex.Len())

	_, err = LoadGIF(filepath.Join(t.TempDir(), "missing.gif"), DefaultMaxFrames)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = DecodeGIF(bytes.NewReader([]byte("GIF89a nope")), DefaultMaxFrames)
	assert.Error(t, err)
}
