package sprite

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// DefaultMaxFrames caps how many GIF frames are kept per animation.
const DefaultMaxFrames = 8

// LoadGIF reads up to maxFrames frames of the animated GIF at path.
func LoadGIF(path string, maxFrames int) (AnimatedTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return AnimatedTexture{}, fmt.Errorf("open sprite gif: %w", err)
	}
	defer f.Close()

	tex, err := DecodeGIF(f, maxFrames)
	if err != nil {
		return AnimatedTexture{}, fmt.Errorf("%s: %w", path, err)
	}
	return tex, nil
}

// DecodeGIF composites each GIF frame onto the logical screen and keeps the
// first maxFrames results. Transparent palette entries stay at alpha 0.
func DecodeGIF(r io.Reader, maxFrames int) (AnimatedTexture, error) {
	anim, err := gif.DecodeAll(r)
	if err != nil {
		return AnimatedTexture{}, fmt.Errorf("decode gif: %w", err)
	}
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}

	bounds := image.Rect(0, 0, anim.Config.Width, anim.Config.Height)
	if bounds.Empty() && len(anim.Image) > 0 {
		bounds = anim.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)

	var tex AnimatedTexture
	for i, frame := range anim.Image {
		if len(tex.Frames) >= maxFrames {
			break
		}

		var previous *image.RGBA
		disposal := byte(0)
		if i < len(anim.Disposal) {
			disposal = anim.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = image.NewRGBA(bounds)
			draw.Draw(previous, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		tex.Frames = append(tex.Frames, frameFromRGBA(canvas))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return tex, nil
}

func frameFromRGBA(img *image.RGBA) Frame {
	b := img.Bounds()
	f := Frame{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: make([]color.RGBA, b.Dx()*b.Dy()),
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.Pixels[y*f.Width+x] = img.RGBAAt(b.Min.X+x, b.Min.Y+y)
		}
	}
	return f
}
