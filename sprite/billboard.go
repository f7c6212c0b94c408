package sprite

import (
	"math"
	"sort"

	"mazecaster/caster"
	"mazecaster/engine"
	"mazecaster/model"
)

// billboard is a sprite that survived culling, in screen terms.
type billboard struct {
	sprite  *AnimatedSprite
	dist    float64
	screenX float64
	size    float64
}

// normalizeAngle wraps a into (-π, π].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// visible culls the sprites and projects the survivors, sorted far to near.
func (m *Manager) visible(width, height int, g model.Grid, pose model.Pose, blockSize float64) []billboard {
	var out []billboard
	for i := range m.Sprites {
		s := &m.Sprites[i]
		if !s.Visible {
			continue
		}

		dx, dy := s.Position.X-pose.Position.X, s.Position.Y-pose.Position.Y
		dist := math.Hypot(dx, dy)
		if dist > m.Params.VisibilityRadius {
			continue
		}

		diff := normalizeAngle(math.Atan2(dy, dx) - pose.Angle)
		if math.Abs(diff) > pose.FOV/2 {
			continue
		}

		if caster.Obstructed(g, pose.Position, s.Position, blockSize, m.Params.SightSpacing) {
			continue
		}

		// a sprite on top of the camera projects to infinity
		d := math.Max(dist, 1)
		out = append(out, billboard{
			sprite:  s,
			dist:    dist,
			screenX: (diff/pose.FOV + 0.5) * float64(width),
			size:    float64(height) / d * m.Params.Projection * s.Scale,
		})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].dist > out[b].dist
	})
	return out
}

// Render draws every visible, unobstructed sprite on top of s. No depth
// test is made against walls already on the surface.
func (m *Manager) Render(s engine.Surface, g model.Grid, pose model.Pose, blockSize float64) {
	width, height := s.Width(), s.Height()
	if width <= 0 || height <= 0 || pose.FOV <= 0 {
		return
	}

	for _, b := range m.visible(width, height, g, pose, blockSize) {
		left := b.screenX - b.size/2
		top := float64(height)/2 - b.size/2
		if left+b.size <= 0 || left >= float64(width) {
			continue
		}

		x0, x1 := clampSpan(left, left+b.size, width)
		y0, y1 := clampSpan(top, top+b.size, height)

		frame, ok := m.textures[b.sprite.Kind].frame(b.sprite.Frame)
		if !ok {
			s.SetActiveColor(m.Params.FallbackColor)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					s.SetPixel(x, y)
				}
			}
			continue
		}

		for y := y0; y < y1; y++ {
			ty := texel(float64(y)-top, b.size, frame.Height)
			for x := x0; x < x1; x++ {
				tx := texel(float64(x)-left, b.size, frame.Width)
				c := frame.Pixels[ty*frame.Width+tx]
				if c.A <= m.Params.AlphaThreshold {
					continue
				}
				s.SetActiveColor(c)
				s.SetPixel(x, y)
			}
		}
	}
}

func clampSpan(lo, hi float64, limit int) (int, int) {
	a := int(math.Max(lo, 0))
	b := int(math.Min(hi, float64(limit)))
	return a, b
}

// texel maps an offset into a span of the given screen size onto n source
// pixels.
func texel(offset, size float64, n int) int {
	i := int(offset / size * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
