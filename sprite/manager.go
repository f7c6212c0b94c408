package sprite

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/harbdog/raycaster-go/geom"

	"mazecaster/caster"
)

// Params tunes sprite visibility, projection, animation and spawning.
type Params struct {
	VisibilityRadius float64
	// Projection scales billboard height: size = H/dist * Projection * Scale.
	Projection float64
	// SightSpacing is the line-of-sight sample spacing in world units.
	SightSpacing float64
	// AlphaThreshold skips source pixels with alpha at or below it.
	AlphaThreshold uint8
	FrameDuration  time.Duration
	FallbackColor  color.RGBA

	TargetCount int
	// StartFrames bounds the random start frame given to spawned sprites.
	StartFrames int
}

func DefaultParams() Params {
	return Params{
		VisibilityRadius: 300,
		Projection:       50,
		SightSpacing:     caster.DefaultSightSpacing,
		AlphaThreshold:   128,
		FrameDuration:    DefaultFrameDuration,
		FallbackColor:    color.RGBA{255, 165, 0, 255},
		TargetCount:      8,
		StartFrames:      4,
	}
}

// Manager owns the sprites placed in a maze and their textures.
type Manager struct {
	Sprites []AnimatedSprite
	Params  Params

	// Prototype is cloned for every spawned sprite.
	Prototype AnimatedSprite

	textures map[Kind]AnimatedTexture
	rng      *rand.Rand
}

func NewManager(params Params, seed int64) *Manager {
	return &Manager{
		Params: params,
		Prototype: AnimatedSprite{
			Kind:    KindWisp,
			Scale:   1,
			Visible: true,
		},
		textures: make(map[Kind]AnimatedTexture),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// SetTexture registers the frames drawn for kind.
func (m *Manager) SetTexture(kind Kind, tex AnimatedTexture) {
	m.textures[kind] = tex
}

// Add places a sprite of the prototype's kind at pos.
func (m *Manager) Add(pos geom.Vector2) {
	s := m.Prototype
	s.Position = pos
	m.Sprites = append(m.Sprites, s)
}
