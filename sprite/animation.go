package sprite

import "time"

// DefaultFrameDuration is how long each animation frame is shown.
const DefaultFrameDuration = 80 * time.Millisecond

// advance adds dt to the sprite's timer and steps one frame per elapsed
// frame duration, looping over n frames. The leftover stays in Timer.
func (s *AnimatedSprite) advance(dt, frameDuration time.Duration, n int) {
	if frameDuration <= 0 {
		return
	}
	if n < 1 {
		n = 1
	}
	s.Timer += dt
	if s.Timer < frameDuration {
		return
	}
	k := s.Timer / frameDuration
	s.Timer %= frameDuration
	s.Frame = (s.Frame + int(k%time.Duration(n))) % n
}

// Update advances every sprite's animation clock by dt.
func (m *Manager) Update(dt time.Duration) {
	for i := range m.Sprites {
		s := &m.Sprites[i]
		s.advance(dt, m.Params.FrameDuration, m.textures[s.Kind].Len())
	}
}
