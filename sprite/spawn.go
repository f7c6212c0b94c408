package sprite

import (
	"errors"
	"fmt"
	"time"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"

	"mazecaster/model"
	"mazecaster/monitoring"
)

var ErrNoSpawnPositions = errors.New("no valid sprite spawn positions")

// spawnCandidates lists interior empty cells with at least three open
// neighbours and no goal within one cell.
func spawnCandidates(g model.Grid) []model.CellPos {
	var out []model.CellPos
	for row := 1; row < g.Height()-1; row++ {
		for col := 1; col < g.Width()-1; col++ {
			if g.At(col, row) != model.Empty {
				continue
			}

			open := 0
			for _, n := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
				if g.At(col+n[0], row+n[1]) == model.Empty {
					open++
				}
			}
			if open < 3 || nearGoal(g, col, row) {
				continue
			}
			out = append(out, model.CellPos{Col: col, Row: row})
		}
	}
	return out
}

func nearGoal(g model.Grid, col, row int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if g.InBounds(col+dx, row+dy) && g.At(col+dx, row+dy) == model.Goal {
				return true
			}
		}
	}
	return false
}

// Spawn replaces the manager's sprites with up to TargetCount new ones
// scattered over open floor. Placement keeps sprites at least three blocks
// apart, then relaxes to two blocks if the target was not met. Falling
// short of the target is not an error.
func (m *Manager) Spawn(g model.Grid, blockSize float64) (int, error) {
	m.Sprites = m.Sprites[:0]

	if err := g.Validate(); err != nil {
		monitoring.Logf("sprite spawn: invalid maze: %v", err)
		return 0, fmt.Errorf("spawn sprites: %w", err)
	}

	candidates := spawnCandidates(g)
	monitoring.Logf("sprite spawn: %d candidate cells", len(candidates))
	if len(candidates) == 0 {
		monitoring.Logf("sprite spawn: %v", ErrNoSpawnPositions)
		return 0, ErrNoSpawnPositions
	}

	m.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	target := m.Params.TargetCount
	for _, spacing := range []float64{3 * blockSize, 2 * blockSize} {
		if len(m.Sprites) >= target {
			break
		}
		if err := m.place(candidates, blockSize, spacing, target); err != nil {
			return len(m.Sprites), err
		}
	}

	if len(m.Sprites) < target {
		monitoring.Logf("sprite spawn: placed %d of %d sprites", len(m.Sprites), target)
	} else {
		monitoring.Logf("sprite spawn: placed %d sprites", len(m.Sprites))
	}
	return len(m.Sprites), nil
}

func (m *Manager) place(candidates []model.CellPos, blockSize, spacing float64, target int) error {
	minSq := spacing * spacing
	for _, c := range candidates {
		if len(m.Sprites) >= target {
			return nil
		}

		pos := model.CellCenter(c.Col, c.Row, blockSize)
		if m.crowded(pos, minSq) {
			continue
		}

		s, err := m.clonePrototype()
		if err != nil {
			return err
		}
		s.Position = pos
		m.Sprites = append(m.Sprites, s)
	}
	return nil
}

func (m *Manager) crowded(pos geom.Vector2, minSq float64) bool {
	for _, s := range m.Sprites {
		dx, dy := s.Position.X-pos.X, s.Position.Y-pos.Y
		if dx*dx+dy*dy < minSq {
			return true
		}
	}
	return false
}

func (m *Manager) clonePrototype() (AnimatedSprite, error) {
	var s AnimatedSprite
	if err := copier.Copy(&s, &m.Prototype); err != nil {
		return s, fmt.Errorf("clone sprite prototype: %w", err)
	}

	if m.Params.StartFrames > 0 {
		s.Frame = m.rng.Intn(m.Params.StartFrames)
	}
	if m.Params.FrameDuration > 0 {
		s.Timer = time.Duration(m.rng.Int63n(int64(m.Params.FrameDuration)))
	}
	return s, nil
}
