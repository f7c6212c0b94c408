// Package frametime keeps a rolling window of frame durations.
package frametime

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

const DefaultWindow = 30

// Meter records the most recent frame durations in seconds.
type Meter struct {
	samples []float64
	next    int
	full    bool
}

func NewMeter(window int) *Meter {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Meter{samples: make([]float64, window)}
}

// Observe records one frame that took dt. Non-positive durations are
// dropped.
func (m *Meter) Observe(dt time.Duration) {
	if dt <= 0 {
		return
	}
	m.samples[m.next] = dt.Seconds()
	m.next = (m.next + 1) % len(m.samples)
	if m.next == 0 {
		m.full = true
	}
}

func (m *Meter) window() []float64 {
	if m.full {
		return m.samples
	}
	return m.samples[:m.next]
}

// Len is the number of samples currently held.
func (m *Meter) Len() int { return len(m.window()) }

// Stats returns the mean frame time and its standard deviation.
func (m *Meter) Stats() (mean, stddev time.Duration) {
	w := m.window()
	switch len(w) {
	case 0:
		return 0, 0
	case 1:
		return seconds(w[0]), 0
	}
	mu, sd := stat.MeanStdDev(w, nil)
	return seconds(mu), seconds(sd)
}

// FPS is the frame rate implied by the mean frame time, or 0 with no
// samples.
func (m *Meter) FPS() float64 {
	w := m.window()
	if len(w) == 0 {
		return 0
	}
	return 1 / stat.Mean(w, nil)
}

func (m *Meter) Reset() {
	m.next = 0
	m.full = false
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
