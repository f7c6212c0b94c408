package frametime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMeterEmpty(t *testing.T) {
	m := NewMeter(4)
	assert.Zero(t, m.FPS())
	mean, sd := m.Stats()
	assert.Zero(t, mean)
	assert.Zero(t, sd)
}

func TestMeterFPS(t *testing.T) {
	m := NewMeter(4)
	for i := 0; i < 3; i++ {
		m.Observe(time.Second / 15)
	}
	assert.Equal(t, 3, m.Len())
	assert.InDelta(t, 15, m.FPS(), 1e-6)

	mean, sd := m.Stats()
	assert.InDelta(t, float64(time.Second/15), float64(mean), float64(time.Microsecond))
	assert.InDelta(t, 0, float64(sd), float64(time.Microsecond))
}

func TestMeterWindowRolls(t *testing.T) {
	m := NewMeter(2)
	m.Observe(time.Second)
	m.Observe(100 * time.Millisecond)
	m.Observe(100 * time.Millisecond)

	assert.Equal(t, 2, m.Len())
	assert.InDelta(t, 10, m.FPS(), 1e-9)
}

func TestMeterStdDev(t *testing.T) {
	m := NewMeter(0)
	m.Observe(50 * time.Millisecond)
	m.Observe(150 * time.Millisecond)

	mean, sd := m.Stats()
	assert.InDelta(t, float64(100*time.Millisecond), float64(mean), float64(time.Microsecond))
	// sample standard deviation of {0.05, 0.15}
	assert.InDelta(t, 0.0707107, sd.Seconds(), 1e-6)
}

func TestMeterIgnoresNonPositive(t *testing.T) {
	m := NewMeter(3)
	m.Observe(0)
	m.Observe(-time.Second)
	assert.Zero(t, m.Len())

	m.Observe(time.Second)
	m.Reset()
	assert.Zero(t, m.Len())
}
