package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeadZone(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"rest", 0, 0},
		{"drift", 0.15, 0},
		{"edge", -0.2, 0},
		{"half", 0.6, 0.5},
		{"full left", -1, -1},
		{"overshoot", 1.2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, deadZone(tt.in, stickDeadZone), 1e-9)
		})
	}
}

func TestGamepadStatus(t *testing.T) {
	assert.Equal(t, "Gamepad: not connected", gamepadStatus(false, "Pad"))
	assert.Contains(t, gamepadStatus(true, "Xbox Wireless Controller"), "Xbox Wireless Controller")
	assert.Contains(t, gamepadStatus(true, ""), "standard")
}

func TestGamepadDisconnectedIsInert(t *testing.T) {
	var p gamepad
	assert.False(t, p.justPressed(0))
	assert.Zero(t, p.axis(0))
}
