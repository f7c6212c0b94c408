package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadZone = 0.2

// gamepad is the first connected controller with a standard layout.
type gamepad struct {
	ids       []ebiten.GamepadID
	id        ebiten.GamepadID
	connected bool
	name      string
}

func (p *gamepad) poll() {
	p.ids = ebiten.AppendGamepadIDs(p.ids[:0])
	p.connected = false
	for _, id := range p.ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			p.id, p.connected, p.name = id, true, ebiten.GamepadName(id)
			return
		}
	}
}

func (p *gamepad) justPressed(b ebiten.StandardGamepadButton) bool {
	return p.connected && inpututil.IsStandardGamepadButtonJustPressed(p.id, b)
}

func (p *gamepad) axis(a ebiten.StandardGamepadAxis) float64 {
	if !p.connected {
		return 0
	}
	return deadZone(ebiten.StandardGamepadAxisValue(p.id, a), stickDeadZone)
}

func (p *gamepad) status() string {
	return gamepadStatus(p.connected, p.name)
}

// deadZone zeroes v inside ±dz and rescales the rest back onto [-1, 1].
func deadZone(v, dz float64) float64 {
	if math.Abs(v) <= dz {
		return 0
	}
	scaled := (math.Abs(v) - dz) / (1 - dz)
	return math.Copysign(math.Min(scaled, 1), v)
}

func gamepadStatus(connected bool, name string) string {
	if !connected {
		return "Gamepad: not connected"
	}
	if name == "" {
		name = "standard"
	}
	return fmt.Sprintf("Gamepad: %s (Triangle mode, Select restart)", name)
}
