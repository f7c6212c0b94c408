package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (g *Game) handleInput() {
	g.pad.poll()

	// p pauses the game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.paused {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			g.paused = false
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
			g.paused = true
		}
		g.mouseX, g.mouseY = math.MinInt32, math.MinInt32
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showMinimap = !g.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) || g.pad.justPressed(ebiten.StandardGamepadButtonRightTop) {
		g.topDown = !g.topDown
	}

	if g.won {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || g.pad.justPressed(ebiten.StandardGamepadButtonCenterLeft) {
			g.restart()
		}
		return
	}

	if g.paused {
		return
	}

	moveModifier := 1.0
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		moveModifier = 2.0
	}
	speed := g.cfg.Player.MoveSpeed * moveModifier
	block := g.cfg.Maze.BlockSize

	x, y := ebiten.CursorPosition()
	if g.mouseX == math.MinInt32 && g.mouseY == math.MinInt32 {
		// initialize first position to establish delta
		if x != 0 && y != 0 {
			g.mouseX, g.mouseY = x, y
		}
	} else {
		dx := x - g.mouseX
		g.mouseX, g.mouseY = x, y
		if dx != 0 {
			g.pose.Rotate(float64(dx) * g.cfg.Player.MouseSensitivity)
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.pose.Rotate(-g.cfg.Player.RotateSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.pose.Rotate(g.cfg.Player.RotateSpeed)
	}

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.pose.Advance(g.grid, block, speed)
	} else if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.pose.Advance(g.grid, block, -speed)
	}

	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.pose.Strafe(g.grid, block, -speed)
	} else if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.pose.Strafe(g.grid, block, speed)
	}

	// left stick walks and strafes, right stick turns
	if v := g.pad.axis(ebiten.StandardGamepadAxisLeftStickVertical); v != 0 {
		g.pose.Advance(g.grid, block, -v*speed)
	}
	if v := g.pad.axis(ebiten.StandardGamepadAxisLeftStickHorizontal); v != 0 {
		g.pose.Strafe(g.grid, block, v*speed)
	}
	if v := g.pad.axis(ebiten.StandardGamepadAxisRightStickHorizontal); v != 0 {
		g.pose.Rotate(v * g.cfg.Player.RotateSpeed)
	}
}
