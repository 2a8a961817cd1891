package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/input"
)

const stickDeadzone = 0.3

// Keyboard reads ebiten key and gamepad state. Left/A and Right/D move,
// Up/W/Space jump. The first connected gamepad's left stick and bottom face
// button work as well.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) IsPressed(c input.Control) bool {
	switch c {
	case input.MoveLeft:
		return ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) || stickX() < -stickDeadzone
	case input.MoveRight:
		return ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) || stickX() > stickDeadzone
	case input.Jump:
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace) {
			return true
		}
		if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
			return ebiten.IsStandardGamepadButtonPressed(ids[0], ebiten.StandardGamepadButtonRightBottom)
		}
		return false
	default:
		return false
	}
}

func stickX() float64 {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(ids[0], ebiten.StandardGamepadAxisLeftStickHorizontal)
}
