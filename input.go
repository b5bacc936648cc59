package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/player"
)

const stickDeadzone = 0.2

// ShotKeys maps keyboard keys to the shot they fire.
var ShotKeys = map[ebiten.Key]combat.Category{
	ebiten.KeyQ: combat.Organic,
	ebiten.KeyW: combat.PaperCardboard,
	ebiten.KeyE: combat.PlasticBrickCan,
	ebiten.KeyR: combat.Glass,
}

// shotButtons is the gamepad equivalent of ShotKeys.
var shotButtons = map[ebiten.StandardGamepadButton]combat.Category{
	ebiten.StandardGamepadButtonRightLeft:        combat.Organic,
	ebiten.StandardGamepadButtonRightTop:         combat.PaperCardboard,
	ebiten.StandardGamepadButtonRightRight:       combat.PlasticBrickCan,
	ebiten.StandardGamepadButtonFrontBottomRight: combat.Glass,
}

// ReadKeyboard samples the keyboard and the first gamepad. Jump and Fire are
// edges; Move is held.
func ReadKeyboard() player.Input {
	var in player.Input

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Move -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Move += 1
	}
	in.Jump = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)

	for key, cat := range ShotKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.Fire = true
			in.Shot = cat
			break
		}
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			in.Move = math.Copysign(1, leftX)
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			in.Move = -1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			in.Move = 1
		}

		in.Jump = in.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		if !in.Fire {
			for button, cat := range shotButtons {
				if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
					in.Fire = true
					in.Shot = cat
					break
				}
			}
		}
	}
	return in
}

// pausePressed reports Escape or the gamepad start button.
func pausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	for _, id := range ebiten.GamepadIDs() {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}
