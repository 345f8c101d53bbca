package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/groundwork-games/tilerunner/kinematics"
)

// Input folds the keyboard and the first connected gamepad into one
// kinematics.Frame per tick. Jump edges are detected here against the
// previous tick so the core only ever sees pressed/released events.
type Input struct {
	frame kinematics.Frame

	prevJumpHeld bool
	gamepadIDs   []ebiten.GamepadID
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	var f kinematics.Frame

	f.Left = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	f.Right = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	f.Run = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight) ||
		ebiten.IsKeyPressed(ebiten.KeyX)

	jumpHeld := ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyZ) ||
		ebiten.IsKeyPressed(ebiten.KeyW) ||
		ebiten.IsKeyPressed(ebiten.KeyUp)

	i.gamepadIDs = ebiten.AppendGamepadIDs(i.gamepadIDs[:0])
	if len(i.gamepadIDs) > 0 {
		gid := i.gamepadIDs[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
			f.Left = true
		}
		if leftX > 0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
			f.Right = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			jumpHeld = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightLeft) {
			f.Run = true
		}
	}

	f.JumpPressed = jumpHeld && !i.prevJumpHeld
	f.JumpReleased = !jumpHeld && i.prevJumpHeld
	i.prevJumpHeld = jumpHeld

	i.frame = f
}

func (i *Input) Frame() kinematics.Frame {
	return i.frame
}

func pauseToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
