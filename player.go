package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/groundwork-games/tilerunner/kinematics"
)

var (
	playerBody   = color.NRGBA{R: 0xce, G: 0x34, B: 0x34, A: 0xff}
	playerShade  = color.NRGBA{R: 0x8c, G: 0x18, B: 0x18, A: 0xff}
	playerAccent = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// PlayerSprite draws the kinematic body. Frames are generated flat
// shapes sized to the body, one per pose, flipped for facing.
type PlayerSprite struct {
	frames map[kinematics.Pose]*ebiten.Image
	w, h   float64
}

func NewPlayerSprite(w, h float64) *PlayerSprite {
	iw, ih := int(w), int(h)

	idle := ebiten.NewImage(iw, ih)
	fillFrame(idle)

	run := ebiten.NewImage(iw, ih)
	fillFrame(run)
	fillRect(run, 2, ih-4, 4, 3, playerAccent)

	jump := ebiten.NewImage(iw, ih)
	fillFrame(jump)
	fillRect(jump, iw-6, 2, 4, 3, playerAccent)

	return &PlayerSprite{
		frames: map[kinematics.Pose]*ebiten.Image{
			kinematics.PoseIdle: idle,
			kinematics.PoseRun:  run,
			kinematics.PoseJump: jump,
		},
		w: w,
		h: h,
	}
}

func (p *PlayerSprite) Draw(screen *ebiten.Image, body *kinematics.Body, camX, camY float64) {
	frame, ok := p.frames[body.Pose()]
	if !ok {
		frame = p.frames[kinematics.PoseIdle]
	}

	op := &ebiten.DrawImageOptions{}
	if body.Facing < 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(p.w, 0)
	}
	op.GeoM.Translate(body.Pos.X-camX, body.Pos.Y-camY)
	screen.DrawImage(frame, op)
}

func fillFrame(img *ebiten.Image) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	fillRect(img, 0, 1, w, h-1, playerShade)
	fillRect(img, 0, 0, w, h-2, playerBody)
}

func fillRect(img *ebiten.Image, x, y, w, h int, c color.Color) {
	sub := ebiten.NewImage(w, h)
	sub.Fill(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	img.DrawImage(sub, op)
}
