package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Backdrop is the parallax layer behind the tiles: a two-band sky
// gradient plus a mountain band scrolling at a quarter of the camera
// speed.
type Backdrop struct {
	sky  *ebiten.Image
	band *ebiten.Image
}

const (
	mountainParallax = 0.25
	// one repeat of the mountain band; wider than the view so a single
	// peak drifts across rather than tiling visibly.
	mountainSpacing = baseWidth + 240
)

var (
	skyTop       = color.NRGBA{R: 0xac, G: 0xce, B: 0xff, A: 0xff}
	skyBottom    = color.NRGBA{R: 0x4c, G: 0x74, B: 0xd0, A: 0xff}
	mountainBlue = color.NRGBA{R: 0x78, G: 0x96, B: 0xc8, A: 0xff}
)

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

func NewBackdrop() *Backdrop {
	// 1x2 gradient source stretched over the view; linear filtering
	// turns the two bands into a smooth vertical ramp.
	grad := ebiten.NewImage(1, 2)
	grad.Set(0, 0, skyTop)
	grad.Set(0, 1, skyBottom)

	sky := ebiten.NewImage(baseWidth, baseHeight)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(baseWidth, baseHeight/2.0)
	op.Filter = ebiten.FilterLinear
	sky.DrawImage(grad, op)

	band := ebiten.NewImage(mountainSpacing, baseHeight)
	fillTriangle(band,
		40, baseHeight-120,
		240, baseHeight-220,
		440, baseHeight-120,
		mountainBlue)

	return &Backdrop{sky: sky, band: band}
}

func (b *Backdrop) Draw(screen *ebiten.Image, camX float64) {
	screen.DrawImage(b.sky, nil)

	off := mountainOffset(camX)
	for i := -1; i <= 1; i++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(i)*mountainSpacing-off, 0)
		screen.DrawImage(b.band, op)
	}
}

// mountainOffset maps camera scroll to the band's wrapped x offset.
func mountainOffset(camX float64) float64 {
	return math.Mod(camX*mountainParallax, mountainSpacing)
}

func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, c color.NRGBA) {
	var p vector.Path
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	p.LineTo(x2, y2)
	p.Close()

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	dst.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{})
}
