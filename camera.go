package main

import (
	"github.com/jakecoffman/cp"

	"github.com/groundwork-games/tilerunner/common"
)

// Camera follows a world point horizontally and clamps the view to the
// level bounds, so the player never sees past the edge of the map.
type Camera struct {
	x, y float64

	screenW float64
	screenH float64
	worldW  float64
	worldH  float64

	// smoothing factor per tick (0..1). higher follows faster.
	smooth float64
}

func NewCamera(screenW, screenH, worldW, worldH float64) *Camera {
	return &Camera{
		screenW: screenW,
		screenH: screenH,
		worldW:  worldW,
		worldH:  worldH,
		smooth:  0.2,
	}
}

// Follow eases the view toward centering target horizontally. Vertical
// position stays pinned to the bottom of the world so short levels
// don't show empty sky below the floor.
func (c *Camera) Follow(target cp.Vector) {
	want := common.Clamp(target.X-c.screenW/2, 0, max(0, c.worldW-c.screenW))
	c.x = common.Lerp(c.x, want, c.smooth)
	c.y = common.Clamp(c.worldH-c.screenH, 0, max(0, c.worldH-c.screenH))
}

// Snap jumps the view directly to the target with no easing.
func (c *Camera) Snap(target cp.Vector) {
	c.x = common.Clamp(target.X-c.screenW/2, 0, max(0, c.worldW-c.screenW))
}

// ViewTopLeft returns the world coordinate at the top-left of the view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.x, c.y
}
