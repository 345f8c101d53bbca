package kinematics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Longer simulation runs validating the feel-level numbers rather than
// single-tick mechanics.

func simBody(t *testing.T, g *Grid, spawn cp.Vector) *Body {
	t.Helper()
	b, err := NewBody(testConfig(), spawn, 24, 48, []Pose{PoseIdle, PoseRun, PoseJump})
	require.NoError(t, err)
	return b
}

// TestWalkDistanceOneSecond verifies a grounded body covers roughly its
// top walking speed in world-units over one second (minus the short
// acceleration ramp).
func TestWalkDistanceOneSecond(t *testing.T) {
	rows := []string{
		"........................................",
		"........................................",
		"PPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPP",
	}
	g, _ := Parse(rows, 32)
	b := simBody(t, g, cp.Vector{X: 0, Y: 2*32 - 48})

	start := b.Pos.X
	for i := 0; i < 60; i++ {
		b.Step(Frame{Right: true}, g, testDT)
	}
	dist := b.Pos.X - start

	// 160 px/s with a 3200 px/s² ramp: the ramp costs 160²/(2·3200) = 4 px.
	assert.InDelta(t, 156, dist, 2.0)
	assert.Equal(t, 160.0, b.Vel.X)
}

// TestCoyoteIsFrameRateIndependent runs the same 0.1 s of airborne time
// at two tick rates; the jump window must expire in both, and an
// earlier press inside 0.08 s must work in both.
func TestCoyoteIsFrameRateIndependent(t *testing.T) {
	for _, tc := range []struct {
		name  string
		dt    float64
		ticks func(seconds float64, dt float64) int
	}{
		{"60hz", 1.0 / 60.0, func(s, dt float64) int { return int(math.Round(s / dt)) }},
		{"120hz", 1.0 / 120.0, func(s, dt float64) int { return int(math.Round(s / dt)) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := flatGround(t)

			// Expired: 0.1 s airborne, then press.
			b := simBody(t, g, cp.Vector{X: 64, Y: 100})
			b.coyote = b.cfg.CoyoteTime
			for i := 0; i < tc.ticks(0.1, tc.dt); i++ {
				b.Step(Frame{}, g, tc.dt)
			}
			ev := b.Step(Frame{JumpPressed: true}, g, tc.dt)
			assert.False(t, ev.Jumped, "late press should not jump at dt=%v", tc.dt)

			// Inside the window: 0.05 s airborne, then press.
			b = simBody(t, g, cp.Vector{X: 64, Y: 100})
			b.coyote = b.cfg.CoyoteTime
			for i := 0; i < tc.ticks(0.05, tc.dt); i++ {
				b.Step(Frame{}, g, tc.dt)
			}
			ev = b.Step(Frame{JumpPressed: true}, g, tc.dt)
			assert.True(t, ev.Jumped, "press inside window should jump at dt=%v", tc.dt)
		})
	}
}

// TestJumpApexHeight checks the full-height arc lands in the ballpark
// the tuning promises: v²/2g ≈ 135 px for the 32px profile, reached a
// little under that because of discrete integration.
func TestJumpApexHeight(t *testing.T) {
	g := flatGround(t)
	b := simBody(t, g, cp.Vector{X: 64, Y: 8*32 - 48})
	b.Step(Frame{}, g, testDT) // settle
	startY := b.Pos.Y

	b.Step(Frame{JumpPressed: true}, g, testDT)
	apex := b.Pos.Y
	for i := 0; i < 120; i++ {
		b.Step(Frame{}, g, testDT)
		if b.Pos.Y < apex {
			apex = b.Pos.Y
		}
		if b.OnGround {
			break
		}
	}

	rise := startY - apex
	assert.InDelta(t, 135, rise, 10.0)
	assert.True(t, b.OnGround, "body should land again")
	assert.Equal(t, startY, b.Pos.Y, "landing must come back flush to the floor")
}

// TestCutJumpIsShorter verifies the early-release arc peaks well below
// the held arc.
func TestCutJumpIsShorter(t *testing.T) {
	measure := func(release bool) float64 {
		g := flatGround(t)
		b := simBody(t, g, cp.Vector{X: 64, Y: 8*32 - 48})
		b.Step(Frame{}, g, testDT)
		startY := b.Pos.Y
		b.Step(Frame{JumpPressed: true}, g, testDT)
		apex := b.Pos.Y
		for i := 0; i < 120; i++ {
			in := Frame{}
			if release && i == 2 {
				in.JumpReleased = true
			}
			b.Step(in, g, testDT)
			if b.Pos.Y < apex {
				apex = b.Pos.Y
			}
			if b.OnGround {
				break
			}
		}
		return startY - apex
	}

	full := measure(false)
	cut := measure(true)
	assert.Less(t, cut, full*0.66, "cut arc (%v) should be well under the full arc (%v)", cut, full)
}

// TestNoTunnelingAtTerminalVelocity drops a body from far above a
// single-tile floor at max fall speed; it must stop on the tile, not
// pass through it.
func TestNoTunnelingAtTerminalVelocity(t *testing.T) {
	rows := []string{
		"...",
		"...",
		".P.",
		"...",
	}
	g, _ := Parse(rows, 32)
	b := simBody(t, g, cp.Vector{X: 38, Y: -5000})
	b.W = 20

	for i := 0; i < 600; i++ {
		b.Step(Frame{}, g, testDT)
		if b.OnGround {
			break
		}
	}
	require.True(t, b.OnGround, "body fell through the floor tile, y=%v", b.Pos.Y)
	assert.Equal(t, 2.0*32.0, b.Pos.Y+b.H)
}
