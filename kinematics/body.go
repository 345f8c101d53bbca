package kinematics

import (
	"errors"
	"math"

	"github.com/jakecoffman/cp"
)

// Pose is the animation pose a renderer should show for the body's
// current motion. The body picks the pose; drawing it is someone
// else's job.
type Pose int

const (
	PoseIdle Pose = iota
	PoseRun
	PoseJump
)

// Horizontal speed above which a grounded body reads as running rather
// than idling.
const runPoseSpeed = 8.0

var errNoPoses = errors.New("kinematics: body needs at least one pose")

// StepEvents reports the state transitions a tick produced, so the host
// can fire audio or script triggers. The core never owns either.
type StepEvents struct {
	Jumped bool
	Landed bool
}

// Body is the one moving thing the core simulates: an axis-aligned box
// with velocity, facing, and the grounded/airborne state machine. It is
// exclusively owned by the per-tick Step call; nothing else may mutate
// it concurrently.
type Body struct {
	Pos cp.Vector // top-left corner
	W   float64
	H   float64

	Vel      cp.Vector
	Facing   int // -1 left, +1 right
	OnGround bool

	Spawn cp.Vector

	cfg     Config
	poses   []Pose
	coyote  float64
	jumpBuf float64
}

// NewBody creates a body at the given spawn point. The pose set must be
// non-empty; this is the only construction-time validation the core
// does, everything past it is total.
func NewBody(cfg Config, spawn cp.Vector, w, h float64, poses []Pose) (*Body, error) {
	if len(poses) == 0 {
		return nil, errNoPoses
	}
	b := &Body{
		W:      w,
		H:      h,
		Facing: 1,
		Spawn:  spawn,
		cfg:    cfg,
		poses:  append([]Pose(nil), poses...),
	}
	b.Reset()
	return b, nil
}

// Config returns the body's current tuning.
func (b *Body) Config() Config { return b.cfg }

// SetConfig swaps the body's tuning in place. Velocities and timers are
// kept; the next Step simply runs under the new constants.
func (b *Body) SetConfig(cfg Config) { b.cfg = cfg }

// BB returns the body's world-space bounding box.
func (b *Body) BB() cp.BB {
	return Rect(b.Pos.X, b.Pos.Y, b.W, b.H)
}

// Reset snaps the body back to its spawn point and zeroes velocity and
// both input timers. Facing is kept.
func (b *Body) Reset() {
	b.Pos = b.Spawn
	b.Vel = cp.Vector{}
	b.OnGround = false
	b.coyote = 0
	b.jumpBuf = 0
}

// Pose derives the animation pose from contact state and speed, limited
// to the poses the body was built with.
func (b *Body) Pose() Pose {
	var want Pose
	switch {
	case !b.OnGround:
		want = PoseJump
	case math.Abs(b.Vel.X) > runPoseSpeed:
		want = PoseRun
	default:
		want = PoseIdle
	}
	for _, p := range b.poses {
		if p == want {
			return want
		}
	}
	return b.poses[0]
}

// Coyote returns the remaining grace period (seconds) during which a
// jump is still permitted after leaving the ground.
func (b *Body) Coyote() float64 { return b.coyote }

// JumpBuffer returns the remaining window (seconds) during which an
// earlier jump press will still be honored on touchdown.
func (b *Body) JumpBuffer() float64 { return b.jumpBuf }

// Step advances the body by one simulation tick of dt seconds against
// the grid. The order is load-bearing: horizontal intent, speed clamp,
// timer update, jump trigger, jump cut, gravity, then axis-separated
// collision resolution (x fully, then y). OnGround is only ever set by
// the downward half of the vertical resolution.
func (b *Body) Step(in Frame, grid *Grid, dt float64) StepEvents {
	var ev StepEvents
	wasGrounded := b.OnGround

	// Horizontal intent: accelerate toward a single held direction,
	// otherwise bleed speed off with friction. Friction is clamped so
	// it never flips the sign of the velocity.
	if in.Left != in.Right {
		if in.Left {
			b.Vel.X -= b.cfg.Accel * dt
			b.Facing = -1
		} else {
			b.Vel.X += b.cfg.Accel * dt
			b.Facing = 1
		}
	} else if b.Vel.X != 0 {
		decel := b.cfg.Friction * dt
		if decel >= math.Abs(b.Vel.X) {
			b.Vel.X = 0
		} else if b.Vel.X > 0 {
			b.Vel.X -= decel
		} else {
			b.Vel.X += decel
		}
	}

	// Magnitude cap, direction preserved.
	maxSpeed := b.cfg.WalkMaxSpeed
	if in.Run {
		maxSpeed = b.cfg.RunMaxSpeed
	}
	if b.Vel.X > maxSpeed {
		b.Vel.X = maxSpeed
	} else if b.Vel.X < -maxSpeed {
		b.Vel.X = -maxSpeed
	}

	// Timers count wall-clock seconds, not frames, so the grace windows
	// feel the same at any tick rate.
	if b.OnGround {
		b.coyote = b.cfg.CoyoteTime
	} else {
		b.coyote = math.Max(0, b.coyote-dt)
	}
	if in.JumpPressed {
		b.jumpBuf = b.cfg.JumpBufferTime
	} else if b.jumpBuf > 0 {
		b.jumpBuf = math.Max(0, b.jumpBuf-dt)
	}

	// Jump trigger: the buffer is consumed atomically, so at most one
	// jump fires per press even if the conditions hold across ticks.
	if b.jumpBuf > 0 && (b.OnGround || b.coyote > 0) {
		b.Vel.Y = -b.cfg.JumpSpeed
		b.OnGround = false
		b.coyote = 0
		b.jumpBuf = 0
		ev.Jumped = true
	}

	// Variable jump height: releasing early while still ascending cuts
	// the arc short.
	if in.JumpReleased && b.Vel.Y < 0 {
		b.Vel.Y *= b.cfg.JumpCutMult
	}

	// Gravity always applies, even when grounded; resting contact is
	// re-established by the vertical resolution below.
	b.Vel.Y = math.Min(b.Vel.Y+b.cfg.Gravity*dt, b.cfg.MaxFallSpeed)

	// Horizontal resolution. One-way tiles never block sideways motion.
	b.Pos.X += b.Vel.X * dt
	for _, t := range grid.TilesNear(b.BB()) {
		if t.Cell != CellSolid || !overlaps(b.BB(), t.BB) {
			continue
		}
		if b.Vel.X > 0 {
			b.Pos.X = t.BB.L - b.W
		} else if b.Vel.X < 0 {
			b.Pos.X = t.BB.R
		}
		b.Vel.X = 0
	}

	// Vertical resolution.
	b.OnGround = false
	b.Pos.Y += b.Vel.Y * dt
	for _, t := range grid.TilesNear(b.BB()) {
		bb := b.BB()
		if !overlaps(bb, t.BB) {
			continue
		}
		switch t.Cell {
		case CellSolid:
			if b.Vel.Y > 0 {
				b.Pos.Y = t.BB.B - b.H
				b.Vel.Y = 0
				b.OnGround = true
			} else if b.Vel.Y < 0 {
				b.Pos.Y = t.BB.T
				b.Vel.Y = 0
			}
		case CellOneWay:
			// Only a descending body near the platform top lands on it.
			// The center check stops a body from snapping up through the
			// platform from below.
			if b.Vel.Y > 0 &&
				bb.T-t.BB.B <= b.cfg.OneWaySnapTolerance &&
				b.Pos.Y+b.H/2 <= t.BB.B {
				b.Pos.Y = t.BB.B - b.H
				b.Vel.Y = 0
				b.OnGround = true
			}
		}
	}

	if b.OnGround && !wasGrounded {
		ev.Landed = true
	}
	return ev
}

// overlaps reports strict AABB overlap. Edges that merely touch do not
// count, which keeps a body resting flush against a tile from
// re-colliding with it every tick.
func overlaps(a, bb cp.BB) bool {
	return a.L < bb.R && bb.L < a.R && a.B < bb.T && bb.B < a.T
}
