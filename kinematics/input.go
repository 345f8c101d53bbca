package kinematics

// Frame is a per-tick snapshot of player intent, decoupled from raw
// device events. Left, Right and Run are level-triggered (sampled every
// tick while held). JumpPressed and JumpReleased are edge-triggered:
// true only on the tick the jump input transitions. The edge separation
// matters for jump buffering, where one press must mean exactly one
// buffered jump attempt no matter how long the key stays down.
type Frame struct {
	Left  bool
	Right bool
	Run   bool

	JumpPressed  bool
	JumpReleased bool
}
