package kinematics

// Config holds every tunable of the movement core. Speeds are in
// world-units per second, accelerations in world-units per second
// squared, timers in seconds. Nothing here is global: each body carries
// its own copy, so two bodies can run different feel profiles at once.
type Config struct {
	WalkMaxSpeed float64
	RunMaxSpeed  float64
	Accel        float64
	Friction     float64

	Gravity      float64
	JumpSpeed    float64
	MaxFallSpeed float64

	CoyoteTime     float64
	JumpBufferTime float64
	JumpCutMult    float64

	TileSize            float64
	OneWaySnapTolerance float64
}
