// Package profiles loads movement "feel" profiles: YAML files holding
// every tunable the kinematics core takes, so tuning lives in data
// rather than constants scattered through code. Profiles ship embedded
// and can be overridden (and hot-reloaded) from a profiles/ directory
// next to the binary.
package profiles

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/groundwork-games/tilerunner/kinematics"
)

type Profile struct {
	Name     string       `yaml:"name"`
	Movement MovementSpec `yaml:"movement"`
	Jump     JumpSpec     `yaml:"jump"`
	World    WorldSpec    `yaml:"world"`
}

type MovementSpec struct {
	WalkMaxSpeed float64 `yaml:"walk_max_speed"`
	RunMaxSpeed  float64 `yaml:"run_max_speed"`
	Accel        float64 `yaml:"accel"`
	Friction     float64 `yaml:"friction"`
}

type JumpSpec struct {
	Speed         float64 `yaml:"speed"`
	CoyoteTime    float64 `yaml:"coyote_time"`
	BufferTime    float64 `yaml:"buffer_time"`
	CutMultiplier float64 `yaml:"cut_multiplier"`
}

type WorldSpec struct {
	Gravity             float64 `yaml:"gravity"`
	MaxFallSpeed        float64 `yaml:"max_fall_speed"`
	TileSize            float64 `yaml:"tile_size"`
	OneWaySnapTolerance float64 `yaml:"one_way_snap_tolerance"`
}

// Load reads and validates the named profile (with or without the .yaml
// suffix), preferring a disk override over the embedded default.
func Load(name string) (Profile, error) {
	var p Profile
	data, err := ReadFile(name)
	if err != nil {
		return p, fmt.Errorf("profiles: load %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("profiles: unmarshal %s: %w", name, err)
	}
	if err := p.validate(); err != nil {
		return p, fmt.Errorf("profiles: %s: %w", name, err)
	}
	return p, nil
}

func (p Profile) validate() error {
	switch {
	case p.World.TileSize <= 0:
		return fmt.Errorf("tile_size must be positive, got %v", p.World.TileSize)
	case p.Jump.Speed <= 0:
		return fmt.Errorf("jump speed must be positive, got %v", p.Jump.Speed)
	case p.World.Gravity <= 0:
		return fmt.Errorf("gravity must be positive, got %v", p.World.Gravity)
	case p.World.MaxFallSpeed <= 0:
		return fmt.Errorf("max_fall_speed must be positive, got %v", p.World.MaxFallSpeed)
	case p.Jump.CutMultiplier < 0 || p.Jump.CutMultiplier >= 1:
		return fmt.Errorf("cut_multiplier must be in [0, 1), got %v", p.Jump.CutMultiplier)
	case p.Jump.CoyoteTime < 0 || p.Jump.BufferTime < 0:
		return fmt.Errorf("grace timers must not be negative")
	}
	return nil
}

// Config maps the profile onto the kinematics tuning struct.
func (p Profile) Config() kinematics.Config {
	return kinematics.Config{
		WalkMaxSpeed:        p.Movement.WalkMaxSpeed,
		RunMaxSpeed:         p.Movement.RunMaxSpeed,
		Accel:               p.Movement.Accel,
		Friction:            p.Movement.Friction,
		Gravity:             p.World.Gravity,
		JumpSpeed:           p.Jump.Speed,
		MaxFallSpeed:        p.World.MaxFallSpeed,
		CoyoteTime:          p.Jump.CoyoteTime,
		JumpBufferTime:      p.Jump.BufferTime,
		JumpCutMult:         p.Jump.CutMultiplier,
		TileSize:            p.World.TileSize,
		OneWaySnapTolerance: p.World.OneWaySnapTolerance,
	}
}
