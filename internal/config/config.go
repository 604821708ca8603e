// Package config provides YAML-based game configuration loading and
// validation for the flappy game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid marks configuration that cannot produce a playable session.
var ErrInvalid = errors.New("config: invalid configuration")

// FlappyConfig contains all tunable parameters of the game.
type FlappyConfig struct {
	World  World  `yaml:"world"`
	Bird   Bird   `yaml:"bird"`
	Pipes  Pipes  `yaml:"pipes"`
	Ground Ground `yaml:"ground"`
}

// World defines the viewport and the shared scrolling speed.
type World struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	TickRate    int `yaml:"tick_rate"`
	ScrollSpeed int `yaml:"scroll_speed"` // pixels per frame for pipes and ground
	SpriteScale int `yaml:"sprite_scale"`
}

// Bird defines the bird's start position, fall curve, tilt and animation.
type Bird struct {
	StartX         int     `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	JumpVelocity   float64 `yaml:"jump_velocity"` // negative = up
	Gravity        float64 `yaml:"gravity"`       // displacement uses 0.5*gravity*t^2
	MaxFall        float64 `yaml:"max_fall"`      // per-frame displacement cap
	AscentBoost    float64 `yaml:"ascent_boost"`  // extra lift added to upward displacement
	MaxTilt        float64 `yaml:"max_tilt"`
	MinTilt        float64 `yaml:"min_tilt"`
	TiltSpeed      float64 `yaml:"tilt_speed"` // degrees per frame when nosing down
	TiltHold       float64 `yaml:"tilt_hold"`  // stay nose-up until this far below the jump height
	AnimationTime  int     `yaml:"animation_time"`
	HoverAmplitude float64 `yaml:"hover_amplitude"`
	HoverFrequency float64 `yaml:"hover_frequency"`
}

// Pipes defines obstacle placement.
type Pipes struct {
	Gap                int `yaml:"gap"`
	TopMargin          int `yaml:"top_margin"`
	MinBottomClearance int `yaml:"min_bottom_clearance"`
	FirstX             int `yaml:"first_x"`
	SpawnX             int `yaml:"spawn_x"`
	SpawnDistance      int `yaml:"spawn_distance"`
}

// Ground defines the floor line.
type Ground struct {
	Y int `yaml:"y"`
}

// Validate checks the values that do not depend on sprite sizes.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size %dx%d must be positive", c.World.Width, c.World.Height)
	check(c.World.TickRate > 0, "world.tick_rate %d must be positive", c.World.TickRate)
	check(c.World.ScrollSpeed > 0, "world.scroll_speed %d must be positive", c.World.ScrollSpeed)
	check(c.World.SpriteScale > 0, "world.sprite_scale %d must be positive", c.World.SpriteScale)
	check(c.Bird.JumpVelocity < 0, "bird.jump_velocity %v must be negative (upward)", c.Bird.JumpVelocity)
	check(c.Bird.Gravity > 0, "bird.gravity %v must be positive", c.Bird.Gravity)
	check(c.Bird.MaxFall > 0, "bird.max_fall %v must be positive", c.Bird.MaxFall)
	check(c.Bird.MinTilt < c.Bird.MaxTilt, "bird tilt range [%v, %v] is empty", c.Bird.MinTilt, c.Bird.MaxTilt)
	check(c.Bird.TiltSpeed > 0, "bird.tilt_speed %v must be positive", c.Bird.TiltSpeed)
	check(c.Bird.AnimationTime > 0, "bird.animation_time %d must be positive", c.Bird.AnimationTime)
	check(c.Pipes.Gap > 0, "pipes.gap %d must be positive", c.Pipes.Gap)
	check(c.Pipes.SpawnDistance >= 0, "pipes.spawn_distance %d must not be negative", c.Pipes.SpawnDistance)
	// A pass spawns the next pipe; the guard must already be open by then.
	reach := min(c.Pipes.SpawnX, c.Pipes.FirstX) - c.Bird.StartX
	check(c.Pipes.SpawnDistance <= reach,
		"pipes.spawn_distance %d exceeds the %d px a pipe travels before the bird passes it", c.Pipes.SpawnDistance, reach)
	check(c.Ground.Y > 0 && c.Ground.Y <= c.World.Height, "ground.y %d must lie inside the viewport", c.Ground.Y)

	return errors.Join(errs...)
}

// GapRange returns the inclusive range of gap-centre heights for pipes whose
// ground sprite is groundHeight tall. It fails with ErrInvalid when the range
// is empty, rather than clamping it.
func (c FlappyConfig) GapRange(groundHeight int) (lower, upper int, err error) {
	lower = c.Pipes.TopMargin
	upper = c.World.Height - c.Pipes.Gap - c.Pipes.MinBottomClearance - groundHeight
	if upper <= lower {
		return 0, 0, fmt.Errorf("%w: pipe gap range [%d, %d] is degenerate (height %d, gap %d, clearance %d, ground %d)",
			ErrInvalid, lower, upper, c.World.Height, c.Pipes.Gap, c.Pipes.MinBottomClearance, groundHeight)
	}
	return lower, upper, nil
}
