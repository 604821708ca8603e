package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors the
// embedded defaults/flappy.yaml and is used when that cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: World{
			Width:       600,
			Height:      620,
			TickRate:    30,
			ScrollSpeed: 5,
			SpriteScale: 2,
		},
		Bird: Bird{
			StartX:         230,
			StartY:         350,
			JumpVelocity:   -10.5,
			Gravity:        3.0,
			MaxFall:        16,
			AscentBoost:    2,
			MaxTilt:        25,
			MinTilt:        -90,
			TiltSpeed:      20,
			TiltHold:       50,
			AnimationTime:  5,
			HoverAmplitude: 0.5,
			HoverFrequency: 0.1,
		},
		Pipes: Pipes{
			Gap:                200,
			TopMargin:          50,
			MinBottomClearance: 100,
			FirstX:             700,
			SpawnX:             600,
			SpawnDistance:      300,
		},
		Ground: Ground{
			Y: 550,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
