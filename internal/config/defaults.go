package config

import (
	_ "embed"
)

//go:embed defaults/sleigh.yaml
var defaultSleighYAML []byte

// DefaultSleighConfig returns the built-in configuration.
// It matches defaults/sleigh.yaml and is used when the embedded file cannot be parsed.
func DefaultSleighConfig() SleighConfig {
	return SleighConfig{
		TickRate: 60,
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			X:      80,
			Size:   60,
			StartY: 250,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpImpulse: -10,
			ScrollSpeed: 5,
		},
		Obstacles: ObstacleConfig{
			IntervalMS:  2000,
			Width:       60,
			GapSize:     180,
			GapTopMin:   100,
			GapTopRange: 200,
			PruneX:      -100,
		},
		Presents: PresentConfig{
			IntervalMS: 3000,
			Size:       30,
			Margin:     50,
			PruneX:     -50,
		},
		Window: WindowConfig{
			Min: 50,
			Max: 100,
		},
		Scoring: ScoringConfig{
			Obstacle: 1,
			Present:  5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSleighYAML
}
