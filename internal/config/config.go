// Package config provides YAML-based configuration loading for the sleigh game.
//
// All geometry is expressed in playfield units (the field is 800x600 by default),
// speeds in units per tick and spawn intervals in milliseconds.
package config

import (
	"time"

	"github.com/vovakirdan/sleigh-flight/internal/clock"
)

// SleighConfig contains all configuration for the game.
type SleighConfig struct {
	TickRate  int            `yaml:"tick_rate"`
	Field     FieldConfig    `yaml:"field"`
	Player    PlayerConfig   `yaml:"player"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Presents  PresentConfig  `yaml:"presents"`
	Window    WindowConfig   `yaml:"impact_window"`
	Scoring   ScoringConfig  `yaml:"scoring"`
}

// FieldConfig defines the playfield size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the sleigh hitbox and start position.
type PlayerConfig struct {
	X      float64 `yaml:"x"`    // Fixed horizontal slot (left edge)
	Size   float64 `yaml:"size"` // Square hitbox edge
	StartY float64 `yaml:"start_y"`
}

// PhysicsConfig defines the gravity/impulse model and scroll speed.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on jump (negative = up)
	ScrollSpeed float64 `yaml:"scroll_speed"` // Leftward entity movement per tick
}

// ObstacleConfig defines chimney spawning.
type ObstacleConfig struct {
	IntervalMS  int     `yaml:"interval_ms"`
	Width       float64 `yaml:"width"`
	GapSize     float64 `yaml:"gap_size"`
	GapTopMin   float64 `yaml:"gap_top_min"`
	GapTopRange float64 `yaml:"gap_top_range"`
	PruneX      float64 `yaml:"prune_x"` // Removed once X <= PruneX
}

// PresentConfig defines collectible spawning.
type PresentConfig struct {
	IntervalMS int     `yaml:"interval_ms"`
	Size       float64 `yaml:"size"`
	Margin     float64 `yaml:"margin"` // Keeps presents away from the field edges
	PruneX     float64 `yaml:"prune_x"`
}

// WindowConfig defines the impact window, the open interval (Min, Max) of
// entity X positions for which collisions and pickups are evaluated.
type WindowConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ScoringConfig defines points per event.
type ScoringConfig struct {
	Obstacle int `yaml:"obstacle"`
	Present  int `yaml:"present"`
}

// ObstacleIntervalTicks returns the obstacle spawn interval in ticks.
func (c SleighConfig) ObstacleIntervalTicks() int {
	return clock.TicksFor(time.Duration(c.Obstacles.IntervalMS)*time.Millisecond, c.TickRate)
}

// PresentIntervalTicks returns the present spawn interval in ticks.
func (c SleighConfig) PresentIntervalTicks() int {
	return clock.TicksFor(time.Duration(c.Presents.IntervalMS)*time.Millisecond, c.TickRate)
}

// Ceiling returns the lowest valid player Y (exclusive).
func (c SleighConfig) Ceiling() float64 {
	return 0
}

// Floor returns the highest valid player Y (exclusive).
func (c SleighConfig) Floor() float64 {
	return c.Field.Height - c.Player.Size
}
