package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...))
}

// Validate checks that the configuration describes a playable field.
// It reports the first problem found.
func (c SleighConfig) Validate() error {
	if c.TickRate <= 0 {
		return invalid("tick_rate", "must be positive, got %d", c.TickRate)
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return invalid("field", "size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	}

	if c.Player.Size <= 0 || c.Player.Size >= c.Field.Height {
		return invalid("player.size", "must be in (0, %v), got %v", c.Field.Height, c.Player.Size)
	}
	if c.Player.StartY <= c.Ceiling() || c.Player.StartY >= c.Floor() {
		return invalid("player.start_y", "must be in (%v, %v), got %v", c.Ceiling(), c.Floor(), c.Player.StartY)
	}
	if c.Player.X < 0 || c.Player.X+c.Player.Size > c.Field.Width {
		return invalid("player.x", "sleigh must fit inside the field, got %v", c.Player.X)
	}

	if c.Physics.Gravity <= 0 {
		return invalid("physics.gravity", "must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return invalid("physics.jump_impulse", "must be negative (upwards), got %v", c.Physics.JumpImpulse)
	}
	if c.Physics.ScrollSpeed <= 0 {
		return invalid("physics.scroll_speed", "must be positive, got %v", c.Physics.ScrollSpeed)
	}

	if c.Window.Min >= c.Window.Max {
		return invalid("impact_window", "min %v must be below max %v", c.Window.Min, c.Window.Max)
	}
	// Every entity has to be observed inside the window at least once.
	if c.Physics.ScrollSpeed >= c.Window.Max-c.Window.Min {
		return invalid("physics.scroll_speed", "%v would skip the impact window (%v, %v)",
			c.Physics.ScrollSpeed, c.Window.Min, c.Window.Max)
	}

	if c.Obstacles.IntervalMS <= 0 {
		return invalid("obstacles.interval_ms", "must be positive, got %d", c.Obstacles.IntervalMS)
	}
	if c.Obstacles.Width <= 0 {
		return invalid("obstacles.width", "must be positive, got %v", c.Obstacles.Width)
	}
	if c.Obstacles.GapSize <= 0 {
		return invalid("obstacles.gap_size", "must be positive, got %v", c.Obstacles.GapSize)
	}
	if c.Obstacles.GapTopMin < 0 || c.Obstacles.GapTopRange < 0 {
		return invalid("obstacles.gap_top", "min and range must not be negative")
	}
	if c.Obstacles.GapTopMin+c.Obstacles.GapTopRange+c.Obstacles.GapSize > c.Field.Height {
		return invalid("obstacles", "gap can extend below the field (%v + %v + %v > %v)",
			c.Obstacles.GapTopMin, c.Obstacles.GapTopRange, c.Obstacles.GapSize, c.Field.Height)
	}
	if c.Obstacles.PruneX >= c.Window.Min {
		return invalid("obstacles.prune_x", "must be left of the impact window, got %v", c.Obstacles.PruneX)
	}

	if c.Presents.IntervalMS <= 0 {
		return invalid("presents.interval_ms", "must be positive, got %d", c.Presents.IntervalMS)
	}
	if c.Presents.Size <= 0 {
		return invalid("presents.size", "must be positive, got %v", c.Presents.Size)
	}
	if c.Presents.Margin < 0 || 2*c.Presents.Margin >= c.Field.Height {
		return invalid("presents.margin", "must be in [0, %v), got %v", c.Field.Height/2, c.Presents.Margin)
	}
	if c.Presents.PruneX >= c.Window.Min {
		return invalid("presents.prune_x", "must be left of the impact window, got %v", c.Presents.PruneX)
	}

	if c.Scoring.Obstacle < 0 || c.Scoring.Present < 0 {
		return invalid("scoring", "points must not be negative")
	}
	return nil
}
