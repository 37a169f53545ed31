package sleigh

// Player is the sleigh's vertical kinematic state.
// The horizontal slot is fixed by configuration.
type Player struct {
	Y        float64 // Top of the hitbox
	Velocity float64 // Units per tick, positive is down
}

// Advance integrates one tick of constant gravity and returns the candidate state.
// Velocity is updated first and the new velocity moves the sleigh.
func Advance(p Player, gravity float64) Player {
	p.Velocity += gravity
	p.Y += p.Velocity
	return p
}

// ApplyImpulse overwrites the velocity with strength.
// Jumps do not accumulate: the result is the same whatever the previous velocity was.
func ApplyImpulse(p Player, strength float64) Player {
	p.Velocity = strength
	return p
}

// InBounds reports whether y is strictly between ceiling and floor.
// Touching either bound ends the run.
func InBounds(y, ceiling, floor float64) bool {
	return y > ceiling && y < floor
}
