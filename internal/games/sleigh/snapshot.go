package sleigh

// tiltFactor converts velocity to a sleigh tilt in degrees.
const tiltFactor = 3

// Field is the static geometry a renderer needs to draw a snapshot.
type Field struct {
	Width         float64
	Height        float64
	PlayerX       float64
	PlayerSize    float64
	ObstacleWidth float64
	PresentSize   float64
}

// Snapshot is a read-only copy of the simulation state for renderers.
// It shares no memory with the game, so holding it across ticks is safe.
type Snapshot struct {
	State     State
	Score     int
	Tick      int
	Player    Player
	Obstacles []Obstacle
	Presents  []Present
	Field     Field
}

// Started reports whether a run has begun (Playing or Over).
func (s Snapshot) Started() bool {
	return s.State != StateIdle
}

// Over reports whether the run has ended.
func (s Snapshot) Over() bool {
	return s.State == StateOver
}

// Tilt returns the sleigh's rotation in degrees, nose down when falling.
func (s Snapshot) Tilt() float64 {
	return s.Player.Velocity * tiltFactor
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.obstacles))
	copy(obstacles, g.obstacles)
	presents := make([]Present, len(g.presents))
	copy(presents, g.presents)

	return Snapshot{
		State:     g.state,
		Score:     g.score,
		Tick:      g.tickCount,
		Player:    g.player,
		Obstacles: obstacles,
		Presents:  presents,
		Field: Field{
			Width:         g.cfg.Field.Width,
			Height:        g.cfg.Field.Height,
			PlayerX:       g.cfg.Player.X,
			PlayerSize:    g.cfg.Player.Size,
			ObstacleWidth: g.cfg.Obstacles.Width,
			PresentSize:   g.cfg.Presents.Size,
		},
	}
}
