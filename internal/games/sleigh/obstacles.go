package sleigh

// Obstacle is a chimney pair with a passable gap between GapTop and GapBottom.
type Obstacle struct {
	ID        int
	X         float64 // Left edge
	GapTop    float64 // Bottom edge of the upper chimney
	GapBottom float64 // Top edge of the lower chimney
	Passed    bool    // Set once the sleigh has cleared it
}

// Present is a collectible gift.
type Present struct {
	ID int
	X  float64
	Y  float64
}

// scrollObstacles returns a new slice with every obstacle moved left by speed.
// Obstacles at or beyond pruneX are dropped.
func scrollObstacles(in []Obstacle, speed, pruneX float64) []Obstacle {
	out := make([]Obstacle, 0, len(in)+1)
	for _, o := range in {
		o.X -= speed
		if o.X > pruneX {
			out = append(out, o)
		}
	}
	return out
}

// scrollPresents returns a new slice with every present moved left by speed.
// Presents at or beyond pruneX are dropped.
func scrollPresents(in []Present, speed, pruneX float64) []Present {
	out := make([]Present, 0, len(in)+1)
	for _, p := range in {
		p.X -= speed
		if p.X > pruneX {
			out = append(out, p)
		}
	}
	return out
}
