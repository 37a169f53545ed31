package sleigh

import (
	"github.com/vovakirdan/sleigh-flight/internal/config"
	"github.com/vovakirdan/sleigh-flight/internal/core"
)

// collisionResult is the outcome of one collision pass.
// The slices are new; the inputs are never modified.
type collisionResult struct {
	obstacles []Obstacle
	presents  []Present
	points    int
	crashed   bool
}

// inWindow reports whether x lies strictly inside the impact window.
func inWindow(x float64, w config.WindowConfig) bool {
	return x > w.Min && x < w.Max
}

// hitsObstacle reports whether a sleigh at y with the given size is outside the gap band.
func hitsObstacle(y, size float64, o Obstacle) bool {
	return y < o.GapTop || y+size > o.GapBottom
}

// resolveCollisions checks the sleigh against every entity and scores passes and pickups.
//
// Obstacles inside the window end the run when the sleigh is outside their gap.
// An obstacle that leaves the window to the left unpassed scores once.
// Presents inside the window that overlap the sleigh vertically are collected;
// pickups are marked first and filtered afterwards so simultaneous pickups all count.
func resolveCollisions(p Player, obstacles []Obstacle, presents []Present, cfg config.SleighConfig) collisionResult {
	res := collisionResult{
		obstacles: make([]Obstacle, len(obstacles)),
	}
	copy(res.obstacles, obstacles)

	for i := range res.obstacles {
		o := &res.obstacles[i]
		if o.Passed {
			continue
		}
		if inWindow(o.X, cfg.Window) {
			if hitsObstacle(p.Y, cfg.Player.Size, *o) {
				res.crashed = true
				break
			}
			continue
		}
		if o.X <= cfg.Window.Min {
			o.Passed = true
			res.points += cfg.Scoring.Obstacle
		}
	}

	if res.crashed {
		res.presents = make([]Present, len(presents))
		copy(res.presents, presents)
		return res
	}

	sleighBox := core.NewBox(cfg.Player.X, p.Y, cfg.Player.Size, cfg.Player.Size)
	picked := make([]bool, len(presents))
	for i, pr := range presents {
		if !inWindow(pr.X, cfg.Window) {
			continue
		}
		box := core.NewBox(pr.X, pr.Y, cfg.Presents.Size, cfg.Presents.Size)
		if sleighBox.OverlapsY(box) {
			picked[i] = true
			res.points += cfg.Scoring.Present
		}
	}

	res.presents = make([]Present, 0, len(presents))
	for i, pr := range presents {
		if !picked[i] {
			res.presents = append(res.presents, pr)
		}
	}
	return res
}
