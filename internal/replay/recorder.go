package replay

import (
	"github.com/vovakirdan/sleigh-flight/internal/games/sleigh"
)

// Recorder wraps a game and records every run played through it.
// Callers use Recorder.Press and Recorder.Tick instead of the game's methods.
type Recorder struct {
	game     *sleigh.Game
	current  *Replay
	finished []Replay
}

// NewRecorder creates a recorder for g.
func NewRecorder(g *sleigh.Game) *Recorder {
	return &Recorder{game: g}
}

// Game returns the wrapped game.
func (r *Recorder) Game() *sleigh.Game {
	return r.game
}

// Press forwards the primary action and records it.
func (r *Recorder) Press() {
	switch r.game.State() {
	case sleigh.StateIdle:
		r.current = &Replay{
			Seed:    r.game.Seed(),
			Config:  r.game.Config(),
			Presses: []int{0},
		}
	case sleigh.StatePlaying:
		if r.current != nil {
			r.current.Presses = append(r.current.Presses, r.game.TickCount())
		}
	}
	r.game.Press()
}

// Tick forwards one tick and closes the recording when the run ends.
func (r *Recorder) Tick() bool {
	advanced := r.game.Tick()
	if advanced && r.game.State() == sleigh.StateOver && r.current != nil {
		r.current.Ticks = r.game.TickCount()
		r.current.Score = r.game.Score()
		r.finished = append(r.finished, *r.current)
		r.current = nil
	}
	return advanced
}

// TakeFinished returns the runs completed since the last call.
func (r *Recorder) TakeFinished() []Replay {
	done := r.finished
	r.finished = nil
	return done
}
