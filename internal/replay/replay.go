// Package replay records runs of the sleigh game and plays them back.
//
// A run is fully determined by its configuration, its seed and the ticks at
// which the primary action fired, so that is all a Replay stores.
package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/sleigh-flight/internal/config"
	"github.com/vovakirdan/sleigh-flight/internal/games/sleigh"
	"github.com/vovakirdan/sleigh-flight/internal/storage"
)

// MaxTicks bounds playback so a corrupted replay cannot loop forever.
const MaxTicks = 60 * 60 * 60 // one hour at 60 ticks per second

// ErrTooLong is returned when playback does not end within MaxTicks.
var ErrTooLong = errors.New("replay: run did not end")

// Replay is one recorded run from the start input to game over.
type Replay struct {
	Seed    int64
	Config  config.SleighConfig
	Presses []int // Tick count at the moment of each press, starting with the start press
	Ticks   int   // Ticks simulated until game over
	Score   int
}

// Result is the outcome of playing a replay back.
type Result struct {
	Ticks int
	Score int
}

// Matches reports whether playback reproduced the recorded outcome.
func (r Result) Matches(rep Replay) bool {
	return r.Ticks == rep.Ticks && r.Score == rep.Score
}

// Play simulates the replay from scratch and returns the outcome.
func Play(rep Replay) (Result, error) {
	if err := rep.Config.Validate(); err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}
	if len(rep.Presses) == 0 || rep.Presses[0] != 0 {
		return Result{}, errors.New("replay: run must begin with a start press at tick 0")
	}

	g := sleigh.New(rep.Config, rep.Seed)
	next := 0
	for {
		for next < len(rep.Presses) && rep.Presses[next] == g.TickCount() {
			g.Press()
			next++
		}
		if g.State() != sleigh.StatePlaying {
			break
		}
		if g.TickCount() >= MaxTicks {
			return Result{}, ErrTooLong
		}
		g.Tick()
	}

	return Result{Ticks: g.TickCount(), Score: g.Score()}, nil
}

// ToEntry converts a replay to its storage form.
func ToEntry(rep Replay) (storage.ReplayEntry, error) {
	data, err := config.Marshal(rep.Config)
	if err != nil {
		return storage.ReplayEntry{}, err
	}
	return storage.ReplayEntry{
		GameID:  sleigh.GameID,
		Seed:    rep.Seed,
		Config:  data,
		Presses: rep.Presses,
		Ticks:   rep.Ticks,
		Score:   rep.Score,
	}, nil
}

// FromEntry converts a stored entry back to a replay.
func FromEntry(e storage.ReplayEntry) (Replay, error) {
	if e.GameID != sleigh.GameID {
		return Replay{}, fmt.Errorf("replay: entry %d belongs to game %q", e.ID, e.GameID)
	}
	cfg, err := config.Parse(e.Config)
	if err != nil {
		return Replay{}, fmt.Errorf("replay: entry %d: %w", e.ID, err)
	}
	return Replay{
		Seed:    e.Seed,
		Config:  cfg,
		Presses: e.Presses,
		Ticks:   e.Ticks,
		Score:   e.Score,
	}, nil
}

// Verify decodes a stored entry and re-simulates it.
// The caller compares the result with the recording using Result.Matches.
func Verify(e storage.ReplayEntry) (Replay, Result, error) {
	rep, err := FromEntry(e)
	if err != nil {
		return Replay{}, Result{}, err
	}
	res, err := Play(rep)
	if err != nil {
		return rep, Result{}, err
	}
	return rep, res, nil
}
