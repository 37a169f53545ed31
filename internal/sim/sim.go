// Package sim runs the sleigh game without a renderer, driven by a scripted pilot.
package sim

import (
	"context"

	"github.com/vovakirdan/sleigh-flight/internal/clock"
	"github.com/vovakirdan/sleigh-flight/internal/games/sleigh"
	"github.com/vovakirdan/sleigh-flight/internal/replay"
)

// Pilot decides, before each tick, whether to press the primary action.
type Pilot interface {
	ShouldPress(s sleigh.Snapshot) bool
}

// PilotFunc adapts a function to the Pilot interface.
type PilotFunc func(s sleigh.Snapshot) bool

// ShouldPress calls f(s).
func (f PilotFunc) ShouldPress(s sleigh.Snapshot) bool {
	return f(s)
}

// EveryN presses on every n-th tick.
func EveryN(n int) Pilot {
	if n < 1 {
		n = 1
	}
	return PilotFunc(func(s sleigh.Snapshot) bool {
		return s.Tick > 0 && s.Tick%n == 0
	})
}

// Never is a pilot that only starts the run.
func Never() Pilot {
	return PilotFunc(func(sleigh.Snapshot) bool { return false })
}

// GapSeeker jumps whenever the sleigh is falling below the middle of the next gap.
// Without an obstacle ahead it holds the middle of the field.
type GapSeeker struct {
	// Slack lets the sleigh sink this far below the target before jumping.
	Slack float64
}

// ShouldPress implements Pilot.
func (p GapSeeker) ShouldPress(s sleigh.Snapshot) bool {
	if s.Player.Velocity < 0 {
		return false
	}
	center := s.Player.Y + s.Field.PlayerSize/2
	return center > p.target(s)+p.Slack
}

func (p GapSeeker) target(s sleigh.Snapshot) float64 {
	for _, o := range s.Obstacles {
		if !o.Passed && o.X+s.Field.ObstacleWidth >= s.Field.PlayerX {
			return (o.GapTop + o.GapBottom) / 2
		}
	}
	return s.Field.Height / 2
}

// Options bound a simulation.
type Options struct {
	MaxTicks int // Stop after this many ticks even if the sleigh survives; 0 means unbounded
	TickRate int // Used by RunRealtime only; 0 means the game's configured rate
	// OnTick is called after every tick with the new state.
	OnTick func(s sleigh.Snapshot)
}

// Result summarises a simulated run.
type Result struct {
	Final    sleigh.Snapshot
	Crashed  bool
	Recorded replay.Replay
}

// Run starts a run on g and simulates it as fast as possible.
// g must be idle.
func Run(g *sleigh.Game, pilot Pilot, opts Options) Result {
	d := newDriver(g, pilot, opts)
	for d.step() {
	}
	return d.result()
}

// RunRealtime is like Run but paces ticks on the wall clock.
// It returns early with ctx.Err() when ctx is cancelled.
func RunRealtime(ctx context.Context, g *sleigh.Game, pilot Pilot, opts Options) (Result, error) {
	rate := opts.TickRate
	if rate <= 0 {
		rate = g.Config().TickRate
	}
	d := newDriver(g, pilot, opts)
	err := clock.Run(ctx, rate, d.step)
	return d.result(), err
}

type driver struct {
	rec   *replay.Recorder
	pilot Pilot
	opts  Options
}

func newDriver(g *sleigh.Game, pilot Pilot, opts Options) *driver {
	d := &driver{
		rec:   replay.NewRecorder(g),
		pilot: pilot,
		opts:  opts,
	}
	d.rec.Press() // start
	return d
}

// step advances one tick and reports whether the run continues.
func (d *driver) step() bool {
	g := d.rec.Game()
	if g.State() != sleigh.StatePlaying {
		return false
	}
	if d.opts.MaxTicks > 0 && g.TickCount() >= d.opts.MaxTicks {
		return false
	}
	if d.pilot.ShouldPress(g.Snapshot()) {
		d.rec.Press()
	}
	d.rec.Tick()
	if d.opts.OnTick != nil {
		d.opts.OnTick(g.Snapshot())
	}
	return g.State() == sleigh.StatePlaying
}

func (d *driver) result() Result {
	g := d.rec.Game()
	res := Result{
		Final:   g.Snapshot(),
		Crashed: g.State() == sleigh.StateOver,
	}
	if runs := d.rec.TakeFinished(); len(runs) > 0 {
		res.Recorded = runs[0]
	}
	return res
}
