// Package clock provides the fixed-rate tick source that drives the simulation
// and interval timers counted in ticks.
//
// Timers are advanced explicitly by their owner once per tick, so they never
// fire outside the simulation's own execution context.
package clock

import (
	"context"
	"math"
	"time"
)

// DefaultTickRate is the simulation rate in ticks per second.
const DefaultTickRate = 60

// Interval returns the wall-clock duration of one tick at the given rate.
func Interval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// TicksFor converts a wall-clock duration to a whole number of ticks.
// The result is rounded to the nearest tick and never less than one.
func TicksFor(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	n := int(math.Round(d.Seconds() * float64(tickRate)))
	if n < 1 {
		n = 1
	}
	return n
}

// Timer fires once every interval ticks while it is running.
// The zero value is a stopped timer that never fires.
type Timer struct {
	interval int
	elapsed  int
	running  bool
}

// NewTimer creates a stopped timer with the given interval in ticks.
func NewTimer(interval int) *Timer {
	t := &Timer{}
	t.SetInterval(interval)
	return t
}

// SetInterval changes the interval. Elapsed progress is kept.
func (t *Timer) SetInterval(interval int) {
	if interval < 1 {
		interval = 1
	}
	t.interval = interval
}

// Start resumes counting ticks.
func (t *Timer) Start() {
	t.running = true
}

// Stop pauses the timer. A stopped timer ignores Advance.
func (t *Timer) Stop() {
	t.running = false
}

// Reset stops the timer and discards elapsed progress.
func (t *Timer) Reset() {
	t.running = false
	t.elapsed = 0
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool {
	return t.running
}

// Advance counts one tick and reports whether the timer fired.
// The first fire happens a full interval after Start, like a repeating interval.
func (t *Timer) Advance() bool {
	if !t.running || t.interval < 1 {
		return false
	}
	t.elapsed++
	if t.elapsed >= t.interval {
		t.elapsed = 0
		return true
	}
	return false
}

// Run calls step at the given tick rate until step returns false or ctx is done.
// It returns ctx.Err() when cancelled and nil when step asked to stop.
func Run(ctx context.Context, tickRate int, step func() bool) error {
	ticker := time.NewTicker(Interval(tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !step() {
				return nil
			}
		}
	}
}
