package sim

import (
	"context"
	"reflect"
	"testing"

	"github.com/vovakirdan/sleigh-flight/internal/config"
	"github.com/vovakirdan/sleigh-flight/internal/games/sleigh"
	"github.com/vovakirdan/sleigh-flight/internal/replay"
)

func TestRunNeverPilotFreeFalls(t *testing.T) {
	g := sleigh.New(config.DefaultSleighConfig(), 1)
	res := Run(g, Never(), Options{})

	if !res.Crashed {
		t.Fatal("sleigh without input should crash")
	}
	if res.Final.Tick != 34 {
		t.Errorf("crashed on tick %d, expected 34", res.Final.Tick)
	}
	if res.Recorded.Ticks != 34 || len(res.Recorded.Presses) != 1 {
		t.Errorf("recording = %+v", res.Recorded)
	}
}

func TestRunMaxTicks(t *testing.T) {
	cfg := config.DefaultSleighConfig()
	cfg.Physics.Gravity = 0
	g := sleigh.New(cfg, 1)

	res := Run(g, Never(), Options{MaxTicks: 50})

	if res.Crashed {
		t.Fatal("hovering sleigh should not crash in 50 ticks")
	}
	if res.Final.Tick != 50 {
		t.Errorf("stopped at tick %d, expected 50", res.Final.Tick)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	run := func() Result {
		return Run(sleigh.New(config.DefaultSleighConfig(), 77), GapSeeker{Slack: 10}, Options{MaxTicks: 3000})
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and pilot produced different results")
	}
}

func TestRunRecordingReplays(t *testing.T) {
	g := sleigh.New(config.DefaultSleighConfig(), 3)
	res := Run(g, EveryN(18), Options{MaxTicks: 5000})
	if !res.Crashed {
		t.Skip("pilot survived the tick budget; nothing to replay")
	}

	out, err := replay.Play(res.Recorded)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if !out.Matches(res.Recorded) {
		t.Errorf("playback %+v does not match run %d/%d", out, res.Recorded.Ticks, res.Recorded.Score)
	}
}

func TestOnTickSeesEveryTick(t *testing.T) {
	g := sleigh.New(config.DefaultSleighConfig(), 1)
	var ticks []int
	Run(g, Never(), Options{OnTick: func(s sleigh.Snapshot) { ticks = append(ticks, s.Tick) }})

	if len(ticks) != 34 || ticks[0] != 1 || ticks[33] != 34 {
		t.Errorf("OnTick saw %d ticks (%v...)", len(ticks), ticks[:min(3, len(ticks))])
	}
}

func TestEveryN(t *testing.T) {
	p := EveryN(5)
	if p.ShouldPress(sleigh.Snapshot{Tick: 0}) {
		t.Error("EveryN should not press on tick 0")
	}
	if !p.ShouldPress(sleigh.Snapshot{Tick: 10}) {
		t.Error("EveryN(5) should press on tick 10")
	}
	if p.ShouldPress(sleigh.Snapshot{Tick: 11}) {
		t.Error("EveryN(5) should not press on tick 11")
	}
}

func TestGapSeeker(t *testing.T) {
	field := sleigh.Field{Width: 800, Height: 600, PlayerX: 80, PlayerSize: 60, ObstacleWidth: 60}
	p := GapSeeker{}

	// No obstacle: target is the field middle (300)
	below := sleigh.Snapshot{Field: field, Player: sleigh.Player{Y: 280, Velocity: 1}}
	if !p.ShouldPress(below) {
		t.Error("should jump when sinking below the middle")
	}
	above := sleigh.Snapshot{Field: field, Player: sleigh.Player{Y: 200, Velocity: 1}}
	if p.ShouldPress(above) {
		t.Error("should not jump above the middle")
	}
	rising := sleigh.Snapshot{Field: field, Player: sleigh.Player{Y: 400, Velocity: -3}}
	if p.ShouldPress(rising) {
		t.Error("should not jump while rising")
	}

	// Centre 230 is above the field middle but below the next gap's centre (190)
	withGap := below
	withGap.Player.Y = 200
	withGap.Obstacles = []sleigh.Obstacle{
		{X: 0, GapTop: 400, GapBottom: 580, Passed: true},
		{X: 300, GapTop: 100, GapBottom: 280},
	}
	if !p.ShouldPress(withGap) {
		t.Error("should aim for the next unpassed gap")
	}
	withGap.Obstacles = nil
	if p.ShouldPress(withGap) {
		t.Error("without a gap ahead the same height is above the target")
	}
}

func TestRunRealtimeCancelled(t *testing.T) {
	cfg := config.DefaultSleighConfig()
	cfg.Physics.Gravity = 0
	g := sleigh.New(cfg, 1)

	ctx, cancel := context.WithCancel(context.Background())
	res, err := RunRealtime(ctx, g, Never(), Options{
		TickRate: 1000,
		OnTick: func(s sleigh.Snapshot) {
			if s.Tick == 5 {
				cancel()
			}
		},
	})

	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if res.Final.Tick < 5 {
		t.Errorf("stopped at tick %d, expected at least 5", res.Final.Tick)
	}
}
