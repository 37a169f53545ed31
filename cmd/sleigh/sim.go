package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sleigh-flight/internal/games/sleigh"
	"github.com/vovakirdan/sleigh-flight/internal/replay"
	"github.com/vovakirdan/sleigh-flight/internal/sim"
)

var (
	flagPilot    string
	flagEvery    int
	flagSlack    float64
	flagMaxTicks int
	flagRealtime bool
	flagRecord   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an autopilot",
	Long: `Run one game without a screen, steered by a scripted pilot, and print the result.

Pilots:
  gap    - Jump when falling below the middle of the next chimney gap
  every  - Jump every N ticks
  none   - Never jump (free fall)

Examples:
  sleigh sim
  sleigh sim --seed 42 --pilot every --every 18
  sleigh sim --realtime --log-level debug
  sleigh sim --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagPilot, "pilot", "gap", "Pilot: gap, every, none")
	simCmd.Flags().IntVar(&flagEvery, "every", 20, "Ticks between jumps for the every pilot")
	simCmd.Flags().Float64Var(&flagSlack, "slack", 20, "How far below the gap centre the gap pilot sinks before jumping")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", replay.MaxTicks, "Stop after this many ticks (0 = until crash)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks on the wall clock")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the run to the replay database")
}

func pilotByName(name string) (sim.Pilot, error) {
	switch name {
	case "gap":
		return sim.GapSeeker{Slack: flagSlack}, nil
	case "every":
		if flagEvery < 1 {
			return nil, fmt.Errorf("--every must be at least 1, got %d", flagEvery)
		}
		return sim.EveryN(flagEvery), nil
	case "none":
		return sim.Never(), nil
	}
	return nil, fmt.Errorf("unknown pilot %q", name)
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "sleigh-sim")
	if err != nil {
		return err
	}
	pilot, err := pilotByName(flagPilot)
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := sleigh.New(cfg, seed)

	opts := sim.Options{MaxTicks: flagMaxTicks}
	var res sim.Result
	if flagRealtime {
		opts.OnTick = func(s sleigh.Snapshot) {
			if s.Tick%cfg.TickRate == 0 {
				logger.Debug("tick", "tick", s.Tick, "score", s.Score, "y", s.Player.Y)
			}
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		res, err = sim.RunRealtime(ctx, game, pilot, opts)
		if err != nil && ctx.Err() == nil {
			return err
		}
	} else {
		res = sim.Run(game, pilot, opts)
	}

	outcome := "stopped"
	if res.Crashed {
		outcome = "crashed"
	}
	fmt.Printf("seed=%d pilot=%s %s at tick %d score=%d\n", seed, flagPilot, outcome, res.Final.Tick, res.Final.Score)

	if flagRecord && res.Crashed {
		store := openStore(logger)
		if store == nil {
			return nil
		}
		defer store.Close()

		entry, err := replay.ToEntry(res.Recorded)
		if err != nil {
			return err
		}
		id, err := store.SaveReplay(entry)
		if err != nil {
			return err
		}
		fmt.Printf("recorded as replay #%d\n", id)
	}
	return nil
}
