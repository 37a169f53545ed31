// Package sleigh implements the Sleigh Flight simulation.
// A sleigh falls under constant gravity, jumps on the primary action, dodges
// scrolling chimney pairs and collects presents. The package holds pure logic:
// renderers read a Snapshot and feed input through Press.
package sleigh

import (
	"github.com/vovakirdan/sleigh-flight/internal/config"
)

// GameID identifies the game in replays and logs.
const GameID = "sleigh"

// Title is the display name.
const Title = "Sleigh Flight"

// State is the session's position in the start/play/over cycle.
type State int

const (
	StateIdle    State = iota // Waiting for the start input
	StatePlaying              // Simulation advancing
	StateOver                 // Crashed, waiting for the restart input
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Option configures a Game.
type Option func(*Game)

// WithSeeder sets the function that picks the seed for each run after the first.
// Without it every restart uses the previous seed plus one.
func WithSeeder(next func() int64) Option {
	return func(g *Game) {
		g.seeder = next
	}
}

// Game owns one play session: the sleigh, all entities, the spawn timers and the score.
// It is not safe for concurrent use; the caller serialises Press and Tick.
type Game struct {
	cfg     config.SleighConfig
	pending *config.SleighConfig // Applied on the next reset
	seed    int64
	seeder  func() int64

	player    Player
	obstacles []Obstacle
	presents  []Present
	spawner   *Spawner

	state     State
	score     int
	tickCount int
}

// New creates an idle game. The configuration is assumed valid.
func New(cfg config.SleighConfig, seed int64, opts ...Option) *Game {
	g := &Game{
		cfg:  cfg,
		seed: seed,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.spawner = NewSpawner(cfg, seed)
	g.reset(seed)
	return g
}

// Press handles the single primary action.
// Idle starts the run, Playing jumps, Over resets to Idle.
func (g *Game) Press() {
	switch g.state {
	case StateIdle:
		g.state = StatePlaying
		g.spawner.Start()
	case StatePlaying:
		g.player = ApplyImpulse(g.player, g.cfg.Physics.JumpImpulse)
	case StateOver:
		g.reset(g.nextSeed())
	}
}

// Tick advances the simulation by one fixed step.
// It returns false, doing nothing, unless the game is playing.
func (g *Game) Tick() bool {
	if g.state != StatePlaying {
		return false
	}
	g.tickCount++

	next := Advance(g.player, g.cfg.Physics.Gravity)
	if !InBounds(next.Y, g.cfg.Ceiling(), g.cfg.Floor()) {
		// The candidate is discarded and the sleigh stays at its last valid position.
		g.end()
		return true
	}
	g.player = next

	g.obstacles = scrollObstacles(g.obstacles, g.cfg.Physics.ScrollSpeed, g.cfg.Obstacles.PruneX)
	g.presents = scrollPresents(g.presents, g.cfg.Physics.ScrollSpeed, g.cfg.Presents.PruneX)

	spawnedObstacles, spawnedPresents := g.spawner.Advance()
	g.obstacles = append(g.obstacles, spawnedObstacles...)
	g.presents = append(g.presents, spawnedPresents...)

	res := resolveCollisions(g.player, g.obstacles, g.presents, g.cfg)
	g.obstacles = res.obstacles
	g.presents = res.presents
	g.score += res.points
	if res.crashed {
		g.end()
	}
	return true
}

// Reconfigure replaces the configuration for the next run.
// An idle game picks it up immediately; otherwise it waits for the reset after game over.
// The configuration is assumed valid.
func (g *Game) Reconfigure(cfg config.SleighConfig) {
	if g.state == StateIdle {
		g.cfg = cfg
		g.pending = nil
		g.reset(g.seed)
		return
	}
	g.pending = &cfg
}

// end moves to Over and stops the spawn timers.
func (g *Game) end() {
	g.state = StateOver
	g.spawner.Stop()
}

// reset returns to Idle with a fresh sleigh, no entities, zero score and reset timers.
func (g *Game) reset(seed int64) {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	g.seed = seed
	g.state = StateIdle
	g.score = 0
	g.tickCount = 0
	g.player = Player{Y: g.cfg.Player.StartY}
	g.obstacles = nil
	g.presents = nil
	g.spawner.Reset(g.cfg, seed)
}

func (g *Game) nextSeed() int64 {
	if g.seeder != nil {
		return g.seeder()
	}
	return g.seed + 1
}

// State returns the current session state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// TickCount returns the number of ticks simulated in the current run.
func (g *Game) TickCount() int {
	return g.tickCount
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.SleighConfig {
	return g.cfg
}
