package sleigh

import (
	"math/rand"

	"github.com/vovakirdan/sleigh-flight/internal/clock"
	"github.com/vovakirdan/sleigh-flight/internal/config"
)

// Spawner creates obstacles and presents at the right edge of the field on two
// independent timers. Timers only count while the spawner is started.
type Spawner struct {
	cfg           config.SleighConfig
	rng           *rand.Rand
	obstacleTimer *clock.Timer
	presentTimer  *clock.Timer
	nextID        int
}

// NewSpawner creates a stopped spawner seeded with seed.
func NewSpawner(cfg config.SleighConfig, seed int64) *Spawner {
	s := &Spawner{
		obstacleTimer: clock.NewTimer(cfg.ObstacleIntervalTicks()),
		presentTimer:  clock.NewTimer(cfg.PresentIntervalTicks()),
	}
	s.Reset(cfg, seed)
	return s
}

// Reset stops both timers, clears their progress, restarts ID numbering and reseeds the RNG.
func (s *Spawner) Reset(cfg config.SleighConfig, seed int64) {
	s.cfg = cfg
	s.rng = rand.New(rand.NewSource(seed))
	s.obstacleTimer.Reset()
	s.obstacleTimer.SetInterval(cfg.ObstacleIntervalTicks())
	s.presentTimer.Reset()
	s.presentTimer.SetInterval(cfg.PresentIntervalTicks())
	s.nextID = 0
}

// Start runs both timers.
func (s *Spawner) Start() {
	s.obstacleTimer.Start()
	s.presentTimer.Start()
}

// Stop halts both timers.
func (s *Spawner) Stop() {
	s.obstacleTimer.Stop()
	s.presentTimer.Stop()
}

// Running reports whether the spawn timers are active.
func (s *Spawner) Running() bool {
	return s.obstacleTimer.Running() && s.presentTimer.Running()
}

// Advance counts one tick on both timers and returns whatever they spawned.
func (s *Spawner) Advance() (obstacles []Obstacle, presents []Present) {
	if s.obstacleTimer.Advance() {
		obstacles = append(obstacles, s.spawnObstacle())
	}
	if s.presentTimer.Advance() {
		presents = append(presents, s.spawnPresent())
	}
	return obstacles, presents
}

func (s *Spawner) spawnObstacle() Obstacle {
	oc := s.cfg.Obstacles
	top := oc.GapTopMin + s.rng.Float64()*oc.GapTopRange
	return Obstacle{
		ID:        s.id(),
		X:         s.cfg.Field.Width,
		GapTop:    top,
		GapBottom: top + oc.GapSize,
	}
}

func (s *Spawner) spawnPresent() Present {
	margin := s.cfg.Presents.Margin
	return Present{
		ID: s.id(),
		X:  s.cfg.Field.Width,
		Y:  margin + s.rng.Float64()*(s.cfg.Field.Height-2*margin),
	}
}

func (s *Spawner) id() int {
	s.nextID++
	return s.nextID
}
