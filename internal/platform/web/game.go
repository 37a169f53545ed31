// Package web runs Sleigh Flight in a window or browser canvas with ebiten.
package web

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/sleigh-flight/internal/core"
	"github.com/vovakirdan/sleigh-flight/internal/games/sleigh"
	"github.com/vovakirdan/sleigh-flight/internal/platform/scene"
)

// Game adapts a sleigh game to ebiten.Game. ebiten calls Update at the game's tick rate.
type Game struct {
	game   *sleigh.Game
	logger *log.Logger
	touch  []ebiten.TouchID
	last   sleigh.State
}

// New wraps g. logger may be nil.
func New(g *sleigh.Game, logger *log.Logger) *Game {
	return &Game{game: g, logger: logger, last: g.State()}
}

// action reads this frame's input.
func (g *Game) action() core.Action {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return core.ActionQuit
	}
	g.touch = inpututil.AppendJustPressedTouchIDs(g.touch[:0])
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(g.touch) > 0 {
		return core.ActionPrimary
	}
	return core.ActionNone
}

// Update applies input then advances one tick.
func (g *Game) Update() error {
	switch g.action() {
	case core.ActionQuit:
		return ebiten.Termination
	case core.ActionPrimary:
		g.game.Press()
	}
	g.game.Tick()

	if s := g.game.State(); s != g.last {
		if g.logger != nil {
			g.logger.Debug("state changed", "from", g.last, "to", s, "score", g.game.Score())
		}
		g.last = s
	}
	return nil
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	sc := scene.Build(g.game.Snapshot())
	for _, r := range sc.Rects {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}
	for _, l := range sc.Lines {
		vector.StrokeLine(screen, l.X0, l.Y0, l.X1, l.Y1, l.Width, l.Color, true)
	}
	for _, t := range sc.Texts {
		ebitenutil.DebugPrintAt(screen, t.S, t.X, t.Y)
	}
}

// Layout keeps the logical screen at the field size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.game.Config()
	return int(cfg.Field.Width), int(cfg.Field.Height)
}

// Run opens the window and blocks until it is closed.
func Run(g *sleigh.Game, logger *log.Logger) error {
	cfg := g.Config()
	ebiten.SetWindowSize(int(cfg.Field.Width), int(cfg.Field.Height))
	ebiten.SetWindowTitle(sleigh.Title)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(New(g, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
