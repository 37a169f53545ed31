package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sleigh-flight/internal/config"
	"github.com/vovakirdan/sleigh-flight/internal/core"
	"github.com/vovakirdan/sleigh-flight/internal/games/sleigh"
	"github.com/vovakirdan/sleigh-flight/internal/replay"
	"github.com/vovakirdan/sleigh-flight/internal/storage"
)

// helpRows is the number of terminal rows reserved for the key help line.
const helpRows = 1

// Options holds the optional collaborators of a Model.
type Options struct {
	// Store receives a replay of every finished run. May be nil.
	Store *storage.Store
	// Reloads delivers configuration changes. May be nil.
	Reloads <-chan config.Reload
	// Logger must not write to the terminal the program draws on. Nil discards.
	Logger *log.Logger
	// ScreenshotDir defaults to ~/.sleigh/screenshots.
	ScreenshotDir string
}

// reloadMsg wraps a config reload for the update loop.
type reloadMsg config.Reload

// Model is the Bubble Tea model for Sleigh Flight.
type Model struct {
	rec      *replay.Recorder
	screen   *core.Screen
	opts     Options
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	gen      int // current tick loop generation
	status   string
	quitting bool
}

// NewModel creates a model running a fresh game with cfg.
func NewModel(cfg config.SleighConfig, rc core.RuntimeConfig, opts Options) Model {
	seed := rc.Seed
	var gameOpts []sleigh.Option
	if seed == 0 {
		seed = time.Now().UnixNano()
		gameOpts = append(gameOpts, sleigh.WithSeeder(func() int64 { return time.Now().UnixNano() }))
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		rec:    replay.NewRecorder(sleigh.New(cfg, seed, gameOpts...)),
		screen: core.NewScreen(rc.ScreenW, core.Max(rc.ScreenH-helpRows, 0)),
		opts:   opts,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Game returns the running game.
func (m Model) Game() *sleigh.Game {
	return m.rec.Game()
}

// Init starts listening for config reloads. The tick loop starts with the first press.
func (m Model) Init() tea.Cmd {
	return waitForReload(m.opts.Reloads)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case reloadMsg:
		return m.handleReload(config.Reload(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPrimary:
		return m.press()
	}
	return m, nil
}

// press forwards the primary action and starts a new tick loop when a run begins.
func (m Model) press() (tea.Model, tea.Cmd) {
	g := m.rec.Game()
	before := g.State()
	m.rec.Press()

	if before != sleigh.StatePlaying && g.State() == sleigh.StatePlaying {
		m.status = ""
		m.gen++
		return m, tickCmd(g.Config().TickRate, m.gen)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	g := m.rec.Game()
	if msg.Gen != m.gen || g.State() != sleigh.StatePlaying {
		return m, nil
	}

	m.rec.Tick()
	if g.State() != sleigh.StatePlaying {
		m.saveReplays()
		return m, nil
	}
	return m, tickCmd(g.Config().TickRate, m.gen)
}

// saveReplays stores the runs that just finished.
func (m *Model) saveReplays() {
	for _, run := range m.rec.TakeFinished() {
		if m.opts.Store == nil {
			continue
		}
		entry, err := replay.ToEntry(run)
		if err != nil {
			m.logger.Error("encode replay", "err", err)
			continue
		}
		id, err := m.opts.Store.SaveReplay(entry)
		if err != nil {
			m.logger.Error("save replay", "err", err)
			continue
		}
		m.logger.Info("replay saved", "id", id, "score", run.Score, "ticks", run.Ticks)
		m.status = fmt.Sprintf("replay #%d saved", id)
	}
}

func (m Model) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	if r.Err != nil {
		m.logger.Warn("config reload failed", "err", r.Err)
		m.status = "config error, keeping current settings"
	} else {
		g := m.rec.Game()
		g.Reconfigure(r.Config)
		m.logger.Info("config reloaded", "state", g.State())
		if g.State() == sleigh.StateIdle {
			m.status = "config reloaded"
		} else {
			m.status = "config reloaded, applies next run"
		}
	}
	return m, waitForReload(m.opts.Reloads)
}

// waitForReload blocks on the next reload. A nil or closed channel ends the wait.
func waitForReload(ch <-chan config.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot: no home directory", "err", err)
			return
		}
		dir = filepath.Join(home, ".sleigh", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: create directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", sleigh.GameID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "screenshot saved"
}

func (m Model) draw() {
	DrawSnapshot(m.screen, m.rec.Game().Snapshot())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program with a new model.
func Run(cfg config.SleighConfig, rc core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, rc, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
