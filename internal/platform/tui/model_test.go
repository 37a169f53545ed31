package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sleigh-flight/internal/config"
	"github.com/vovakirdan/sleigh-flight/internal/core"
	"github.com/vovakirdan/sleigh-flight/internal/games/sleigh"
	"github.com/vovakirdan/sleigh-flight/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(config.DefaultSleighConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 26, Seed: 1}, Options{
		Store:         store,
		ScreenshotDir: t.TempDir(),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPressStartsTickLoop(t *testing.T) {
	m := newTestModel(t, nil)
	if cmd := m.Init(); cmd != nil {
		t.Error("Init without reloads should not schedule anything")
	}

	m, cmd := update(t, m, runeKey(' '))
	if m.Game().State() != sleigh.StatePlaying {
		t.Fatalf("state = %v, want Playing", m.Game().State())
	}
	if cmd == nil {
		t.Fatal("entering Playing should start the tick loop")
	}
	if m.gen != 1 {
		t.Errorf("gen = %d, want 1", m.gen)
	}

	// A jump does not start a second loop
	_, cmd = update(t, m, runeKey(' '))
	if cmd != nil {
		t.Error("jumping should not schedule another tick loop")
	}
}

func TestTicksIgnoredOutsidePlaying(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, TickMsg{Gen: 0})
	if cmd != nil || m.Game().TickCount() != 0 {
		t.Error("tick while idle must not advance or reschedule")
	}
}

func TestStaleTickDropped(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, runeKey(' '))

	m, cmd := update(t, m, TickMsg{Gen: m.gen - 1})
	if cmd != nil || m.Game().TickCount() != 0 {
		t.Error("tick from an old loop must be dropped")
	}

	m, cmd = update(t, m, TickMsg{Gen: m.gen})
	if cmd == nil || m.Game().TickCount() != 1 {
		t.Errorf("current tick should advance and reschedule, tick=%d", m.Game().TickCount())
	}
}

func TestGameOverStopsLoopAndSavesReplay(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store)
	m, _ = update(t, m, runeKey(' '))

	var cmd tea.Cmd
	for i := 0; i < 34; i++ {
		m, cmd = update(t, m, TickMsg{Gen: m.gen})
	}
	if m.Game().State() != sleigh.StateOver {
		t.Fatalf("state = %v after free fall, want Over", m.Game().State())
	}
	if cmd != nil {
		t.Error("tick loop should stop on game over")
	}

	replays, err := store.RecentReplays(10)
	if err != nil {
		t.Fatalf("RecentReplays() error = %v", err)
	}
	if len(replays) != 1 || replays[0].Ticks != 34 || replays[0].Score != 0 {
		t.Fatalf("replays = %+v", replays)
	}
	if !strings.Contains(m.status, "saved") {
		t.Errorf("status = %q", m.status)
	}

	// Over -> Idle -> Playing starts a new generation; the old one stays dead
	m, _ = update(t, m, runeKey(' '))
	if m.Game().State() != sleigh.StateIdle {
		t.Fatalf("state = %v, want Idle", m.Game().State())
	}
	m, cmd = update(t, m, runeKey(' '))
	if cmd == nil || m.gen != 2 {
		t.Fatalf("restart should start loop 2, gen=%d", m.gen)
	}
	m, _ = update(t, m, TickMsg{Gen: 1})
	if m.Game().TickCount() != 0 {
		t.Error("tick from the finished run advanced the new one")
	}
}

func TestReloadApplied(t *testing.T) {
	m := newTestModel(t, nil)
	cfg := config.DefaultSleighConfig()
	cfg.Physics.Gravity = 0.25

	m, _ = update(t, m, reloadMsg{Config: cfg})
	if m.Game().Config().Physics.Gravity != 0.25 {
		t.Error("idle game should take the reloaded config at once")
	}

	m, _ = update(t, m, runeKey(' '))
	cfg.Physics.Gravity = 1
	m, _ = update(t, m, reloadMsg{Config: cfg})
	if m.Game().Config().Physics.Gravity != 0.25 {
		t.Error("running game must keep its config until reset")
	}
	if !strings.Contains(m.status, "next run") {
		t.Errorf("status = %q", m.status)
	}
}

func TestReloadErrorKeepsConfig(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, reloadMsg{Err: config.ErrInvalid})
	if m.Game().Config() != config.DefaultSleighConfig() {
		t.Error("failed reload changed the config")
	}
}

func TestWaitForReload(t *testing.T) {
	if waitForReload(nil) != nil {
		t.Error("nil channel should not produce a command")
	}

	ch := make(chan config.Reload, 1)
	ch <- config.Reload{Config: config.DefaultSleighConfig()}
	msg := waitForReload(ch)()
	if _, ok := msg.(reloadMsg); !ok {
		t.Errorf("got %T, want reloadMsg", msg)
	}

	close(ch)
	if msg := waitForReload(ch)(); msg != nil {
		t.Errorf("closed channel produced %v", msg)
	}
}

func TestScreenshot(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(m.opts.ScreenshotDir)
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshot dir: %v, %d files", err, len(files))
	}
	data, err := os.ReadFile(filepath.Join(m.opts.ScreenshotDir, files[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Press SPACE to start") {
		t.Error("screenshot should contain the rendered screen")
	}
}

func TestResizeAndView(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	if view := m.View(); !strings.Contains(view, "Score: 0") {
		t.Error("view should include the HUD")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
