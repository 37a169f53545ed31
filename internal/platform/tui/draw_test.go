package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/sleigh-flight/internal/config"
	"github.com/vovakirdan/sleigh-flight/internal/core"
	"github.com/vovakirdan/sleigh-flight/internal/games/sleigh"
)

// An 80x25 screen leaves 24 playfield rows: 10 field units per column, 25 per row.
func testField() sleigh.Field {
	return sleigh.Field{
		Width:         800,
		Height:        600,
		PlayerX:       80,
		PlayerSize:    60,
		ObstacleWidth: 60,
		PresentSize:   30,
	}
}

func assertCell(t *testing.T, s *core.Screen, x, y int, r rune, c core.Color) {
	t.Helper()
	cell := s.GetCell(x, y)
	if cell.Rune != r || cell.Color != c {
		t.Errorf("cell (%d,%d) = %q/%d, want %q/%d", x, y, cell.Rune, cell.Color, r, c)
	}
}

func TestDrawIdle(t *testing.T) {
	s := core.NewScreen(80, 25)
	snap := sleigh.New(config.DefaultSleighConfig(), 1).Snapshot()

	DrawSnapshot(s, snap)

	if !strings.Contains(s.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", s.Row(0))
	}
	if !strings.Contains(s.String(), "Press SPACE to start") {
		t.Error("idle screen should show the start prompt")
	}
	// Sleigh at x 80..140, y 250..310
	assertCell(t, s, 8, 11, '█', core.ColorBrightRed)
	assertCell(t, s, 13, 12, '█', core.ColorBrightRed)
	assertCell(t, s, 14, 12, '─', core.ColorYellow)
	assertCell(t, s, 7, 11, ' ', core.ColorDefault)
}

func TestDrawEntities(t *testing.T) {
	s := core.NewScreen(80, 25)
	snap := sleigh.Snapshot{
		State:     sleigh.StatePlaying,
		Score:     3,
		Player:    sleigh.Player{Y: 250},
		Field:     testField(),
		Obstacles: []sleigh.Obstacle{{ID: 1, X: 400, GapTop: 100, GapBottom: 280}},
		Presents:  []sleigh.Present{{ID: 1, X: 600, Y: 300}},
	}

	DrawSnapshot(s, snap)

	// Upper chimney rows 1-4, gap, snow cap then lower chimney from row 12
	assertCell(t, s, 40, 1, '█', core.ColorRed)
	assertCell(t, s, 45, 4, '█', core.ColorRed)
	assertCell(t, s, 40, 5, ' ', core.ColorDefault)
	assertCell(t, s, 40, 11, ' ', core.ColorDefault)
	assertCell(t, s, 40, 12, '▄', core.ColorBrightWhite)
	assertCell(t, s, 45, 24, '█', core.ColorRed)
	assertCell(t, s, 46, 24, ' ', core.ColorDefault)

	assertCell(t, s, 60, 13, '■', core.ColorGreen)
	assertCell(t, s, 62, 13, '■', core.ColorGreen)

	if strings.Contains(s.String(), "Press SPACE") {
		t.Error("playing screen should not show a prompt")
	}
	if !strings.Contains(s.Row(0), "Score: 3") {
		t.Errorf("HUD row = %q", s.Row(0))
	}
}

func TestDrawTilt(t *testing.T) {
	s := core.NewScreen(80, 25)
	snap := sleigh.Snapshot{State: sleigh.StatePlaying, Player: sleigh.Player{Y: 250, Velocity: -5}, Field: testField()}

	DrawSnapshot(s, snap)
	assertCell(t, s, 14, 12, '╱', core.ColorYellow)

	snap.Player.Velocity = 8
	DrawSnapshot(s, snap)
	assertCell(t, s, 14, 12, '╲', core.ColorYellow)
}

func TestDrawGameOver(t *testing.T) {
	s := core.NewScreen(80, 25)
	snap := sleigh.Snapshot{State: sleigh.StateOver, Score: 7, Player: sleigh.Player{Y: 530}, Field: testField()}

	DrawSnapshot(s, snap)

	out := s.String()
	for _, want := range []string{"GAME OVER", "Score: 7", "Press SPACE to continue"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestDrawTinyScreen(t *testing.T) {
	snap := sleigh.New(config.DefaultSleighConfig(), 1).Snapshot()
	for _, size := range [][2]int{{0, 0}, {10, 1}, {3, 2}} {
		s := core.NewScreen(size[0], size[1])
		DrawSnapshot(s, snap) // must not panic
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
