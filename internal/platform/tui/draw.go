package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sleigh-flight/internal/core"
	"github.com/vovakirdan/sleigh-flight/internal/games/sleigh"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Tilt thresholds in degrees for the sleigh's nose glyph.
const (
	tiltClimb = -10
	tiltDive  = 10
)

// viewport maps field coordinates to screen cells.
type viewport struct {
	field      sleigh.Field
	cols, rows int
	top        int
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * float64(v.cols) / v.field.Width))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*float64(v.rows)/v.field.Height))
}

// rect converts a field box to cells, keeping at least one cell in each direction.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	x0, y0 := v.col(x), v.row(y)
	x1, y1 := v.col(x+w), v.row(y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawSnapshot draws a game snapshot scaled to the screen.
// The top row holds the score; the rest is the playfield.
func DrawSnapshot(s *core.Screen, snap sleigh.Snapshot) {
	s.Clear()
	if s.Height() <= hudRows || s.Width() == 0 || snap.Field.Width <= 0 || snap.Field.Height <= 0 {
		return
	}

	v := viewport{
		field: snap.Field,
		cols:  s.Width(),
		rows:  s.Height() - hudRows,
		top:   hudRows,
	}

	for _, o := range snap.Obstacles {
		drawChimneys(s, v, o)
	}
	for _, p := range snap.Presents {
		s.DrawRect(v.rect(p.X, p.Y, snap.Field.PresentSize, snap.Field.PresentSize), '■', core.ColorGreen)
	}
	drawSleigh(s, v, snap)
	drawHUD(s, snap)

	switch snap.State {
	case sleigh.StateIdle:
		drawMessage(s, []string{
			sleigh.Title,
			"",
			"Press SPACE to start",
		}, core.ColorBrightYellow)
	case sleigh.StateOver:
		drawMessage(s, []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			"",
			"Press SPACE to continue",
		}, core.ColorBrightRed)
	}
}

// drawChimneys draws the chimney pair of an obstacle, leaving the gap open.
func drawChimneys(s *core.Screen, v viewport, o sleigh.Obstacle) {
	x0 := v.col(o.X)
	x1 := v.col(o.X + v.field.ObstacleWidth)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	w := x1 - x0

	gapTop := v.row(o.GapTop)
	gapBottom := v.row(o.GapBottom)
	bottom := v.top + v.rows

	s.DrawRect(core.NewRect(x0, v.top, w, gapTop-v.top), '█', core.ColorRed)
	s.DrawRect(core.NewRect(x0, gapBottom, w, bottom-gapBottom), '█', core.ColorRed)
	// Snow on the chimney top
	s.DrawHLine(x0, gapBottom, w, '▄', core.ColorBrightWhite)
}

func drawSleigh(s *core.Screen, v viewport, snap sleigh.Snapshot) {
	size := snap.Field.PlayerSize
	r := v.rect(snap.Field.PlayerX, snap.Player.Y, size, size)
	s.DrawRect(r, '█', core.ColorBrightRed)

	nose := '─'
	switch tilt := snap.Tilt(); {
	case tilt < tiltClimb:
		nose = '╱'
	case tilt > tiltDive:
		nose = '╲'
	}
	s.SetColored(r.Right(), r.Y+r.H/2, nose, core.ColorYellow)
}

func drawHUD(s *core.Screen, snap sleigh.Snapshot) {
	s.DrawHLine(0, 0, s.Width(), ' ', core.ColorDefault)
	s.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightYellow)

	right := fmt.Sprintf("%s  tick %d", snap.State, snap.Tick)
	s.DrawText(s.Width()-len(right)-1, 0, right, core.ColorGray)
}

// drawMessage draws a framed block of centered lines in the middle of the screen.
func drawMessage(s *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((s.Width()-boxW)/2, (s.Height()-boxH)/2, boxW, boxH)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		s.DrawTextCentered(box.Y+1+i, l, c)
	}
}
