// Package scene turns a game snapshot into flat drawing primitives in field coordinates.
// Pixel renderers draw the primitives in order without knowing the game rules.
package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/sleigh-flight/internal/games/sleigh"
)

// Debug font glyph size used to center text.
const (
	GlyphW = 6
	GlyphH = 16
)

const (
	capHeight    = 8
	capOverhang  = 4
	runnerHeight = 6
	ribbonWidth  = 4
	maxTilt      = 45
)

// Palette.
var (
	Sky     = color.RGBA{R: 14, G: 22, B: 48, A: 255}
	Brick   = color.RGBA{R: 150, G: 40, B: 32, A: 255}
	Snow    = color.RGBA{R: 235, G: 240, B: 250, A: 255}
	Box     = color.RGBA{R: 40, G: 150, B: 70, A: 255}
	Ribbon  = color.RGBA{R: 240, G: 200, B: 60, A: 255}
	Body    = color.RGBA{R: 210, G: 30, B: 40, A: 255}
	Runner  = color.RGBA{R: 230, G: 180, B: 50, A: 255}
	Overlay = color.RGBA{A: 160}
)

// Rect is a filled rectangle.
type Rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// Line is a stroked segment.
type Line struct {
	X0, Y0, X1, Y1 float32
	Width          float32
	Color          color.RGBA
}

// Text is a line of debug text with its top-left corner at X, Y.
type Text struct {
	S    string
	X, Y int
}

// Scene is everything to draw for one frame, back to front: rects, lines, then text.
type Scene struct {
	Width, Height int
	Rects         []Rect
	Lines         []Line
	Texts         []Text
}

// Build lays out a snapshot.
func Build(snap sleigh.Snapshot) Scene {
	f := snap.Field
	sc := Scene{
		Width:  int(f.Width),
		Height: int(f.Height),
	}
	sc.rect(0, 0, f.Width, f.Height, Sky)

	for _, o := range snap.Obstacles {
		sc.rect(o.X, 0, f.ObstacleWidth, o.GapTop, Brick)
		sc.rect(o.X, o.GapBottom, f.ObstacleWidth, f.Height-o.GapBottom, Brick)
		sc.rect(o.X-capOverhang, o.GapTop-capHeight, f.ObstacleWidth+2*capOverhang, capHeight, Snow)
		sc.rect(o.X-capOverhang, o.GapBottom, f.ObstacleWidth+2*capOverhang, capHeight, Snow)
	}

	for _, p := range snap.Presents {
		sc.rect(p.X, p.Y, f.PresentSize, f.PresentSize, Box)
		sc.rect(p.X+(f.PresentSize-ribbonWidth)/2, p.Y, ribbonWidth, f.PresentSize, Ribbon)
	}

	sc.sleigh(snap)

	sc.Texts = append(sc.Texts, Text{S: fmt.Sprintf("Score: %d", snap.Score), X: 10, Y: 10})
	switch snap.State {
	case sleigh.StateIdle:
		sc.message(sleigh.Title, "", "Press SPACE or click to start")
	case sleigh.StateOver:
		sc.message("GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "", "Press SPACE or click to continue")
	}
	return sc
}

func (sc *Scene) rect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	sc.Rects = append(sc.Rects, Rect{X: float32(x), Y: float32(y), W: float32(w), H: float32(h), Color: c})
}

// sleigh draws the body and a runner tilted by velocity.
func (sc *Scene) sleigh(snap sleigh.Snapshot) {
	f := snap.Field
	x, y, size := f.PlayerX, snap.Player.Y, f.PlayerSize
	sc.rect(x, y, size, size-runnerHeight, Body)

	tilt := math.Max(-maxTilt, math.Min(maxTilt, snap.Tilt()))
	drop := size / 2 * math.Sin(tilt*math.Pi/180)
	base := y + size - runnerHeight/2
	sc.Lines = append(sc.Lines, Line{
		X0:    float32(x),
		Y0:    float32(base - drop),
		X1:    float32(x + size),
		Y1:    float32(base + drop),
		Width: runnerHeight,
		Color: Runner,
	})
}

// message dims the field and centers lines of text.
func (sc *Scene) message(lines ...string) {
	sc.Rects = append(sc.Rects, Rect{W: float32(sc.Width), H: float32(sc.Height), Color: Overlay})
	top := (sc.Height - len(lines)*GlyphH) / 2
	for i, l := range lines {
		if l == "" {
			continue
		}
		sc.Texts = append(sc.Texts, Text{
			S: l,
			X: (sc.Width - len(l)*GlyphW) / 2,
			Y: top + i*GlyphH,
		})
	}
}
