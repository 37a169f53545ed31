// Package tui provides the Bubble Tea integration for Sleigh Flight.
// It handles the terminal UI loop, input mapping and drawing of game snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sleigh-flight/internal/clock"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick loop that produced it; ticks from an older loop are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after a tick interval.
// The loop continues only while the receiver schedules the next tickCmd.
func tickCmd(tickRate, gen int) tea.Cmd {
	return tea.Tick(clock.Interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
