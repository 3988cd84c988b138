// Package tui runs the game inside a Bubble Tea program. It owns the
// terminal, turns keys and mouse events into gestures and drives the game
// from self-correcting ticks.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick after delay. Only one tick is ever in
// flight: the next one is scheduled when the current one is handled.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
