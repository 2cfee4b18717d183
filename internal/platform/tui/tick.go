// Package tui hosts the frame loop in a Bubble Tea program. It owns the
// terminal surface, maps keys and mouse presses onto the session's controls,
// and polls presented frames for display.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to poll the surface for a new frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// releaseMsg ends a key hold. Only the most recent hold releases.
type releaseMsg struct {
	seq uint64
}

// releaseAfter releases held keys once d passes. Terminals report key repeats
// but no key-up, so a hold lasts until repeats stop arriving.
func releaseAfter(d time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return releaseMsg{seq: seq}
	})
}
