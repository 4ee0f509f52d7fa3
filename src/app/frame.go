// frame.go - Frame scheduling for scroll and resize handling. Events mark
// a pending frame; the recomputation runs once when the tick fires and any
// event arriving in between is superseded rather than queued. Last one
// wins: the position math is a pure function of the current scroll offset,
// so dropped intermediate samples cost nothing.

package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = time.Second / 60

// frameMsg fires one coalesced position recomputation.
type frameMsg struct{}

// warmupMsg fires the forced initial computation after the warm-up delay.
type warmupMsg struct{}

// requestFrame schedules a recomputation for the next frame. While one is
// already pending this is a no-op, which is what coalesces event bursts.
func (a *App) requestFrame() tea.Cmd {
	if a.framePending {
		return nil
	}
	a.framePending = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// warmupCmd defers the first computation until one-time entry layout has
// settled, after which it is forced unconditionally.
func warmupCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return warmupMsg{}
	})
}
