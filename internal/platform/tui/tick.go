// Package tui hosts the runner in a terminal with Bubble Tea, locally or
// over SSH. It maps keys and mouse clicks to game actions, drives the
// game scheduler from the tick loop and renders the scene.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxStep caps the virtual time advanced by one tick so a stalled
// terminal does not fire a burst of spawns at once.
const maxStep = 100 * time.Millisecond

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameInterval is the tick period for a rate in frames per second.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// stepFor returns the virtual time to advance for a tick at now after one
// at last. The first tick advances one frame interval.
func stepFor(last, now time.Time, tickRate int) time.Duration {
	if last.IsZero() {
		return frameInterval(tickRate)
	}
	d := now.Sub(last)
	switch {
	case d < 0:
		return 0
	case d > maxStep:
		return maxStep
	}
	return d
}
