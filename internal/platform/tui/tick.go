package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time a frame was scheduled for.
type TickMsg time.Time

// tickCmd schedules the next frame. The simulation advances by the time
// that actually elapsed, so a late frame does not slow the game down.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two frames. The first frame has no
// predecessor and advances nothing.
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() || now.Before(last) {
		return 0
	}
	return now.Sub(last).Seconds()
}
