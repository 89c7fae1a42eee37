package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// crouchHold emulates holding the crouch key. Terminals report key presses
// (and auto-repeats) but never releases, so a crouch lasts for a fixed time
// after the last press and is then released.
type crouchHold struct {
	duration  float64 // seconds
	remaining float64
	held      bool
}

func newCrouchHold(seconds float64) crouchHold {
	return crouchHold{duration: seconds}
}

// Press starts or extends the hold.
func (c *crouchHold) Press() {
	c.held = true
	c.remaining = c.duration
}

// Cancel drops the hold without reporting a release.
func (c *crouchHold) Cancel() {
	c.held = false
	c.remaining = 0
}

// Advance moves the timer forward and reports whether the hold just ended.
func (c *crouchHold) Advance(dt float64) bool {
	if !c.held {
		return false
	}
	c.remaining -= dt
	if c.remaining > 0 {
		return false
	}
	c.Cancel()
	return true
}

// mouseSwipe turns left-button drags into swipe actions. Terminal cells are
// scaled to distance units so the swipe threshold keeps its meaning.
type mouseSwipe struct {
	tracker    *core.SwipeTracker
	cellWidth  float64
	cellHeight float64
}

func newMouseSwipe(cfg config.InputConfig) mouseSwipe {
	return mouseSwipe{
		tracker:    core.NewSwipeTracker(cfg.SwipeThreshold),
		cellWidth:  cfg.CellWidth,
		cellHeight: cfg.CellHeight,
	}
}

// Handle consumes a mouse message and returns the swipe actions it produced.
func (s mouseSwipe) Handle(msg tea.MouseMsg) []core.Action {
	x := float64(msg.X) * s.cellWidth
	y := float64(msg.Y) * s.cellHeight

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			s.tracker.Begin(x, y)
		}
	case tea.MouseActionMotion:
		return s.tracker.Move(x, y)
	case tea.MouseActionRelease:
		actions := s.tracker.Move(x, y)
		s.tracker.End()
		return actions
	}
	return nil
}
