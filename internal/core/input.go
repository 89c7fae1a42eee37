package core

// Action represents a semantic game action, abstracted from physical key presses
// and touch gestures. The simulation only ever sees actions.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, A, swipe left - move one lane left
	ActionRight              // Right arrow, D, swipe right - move one lane right
	ActionJump               // Space, Up, swipe up - start a jump
	ActionCrouchStart        // Down, S, swipe down - begin crouching
	ActionCrouchStop         // crouch released
	ActionStart              // Enter on the home screen
	ActionPause              // P, Escape - pause/resume
	ActionRestart            // R after game over
	ActionHome               // H, B after game over - back to home screen
	ActionDifficulty         // Tab on the home screen - cycle difficulty
	ActionQuit               // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionCrouchStart:
		return "CrouchStart"
	case ActionCrouchStop:
		return "CrouchStop"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionHome:
		return "Home"
	case ActionDifficulty:
		return "Difficulty"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsGameplay reports whether the action steers the player rather than the session.
func (a Action) IsGameplay() bool {
	switch a {
	case ActionLeft, ActionRight, ActionJump, ActionCrouchStart, ActionCrouchStop:
		return true
	}
	return false
}

// InputFrame collects the actions triggered between two simulation ticks.
// Actions are kept in arrival order; a lane change followed by a jump is
// applied in exactly that sequence.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 4)}
}

// Push appends an action. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the queued actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// DefaultSwipeThreshold is the displacement a drag must exceed before it
// counts as a swipe.
const DefaultSwipeThreshold = 50.0

// SwipeTracker turns a continuous touch or drag into discrete lane, jump and
// crouch actions. Each time the displacement on an axis passes the threshold
// one action is emitted and the origin on that axis is rebased to the
// current point, so a long drag can emit several lane changes.
type SwipeTracker struct {
	threshold float64
	originX   float64
	originY   float64
	active    bool
}

// NewSwipeTracker creates a tracker. A non-positive threshold falls back to
// DefaultSwipeThreshold.
func NewSwipeTracker(threshold float64) *SwipeTracker {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &SwipeTracker{threshold: threshold}
}

// Begin records the start of a touch.
func (s *SwipeTracker) Begin(x, y float64) {
	s.originX = x
	s.originY = y
	s.active = true
}

// End finishes the current touch. Moves after End are ignored until the next Begin.
func (s *SwipeTracker) End() {
	s.active = false
}

// Active reports whether a touch is in progress.
func (s *SwipeTracker) Active() bool {
	return s.active
}

// Move reports the current touch point and returns the actions it triggers:
// at most one horizontal (Left/Right) and one vertical (Jump/CrouchStart).
// Screen coordinates grow downward, so an upward swipe has negative dy.
func (s *SwipeTracker) Move(x, y float64) []Action {
	if !s.active {
		return nil
	}

	var out []Action

	dx := x - s.originX
	if dx > s.threshold || -dx > s.threshold {
		if dx > 0 {
			out = append(out, ActionRight)
		} else {
			out = append(out, ActionLeft)
		}
		s.originX = x
	}

	dy := y - s.originY
	if dy > s.threshold || -dy > s.threshold {
		if dy < 0 {
			out = append(out, ActionJump)
		} else {
			out = append(out, ActionCrouchStart)
		}
		s.originY = y
	}

	return out
}
