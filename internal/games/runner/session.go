package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Session is the screen-level state of the game. Exactly one holds at a time
// and the simulation only advances in Playing.
type Session int

const (
	Home Session = iota
	Playing
	Paused
	GameOver
)

// String returns a human-readable name for the session state.
func (s Session) String() string {
	switch s {
	case Home:
		return "home"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Transition returns the state reached by applying a user action, and whether
// the action is valid in the current state. Collisions are not user actions;
// see Simulation.endRun.
//
//	Home     --Start-->   Playing
//	Playing  --Pause-->   Paused
//	Paused   --Pause-->   Playing
//	Paused   --Home-->    Home
//	GameOver --Restart--> Playing
//	GameOver --Home-->    Home
func Transition(from Session, a core.Action) (Session, bool) {
	switch from {
	case Home:
		if a == core.ActionStart {
			return Playing, true
		}
	case Playing:
		if a == core.ActionPause {
			return Paused, true
		}
	case Paused:
		switch a {
		case core.ActionPause:
			return Playing, true
		case core.ActionHome:
			return Home, true
		}
	case GameOver:
		switch a {
		case core.ActionRestart:
			return Playing, true
		case core.ActionHome:
			return Home, true
		}
	}
	return from, false
}

// resetsRun reports whether moving between two states starts a fresh run.
// Resuming from pause keeps the run; everything else that lands in Playing
// or Home wipes it.
func resetsRun(from, to Session) bool {
	if from == Paused && to == Playing {
		return false
	}
	return to == Playing || to == Home
}
