package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// KeyMap defines the key bindings for the runner.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Crouch     key.Binding
	Start      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Home       key.Binding
	Difficulty key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Crouch: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "crouch"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Home: key.NewBinding(
			key.WithKeys("h", "b"),
			key.WithHelp("h", "home"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "difficulty"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Crouch, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Crouch},
		{k.Start, k.Pause, k.Restart, k.Home},
		{k.Difficulty, k.Help, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to runner actions.
// Several keys mean different things on different screens (space jumps
// while playing and starts a run at home), so mapping depends on the
// current session.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action for the given session.
// Returns ActionNone for keys that mean nothing there.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, session runner.Session) core.Action {
	k := km.keys
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}

	switch session {
	case runner.Home:
		switch {
		case key.Matches(msg, k.Start):
			return core.ActionStart
		case key.Matches(msg, k.Difficulty):
			return core.ActionDifficulty
		}

	case runner.Playing:
		switch {
		case key.Matches(msg, k.Left):
			return core.ActionLeft
		case key.Matches(msg, k.Right):
			return core.ActionRight
		case key.Matches(msg, k.Jump):
			return core.ActionJump
		case key.Matches(msg, k.Crouch):
			return core.ActionCrouchStart
		case key.Matches(msg, k.Pause):
			return core.ActionPause
		case key.Matches(msg, k.Difficulty):
			return core.ActionDifficulty
		}

	case runner.Paused:
		switch {
		case key.Matches(msg, k.Pause):
			return core.ActionPause
		case key.Matches(msg, k.Home):
			return core.ActionHome
		case key.Matches(msg, k.Difficulty):
			return core.ActionDifficulty
		}

	case runner.GameOver:
		switch {
		case key.Matches(msg, k.Restart):
			return core.ActionRestart
		case key.Matches(msg, k.Home):
			return core.ActionHome
		case key.Matches(msg, k.Difficulty):
			return core.ActionDifficulty
		}
	}

	return core.ActionNone
}
