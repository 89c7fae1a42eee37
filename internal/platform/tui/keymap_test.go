package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		session runner.Session
		want    core.Action
	}{
		// Home
		{"enter starts", keyEnter, runner.Home, core.ActionStart},
		{"space starts", keySpace, runner.Home, core.ActionStart},
		{"tab cycles", keyTab, runner.Home, core.ActionDifficulty},
		{"left ignored at home", keyLeft, runner.Home, core.ActionNone},
		{"q quits at home", runeKey('q'), runner.Home, core.ActionQuit},

		// Playing
		{"left arrow", keyLeft, runner.Playing, core.ActionLeft},
		{"a", runeKey('a'), runner.Playing, core.ActionLeft},
		{"right arrow", keyRight, runner.Playing, core.ActionRight},
		{"d", runeKey('d'), runner.Playing, core.ActionRight},
		{"up jumps", keyUp, runner.Playing, core.ActionJump},
		{"space jumps", keySpace, runner.Playing, core.ActionJump},
		{"w jumps", runeKey('w'), runner.Playing, core.ActionJump},
		{"down crouches", keyDown, runner.Playing, core.ActionCrouchStart},
		{"s crouches", runeKey('s'), runner.Playing, core.ActionCrouchStart},
		{"p pauses", runeKey('p'), runner.Playing, core.ActionPause},
		{"esc pauses", keyEsc, runner.Playing, core.ActionPause},
		{"tab while playing", keyTab, runner.Playing, core.ActionDifficulty},
		{"enter ignored while playing", keyEnter, runner.Playing, core.ActionNone},
		{"ctrl+c quits", keyCtrlC, runner.Playing, core.ActionQuit},

		// Paused
		{"p resumes", runeKey('p'), runner.Paused, core.ActionPause},
		{"h goes home", runeKey('h'), runner.Paused, core.ActionHome},
		{"left ignored while paused", keyLeft, runner.Paused, core.ActionNone},

		// Game over
		{"r restarts", runeKey('r'), runner.GameOver, core.ActionRestart},
		{"enter restarts", keyEnter, runner.GameOver, core.ActionRestart},
		{"b goes home", runeKey('b'), runner.GameOver, core.ActionHome},
		{"space ignored after game over", keySpace, runner.GameOver, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg, tt.session); got != tt.want {
				t.Errorf("MapKey(%q, %v) = %v, want %v", tt.msg.String(), tt.session, got, tt.want)
			}
		})
	}
}

func TestHelpBindingsHaveText(t *testing.T) {
	keys := DefaultKeyMap()
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Errorf("binding %v has no help text", b.Keys())
			}
		}
	}
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
}
