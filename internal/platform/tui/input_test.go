package tui

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestCrouchHold(t *testing.T) {
	c := newCrouchHold(0.3)

	if c.Advance(1) {
		t.Error("Advance() without a press reported a release")
	}

	c.Press()
	if c.Advance(0.2) {
		t.Fatal("released too early")
	}
	// A repeat keeps the crouch alive.
	c.Press()
	if c.Advance(0.2) {
		t.Fatal("repeat did not extend the hold")
	}
	if !c.Advance(0.2) {
		t.Fatal("hold did not release")
	}
	if c.Advance(0.2) {
		t.Error("release reported twice")
	}

	c.Press()
	c.Cancel()
	if c.Advance(1) {
		t.Error("cancelled hold reported a release")
	}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestMouseSwipe(t *testing.T) {
	tests := []struct {
		name   string
		events []tea.MouseMsg
		want   []core.Action
	}{
		{
			name:   "short drag",
			events: []tea.MouseMsg{mouse(tea.MouseActionPress, 10, 10), mouse(tea.MouseActionMotion, 14, 10)},
			want:   nil,
		},
		{
			// 6 columns at 10 units each passes the 50 unit threshold.
			name:   "swipe right",
			events: []tea.MouseMsg{mouse(tea.MouseActionPress, 10, 10), mouse(tea.MouseActionMotion, 16, 10)},
			want:   []core.Action{core.ActionRight},
		},
		{
			name:   "swipe up",
			events: []tea.MouseMsg{mouse(tea.MouseActionPress, 10, 10), mouse(tea.MouseActionMotion, 10, 7)},
			want:   []core.Action{core.ActionJump},
		},
		{
			name:   "swipe down on release",
			events: []tea.MouseMsg{mouse(tea.MouseActionPress, 10, 10), mouse(tea.MouseActionRelease, 10, 13)},
			want:   []core.Action{core.ActionCrouchStart},
		},
		{
			name: "long drag emits twice",
			events: []tea.MouseMsg{
				mouse(tea.MouseActionPress, 20, 10),
				mouse(tea.MouseActionMotion, 14, 10),
				mouse(tea.MouseActionMotion, 8, 10),
			},
			want: []core.Action{core.ActionLeft, core.ActionLeft},
		},
		{
			name: "motion after release ignored",
			events: []tea.MouseMsg{
				mouse(tea.MouseActionPress, 10, 10),
				mouse(tea.MouseActionRelease, 10, 10),
				mouse(tea.MouseActionMotion, 30, 10),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newMouseSwipe(config.DefaultRunnerConfig().Input)
			var got []core.Action
			for _, ev := range tt.events {
				got = append(got, s.Handle(ev)...)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("actions = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrameDelta(t *testing.T) {
	now := time.Unix(100, 0)
	tests := []struct {
		name string
		last time.Time
		want float64
	}{
		{"first frame", time.Time{}, 0},
		{"normal", now.Add(-16 * time.Millisecond), 0.016},
		{"clock went back", now.Add(time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.last, now); got != tt.want {
				t.Errorf("frameDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}
