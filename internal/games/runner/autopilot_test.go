package runner

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestAutopilotDecide(t *testing.T) {
	type block struct {
		lane  int
		class HeightClass
		z     float64
	}
	tests := []struct {
		name   string
		lane   int
		blocks []block
		want   []core.Action
	}{
		{"clear track", 1, nil, nil},
		{"threat far away", 1, []block{{1, Tall, 40}}, nil},
		{"dodge left first", 1, []block{{1, Tall, 5}}, []core.Action{core.ActionLeft}},
		{"dodge to open side", 1, []block{{1, Tall, 5}, {0, Tall, 8}}, []core.Action{core.ActionRight}},
		{"edge lane moves inward", 0, []block{{0, Low, 5}}, []core.Action{core.ActionRight}},
		{"boxed in, low too far to jump", 1, []block{{1, Low, 6}, {0, Tall, 6}, {2, Tall, 6}}, nil},
		{"boxed in, jump low", 1, []block{{1, Low, 3.9}, {0, Tall, 4}, {2, Tall, 4}}, []core.Action{core.ActionJump}},
		{"boxed in, tall", 1, []block{{1, Tall, 3.9}, {0, Tall, 4}, {2, Tall, 4}}, nil},
		{"passed obstacle ignored", 1, []block{{1, Tall, -2}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim()
			s.Start()
			for s.Player().Lane() > tt.lane {
				s.Apply(core.ActionLeft)
			}
			for _, b := range tt.blocks {
				place(s, b.lane, b.class, b.z)
			}

			got := NewAutopilot().Decide(s.Frame())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAutopilotIdleOutsidePlaying(t *testing.T) {
	s := newTestSim()
	place(s, 1, Tall, 2)
	if got := NewAutopilot().Decide(s.Frame()); got != nil {
		t.Errorf("Decide() at Home = %v, want nil", got)
	}
}

func TestAutopilotNoJumpWhileAirborne(t *testing.T) {
	s := newTestSim()
	s.Start()
	s.Apply(core.ActionJump)
	place(s, 1, Low, 3)
	place(s, 0, Tall, 3)
	place(s, 2, Tall, 3)

	if got := NewAutopilot().Decide(s.Frame()); got != nil {
		t.Errorf("Decide() while airborne = %v, want nil", got)
	}
}

func TestAutoplay(t *testing.T) {
	s := newTestSim()
	stats, err := Autoplay(context.Background(), s, NewAutopilot(), frameDT, 20*time.Second)
	if err != nil {
		t.Fatalf("Autoplay() failed: %v", err)
	}
	if stats.Ticks == 0 || stats.Score <= 0 {
		t.Errorf("Autoplay() stats = %+v, want a played run", stats)
	}
	if s.Session() == Playing && stats.Elapsed < 20*time.Second {
		t.Errorf("run stopped early at %v while still playing", stats.Elapsed)
	}
}

func TestAutoplayRestartsFinishedRun(t *testing.T) {
	s := newTestSim()
	s.Start()
	place(s, 1, Tall, 0)
	s.Tick(frameDT)
	if s.Session() != GameOver {
		t.Fatalf("session = %v, want game-over", s.Session())
	}

	stats, err := Autoplay(context.Background(), s, NewAutopilot(), frameDT, time.Second)
	if err != nil {
		t.Fatalf("Autoplay() failed: %v", err)
	}
	if stats.Ticks == 0 {
		t.Error("Autoplay() did not play a new run")
	}
}

func TestAutoplayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Autoplay(ctx, newTestSim(), NewAutopilot(), frameDT, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Autoplay() error = %v, want context.Canceled", err)
	}
}

func TestAutoplayStopsWithoutTime(t *testing.T) {
	for _, dt := range []float64{0, -1, math.NaN()} {
		s := newTestSim()
		stats, err := Autoplay(context.Background(), s, NewAutopilot(), dt, time.Hour)
		if err != nil {
			t.Fatalf("Autoplay(dt=%v) failed: %v", dt, err)
		}
		if stats.Elapsed != 0 || stats.Ticks != 1 {
			t.Errorf("Autoplay(dt=%v) = %+v, want one zero-length tick", dt, stats)
		}
	}
}

func TestAutopilotBeatsStandingStill(t *testing.T) {
	idle := newTestSim()
	idle.Start()
	for idle.Session() == Playing && idle.Stats().Elapsed < 60*time.Second {
		idle.Tick(frameDT)
	}

	piloted := newTestSim()
	stats, err := Autoplay(context.Background(), piloted, NewAutopilot(), frameDT, 60*time.Second)
	if err != nil {
		t.Fatalf("Autoplay() failed: %v", err)
	}
	if stats.Score < idle.Stats().Score {
		t.Errorf("autopilot scored %v, standing still scored %v", stats.Score, idle.Stats().Score)
	}
}
