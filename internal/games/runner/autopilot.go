package runner

import (
	"context"
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Autopilot is a simple bot that steers the player from a Frame.
// Distances are measured in reference frames of obstacle travel, so the
// same settings work at every speed.
type Autopilot struct {
	// Lookahead is how many frames ahead an obstacle counts as a threat.
	Lookahead float64
	// JumpLead is how many frames before reaching the player a low
	// obstacle is jumped. The jump peak is reached after about 20 frames.
	JumpLead float64
}

// NewAutopilot returns an autopilot tuned for the default physics.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: 40, JumpLead: 20}
}

// reach is the longitudinal distance at which player and obstacle overlap.
func reach(f Frame, o ObstaclePose) float64 {
	return (f.Player.Size.Z + o.Size.Z) / 2
}

// nearest returns the closest obstacle in lane that has not yet passed the
// player, and false when the lane is clear.
func nearest(f Frame, lane int) (ObstaclePose, bool) {
	var best ObstaclePose
	found := false
	for _, o := range f.Obstacles {
		if o.Lane != lane || o.Position.Z <= -reach(f, o) {
			continue
		}
		if !found || o.Position.Z < best.Position.Z {
			best, found = o, true
		}
	}
	return best, found
}

// Decide returns the intents to enqueue for the next tick. It only acts
// while a run is playing.
func (a *Autopilot) Decide(f Frame) []core.Action {
	if f.Session != Playing || f.Speed <= 0 {
		return nil
	}

	lane := f.Player.Lane
	threat, ok := nearest(f, lane)
	if !ok || threat.Position.Z > a.Lookahead*f.Speed+reach(f, threat) {
		return nil
	}

	// Prefer the adjacent lane whose nearest obstacle is farthest away.
	bestLane, bestZ := -1, threat.Position.Z+reach(f, threat)
	for _, next := range []int{lane - 1, lane + 1} {
		if next < 0 || next >= len(f.Lanes) {
			continue
		}
		z := math.Inf(1)
		if o, ok := nearest(f, next); ok {
			z = o.Position.Z
		}
		if z > bestZ {
			bestLane, bestZ = next, z
		}
	}
	if bestLane >= 0 {
		if bestLane < lane {
			return []core.Action{core.ActionLeft}
		}
		return []core.Action{core.ActionRight}
	}

	if threat.Class == Low && !f.Player.Jumping && threat.Position.Z <= a.JumpLead*f.Speed {
		return []core.Action{core.ActionJump}
	}
	return nil
}

// Autoplay starts a run and lets the autopilot steer it with a fixed step
// until the run ends or limit of simulated time has passed. It returns the
// run statistics, or the context error if ctx was cancelled first.
func Autoplay(ctx context.Context, s *Simulation, pilot *Autopilot, dt float64, limit time.Duration) (RunStats, error) {
	switch s.Session() {
	case Home:
		s.Start()
	case Paused:
		s.TogglePause()
	case GameOver:
		s.Restart()
	}

	for i := 0; ; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return s.Stats(), err
			}
		}

		for _, a := range pilot.Decide(s.Frame()) {
			s.Enqueue(a)
		}
		res := s.Tick(dt)
		if res.Ended {
			return res.Stats, nil
		}
		if !(dt > 0) || s.Stats().Elapsed >= limit {
			return s.Stats(), nil
		}
	}
}
