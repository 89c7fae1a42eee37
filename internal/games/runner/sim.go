// Package runner implements a three-lane endless runner simulation.
//
// The player dodges obstacles by changing lanes, jumping or crouching while
// the obstacle speed and spawn rate grow with the score. The package contains
// pure logic only: an external driver calls Tick with the measured elapsed
// time and renders the Frame it gets back.
package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// TickResult reports what happened during one Tick.
type TickResult struct {
	Session Session // state after the tick
	Cleared int     // obstacles that passed the player this tick
	Ended   bool    // the run ended in a collision this tick
	// Stats is the final run summary; only set when Ended is true.
	Stats RunStats
}

// Simulation owns all runner state: session, difficulty, score, player and
// obstacles. It is not safe for concurrent use; one driver loop calls Tick.
type Simulation struct {
	cfg        config.RunnerConfig
	session    Session
	difficulty *config.DifficultyManager
	scorer     *Scorer
	player     *Player
	field      *Field
	stats      RunStats
	pending    core.InputFrame
}

// New creates a simulation on the home screen.
func New(cfg config.RunnerConfig, seed int64) *Simulation {
	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	s := &Simulation{
		cfg:        cfg,
		session:    Home,
		difficulty: difficulty,
		scorer:     NewScorer(difficulty),
		player:     NewPlayer(cfg),
		field:      NewField(cfg, seed),
		pending:    core.NewInputFrame(),
	}
	s.resetRun()
	return s
}

// Enqueue queues an action for the next Tick. Actions are applied in order.
func (s *Simulation) Enqueue(a core.Action) {
	s.pending.Push(a)
}

// Tick applies queued actions and, while playing, advances the world by dt
// seconds. Negative or NaN dt counts as zero; dt above the configured
// maximum is clamped.
func (s *Simulation) Tick(dt float64) TickResult {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	if dt > s.cfg.Timing.MaxDelta {
		dt = s.cfg.Timing.MaxDelta
	}

	for _, a := range s.pending.Actions() {
		s.Apply(a)
	}
	s.pending.Clear()

	if s.session != Playing {
		return TickResult{Session: s.session}
	}

	s.player.Tick(dt)
	s.stats.Ticks++
	s.stats.Elapsed += time.Duration(dt * float64(time.Second))

	cleared := s.field.Tick(dt, s.scorer.Speed(), s.scorer.SpawnInterval())
	for i := 0; i < cleared; i++ {
		s.AwardScore(PassBonus)
	}
	s.stats.Cleared += cleared

	for _, o := range s.field.Obstacles() {
		if s.CheckCollision(o) {
			stats := s.endRun()
			return TickResult{Session: s.session, Cleared: cleared, Ended: true, Stats: stats}
		}
	}

	s.AwardScore(PassivePoints)
	return TickResult{Session: s.session, Cleared: cleared}
}

// Apply performs one action immediately. Gameplay actions only take effect
// while playing; session actions follow Transition. Returns whether the
// action changed anything.
func (s *Simulation) Apply(a core.Action) bool {
	if a.IsGameplay() {
		if s.session != Playing {
			return false
		}
		return s.steer(a)
	}

	if a == core.ActionDifficulty {
		return s.difficulty.Cycle(s.session == Home)
	}

	to, ok := Transition(s.session, a)
	if !ok {
		return false
	}
	from := s.session
	s.session = to
	if resetsRun(from, to) {
		s.resetRun()
	}
	return true
}

func (s *Simulation) steer(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		before := s.player.Lane()
		s.player.SetLaneIntent(-1)
		return s.player.Lane() != before
	case core.ActionRight:
		before := s.player.Lane()
		s.player.SetLaneIntent(1)
		return s.player.Lane() != before
	case core.ActionJump:
		if s.player.BeginJump() {
			s.stats.Jumps++
			return true
		}
	case core.ActionCrouchStart:
		before := s.player.Crouching()
		s.player.SetCrouch(true)
		return s.player.Crouching() != before
	case core.ActionCrouchStop:
		before := s.player.Crouching()
		s.player.SetCrouch(false)
		return s.player.Crouching() != before
	}
	return false
}

// Start leaves the home screen and begins a fresh run.
func (s *Simulation) Start() bool { return s.Apply(core.ActionStart) }

// TogglePause pauses or resumes a run.
func (s *Simulation) TogglePause() bool { return s.Apply(core.ActionPause) }

// Restart begins a fresh run after game over.
func (s *Simulation) Restart() bool { return s.Apply(core.ActionRestart) }

// GoHome returns to the home screen, discarding the current run.
func (s *Simulation) GoHome() bool { return s.Apply(core.ActionHome) }

// CycleDifficulty moves to the next difficulty if the policy allows it.
func (s *Simulation) CycleDifficulty() bool { return s.Apply(core.ActionDifficulty) }

// AwardScore adds points to the score. Speed and spawn interval follow
// immediately since they are derived from the score.
func (s *Simulation) AwardScore(points float64) {
	s.scorer.Award(points)
}

// CheckCollision reports whether the player overlaps the obstacle.
// Always false unless a run is in progress and unpaused.
func (s *Simulation) CheckCollision(o Obstacle) bool {
	if s.session != Playing {
		return false
	}
	return s.player.Box().Intersects(s.field.Box(o))
}

// endRun moves to GameOver and returns the run summary.
func (s *Simulation) endRun() RunStats {
	s.session = GameOver
	s.stats.Score = s.scorer.Score()
	s.stats.Difficulty = s.difficulty.Level()
	return s.stats
}

// resetRun clears score, obstacles, player state and run statistics.
func (s *Simulation) resetRun() {
	s.scorer.Reset()
	s.field.Clear()
	s.player.Reset()
	s.stats = RunStats{}
}

// Session returns the current session state.
func (s *Simulation) Session() Session {
	return s.session
}

// Score returns the current score.
func (s *Simulation) Score() float64 {
	return s.scorer.Score()
}

// Speed returns the current obstacle speed.
func (s *Simulation) Speed() float64 {
	return s.scorer.Speed()
}

// SpawnInterval returns the current spawn interval in seconds.
func (s *Simulation) SpawnInterval() float64 {
	return s.scorer.SpawnInterval()
}

// Difficulty returns the current difficulty.
func (s *Simulation) Difficulty() config.Difficulty {
	return s.difficulty.Level()
}

// Player returns the player motion model.
func (s *Simulation) Player() *Player {
	return s.player
}

// Obstacles returns the live obstacles.
func (s *Simulation) Obstacles() []Obstacle {
	return s.field.Obstacles()
}

// Stats returns the statistics of the current (or just finished) run.
func (s *Simulation) Stats() RunStats {
	st := s.stats
	st.Score = s.scorer.Score()
	st.Difficulty = s.difficulty.Level()
	return st
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.RunnerConfig {
	return s.cfg
}
