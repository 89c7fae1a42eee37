package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Score awards.
const (
	PassBonus     = 10.0 // per obstacle that passes the player
	PassivePoints = 0.1  // per tick spent playing
)

// RunStats summarizes one run from start to collision.
type RunStats struct {
	Score      float64
	Difficulty config.Difficulty
	Cleared    int           // obstacles that passed the player
	Jumps      int           // jumps started
	Ticks      int           // simulation ticks spent in Playing
	Elapsed    time.Duration // simulated time spent in Playing
}

// Scorer owns the score accumulator. Speed and spawn interval are never
// stored: they are derived from the current score and difficulty on every
// read, so they cannot drift out of step with either.
type Scorer struct {
	score      float64
	difficulty *config.DifficultyManager
}

// NewScorer creates a scorer at zero.
func NewScorer(d *config.DifficultyManager) *Scorer {
	return &Scorer{difficulty: d}
}

// Award adds points. Negative awards are ignored so the score never decreases.
func (s *Scorer) Award(points float64) {
	if points <= 0 {
		return
	}
	s.score += points
}

// Reset sets the score back to zero.
func (s *Scorer) Reset() {
	s.score = 0
}

// Score returns the accumulated score.
func (s *Scorer) Score() float64 {
	return s.score
}

// Speed returns the obstacle speed for the current score and difficulty.
func (s *Scorer) Speed() float64 {
	return s.difficulty.Speed(s.score)
}

// SpawnInterval returns the spawn interval for the current score and difficulty.
func (s *Scorer) SpawnInterval() float64 {
	return s.difficulty.SpawnInterval(s.score)
}
