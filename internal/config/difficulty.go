package config

import (
	"fmt"
	"math"
	"strings"
)

// Difficulty is the player-selected difficulty multiplier, 1 through 10.
type Difficulty int

const (
	MinDifficulty Difficulty = 1
	MaxDifficulty Difficulty = 10
)

// Fixed curve constants. The curve is deliberately not configurable.
const (
	baseSpeed         = 0.2
	speedGainPer1000  = 0.1
	baseSpawnInterval = 1.5
	minSpawnInterval  = 0.5
	spawnGainPer2000  = 0.5
	difficultyDivisor = 3.0
)

// ParseDifficulty validates an integer difficulty.
func ParseDifficulty(n int) (Difficulty, error) {
	d := Difficulty(n)
	if !d.Valid() {
		return 0, fmt.Errorf("config: difficulty %d out of range %d-%d", n, MinDifficulty, MaxDifficulty)
	}
	return d, nil
}

// Valid reports whether d is within 1-10.
func (d Difficulty) Valid() bool {
	return d >= MinDifficulty && d <= MaxDifficulty
}

// Next returns the following difficulty, wrapping 10 back to 1.
func (d Difficulty) Next() Difficulty {
	if !d.Valid() {
		return MinDifficulty
	}
	return d%MaxDifficulty + 1
}

// Speed returns the obstacle speed for a score and difficulty.
//
//	speed = 0.2 + (score/1000) * 0.1 * (difficulty/3)
func Speed(score float64, d Difficulty) float64 {
	return baseSpeed + (score/1000)*speedGainPer1000*(float64(d)/difficultyDivisor)
}

// SpawnInterval returns the seconds between obstacle spawns for a score and difficulty.
//
//	spawnInterval = max(0.5, 1.5 - (score/2000) * 0.5 * (difficulty/3))
func SpawnInterval(score float64, d Difficulty) float64 {
	return math.Max(minSpawnInterval, baseSpawnInterval-(score/2000)*spawnGainPer2000*(float64(d)/difficultyDivisor))
}

// DifficultyPolicy decides in which session states difficulty may change.
type DifficultyPolicy string

const (
	// PolicyAny allows cycling difficulty in every session state.
	PolicyAny DifficultyPolicy = "any"
	// PolicyHome only allows cycling difficulty from the home screen.
	PolicyHome DifficultyPolicy = "home"
)

// ParseDifficultyPolicy parses a policy name. The empty string means PolicyAny.
func ParseDifficultyPolicy(s string) (DifficultyPolicy, error) {
	p := DifficultyPolicy(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return PolicyAny, nil
	}
	if !p.Valid() {
		return "", fmt.Errorf("config: unknown difficulty policy %q (want any or home)", s)
	}
	return p, nil
}

// Valid reports whether p is a known policy.
func (p DifficultyPolicy) Valid() bool {
	return p == PolicyAny || p == PolicyHome
}

// DifficultyManager holds the current difficulty and derives the curve from it.
type DifficultyManager struct {
	level  Difficulty
	policy DifficultyPolicy
}

// NewDifficultyManager creates a manager. Invalid inputs fall back to
// difficulty 1 and PolicyAny.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	level := cfg.Initial
	if !level.Valid() {
		level = MinDifficulty
	}
	policy := cfg.Policy
	if !policy.Valid() {
		policy = PolicyAny
	}
	return &DifficultyManager{level: level, policy: policy}
}

// Level returns the current difficulty.
func (d *DifficultyManager) Level() Difficulty {
	return d.level
}

// Policy returns the active change policy.
func (d *DifficultyManager) Policy() DifficultyPolicy {
	return d.policy
}

// Cycle advances the difficulty if the policy allows it. atHome reports
// whether the session is on the home screen. Returns whether it changed.
func (d *DifficultyManager) Cycle(atHome bool) bool {
	if d.policy == PolicyHome && !atHome {
		return false
	}
	d.level = d.level.Next()
	return true
}

// Speed returns the obstacle speed for the given score at the current difficulty.
func (d *DifficultyManager) Speed(score float64) float64 {
	return Speed(score, d.level)
}

// SpawnInterval returns the spawn interval for the given score at the current difficulty.
func (d *DifficultyManager) SpawnInterval(score float64) float64 {
	return SpawnInterval(score, d.level)
}
