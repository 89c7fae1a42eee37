// Package config provides YAML/TOML-based runner configuration loading,
// environment overrides and the difficulty curve.
package config

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// LaneCount is the number of lanes the runner is played on.
const LaneCount = 3

// RunnerConfig contains all configuration for the runner.
type RunnerConfig struct {
	Lanes      []float64        `yaml:"lanes" toml:"lanes"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	Timing     TimingConfig     `yaml:"timing" toml:"timing"`
}

// PlayerConfig defines the avatar's size and motion parameters.
type PlayerConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	Depth       float64 `yaml:"depth" toml:"depth"`
	StartLane   int     `yaml:"start_lane" toml:"start_lane"`
	LaneEase    float64 `yaml:"lane_ease" toml:"lane_ease"`
	JumpHeight  float64 `yaml:"jump_height" toml:"jump_height"`
	JumpSpeed   float64 `yaml:"jump_speed" toml:"jump_speed"`
	CrouchScale float64 `yaml:"crouch_scale" toml:"crouch_scale"`
}

// ObstacleConfig defines where obstacles live and how big they are.
type ObstacleConfig struct {
	SpawnZ     float64 `yaml:"spawn_z" toml:"spawn_z"`
	DespawnZ   float64 `yaml:"despawn_z" toml:"despawn_z"`
	Width      float64 `yaml:"width" toml:"width"`
	Depth      float64 `yaml:"depth" toml:"depth"`
	LowHeight  float64 `yaml:"low_height" toml:"low_height"`
	TallHeight float64 `yaml:"tall_height" toml:"tall_height"`
}

// DifficultyConfig selects the starting difficulty and when it may change.
type DifficultyConfig struct {
	Initial Difficulty       `yaml:"initial" toml:"initial"`
	Policy  DifficultyPolicy `yaml:"policy" toml:"policy"`
}

// InputConfig tunes how raw input becomes intents.
type InputConfig struct {
	SwipeThreshold float64 `yaml:"swipe_threshold" toml:"swipe_threshold"`
	CellWidth      float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight     float64 `yaml:"cell_height" toml:"cell_height"`
	CrouchHold     float64 `yaml:"crouch_hold" toml:"crouch_hold"` // seconds
}

// TimingConfig defines how elapsed time scales simulation steps.
type TimingConfig struct {
	// ReferenceFPS converts per-frame rates (jump speed, lane ease, obstacle
	// speed) into per-second rates.
	ReferenceFPS float64 `yaml:"reference_fps" toml:"reference_fps"`
	// MaxDelta caps a single tick's elapsed time in seconds.
	MaxDelta float64 `yaml:"max_delta" toml:"max_delta"`
}

// Validate reports configuration that cannot produce a playable run.
func (c RunnerConfig) Validate() error {
	var errs []error

	if len(c.Lanes) != LaneCount {
		errs = append(errs, fmt.Errorf("lanes: expected %d offsets, got %d", LaneCount, len(c.Lanes)))
	} else if !finite(c.Lanes...) {
		errs = append(errs, errors.New("lanes: offsets must be finite"))
	}
	if !positive(c.Player.Width, c.Player.Height, c.Player.Depth) {
		errs = append(errs, errors.New("player: size must be positive"))
	}
	if c.Player.StartLane < 0 || c.Player.StartLane >= LaneCount {
		errs = append(errs, fmt.Errorf("player: start_lane %d out of range", c.Player.StartLane))
	}
	if !positive(c.Player.JumpHeight, c.Player.JumpSpeed) {
		errs = append(errs, errors.New("player: jump_height and jump_speed must be positive"))
	}
	if !(c.Player.CrouchScale > 0 && c.Player.CrouchScale <= 1) {
		errs = append(errs, errors.New("player: crouch_scale must be in (0, 1]"))
	}
	if !positive(c.Player.LaneEase) {
		errs = append(errs, errors.New("player: lane_ease must be positive"))
	}
	if !finite(c.Obstacles.SpawnZ, c.Obstacles.DespawnZ) || c.Obstacles.SpawnZ <= c.Obstacles.DespawnZ {
		errs = append(errs, errors.New("obstacles: spawn_z must be beyond despawn_z"))
	}
	if !positive(c.Obstacles.Width, c.Obstacles.Depth, c.Obstacles.LowHeight, c.Obstacles.TallHeight) {
		errs = append(errs, errors.New("obstacles: sizes must be positive"))
	}
	if !c.Difficulty.Initial.Valid() {
		errs = append(errs, fmt.Errorf("difficulty: initial %d out of range %d-%d", c.Difficulty.Initial, MinDifficulty, MaxDifficulty))
	}
	if !c.Difficulty.Policy.Valid() {
		errs = append(errs, fmt.Errorf("difficulty: unknown policy %q", c.Difficulty.Policy))
	}
	if !positive(c.Input.SwipeThreshold, c.Input.CellWidth, c.Input.CellHeight, c.Input.CrouchHold) {
		errs = append(errs, errors.New("input: swipe_threshold, cell sizes and crouch_hold must be positive"))
	}
	if !positive(c.Timing.ReferenceFPS, c.Timing.MaxDelta) {
		errs = append(errs, errors.New("timing: reference_fps and max_delta must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// positive reports whether every value is a finite number above zero.
// NaN fails every comparison, so the checks are written to reject it.
func positive(vals ...float64) bool {
	for _, v := range vals {
		if !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// YAML renders the configuration in the same shape the loader reads.
func (c RunnerConfig) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return out, nil
}
