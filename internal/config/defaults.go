package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration. It matches
// defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Lanes: []float64{-3, 0, 3},
		Player: PlayerConfig{
			Width:       1,
			Height:      1,
			Depth:       1,
			StartLane:   1,
			LaneEase:    0.1,
			JumpHeight:  3,
			JumpSpeed:   0.15,
			CrouchScale: 0.5,
		},
		Obstacles: ObstacleConfig{
			SpawnZ:     50,
			DespawnZ:   -10,
			Width:      1.5,
			Depth:      1.5,
			LowHeight:  1,
			TallHeight: 2.5,
		},
		Difficulty: DifficultyConfig{
			Initial: MinDifficulty,
			Policy:  PolicyAny,
		},
		Input: InputConfig{
			SwipeThreshold: 50,
			CellWidth:      10,
			CellHeight:     20,
			CrouchHold:     0.35,
		},
		Timing: TimingConfig{
			ReferenceFPS: 60,
			MaxDelta:     0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
