package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from RUNNER_* environment variables.
// Command-line flags take precedence over these when set.
type Env struct {
	ConfigPath       string `env:"RUNNER_CONFIG"`
	Seed             int64  `env:"RUNNER_SEED"`
	FPS              int    `env:"RUNNER_FPS" envDefault:"60"`
	Difficulty       int    `env:"RUNNER_DIFFICULTY"`
	DifficultyPolicy string `env:"RUNNER_DIFFICULTY_POLICY"`
	Lang             string `env:"RUNNER_LANG" envDefault:"en"`
	LogLevel         string `env:"RUNNER_LOG_LEVEL" envDefault:"info"`
	LogFile          string `env:"RUNNER_LOG_FILE"`
}

// ParseEnv loads settings from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}

// ParseEnvFrom loads settings from an explicit variable map instead of the
// process environment.
func ParseEnvFrom(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return e, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}

// Apply copies the difficulty settings from e onto cfg. Zero values leave
// cfg untouched.
func (e Env) Apply(cfg *RunnerConfig) error {
	if e.Difficulty != 0 {
		d, err := ParseDifficulty(e.Difficulty)
		if err != nil {
			return err
		}
		cfg.Difficulty.Initial = d
	}
	if e.DifficultyPolicy != "" {
		p, err := ParseDifficultyPolicy(e.DifficultyPolicy)
		if err != nil {
			return err
		}
		cfg.Difficulty.Policy = p
	}
	return nil
}
