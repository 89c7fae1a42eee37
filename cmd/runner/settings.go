package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// settings is the effective configuration of one command invocation after
// merging the config file, RUNNER_* variables and flags.
type settings struct {
	cfg    config.RunnerConfig
	seed   int64
	fps    int
	lang   string
	logger *log.Logger
	// closeLog releases the log file, if one was opened.
	closeLog func() error
}

// resolveSettings merges configuration sources. Flags explicitly set on the
// command line override environment variables, which override the config file.
// Logs go to the --log-file when set, otherwise to fallback.
func resolveSettings(cmd *cobra.Command, fallback io.Writer) (*settings, error) {
	e, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		e.ConfigPath = flagConfig
	}
	if flags.Changed("seed") {
		e.Seed = flagSeed
	}
	if flags.Changed("fps") {
		e.FPS = flagFPS
	}
	if flags.Changed("difficulty") {
		e.Difficulty = flagDifficulty
	}
	if flags.Changed("difficulty-policy") {
		e.DifficultyPolicy = flagDifficultyPolicy
	}
	if flags.Changed("lang") {
		e.Lang = flagLang
	}
	if flags.Changed("log-file") {
		e.LogFile = flagLogFile
	}
	if flags.Changed("log-level") {
		e.LogLevel = flagLogLevel
	}

	if e.FPS <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", e.FPS)
	}

	cfg, err := config.Load(e.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := e.Apply(&cfg); err != nil {
		return nil, err
	}

	w := fallback
	closeLog := func() error { return nil }
	if e.LogFile != "" {
		f, err := os.OpenFile(e.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeLog = f.Close
	}

	logger, err := newLogger(w, e.LogLevel)
	if err != nil {
		closeLog()
		return nil, err
	}

	return &settings{
		cfg:      cfg,
		seed:     e.Seed,
		fps:      e.FPS,
		lang:     e.Lang,
		logger:   logger,
		closeLog: closeLog,
	}, nil
}

// newLogger creates the program logger at the given level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           lvl,
	})
	return logger, nil
}
