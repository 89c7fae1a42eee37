package config

import "testing"

func TestParseEnvFromDefaults(t *testing.T) {
	e, err := ParseEnvFrom(map[string]string{})
	if err != nil {
		t.Fatalf("ParseEnvFrom failed: %v", err)
	}
	if e.FPS != 60 {
		t.Errorf("FPS = %d, expected default 60", e.FPS)
	}
	if e.Lang != "en" {
		t.Errorf("Lang = %q, expected default en", e.Lang)
	}
	if e.LogLevel != "info" {
		t.Errorf("LogLevel = %q, expected default info", e.LogLevel)
	}
	if e.Seed != 0 || e.Difficulty != 0 || e.ConfigPath != "" {
		t.Errorf("unexpected non-zero values: %+v", e)
	}
}

func TestParseEnvFromValues(t *testing.T) {
	e, err := ParseEnvFrom(map[string]string{
		"RUNNER_CONFIG":            "/tmp/runner.toml",
		"RUNNER_SEED":              "1234",
		"RUNNER_FPS":               "30",
		"RUNNER_DIFFICULTY":        "6",
		"RUNNER_DIFFICULTY_POLICY": "home",
		"RUNNER_LANG":              "ja",
		"RUNNER_LOG_LEVEL":         "debug",
		"RUNNER_LOG_FILE":          "/tmp/runner.log",
	})
	if err != nil {
		t.Fatalf("ParseEnvFrom failed: %v", err)
	}
	if e.ConfigPath != "/tmp/runner.toml" || e.Seed != 1234 || e.FPS != 30 {
		t.Errorf("unexpected values: %+v", e)
	}
	if e.Lang != "ja" || e.LogLevel != "debug" || e.LogFile != "/tmp/runner.log" {
		t.Errorf("unexpected values: %+v", e)
	}

	cfg := DefaultRunnerConfig()
	if err := e.Apply(&cfg); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if cfg.Difficulty.Initial != 6 || cfg.Difficulty.Policy != PolicyHome {
		t.Errorf("Apply produced %+v", cfg.Difficulty)
	}
}

func TestParseEnvFromBadNumber(t *testing.T) {
	if _, err := ParseEnvFrom(map[string]string{"RUNNER_SEED": "lots"}); err == nil {
		t.Error("expected error for non-numeric seed")
	}
}

func TestEnvApplyRejectsBadValues(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if err := (Env{Difficulty: 12}).Apply(&cfg); err == nil {
		t.Error("difficulty 12 should be rejected")
	}
	if err := (Env{DifficultyPolicy: "later"}).Apply(&cfg); err == nil {
		t.Error("unknown policy should be rejected")
	}
	if err := (Env{}).Apply(&cfg); err != nil {
		t.Errorf("empty env should apply cleanly: %v", err)
	}
	if cfg.Difficulty.Initial != 1 || cfg.Difficulty.Policy != PolicyAny {
		t.Errorf("rejected values must not change cfg, got %+v", cfg.Difficulty)
	}
}
