package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newLogger(&buf, tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("newLogger(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if logger.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello", "score", 12)

	out := buf.String()
	if !strings.Contains(out, "runner") || !strings.Contains(out, "hello") || !strings.Contains(out, "score=12") {
		t.Errorf("log line = %q", out)
	}
}

func TestConfigCommandPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)
	t.Setenv("RUNNER_DIFFICULTY", "7")
	t.Setenv("RUNNER_DIFFICULTY_POLICY", "home")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--difficulty", "4"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	yaml := out.String()
	// The flag wins over RUNNER_DIFFICULTY; the policy comes from the environment.
	if !strings.Contains(yaml, "initial: 4") {
		t.Errorf("difficulty not taken from the flag:\n%s", yaml)
	}
	if !strings.Contains(yaml, "policy: home") {
		t.Errorf("policy not taken from the environment:\n%s", yaml)
	}
	if !strings.Contains(yaml, "spawn_z: 50") {
		t.Errorf("defaults missing:\n%s", yaml)
	}
}

func TestSimRejectsBadStep(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)

	for _, dt := range []string{"0", "-0.01", "0.5", "NaN"} {
		t.Run(dt, func(t *testing.T) {
			rootCmd.SetOut(io.Discard)
			rootCmd.SetErr(io.Discard)
			rootCmd.SetArgs([]string{"sim", "--runs", "1", "--dt=" + dt})
			t.Cleanup(func() {
				flagDT = 1.0 / 60
				rootCmd.SetOut(nil)
				rootCmd.SetErr(nil)
				rootCmd.SetArgs(nil)
			})

			err := rootCmd.Execute()
			if err == nil || !strings.Contains(err.Error(), "dt must be in") {
				t.Errorf("sim --dt %s error = %v, want a dt range error", dt, err)
			}
		})
	}
}
