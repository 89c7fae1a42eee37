package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFromPath picks the encoding from a file extension. Anything that is
// not .toml is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses configuration data on top of the defaults, so a file only
// needs to list the values it changes.
func Decode(data []byte, format Format) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("toml decode: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	return cfg, nil
}

// LoadFile reads and validates a single configuration file.
func LoadFile(path string) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.{yaml,toml} ->
// ./configs/runner.{yaml,toml} -> embedded default.
// Only an explicit customPath produces an error; broken files found on the
// search path are skipped.
func Load(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Decode(defaultRunnerYAML, FormatYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths lists the candidate config files in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "runner.yaml"),
			filepath.Join(dir, "runner.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "runner.yaml"),
		filepath.Join("configs", "runner.toml"),
	)
}

// userConfigDir returns ~/.runner/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs")
}
