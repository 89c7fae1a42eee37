package main

import (
	"io"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML, after the
config file, RUNNER_* variables and flags have been applied.

Config files are searched in this order:
  --config <path>
  ~/.runner/configs/runner.yaml
  ~/.runner/configs/runner.toml
  ./configs/runner.yaml
  ./configs/runner.toml
  built-in defaults

Examples:
  runner config > my-runner.yaml
  runner config --difficulty 4 --difficulty-policy home`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer s.closeLog()

	out, err := s.cfg.YAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
