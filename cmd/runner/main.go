// runner is a three-lane endless runner played in the terminal.
//
// Usage:
//
//	runner play      - Play interactively
//	runner sim       - Run headless autopilot games and print the results
//	runner config    - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>                 - Set tick rate (default: 60)
//	--seed <value>               - Set RNG seed for reproducible runs
//	--config <path>              - Load configuration from a YAML or TOML file
//	--difficulty <1-10>          - Starting difficulty
//	--difficulty-policy any|home - When difficulty may be changed
//	--lang en|ja                 - Interface language
//	--log-file <path>            - Write logs to a file
//	--log-level <level>          - debug, info, warn or error
//
// Every global flag can also be set through a RUNNER_* environment variable;
// flags win when both are given.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS              int
	flagSeed             int64
	flagConfig           string
	flagDifficulty       int
	flagDifficultyPolicy string
	flagLang             string
	flagLogFile          string
	flagLogLevel         string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - dodge obstacles in your terminal",
	Long: `Lane Runner is a three-lane endless runner. Switch lanes, jump and
crouch to dodge obstacles while the game speeds up with your score.

Available commands:
  play     - Play interactively
  sim      - Run headless autopilot games
  config   - Print the effective configuration

Examples:
  runner play
  runner play --difficulty 5 --lang ja
  runner sim --runs 8 --seed 42
  runner config --config ./runner.toml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	pf.IntVar(&flagDifficulty, "difficulty", 0, "Starting difficulty 1-10 (0 = from config)")
	pf.StringVar(&flagDifficultyPolicy, "difficulty-policy", "", "When difficulty may change: any or home")
	pf.StringVar(&flagLang, "lang", "en", "Interface language: en or ja")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
