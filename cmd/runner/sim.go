package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/i18n"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagRuns     int
	flagDuration time.Duration
	flagDT       float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot games",
	Long: `Play several runs without a terminal UI, steered by the built-in
autopilot. Run i uses seed --seed+i, so results are reproducible. Runs are
simulated concurrently and printed best first.

Examples:
  runner sim
  runner sim --runs 16 --seed 42 --duration 5m
  runner sim --difficulty 10 --dt 0.033`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 4, "Number of runs")
	simCmd.Flags().DurationVar(&flagDuration, "duration", 2*time.Minute, "Simulated time limit per run")
	simCmd.Flags().Float64Var(&flagDT, "dt", 1.0/60, "Seconds per tick")
}

func runSim(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer s.closeLog()

	if flagRuns <= 0 {
		return fmt.Errorf("runs must be positive, got %d", flagRuns)
	}
	if !(flagDT > 0 && flagDT <= s.cfg.Timing.MaxDelta) {
		return fmt.Errorf("dt must be in (0, %g], got %g", s.cfg.Timing.MaxDelta, flagDT)
	}

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer store.Close()

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())

	for i := 0; i < flagRuns; i++ {
		runSeed := seed + int64(i)
		g.Go(func() error {
			return simulateRun(ctx, s, store, runSeed)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	tr, err := i18n.New(s.lang)
	if err != nil {
		return fmt.Errorf("cannot load translations: %w", err)
	}
	return printRuns(store, tr)
}

// simulateRun plays one autopilot run and records it.
func simulateRun(ctx context.Context, s *settings, store *storage.Store, seed int64) error {
	sim := runner.New(s.cfg, seed)
	stats, err := runner.Autoplay(ctx, sim, runner.NewAutopilot(), flagDT, flagDuration)
	if err != nil {
		return err
	}

	if _, err := store.RecordRun(storage.RunRecord{
		Source:     storage.SourceSim,
		Seed:       seed,
		Score:      stats.Score,
		Difficulty: int(stats.Difficulty),
		Cleared:    stats.Cleared,
		Jumps:      stats.Jumps,
		Duration:   stats.Elapsed,
	}); err != nil {
		return err
	}

	s.logger.Info("run finished",
		"seed", seed,
		"score", int(stats.Score),
		"cleared", stats.Cleared,
		"survived", sim.Session() == runner.Playing,
		"elapsed", stats.Elapsed.Round(time.Millisecond),
	)
	return nil
}

// printRuns writes every recorded run, best first, followed by a summary.
func printRuns(store *storage.Store, tr *i18n.Translator) error {
	n, err := store.Count()
	if err != nil {
		return err
	}
	runs, err := store.Top(n)
	if err != nil {
		return err
	}
	sum, err := store.Summary()
	if err != nil {
		return err
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "Seed", tr.T("runs.score"), tr.T("runs.level"), tr.T("runs.cleared"), tr.T("runs.time"))

	for i, r := range runs {
		t.Row(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", int(r.Score)),
			fmt.Sprintf("%d", r.Difficulty),
			fmt.Sprintf("%d", r.Cleared),
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
		)
	}

	fmt.Println(t.Render())
	if len(runs) > 0 {
		fmt.Printf("\nBest: %d (seed %d)  Average: %.1f  Cleared: %d  Time: %s\n",
			int(runs[0].Score), runs[0].Seed, sum.AvgScore, sum.TotalCleared, sum.TotalTime.Round(time.Second))
	}
	return nil
}
