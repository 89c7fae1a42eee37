package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/i18n"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start the runner on the home screen.

Controls:
  Left/A, Right/D    - Change lane
  Up/W/Space         - Jump
  Down/S             - Crouch
  Mouse drag         - Swipe (left, right, up to jump, down to crouch)
  Enter              - Start
  Tab                - Cycle difficulty 1-10
  P/Esc              - Pause
  R                  - Restart (after game over)
  H                  - Home (when paused or after game over)
  Q/Ctrl+C           - Quit

Runs are kept in memory for the current session only.

Examples:
  runner play
  runner play --difficulty 7
  runner play --lang ja --log-file runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal, so logs only go to a file.
	s, err := resolveSettings(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer s.closeLog()

	tr, err := i18n.New(s.lang)
	if err != nil {
		return fmt.Errorf("cannot load translations: %w", err)
	}

	store, err := storage.OpenMemory()
	if err != nil {
		s.logger.Warn("run history unavailable", "error", err)
		// Continue without storage
		store = nil
	} else {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s.logger.Info("starting", "lang", tr.Lang(), "difficulty", s.cfg.Difficulty.Initial, "policy", s.cfg.Difficulty.Policy)

	return tui.Run(tui.Options{
		Config: s.cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: s.fps,
			Seed:     s.seed,
		},
		Store:      store,
		Translator: tr,
		Logger:     s.logger,
	})
}
