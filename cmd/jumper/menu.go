package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/platform/tui"
	"github.com/vovakirdan/jumper/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start jumper in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
After a level ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Tab          - Recorded runs
  Q/B          - Quit

Examples:
  jumper menu
  jumper menu --fps 30
  jumper menu --levels ./levels --db ./runs.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	settings, logger, closeLog, err := setup(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	width, height := terminalSize(settings)
	cfg := tui.RuntimeConfigFor(settings, width, height)
	opts := tui.GameOptions{
		Store:     store,
		Player:    localPlayer(),
		HoldTicks: settings.Terminal.HoldTicks,
		Logger:    logger,
	}

	// Menu loop
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsRuns {
			goBack, err := tui.RunRunBoard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := tui.NewLevelGame(result.LevelID, settings)
		if err != nil {
			logger.Warn("cannot start level", "level", result.LevelID, "error", err)
			continue
		}
		if err := tui.Run(game, cfg, opts); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
