package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/platform/tui"
	"github.com/vovakirdan/jumper/internal/storage"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level in the terminal",
	Long: `Start playing the given level, or the first level if none is named.

Terminals do not report key releases, so a direction keeps moving the
player for a few ticks after each press. Hold the key to keep walking.

Controls:
  Arrows/WASD/HJKL  - Move
  P/Esc             - Pause
  R                 - Restart
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Examples:
  jumper play
  jumper play tower
  jumper play meadow --hold-ticks 8
  jumper play corridor --config ./my-jumper.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", 0, "Ticks a key stays held after a press (0 = use settings)")
}

func runPlay(_ *cobra.Command, args []string) error {
	settings, logger, closeLog, err := setup(true)
	if err != nil {
		return err
	}
	defer closeLog()

	levelID, err := levelArg(args)
	if err != nil {
		return err
	}
	game, err := tui.NewLevelGame(levelID, settings)
	if err != nil {
		return err
	}

	width, height := terminalSize(settings)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	holdTicks := settings.Terminal.HoldTicks
	if flagHoldTicks > 0 {
		holdTicks = flagHoldTicks
	}

	logger.Info("starting level", "level", levelID, "width", width, "height", height)
	if err := tui.Run(game, tui.RuntimeConfigFor(settings, width, height), tui.GameOptions{
		Store:     store,
		Player:    localPlayer(),
		HoldTicks: holdTicks,
		Logger:    logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
