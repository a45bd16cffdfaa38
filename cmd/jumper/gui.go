package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/platform/gui"
	"github.com/vovakirdan/jumper/internal/registry"
	"github.com/vovakirdan/jumper/internal/storage"
)

var guiCmd = &cobra.Command{
	Use:   "gui [level]",
	Short: "Play a level in a desktop window",
	Long: `Open a window the size of the configured display and play the level.

Controls:
  Arrows/WASD  - Move while held
  P            - Pause
  R            - Restart
  Esc/Q        - Quit

Examples:
  jumper gui
  jumper gui tower
  jumper gui meadow --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGUI,
}

func runGUI(_ *cobra.Command, args []string) error {
	settings, logger, closeLog, err := setup(false)
	if err != nil {
		return err
	}
	defer closeLog()

	levelID, err := levelArg(args)
	if err != nil {
		return err
	}
	l, err := registry.Get(levelID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	return gui.Run(l, settings, gui.Options{
		Store:  store,
		Player: localPlayer(),
		Logger: logger,
	})
}
