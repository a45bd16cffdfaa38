// jumper is a small side-scrolling platformer for the terminal, a desktop
// window or remote play over SSH.
//
// Usage:
//
//	jumper levels            - List available levels
//	jumper play [level]      - Play a level in the terminal
//	jumper gui [level]       - Play a level in a desktop window
//	jumper menu              - Pick levels interactively
//	jumper serve             - Start SSH server for remote play
//	jumper runs [level]      - Show recorded runs
//
// Global flags:
//
//	--config <path>   - Settings YAML (default: search ~/.jumper/configs, ./configs)
//	--levels <dir>    - Extra directory of level YAML files
//	--db <path>       - Set database path (default: ~/.jumper/runs.db)
//	--fps <rate>      - Override the tick rate from the settings
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/games/jumper"
	"github.com/vovakirdan/jumper/internal/registry"
)

var (
	// Global flags
	flagConfig  string
	flagLevels  string
	flagDBPath  string
	flagFPS     int
	flagVerbose bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - a tiny side-scroller",
	Long: `Jumper is a minimal side-scrolling platformer. Walk the player across
the level; the camera follows once you cross a quarter of the screen.

Available commands:
  levels   - Show all available levels
  play     - Play a level in the terminal
  gui      - Play a level in a desktop window
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  runs     - View recorded runs

Examples:
  jumper levels
  jumper play meadow
  jumper gui tower --fps 30
  jumper menu --levels ./levels
  jumper serve --ssh :2222
  jumper runs meadow`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of extra level YAML files")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumper/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use settings)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to a file (terminal play logs nowhere otherwise)")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}

// newLogger builds the command logger. Full-screen terminal commands own
// stdout and stderr, so they only log when --log-file is set.
func newLogger(fullscreen bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case fullscreen:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumper",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadSettings reads the settings and applies flag overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, err
	}
	if flagFPS > 0 {
		settings.Display.FPS = flagFPS
	}
	return settings, nil
}

// loadLevels registers the --levels directory, if any. Broken files are
// logged and skipped.
func loadLevels(logger *log.Logger) error {
	if flagLevels == "" {
		return nil
	}
	root, err := config.ExpandHome(flagLevels)
	if err != nil {
		return err
	}
	added, issues, err := registry.LoadDir(root)
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}
	for _, issue := range issues {
		logger.Warn("skipping level file", "path", issue.Path, "error", issue.Err)
	}
	logger.Debug("levels loaded", "dir", root, "added", added)
	return nil
}

// setup runs the shared startup for a command.
func setup(fullscreen bool) (config.Settings, *log.Logger, func(), error) {
	logger, closeFn, err := newLogger(fullscreen)
	if err != nil {
		return config.Settings{}, nil, nil, err
	}
	settings, err := loadSettings()
	if err != nil {
		closeFn()
		return config.Settings{}, nil, nil, err
	}
	if err := loadLevels(logger); err != nil {
		closeFn()
		return config.Settings{}, nil, nil, err
	}
	return settings, logger, closeFn, nil
}

// terminalSize returns the size of the terminal on stdout. When there is
// none, the configured display in cells plus the HUD row is used.
func terminalSize(settings config.Settings) (width, height int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	cols, rows := settings.TerminalSize()
	return cols, rows + jumper.HUDRows
}

// localPlayer names the player for locally recorded runs.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

// levelArg returns the level named on the command line or the first one.
func levelArg(args []string) (string, error) {
	if len(args) == 0 {
		id := registry.First()
		if id == "" {
			return "", fmt.Errorf("no levels available")
		}
		return id, nil
	}
	if !registry.Exists(args[0]) {
		return "", fmt.Errorf("unknown level %q, run 'jumper levels' to see available levels", args[0])
	}
	return args[0], nil
}
