package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/registry"
	"github.com/vovakirdan/jumper/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "Show recorded runs",
	Long: `Display the best runs for a level, or the most recent runs and a
per-level summary when no level is named. Runs rank by progress, then
by fewest frames.

Examples:
  jumper runs
  jumper runs meadow
  jumper runs meadow --limit 3
  jumper runs meadow --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the recorded runs of the level")
}

func runRuns(_ *cobra.Command, args []string) error {
	_, logger, closeLog, err := setup(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagRunsClear {
			return fmt.Errorf("--clear needs a level")
		}
		return printSummary(store)
	}

	levelID := args[0]
	if !registry.Exists(levelID) {
		// Runs outlive level files, so an unknown ID is only a warning.
		logger.Warn("level is not registered", "level", levelID)
	}

	if flagRunsClear {
		if err := store.ClearRuns(levelID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s\n", levelID)
		return nil
	}

	runs, err := store.TopRuns(levelID, flagRunsLimit)
	if err != nil {
		return err
	}

	title := levelID
	if l, err := registry.Get(levelID); err == nil {
		title = l.Title()
	}
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'jumper play %s' to record the first run!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %s\n", "Rank", "Progress", "Frames", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %s\n", "----", "--------", "------", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %-12s  %s\n", i+1, r.Progress, r.Frames, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetLevelStats(levelID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Frames played: %d\n",
			stats.Runs, stats.BestProgress, stats.AvgProgress, stats.TotalFrames)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllLevelStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-12s  %-5s  %-5s  %s\n", "Level", "Runs", "Best", "Last played")
	fmt.Printf("  %-12s  %-5s  %-5s  %s\n", "-----", "----", "----", "-----------")
	for _, info := range registry.List() {
		stats, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s  %-5d  %-5d  %s\n", info.ID, stats.Runs, stats.BestProgress, stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Println()
	for _, r := range recent {
		fmt.Printf("  %-12s  progress %-5d  frames %-6d  %-12s  %s\n",
			r.LevelID, r.Progress, r.Frames, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
