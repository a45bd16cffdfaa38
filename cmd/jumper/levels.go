package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/level"
	"github.com/vovakirdan/jumper/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows every built-in level and any loaded with --levels.

Examples:
  jumper levels
  jumper levels --levels ./levels
  jumper levels export meadow > meadow.yaml`,
	RunE: runLevels,
}

var levelsExportCmd = &cobra.Command{
	Use:   "export <level>",
	Short: "Print a level as YAML",
	Long: `Writes the level in the level file format, ready to be edited and
loaded back with --levels.`,
	Args: cobra.ExactArgs(1),
	RunE: runLevelsExport,
}

func init() {
	levelsCmd.AddCommand(levelsExportCmd)
}

func runLevels(_ *cobra.Command, _ []string) error {
	_, _, closeLog, err := setup(false)
	if err != nil {
		return err
	}
	defer closeLog()

	levels := registry.List()
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxTitleLen = max(maxTitleLen, len(l.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Source")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")
	for _, l := range levels {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, l.ID, maxTitleLen, l.Title, l.Source)
	}

	fmt.Println()
	fmt.Println("Run 'jumper play <id>' to play a level.")
	return nil
}

func runLevelsExport(_ *cobra.Command, args []string) error {
	_, _, closeLog, err := setup(false)
	if err != nil {
		return err
	}
	defer closeLog()

	l, err := registry.Get(args[0])
	if err != nil {
		return err
	}
	data, err := level.MarshalYAML(l)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
