package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadIssue records a file that was skipped by LoadAll.
type LoadIssue struct {
	Path string
	Err  error
}

// Loader reads level files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files, sorted by ID.
// Invalid files are skipped and reported as issues.
func (l *Loader) LoadAll() ([]Level, []LoadIssue, error) {
	var (
		levels []Level
		issues []LoadIssue
	)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isLevelFile(path) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			issues = append(issues, LoadIssue{Path: path, Err: err})
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("level: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, issues, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("level: reading file %s: %w", path, err)
	}

	lvl, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("%s: %w", path, err)
	}
	lvl.Source = path
	return lvl, nil
}

func isLevelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
