// Package registry provides a global registry of playable levels.
// Built-in levels register themselves in init(); level files found on disk
// are added at startup, allowing the frontends to discover levels without
// hardcoded lists.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/jumper/internal/level"
)

// ErrDuplicate is returned by Add when the ID is taken.
var ErrDuplicate = errors.New("registry: level already registered")

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID     string
	Title  string
	Source string
}

var (
	levels = make(map[string]level.Level)
	mu     sync.RWMutex
)

// Register adds a level to the registry.
// Typically called from init(). Panics if the level is invalid or its ID is taken.
func Register(l level.Level) {
	if err := Add(l); err != nil {
		panic(err)
	}
}

// Add validates and adds a level to the registry.
func Add(l level.Level) error {
	if err := l.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := levels[l.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, l.ID)
	}
	levels[l.ID] = l
	return nil
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(levels))
	for _, l := range levels {
		result = append(result, LevelInfo{
			ID:     l.ID,
			Title:  l.Title(),
			Source: l.Source,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a level by its ID.
func Get(id string) (level.Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := levels[id]
	if !ok {
		return level.Level{}, fmt.Errorf("registry: unknown level %q", id)
	}
	return l, nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := levels[id]
	return ok
}

// First returns the ID of the first level in List order, or "" if empty.
func First() string {
	if l := List(); len(l) > 0 {
		return l[0].ID
	}
	return ""
}

func init() {
	for _, l := range level.Builtin() {
		Register(l)
	}
}
