// Package level describes tile maps: the text grid format, its validation,
// YAML level files and the built-in levels.
package level

import (
	"errors"
	"fmt"
)

// Map symbols.
const (
	SymbolEmpty = '0'
	SymbolBlock = '1'
	SymbolSpawn = 'P'
)

// Validation errors. Returned wrapped with row/column context; match with errors.Is.
var (
	ErrMalformedMap   = errors.New("level: malformed map")
	ErrMissingSpawn   = errors.New("level: missing player spawn")
	ErrDuplicateSpawn = errors.New("level: duplicate player spawn")
)

// Map is an ordered sequence of equal-length rows. Any symbol other than
// SymbolBlock and SymbolSpawn is empty space.
type Map []string

// Cell is a tile coordinate.
type Cell struct {
	Row, Col int
}

// Grid is the validated content of a Map.
type Grid struct {
	Rows   int
	Cols   int
	Blocks []Cell // In row-major order
	Spawn  Cell
}

// Scan validates the map and extracts its blocks and the spawn cell.
func (m Map) Scan() (Grid, error) {
	if len(m) == 0 {
		return Grid{}, fmt.Errorf("%w: no rows", ErrMalformedMap)
	}

	cols := len(m[0])
	if cols == 0 {
		return Grid{}, fmt.Errorf("%w: row 0 is empty", ErrMalformedMap)
	}

	g := Grid{Rows: len(m), Cols: cols}
	spawns := 0
	for row, line := range m {
		if len(line) != cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrMalformedMap, row, len(line), cols)
		}
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case SymbolBlock:
				g.Blocks = append(g.Blocks, Cell{Row: row, Col: col})
			case SymbolSpawn:
				spawns++
				if spawns > 1 {
					return Grid{}, fmt.Errorf("%w: second spawn at row %d, column %d", ErrDuplicateSpawn, row, col)
				}
				g.Spawn = Cell{Row: row, Col: col}
			}
		}
	}

	if spawns == 0 {
		return Grid{}, ErrMissingSpawn
	}
	return g, nil
}

// Level is a named map.
type Level struct {
	ID     string
	Name   string
	Map    Map
	Source string // File path, or "builtin"
}

// Validate checks the level metadata and its map.
func (l Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: level has no id", ErrMalformedMap)
	}
	if _, err := l.Map.Scan(); err != nil {
		return fmt.Errorf("level %q: %w", l.ID, err)
	}
	return nil
}

// Title returns the display name, falling back to the ID.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}
