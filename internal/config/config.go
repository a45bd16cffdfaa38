// Package config provides YAML-based settings loading for the platformer.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/jumper/internal/core"
)

// Settings is the immutable set of tunables consumed by the simulation and
// the frontends. It is built once at startup and passed by value.
type Settings struct {
	Display  DisplayConfig  `yaml:"display"`
	Tiles    TilesConfig    `yaml:"tiles"`
	Level    LevelConfig    `yaml:"level"`
	Player   PlayerConfig   `yaml:"player"`
	Camera   CameraConfig   `yaml:"camera"`
	Colors   ColorsConfig   `yaml:"colors"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// DisplayConfig defines the raster surface in pixels.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// TilesConfig defines the grid cell size in pixels.
type TilesConfig struct {
	Size int `yaml:"size"`
}

// LevelConfig defines the background extent.
type LevelConfig struct {
	Width int `yaml:"width"` // 0 = map columns * tile size
}

// PlayerConfig defines player movement.
type PlayerConfig struct {
	Speed int `yaml:"speed"` // Pixels per frame
}

// CameraConfig defines the camera-follow behaviour.
type CameraConfig struct {
	Step            int  `yaml:"step"`             // Pixels scrolled per frame
	ClampToLevel    bool `yaml:"clamp_to_level"`   // Stop scrolling at the level edges
	IndependentAxes bool `yaml:"independent_axes"` // Gate speed per axis
}

// ColorsConfig holds "#rrggbb" colours.
type ColorsConfig struct {
	Sky        string `yaml:"sky"`
	Background string `yaml:"background"`
	Block      string `yaml:"block"`
	Player     string `yaml:"player"`
}

// TerminalConfig maps pixels to terminal cells.
type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Pixels per column
	CellHeight int `yaml:"cell_height"` // Pixels per row
	HoldTicks  int `yaml:"hold_ticks"`  // Ticks a key stays held after a press
}

// Palette is the parsed form of ColorsConfig.
type Palette struct {
	Sky        core.Color
	Background core.Color
	Block      core.Color
	Player     core.Color
}

// ErrInvalidSettings is returned by Validate.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Validate checks that every size is usable. A zero speed or camera step
// would pin the player at a threshold with nothing scrolling.
func (s Settings) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"display.width", s.Display.Width},
		{"display.height", s.Display.Height},
		{"display.fps", s.Display.FPS},
		{"tiles.size", s.Tiles.Size},
		{"player.speed", s.Player.Speed},
		{"camera.step", s.Camera.Step},
		{"terminal.cell_width", s.Terminal.CellWidth},
		{"terminal.cell_height", s.Terminal.CellHeight},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidSettings, c.name, c.value)
		}
	}
	if s.Level.Width < 0 || s.Terminal.HoldTicks < 0 {
		return fmt.Errorf("%w: level width and hold ticks must not be negative", ErrInvalidSettings)
	}
	if _, err := s.Palette(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// Palette parses the configured colours.
func (s Settings) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		raw  string
		dst  *core.Color
	}{
		{"sky", s.Colors.Sky, &p.Sky},
		{"background", s.Colors.Background, &p.Background},
		{"block", s.Colors.Block, &p.Block},
		{"player", s.Colors.Player, &p.Player},
	}
	for _, f := range fields {
		c, err := core.ParseColor(f.raw)
		if err != nil {
			return Palette{}, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// TerminalSize returns the display size in terminal cells, used when the
// real terminal size is unknown.
func (s Settings) TerminalSize() (cols, rows int) {
	return s.Display.Width / s.Terminal.CellWidth, s.Display.Height / s.Terminal.CellHeight
}
