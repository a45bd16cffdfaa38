package platformer

import (
	"fmt"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/level"
)

// Layout owns the background, the blocks and the player of one level, and
// steps them frame by frame.
type Layout struct {
	settings   config.Settings
	palette    config.Palette
	thresholds Thresholds

	background core.Rect
	blocks     Group[*Block]
	player     *Player // nil until spawned
	offset     Offset

	// Lowest background position allowed when clamping to the level.
	minScrollX, minScrollY int

	spawnX   int // Player x at spawn, in pixels
	furthest int // Furthest player x reached in level space
	frames   int
}

// NewLayout builds a layout from a map. The map must contain exactly one
// spawn; see level.Map.Scan for the errors returned.
func NewLayout(m level.Map, settings config.Settings) (*Layout, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	palette, err := settings.Palette()
	if err != nil {
		return nil, err
	}
	grid, err := m.Scan()
	if err != nil {
		return nil, fmt.Errorf("platformer: cannot build layout: %w", err)
	}

	tile := settings.Tiles.Size
	levelW := settings.Level.Width
	if levelW == 0 {
		levelW = grid.Cols * tile
	}
	levelH := grid.Rows * tile
	displayW, displayH := settings.Display.Width, settings.Display.Height

	// A clamped camera may scroll down a tall level, so the background has
	// to cover it.
	bgH := displayH
	if settings.Camera.ClampToLevel {
		bgH = max(displayH, levelH)
	}

	l := &Layout{
		settings:   settings,
		palette:    palette,
		thresholds: NewThresholds(displayW, displayH),
		background: core.NewRect(0, 0, levelW, bgH),
		minScrollX: min(0, displayW-levelW),
		minScrollY: min(0, displayH-bgH),
	}

	for _, c := range grid.Blocks {
		l.blocks.Add(NewBlock(c.Col*tile, c.Row*tile, tile, palette.Block))
	}

	l.player = NewPlayer(grid.Spawn.Col*tile, grid.Spawn.Row*tile, tile, settings.Player.Speed, palette.Player)
	l.spawnX = l.player.rect.X
	l.furthest = l.spawnX

	return l, nil
}

// Update runs one frame: shift the background and blocks by the previous
// frame's offset, recompute the offset, then move the player. The camera
// therefore trails the player's own movement by one frame.
func (l *Layout) Update(keys KeyState) {
	l.background = l.background.Translate(l.offset.X, l.offset.Y)
	l.blocks.Shift(l.offset.X, l.offset.Y)

	l.ComputeCameraOffset()

	if l.player != nil {
		l.player.Advance(keys)
		if l.settings.Camera.ClampToLevel {
			l.keepOnScreen()
		}
		if x := l.player.rect.X - l.background.X; x > l.furthest {
			l.furthest = x
		}
	}
	l.frames++
}

// keepOnScreen holds the player inside the display once the camera stops at
// a level edge.
func (l *Layout) keepOnScreen() {
	p := l.player
	p.rect.X = core.Clamp(p.rect.X, 0, l.settings.Display.Width-p.rect.W)
	p.rect.Y = core.Clamp(p.rect.Y, 0, l.settings.Display.Height-p.rect.H)
}

// Draw renders the background, the blocks and the player, in that order.
// The sky is the frontend's clear colour and is not drawn here.
func (l *Layout) Draw(dst Canvas) {
	dst.FillRect(l.background, l.palette.Background)
	l.blocks.Draw(dst)
	if l.player != nil {
		l.player.Draw(dst)
	}
}

// Player returns the player, or nil before spawn.
func (l *Layout) Player() *Player {
	return l.player
}

// Blocks returns the blocks in map order.
func (l *Layout) Blocks() []*Block {
	return l.blocks.Items()
}

// Background returns the background rectangle in display pixels.
func (l *Layout) Background() core.Rect {
	return l.background
}

// Offset returns the offset that the next Update will apply.
func (l *Layout) Offset() Offset {
	return l.offset
}

// Thresholds returns the camera thresholds.
func (l *Layout) Thresholds() Thresholds {
	return l.thresholds
}

// Palette returns the colours the layout draws with.
func (l *Layout) Palette() config.Palette {
	return l.palette
}

// Frames returns the number of Update calls so far.
func (l *Layout) Frames() int {
	return l.frames
}

// Progress returns how many tiles to the right of the spawn the player has
// been, measured in level space.
func (l *Layout) Progress() int {
	return (l.furthest - l.spawnX) / l.settings.Tiles.Size
}
