// Package jumper adapts the platformer simulation to the terminal platform.
// One Game plays one level; the level ID doubles as the run storage key.
package jumper

import (
	"fmt"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/level"
	"github.com/vovakirdan/jumper/internal/platformer"
)

// HUDRows is the number of screen rows reserved below the play field.
const HUDRows = 1

// Game implements core.Game for one level.
type Game struct {
	level    level.Level
	settings config.Settings // as configured
	active   config.Settings // display sized by the last Reset
	layout   *platformer.Layout
	paused   bool
}

// New creates a game for the level. The returned game is already reset with
// the display taken from settings.
func New(l level.Level, settings config.Settings) (*Game, error) {
	layout, err := platformer.NewLayout(l.Map, settings)
	if err != nil {
		return nil, fmt.Errorf("jumper: level %q: %w", l.ID, err)
	}
	return &Game{
		level:    l,
		settings: settings,
		active:   settings,
		layout:   layout,
	}, nil
}

// ID returns the level ID.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level's display name.
func (g *Game) Title() string {
	return g.level.Title()
}

// Reset rebuilds the level. When cfg carries a screen size, the display is
// resized to the play field that fits it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	s := g.settings
	if cfg.ScreenW > 0 && cfg.ScreenH > HUDRows {
		s.Display.Width = cfg.ScreenW * s.Terminal.CellWidth
		s.Display.Height = (cfg.ScreenH - HUDRows) * s.Terminal.CellHeight
	}
	if cfg.TickRate > 0 {
		s.Display.FPS = cfg.TickRate
	}

	g.active = s
	g.restart()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.layout.Update(KeysFromInput(in))
	return core.StepResult{State: g.State()}
}

// restart rebuilds the layout with the active settings. The map was
// validated in New, so only a size rejected by Validate can fail here, and
// then the previous layout is kept.
func (g *Game) restart() {
	if layout, err := platformer.NewLayout(g.level.Map, g.active); err == nil {
		g.layout = layout
	}
	g.paused = false
}

// Render draws the play field and the HUD.
func (g *Game) Render(dst *core.Screen) {
	p := g.layout.Palette()
	dst.Fill(core.Cell{Rune: ' ', Bg: p.Sky})

	g.layout.Draw(NewCellCanvas(dst, g.active.Terminal.CellWidth, g.active.Terminal.CellHeight))

	hudY := dst.Height() - HUDRows
	if hudY < 0 {
		return
	}
	if g.paused {
		dst.DrawTextCentered(hudY/2, " PAUSED ")
	}

	dst.FillRect(core.NewRect(0, hudY, dst.Width(), HUDRows), core.Cell{Rune: ' '})
	hud := fmt.Sprintf(" %s  Progress: %d  Frames: %d", g.Title(), g.layout.Progress(), g.layout.Frames())
	if g.paused {
		hud += "  PAUSED"
	}
	dst.DrawText(0, hudY, hud)
}

// State returns the current game state. The score is the level progress in tiles.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.layout.Progress(),
		Frames: g.layout.Frames(),
		Paused: g.paused,
	}
}

// Layout exposes the underlying simulation.
func (g *Game) Layout() *platformer.Layout {
	return g.layout
}

// KeysFromInput converts the directional actions of a frame to held keys.
func KeysFromInput(in core.InputFrame) platformer.Keys {
	return platformer.Keys{
		platformer.KeyLeft:  in.Has(core.ActionLeft),
		platformer.KeyRight: in.Has(core.ActionRight),
		platformer.KeyUp:    in.Has(core.ActionUp),
		platformer.KeyDown:  in.Has(core.ActionDown),
	}
}
