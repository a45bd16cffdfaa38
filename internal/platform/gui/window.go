// Package gui runs the platformer in a desktop window via ebiten. Unlike the
// terminal frontend it sees real key releases, so held keys are polled
// directly every tick.
package gui

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/games/jumper"
	"github.com/vovakirdan/jumper/internal/level"
	"github.com/vovakirdan/jumper/internal/storage"
)

// Held keys per direction.
var directionKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

// Keys that trigger once per press.
var triggerKeys = map[ebiten.Key]core.Action{
	ebiten.KeyP:      core.ActionPause,
	ebiten.KeyR:      core.ActionRestart,
	ebiten.KeyEscape: core.ActionQuit,
	ebiten.KeyQ:      core.ActionQuit,
}

// Options configures a Window.
type Options struct {
	Store  *storage.Store // May be nil; runs are then not recorded
	Player string
	Logger *log.Logger
}

// Window is an ebiten.Game that plays one level.
type Window struct {
	game     *jumper.Game
	settings config.Settings
	sky      color.RGBA
	opts     Options
	ended    bool // The attempt was saved on quit
}

// NewWindow creates a window for the level.
func NewWindow(l level.Level, settings config.Settings, opts Options) (*Window, error) {
	game, err := jumper.New(l, settings)
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Window{
		game:     game,
		settings: settings,
		sky:      RGBA(game.Layout().Palette().Sky),
		opts:     opts,
	}, nil
}

// InputFrame builds the frame for one tick. held reports keys that are down,
// pressed reports keys that went down this tick.
func InputFrame(held, pressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range directionKeys {
		for _, k := range keys {
			if held(k) {
				frame.Set(action)
				break
			}
		}
	}
	for k, action := range triggerKeys {
		if pressed(k) {
			frame.Set(action)
		}
	}
	return frame
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	frame := InputFrame(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	return w.step(frame)
}

func (w *Window) step(frame core.InputFrame) error {
	if frame.Has(core.ActionQuit) {
		w.saveRun()
		w.ended = true
		return ebiten.Termination
	}
	if frame.Has(core.ActionRestart) {
		w.saveRun()
	}
	w.game.Step(frame)
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.sky)
	w.game.Layout().Draw(NewImageCanvas(screen))

	st := w.game.State()
	hud := w.game.Title()
	if st.Paused {
		hud += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
}

// Layout implements ebiten.Game. The logical screen is the configured display.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.settings.Display.Width, w.settings.Display.Height
}

// State returns the game state.
func (w *Window) State() core.GameState {
	return w.game.State()
}

func (w *Window) saveRun() {
	st := w.game.State()
	if w.opts.Store == nil || st.Frames == 0 {
		return
	}
	run := storage.Run{
		LevelID:  w.game.ID(),
		Player:   w.opts.Player,
		Frames:   st.Frames,
		Progress: st.Score,
	}
	if _, err := w.opts.Store.SaveRun(run); err != nil {
		w.opts.Logger.Warn("could not save run", "level", run.LevelID, "error", err)
		return
	}
	w.opts.Logger.Debug("run saved", "level", run.LevelID, "frames", run.Frames, "progress", run.Progress)
}

// Run opens a window and plays the level until the player quits or closes it.
func Run(l level.Level, settings config.Settings, opts Options) error {
	w, err := NewWindow(l, settings, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(settings.Display.Width, settings.Display.Height)
	ebiten.SetWindowTitle("Jumper - " + l.Title())
	ebiten.SetTPS(settings.Display.FPS)

	w.opts.Logger.Info("starting window", "level", l.ID, "width", settings.Display.Width, "height", settings.Display.Height, "fps", settings.Display.FPS)
	err = ebiten.RunGame(w)
	if err == nil && !w.ended {
		// Closing the window also ends the attempt.
		w.saveRun()
	}
	return err
}
