package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Store     *storage.Store     // May be nil; runs are then not recorded
	Player    string             // Stored with each run
	HoldTicks int                // Ticks a direction stays held after a key press
	Logger    *log.Logger        // Defaults to a discarding logger
	Renderer  *lipgloss.Renderer // Defaults to the stdout renderer
	InSession bool               // B returns to the menu instead of quitting
}

// GameModel is the Bubble Tea model for playing one level.
type GameModel struct {
	game       core.Game
	screen     *core.Screen
	render     *ScreenRenderer
	opts       GameOptions
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	held       *HeldKeys
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game core.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		render:     NewScreenRenderer(opts.Renderer),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		held:       NewHeldKeys(opts.HoldTicks),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case IsDirectional(action):
		m.held.Press(action)
	case action == core.ActionBack:
		m.saveRun()
		m.held.Release()
		if m.opts.InSession {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The display follows the
// terminal, so the level restarts at the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.saveRun()

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Reset(m.config)
	m.gameState = m.game.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// A restart ends the current attempt.
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRun()
		m.held.Release()
	}

	m.held.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current attempt if it simulated any frames.
func (m GameModel) saveRun() {
	st := m.game.State()
	if m.opts.Store == nil || st.Frames == 0 {
		return
	}

	run := storage.Run{
		LevelID:  m.game.ID(),
		Player:   m.opts.Player,
		Frames:   st.Frames,
		Progress: st.Score,
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("could not save run", "level", run.LevelID, "error", err)
		return
	}
	m.opts.Logger.Debug("run saved", "level", run.LevelID, "player", run.Player, "frames", run.Frames, "progress", run.Progress)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".jumper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return m.render.Render(m.screen)
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game.
func Run(game core.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
