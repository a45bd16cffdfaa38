package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/games/jumper"
	"github.com/vovakirdan/jumper/internal/registry"
	"github.com/vovakirdan/jumper/internal/storage"
)

// NewLevelGame creates the game for a registered level.
func NewLevelGame(levelID string, settings config.Settings) (core.Game, error) {
	l, err := registry.Get(levelID)
	if err != nil {
		return nil, err
	}
	return jumper.New(l, settings)
}

// RuntimeConfigFor builds the runtime config for a terminal of the given size.
func RuntimeConfigFor(settings config.Settings, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.Display.FPS,
	}
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewRuns
)

// SessionModel manages the full session flow: menu -> game or runs -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store    *storage.Store
	settings config.Settings
	config   core.RuntimeConfig
	username string
	renderer *lipgloss.Renderer
	logger   *log.Logger
	view     sessionView
	menu     MenuModel
	game     GameModel
	runs     RunBoardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, settings config.Settings, cfg core.RuntimeConfig, username string, renderer *lipgloss.Renderer, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:    store,
		settings: settings,
		config:   cfg,
		username: username,
		renderer: renderer,
		logger:   logger,
		menu:     NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewRuns:
		return m.updateRuns(msg)
	default:
		return m.updateMenu(msg)
	}
}

// backToMenu rebuilds the menu so best runs are current.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode. The menu's own tea.Quit is
// dropped whenever the session moves on to another view.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsRuns():
		m.view = viewRuns
		m.runs = NewRunBoardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.runs.Init()

	case m.menu.Selected() != nil:
		levelID := m.menu.Selected().LevelID
		game, err := NewLevelGame(levelID, m.settings)
		if err != nil {
			m.logger.Warn("cannot start level", "level", levelID, "error", err)
			return m.backToMenu()
		}

		m.game = NewGameModel(game, m.config, GameOptions{
			Store:     m.store,
			Player:    m.username,
			HoldTicks: m.settings.Terminal.HoldTicks,
			Logger:    m.logger,
			Renderer:  m.renderer,
			InSession: true,
		})
		m.view = viewGame
		m.logger.Info("level started", "user", m.username, "level", levelID)
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.BackToMenu() {
		return m.backToMenu()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateRuns handles updates when the run board is shown.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.runs.Update(msg)
	if runsModel, ok := newModel.(RunBoardModel); ok {
		m.runs = runsModel
	}

	if m.runs.IsGoingBack() {
		return m.backToMenu()
	}

	if m.runs.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewRuns:
		return m.runs.View()
	default:
		return m.menu.View()
	}
}
