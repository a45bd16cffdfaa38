package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jumper/internal/registry"
	"github.com/vovakirdan/jumper/internal/storage"
)

const maxRuns = 100 // Runs loaded per level

// RunBoardKeyMap defines the key bindings for the run board.
type RunBoardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp implements help.KeyMap.
func (k RunBoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevLevel, k.NextLevel, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k RunBoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultRunBoardKeyMap returns default key bindings.
func DefaultRunBoardKeyMap() RunBoardKeyMap {
	return RunBoardKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		NextLevel: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("right", "next level")),
		PrevLevel: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("left", "prev level")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// RunBoardModel lists the best runs of one level at a time.
type RunBoardModel struct {
	levels    []registry.LevelInfo
	cursor    int // Index of the shown level
	store     *storage.Store
	runs      []storage.Run
	stats     *storage.LevelStats // nil when unplayed or without a store
	table     table.Model
	help      help.Model
	keys      RunBoardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRunBoardModel creates a run board showing the first level.
func NewRunBoardModel(store *storage.Store, width, height int) RunBoardModel {
	m := RunBoardModel{
		levels: registry.List(),
		store:  store,
		keys:   DefaultRunBoardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	if len(m.levels) > 0 {
		m.loadRuns(m.levels[0].ID)
	}
	return m
}

func (m *RunBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Progress", Width: 9},
		{Title: "Frames", Width: 8},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Title, tabs, stats, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the best runs and the totals of a level.
func (m *RunBoardModel) loadRuns(levelID string) {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(levelID, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetLevelStats(levelID); err == nil && stats.Runs > 0 {
			m.stats = stats
		}
	}
	m.table.SetRows(RunRows(m.runs))
	m.table.GotoTop()
}

// RunRows formats runs as table rows, ranked in the given order.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Progress),
			fmt.Sprintf("%d", r.Frames),
			r.Player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init implements tea.Model.
func (m RunBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run board.
func (m RunBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			m.moveLevel(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			m.moveLevel(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// moveLevel cycles the shown level by delta.
func (m *RunBoardModel) moveLevel(delta int) {
	if len(m.levels) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.levels)) % len(m.levels)
	m.loadRuns(m.levels[m.cursor].ID)
}

// View renders the run board.
func (m RunBoardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("BEST RUNS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.levelTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.stats != nil {
		line := fmt.Sprintf("Runs: %d  Best: %d  Average: %.1f  Frames played: %d",
			m.stats.Runs, m.stats.BestProgress, m.stats.AvgProgress, m.stats.TotalFrames)
		b.WriteString(dim.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))

	return b.String()
}

// levelTabs renders the level names with the shown one highlighted. When they
// do not fit, only the shown level is named.
func (m RunBoardModel) levelTabs() string {
	if len(m.levels) == 0 {
		return "No levels"
	}

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	tabs := make([]string, len(m.levels))
	for i, l := range m.levels {
		name := " " + truncate(l.Title, 12) + " "
		if i == m.cursor {
			tabs[i] = activeStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.levels[m.cursor].Title)
	}
	return line
}

func (m RunBoardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay the level to set one!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// Level returns the ID of the shown level, or "" when there are none.
func (m RunBoardModel) Level() string {
	if len(m.levels) == 0 {
		return ""
	}
	return m.levels[m.cursor].ID
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m RunBoardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m RunBoardModel) IsQuitting() bool {
	return m.quitting
}

// RunRunBoard runs the run board screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRunBoard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewRunBoardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunBoardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
