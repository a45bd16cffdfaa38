package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return mm, cmd
}

func TestMenuListsLevelsWithBest(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.Run{LevelID: "meadow", Frames: 90, Progress: 7}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	ids := make([]string, len(m.items))
	for i, item := range m.items {
		ids[i] = item.LevelID
		if item.LevelID == "meadow" && item.Best != 7 {
			t.Errorf("meadow Best = %d, expected 7", item.Best)
		}
	}
	if got := strings.Join(ids, ","); got != "corridor,meadow,tower" {
		t.Errorf("menu levels = %s", got)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	m, _ = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown}) // Stays on the last item
	m, cmd := menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("select should end the menu program")
	}
	if sel := m.Selected(); sel == nil || sel.LevelID != "tower" {
		t.Errorf("Selected() = %+v, expected tower", sel)
	}
}

func TestMenuRunsAndBack(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	runs, _ := menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !runs.WantsRuns() || runs.Selected() != nil {
		t.Error("tab should open the run board")
	}

	back, _ := menuKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if !back.IsQuitting() {
		t.Error("b should quit the menu")
	}
}

func TestRunRows(t *testing.T) {
	created := time.Date(2026, 3, 4, 15, 6, 0, 0, time.UTC)
	rows := RunRows([]storage.Run{
		{Progress: 12, Frames: 300, Player: "alice", CreatedAt: created},
		{Progress: 3, Frames: 40, Player: "bob", CreatedAt: created},
	})
	if len(rows) != 2 {
		t.Fatalf("RunRows() returned %d rows", len(rows))
	}
	want := []string{"#1", "12", "300", "alice", "Mar 04 15:06"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("second rank = %q", rows[1][0])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("meadow", 10); got != "meadow" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("corridor", 5); got != "corr." {
		t.Errorf("truncate() = %q, expected corr.", got)
	}
}

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sm
}

func TestSessionPlayAndReturn(t *testing.T) {
	store := openStore(t)
	settings := config.DefaultSettings()
	m := NewSessionModel(store, settings, RuntimeConfigFor(settings, 80, 24), "alice", nil, nil)
	m.Init()

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("view = %v, expected the game", m.view)
	}

	for range 3 {
		m = sessionSend(t, m, TickMsg(time.Time{}))
	}
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if m.view != viewMenu || m.quitting {
		t.Fatalf("b should return to the menu, view = %v quitting = %v", m.view, m.quitting)
	}

	runs, err := store.TopRuns("meadow", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Player != "alice" || runs[0].Frames != 3 {
		t.Errorf("runs = %+v, expected one 3-frame run by alice", runs)
	}
}

func TestSessionRunBoard(t *testing.T) {
	settings := config.DefaultSettings()
	m := NewSessionModel(openStore(t), settings, RuntimeConfigFor(settings, 100, 30), "bob", nil, nil)

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewRuns {
		t.Fatalf("view = %v, expected the run board", m.view)
	}
	if m.View() == "" {
		t.Error("run board view is empty")
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("esc should return to the menu, view = %v", m.view)
	}
}
