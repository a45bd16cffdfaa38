package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumper/internal/storage"
)

func boardKey(t *testing.T, m RunBoardModel, msg tea.KeyMsg) RunBoardModel {
	t.Helper()
	next, _ := m.Update(msg)
	bm, ok := next.(RunBoardModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return bm
}

func TestRunBoardCyclesLevels(t *testing.T) {
	m := NewRunBoardModel(nil, 80, 24)
	if m.Level() != "corridor" {
		t.Fatalf("Level() = %q, expected corridor", m.Level())
	}

	m = boardKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Level() != "meadow" {
		t.Errorf("after right Level() = %q, expected meadow", m.Level())
	}
	m = boardKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = boardKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Level() != "tower" {
		t.Errorf("wrapping left Level() = %q, expected tower", m.Level())
	}
}

func TestRunBoardShowsRunsAndStats(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Run{
		{LevelID: "corridor", Player: "alice", Frames: 120, Progress: 9},
		{LevelID: "corridor", Player: "bob", Frames: 60, Progress: 3},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewRunBoardModel(store, 100, 30)
	if len(m.runs) != 2 || m.runs[0].Player != "alice" {
		t.Fatalf("runs = %+v, expected alice first", m.runs)
	}
	view := m.View()
	if !strings.Contains(view, "Runs: 2  Best: 9") {
		t.Errorf("View() missing stats line:\n%s", view)
	}

	m = boardKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.stats != nil || len(m.runs) != 0 {
		t.Errorf("unplayed level shows stats %+v and runs %+v", m.stats, m.runs)
	}
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty level should show the placeholder")
	}
}
