package jumper

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/level"
	"github.com/vovakirdan/jumper/internal/platformer"
)

func testLevel() level.Level {
	return level.Level{
		ID:   "test",
		Name: "Test Level",
		Map: level.Map{
			"P000000000",
			"0010000000",
		},
	}
}

func newGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(testLevel(), config.DefaultSettings())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func inputWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestNewRejectsBadMap(t *testing.T) {
	l := testLevel()
	l.Map = level.Map{"0000"}
	if _, err := New(l, config.DefaultSettings()); !errors.Is(err, level.ErrMissingSpawn) {
		t.Errorf("New() = %v, expected ErrMissingSpawn", err)
	}
}

func TestIdentity(t *testing.T) {
	g := newGame(t)
	if g.ID() != "test" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "test")
	}
	if g.Title() != "Test Level" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Test Level")
	}
}

func TestResetSizesDisplayFromScreen(t *testing.T) {
	g := newGame(t)
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 13, TickRate: 30})

	// 40x12 cells of 10x20 pixels.
	want := platformer.NewThresholds(400, 240)
	if got := g.Layout().Thresholds(); got != want {
		t.Errorf("Thresholds() = %+v, expected %+v", got, want)
	}
}

func TestStepMovesPlayer(t *testing.T) {
	g := newGame(t)

	res := g.Step(inputWith(core.ActionRight))
	if x := g.Layout().Player().Bounds().X; x != 5 {
		t.Errorf("player x = %d, expected 5", x)
	}
	if res.State.Frames != 1 {
		t.Errorf("Frames = %d, expected 1", res.State.Frames)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newGame(t)

	if st := g.Step(inputWith(core.ActionPause)).State; !st.Paused {
		t.Fatal("expected paused after pause action")
	}
	g.Step(inputWith(core.ActionRight))
	if x := g.Layout().Player().Bounds().X; x != 0 {
		t.Errorf("paused game moved player to x = %d", x)
	}
	if st := g.Step(inputWith(core.ActionPause, core.ActionRight)).State; st.Paused {
		t.Fatal("expected running after second pause action")
	}
	if x := g.Layout().Player().Bounds().X; x != 5 {
		t.Errorf("player x = %d, expected 5 after resume", x)
	}
}

func TestScoreIsProgressAndRestartClears(t *testing.T) {
	g := newGame(t)
	for range 8 {
		g.Step(inputWith(core.ActionRight))
	}
	st := g.State()
	if st.Score != 1 {
		t.Errorf("Score = %d, expected 1 after 40 pixels", st.Score)
	}
	if st.Frames != 8 {
		t.Errorf("Frames = %d, expected 8", st.Frames)
	}

	st = g.Step(inputWith(core.ActionRestart)).State
	if st.Score != 0 || st.Frames != 0 {
		t.Errorf("after restart: %+v, expected zero score and frames", st)
	}
	if x := g.Layout().Player().Bounds().X; x != 0 {
		t.Errorf("player x = %d, expected spawn after restart", x)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t)
	p := g.Layout().Palette()
	s := core.NewScreen(80, 25)
	g.Render(s)

	tests := []struct {
		name string
		x, y int
		want core.Color
	}{
		{"player top-left", 0, 0, p.Player},
		{"player bottom-right", 3, 1, p.Player},
		{"block", 8, 2, p.Block},
		{"block bottom-right", 11, 3, p.Block},
		{"background", 30, 5, p.Background},
		{"sky beyond level", 60, 5, p.Sky},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.GetCell(tc.x, tc.y).Bg; got != tc.want {
				t.Errorf("cell (%d, %d) bg = %s, expected %s", tc.x, tc.y, got.Hex(), tc.want.Hex())
			}
		})
	}

	hud := s.Row(24)
	if !strings.Contains(hud, "Test Level") || !strings.Contains(hud, "Progress: 0") {
		t.Errorf("HUD row = %q", hud)
	}
}

func TestRenderShowsPause(t *testing.T) {
	g := newGame(t)
	g.Step(inputWith(core.ActionPause))
	s := core.NewScreen(80, 25)
	g.Render(s)
	if !strings.Contains(s.Row(24), "PAUSED") {
		t.Errorf("HUD row = %q, expected PAUSED", s.Row(24))
	}
	if row := s.Row(12); row[36:44] != " PAUSED " {
		t.Errorf("banner row = %q, expected PAUSED centred", row)
	}
}

func TestCellRect(t *testing.T) {
	c := NewCellCanvas(core.NewScreen(80, 24), 10, 20)
	tests := []struct {
		name string
		in   core.Rect
		want core.Rect
	}{
		{"aligned tile", core.NewRect(40, 40, 40, 40), core.NewRect(4, 2, 4, 2)},
		{"centre sampling", core.NewRect(6, 0, 10, 20), core.NewRect(1, 0, 1, 1)},
		{"partially off-screen", core.NewRect(-15, 0, 40, 20), core.NewRect(0, 0, 2, 1)},
		{"fully off-screen", core.NewRect(-100, -100, 40, 40), core.NewRect(0, 0, 0, 0)},
		{"clipped at right", core.NewRect(780, 0, 40, 20), core.NewRect(78, 0, 2, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.CellRect(tc.in); got != tc.want {
				t.Errorf("CellRect(%+v) = %+v, expected %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestKeysFromInput(t *testing.T) {
	keys := KeysFromInput(inputWith(core.ActionLeft, core.ActionDown, core.ActionPause))
	if !keys.Held(platformer.KeyLeft) || !keys.Held(platformer.KeyDown) {
		t.Errorf("keys = %v, expected left and down held", keys)
	}
	if keys.Held(platformer.KeyRight) || keys.Held(platformer.KeyUp) {
		t.Errorf("keys = %v, expected right and up released", keys)
	}
}
