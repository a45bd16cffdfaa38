package main

import (
	"os"
	"testing"

	"golang.org/x/term"

	"github.com/vovakirdan/jumper/internal/config"
)

func TestTerminalSizeFallback(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	// 800x480 at 10x20 pixel cells, plus the HUD row.
	if w, h := terminalSize(config.DefaultSettings()); w != 80 || h != 25 {
		t.Errorf("terminalSize() = %dx%d, expected 80x25", w, h)
	}
}

func TestLevelArg(t *testing.T) {
	if id, err := levelArg(nil); err != nil || id != "corridor" {
		t.Errorf("levelArg(nil) = %q, %v; expected the first level", id, err)
	}
	if id, err := levelArg([]string{"tower"}); err != nil || id != "tower" {
		t.Errorf("levelArg(tower) = %q, %v", id, err)
	}
	if _, err := levelArg([]string{"nowhere"}); err == nil {
		t.Error("levelArg() should reject unknown levels")
	}
}
