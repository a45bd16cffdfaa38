package tui

import (
	"testing"

	"github.com/vovakirdan/jumper/internal/core"
)

func applied(h *HeldKeys) core.InputFrame {
	f := core.NewInputFrame()
	h.Apply(&f)
	return f
}

func TestHeldKeysExpire(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionRight)

	for tick := range 3 {
		if f := applied(h); !f.Has(core.ActionRight) {
			t.Fatalf("tick %d: right should still be held", tick)
		}
	}
	if f := applied(h); f.Has(core.ActionRight) {
		t.Error("right should be released after 3 ticks")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.ActionLeft)
	applied(h)
	h.Press(core.ActionLeft) // auto-repeat
	applied(h)
	if f := applied(h); !f.Has(core.ActionLeft) {
		t.Error("repeat should extend the hold")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys(5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)

	f := applied(h)
	if f.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Has(core.ActionRight) || !f.Has(core.ActionUp) {
		t.Errorf("expected right and up held, got %v", f.Actions)
	}
}

func TestHeldKeysIgnoresTriggers(t *testing.T) {
	h := NewHeldKeys(5)
	h.Press(core.ActionPause)
	if f := applied(h); len(f.Actions) != 0 {
		t.Errorf("pause should not be held, got %v", f.Actions)
	}
}

func TestHeldKeysMinimumHold(t *testing.T) {
	h := NewHeldKeys(0)
	h.Press(core.ActionDown)
	if !h.Held(core.ActionDown) {
		t.Fatal("down should be held after press")
	}
	if f := applied(h); !f.Has(core.ActionDown) {
		t.Error("zero hold ticks should still cover the next tick")
	}
	if h.Held(core.ActionDown) {
		t.Error("down should be released after one tick")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(10)
	h.Press(core.ActionLeft)
	h.Press(core.ActionUp)
	h.Release()
	if f := applied(h); len(f.Actions) != 0 {
		t.Errorf("expected no held keys after Release, got %v", f.Actions)
	}
}
