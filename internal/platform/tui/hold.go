package tui

import "github.com/vovakirdan/jumper/internal/core"

// HeldKeys emulates held directional keys. Terminals report presses and
// auto-repeats but no releases, so a direction stays held for a fixed number
// of ticks after its last press.
type HeldKeys struct {
	ticks     int
	remaining map[core.Action]int
}

var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// NewHeldKeys creates a tracker that holds a key for holdTicks ticks.
// Values below 1 hold a key for the next tick only.
func NewHeldKeys(holdTicks int) *HeldKeys {
	return &HeldKeys{
		ticks:     max(holdTicks, 1),
		remaining: make(map[core.Action]int),
	}
}

// IsDirectional reports whether a is one of the four movement actions.
func IsDirectional(a core.Action) bool {
	_, ok := opposite[a]
	return ok
}

// Press marks a direction as held and releases its opposite.
// Non-directional actions are ignored.
func (h *HeldKeys) Press(a core.Action) {
	opp, ok := opposite[a]
	if !ok {
		return
	}
	delete(h.remaining, opp)
	h.remaining[a] = h.ticks
}

// Apply sets every held direction on the frame and ages the holds by one tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Held reports whether a direction is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	return h.remaining[a] > 0
}

// Release drops every hold.
func (h *HeldKeys) Release() {
	clear(h.remaining)
}
