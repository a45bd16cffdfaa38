// Package platformer implements the side-scrolling simulation: blocks,
// the player and the layout that owns them and drives the camera.
// It renders through the Canvas interface and reads input through KeyState,
// so it has no dependency on any frontend.
package platformer

import "github.com/vovakirdan/jumper/internal/core"

// Key is a directional key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// KeyState reports which directional keys are currently held.
type KeyState interface {
	Held(k Key) bool
}

// Keys is a fixed KeyState, handy for frontends that collect input up front.
type Keys map[Key]bool

// Held implements KeyState.
func (k Keys) Held(key Key) bool {
	return k[key]
}

// Canvas is a raster surface in display pixels.
type Canvas interface {
	FillRect(r core.Rect, c core.Color)
}

// Sprite is anything the layout can draw.
type Sprite interface {
	Bounds() core.Rect
	Draw(dst Canvas)
}

// Shiftable is a sprite that follows the camera.
type Shiftable interface {
	Sprite
	Shift(dx, dy int)
}

// Group is an ordered collection of camera-following sprites.
type Group[T Shiftable] struct {
	items []T
}

// Add appends a sprite.
func (g *Group[T]) Add(s T) {
	g.items = append(g.items, s)
}

// Len returns the number of sprites.
func (g *Group[T]) Len() int {
	return len(g.items)
}

// Items returns the sprites in insertion order. The slice is shared.
func (g *Group[T]) Items() []T {
	return g.items
}

// Shift translates every sprite.
func (g *Group[T]) Shift(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	for _, s := range g.items {
		s.Shift(dx, dy)
	}
}

// Draw draws every sprite in order.
func (g *Group[T]) Draw(dst Canvas) {
	for _, s := range g.items {
		s.Draw(dst)
	}
}
