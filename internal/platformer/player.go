package platformer

import "github.com/vovakirdan/jumper/internal/core"

// Player is the keyboard-driven avatar.
type Player struct {
	rect         core.Rect
	color        core.Color
	dirX, dirY   int // Each in {-1, 0, 1}
	speed        int
	defaultSpeed int

	// Per-axis freeze used when the camera gates each axis on its own.
	freezeX, freezeY bool
}

// NewPlayer creates a player of the given size at (x, y), standing still.
func NewPlayer(x, y, size, speed int, color core.Color) *Player {
	return &Player{
		rect:         core.NewRect(x, y, size, size),
		color:        color,
		speed:        speed,
		defaultSpeed: speed,
	}
}

// Bounds returns the player's rectangle in display pixels.
func (p *Player) Bounds() core.Rect {
	return p.rect
}

// Direction returns the current horizontal and vertical direction.
func (p *Player) Direction() (dx, dy int) {
	return p.dirX, p.dirY
}

// Speed returns the current speed in pixels per frame.
func (p *Player) Speed() int {
	return p.speed
}

// DefaultSpeed returns the speed the player was created with.
func (p *Player) DefaultSpeed() int {
	return p.defaultSpeed
}

// SetSpeed overrides the current speed.
func (p *Player) SetSpeed(speed int) {
	p.speed = speed
}

// ReadInput samples the keys. Right wins over left and up wins over down.
func (p *Player) ReadInput(keys KeyState) {
	switch {
	case keys.Held(KeyRight):
		p.dirX = 1
	case keys.Held(KeyLeft):
		p.dirX = -1
	default:
		p.dirX = 0
	}

	switch {
	case keys.Held(KeyUp):
		p.dirY = -1
	case keys.Held(KeyDown):
		p.dirY = 1
	default:
		p.dirY = 0
	}
}

// Advance reads input and moves by direction * speed on each axis.
// Diagonals are not normalized and blocks are not collided with.
func (p *Player) Advance(keys KeyState) {
	p.ReadInput(keys)
	if !p.freezeX {
		p.rect.X += p.dirX * p.speed
	}
	if !p.freezeY {
		p.rect.Y += p.dirY * p.speed
	}
}

// Draw fills the player's rectangle.
func (p *Player) Draw(dst Canvas) {
	dst.FillRect(p.rect, p.color)
}

func (p *Player) setLeft(x int)   { p.rect.X = x }
func (p *Player) setRight(x int)  { p.rect.X = x - p.rect.W }
func (p *Player) setTop(y int)    { p.rect.Y = y }
func (p *Player) setBottom(y int) { p.rect.Y = y - p.rect.H }
