package platformer

import "github.com/vovakirdan/jumper/internal/core"

// Thresholds are the display positions past which the camera takes over
// movement from the player.
type Thresholds struct {
	Left, Right, Top, Bottom int
}

// NewThresholds places the thresholds at one and three quarters of the display.
func NewThresholds(width, height int) Thresholds {
	return Thresholds{
		Left:   width / 4,
		Right:  width - width/4,
		Top:    height / 4,
		Bottom: height - height/4,
	}
}

// Offset is the per-frame camera translation applied to background and blocks.
type Offset struct {
	X, Y int
}

// axisFollow evaluates one axis of the camera. edgeLo/edgeHi are the player's
// leading edges, dir its direction on the axis. It returns the wanted shift
// before level clamping and which edge to pin (-1 low, 1 high, 0 none).
func axisFollow(edgeLo, edgeHi, dir, lo, hi, step int) (shift, pin int) {
	switch {
	case edgeLo <= lo && dir == -1:
		return step, -1
	case edgeHi >= hi && dir == 1:
		return -step, 1
	}
	return 0, 0
}

// clampScroll limits shift so that pos+shift stays within [minPos, 0], i.e.
// the background never uncovers space beyond the level.
func clampScroll(pos, shift, minPos int) int {
	return core.Clamp(pos+shift, minPos, 0) - pos
}

// ComputeCameraOffset recomputes the offset from the player's position and
// direction. The vertical axis is evaluated first and the horizontal one
// last, so with a shared speed the horizontal branch decides whether the
// player moves this frame.
func (l *Layout) ComputeCameraOffset() {
	p := l.player
	if p == nil {
		l.offset = Offset{}
		return
	}

	th := l.thresholds
	step := l.settings.Camera.Step
	clamp := l.settings.Camera.ClampToLevel
	independent := l.settings.Camera.IndependentAxes
	r := p.Bounds()

	dy, pinY := axisFollow(r.Y, r.Bottom(), p.dirY, th.Top, th.Bottom, step)
	if clamp && dy != 0 {
		dy = clampScroll(l.background.Y, dy, l.minScrollY)
		if dy == 0 {
			pinY = 0
		}
	}
	switch pinY {
	case -1:
		p.setTop(th.Top)
	case 1:
		p.setBottom(th.Bottom)
	}
	l.offset.Y = dy

	dx, pinX := axisFollow(r.X, r.Right(), p.dirX, th.Left, th.Right, step)
	if clamp && dx != 0 {
		dx = clampScroll(l.background.X, dx, l.minScrollX)
		if dx == 0 {
			pinX = 0
		}
	}
	switch pinX {
	case -1:
		p.setLeft(th.Left)
	case 1:
		p.setRight(th.Right)
	}
	l.offset.X = dx

	if independent {
		p.speed = p.defaultSpeed
		p.freezeY = pinY != 0
		p.freezeX = pinX != 0
		return
	}

	// Shared speed: each branch writes it, the horizontal one last.
	if pinY != 0 {
		p.speed = 0
	} else {
		p.speed = p.defaultSpeed
	}
	if pinX != 0 {
		p.speed = 0
	} else {
		p.speed = p.defaultSpeed
	}
}
