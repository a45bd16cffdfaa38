package platformer

import "github.com/vovakirdan/jumper/internal/core"

// Block is a static obstacle tile.
type Block struct {
	rect  core.Rect
	color core.Color
}

// NewBlock creates a square block of the given size at (x, y).
func NewBlock(x, y, size int, color core.Color) *Block {
	return &Block{
		rect:  core.NewRect(x, y, size, size),
		color: color,
	}
}

// Bounds returns the block's rectangle in display pixels.
func (b *Block) Bounds() core.Rect {
	return b.rect
}

// Shift moves the block by the camera offset. Blocks may leave the display.
func (b *Block) Shift(dx, dy int) {
	b.rect = b.rect.Translate(dx, dy)
}

// Draw fills the block's rectangle.
func (b *Block) Draw(dst Canvas) {
	dst.FillRect(b.rect, b.color)
}
