package jumper

import "github.com/vovakirdan/jumper/internal/core"

// CellCanvas draws pixel rectangles onto a terminal Screen. A cell is
// painted when its centre pixel lies inside the rectangle.
type CellCanvas struct {
	dst   *core.Screen
	cellW int
	cellH int
}

// NewCellCanvas creates a canvas where one cell covers cellW x cellH pixels.
func NewCellCanvas(dst *core.Screen, cellW, cellH int) *CellCanvas {
	return &CellCanvas{dst: dst, cellW: max(cellW, 1), cellH: max(cellH, 1)}
}

// FillRect implements platformer.Canvas.
func (c *CellCanvas) FillRect(r core.Rect, col core.Color) {
	cells := c.CellRect(r)
	c.dst.FillRect(cells, core.Cell{Rune: ' ', Bg: col})
}

// CellRect converts a pixel rectangle to the cells whose centres it covers.
func (c *CellCanvas) CellRect(r core.Rect) core.Rect {
	x0 := ceilDiv(r.X-c.cellW/2, c.cellW)
	x1 := ceilDiv(r.Right()-c.cellW/2, c.cellW)
	y0 := ceilDiv(r.Y-c.cellH/2, c.cellH)
	y1 := ceilDiv(r.Bottom()-c.cellH/2, c.cellH)

	// Clip before Screen.FillRect walks the rectangle.
	x0 = core.Clamp(x0, 0, c.dst.Width())
	x1 = core.Clamp(x1, 0, c.dst.Width())
	y0 = core.Clamp(y0, 0, c.dst.Height())
	y1 = core.Clamp(y1, 0, c.dst.Height())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func ceilDiv(a, b int) int {
	return -core.FloorDiv(-a, b)
}
