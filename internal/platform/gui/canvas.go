package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/jumper/internal/core"
)

// ImageCanvas draws pixel rectangles onto an ebiten image.
type ImageCanvas struct {
	dst *ebiten.Image
}

// NewImageCanvas wraps an image.
func NewImageCanvas(dst *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{dst: dst}
}

// FillRect implements platformer.Canvas.
func (c *ImageCanvas) FillRect(r core.Rect, col core.Color) {
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), RGBA(col), false)
}

// RGBA converts a palette colour to an opaque image colour.
func RGBA(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
