package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB colour shared by the terminal and raster frontends.
// The zero value means "unset" and renders with the frontend default.
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB builds a colour from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Predefined colours used by the built-in settings.
var (
	ColorSkyBlue = RGB(135, 206, 235)
	ColorBlock   = RGB(110, 80, 50)
	ColorPlayer  = RGB(255, 0, 0)
)

// ParseColor parses "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex returns the colour as "#rrggbb", or "" when unset.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
