package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jumper/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// ScreenRenderer converts Screen buffers to styled strings. It caches one
// lipgloss style per colour pair.
type ScreenRenderer struct {
	r      *lipgloss.Renderer
	styles map[cellStyle]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil lipgloss renderer means the
// process-wide default, which targets stdout.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		r:      r,
		styles: make(map[cellStyle]lipgloss.Style),
	}
}

func (sr *ScreenRenderer) style(k cellStyle) lipgloss.Style {
	if st, ok := sr.styles[k]; ok {
		return st
	}
	st := sr.r.NewStyle()
	if k.fg.Set {
		st = st.Foreground(lipgloss.Color(k.fg.Hex()))
	}
	if k.bg.Set {
		st = st.Background(lipgloss.Color(k.bg.Hex()))
	}
	sr.styles[k] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{cell.Fg, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{cell.Fg, cell.Bg}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !key.fg.Set && !key.bg.Set {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(key).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders with the default renderer.
func RenderScreen(s *core.Screen) string {
	return NewScreenRenderer(nil).Render(s)
}
