package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-animator/internal/core"
)

// hex converts a cell color to the #rrggbb form lipgloss accepts.
func hex(c core.RGB) string {
	r, g, b := c.Floats()
	return colorful.Color{R: r, G: g, B: b}.Hex()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// Background cells are written unstyled.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.RGB]lipgloss.Style)
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Painted != first.Painted || cell.Color != first.Color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !first.Painted {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[first.Color]
			if !ok {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(hex(first.Color)))
				styles[first.Color] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
