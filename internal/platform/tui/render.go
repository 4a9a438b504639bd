package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorGreen:       lipgloss.Color("2"),
	core.ColorYellow:      lipgloss.Color("3"),
	core.ColorWhite:       lipgloss.Color("7"),
	core.ColorBrightRed:   lipgloss.Color("9"),
	core.ColorBrightGreen: lipgloss.Color("10"),
	core.ColorGray:        lipgloss.Color("245"),
}

// glyphStyle returns the lipgloss style for a foreground/background pair.
// ColorDefault leaves the terminal's own color in place.
func glyphStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := colorCodes[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := colorCodes[bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetGlyph(x, y)

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if g.Fg != start.Fg || g.Bg != start.Bg {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			if start.Fg == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(glyphStyle(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
