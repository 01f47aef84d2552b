package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bigboard/internal/core"
)

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// styleCache memoizes lipgloss styles per color pair.
// Only used from the Bubble Tea goroutine.
var styleCache = map[styleKey]lipgloss.Style{}

// styleFor returns the style for a color pair. Zero-alpha colors are left
// to the terminal default.
func styleFor(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	if s, ok := styleCache[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg.A != 0 {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg.A != 0 {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	styleCache[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			fg, bg := cell.FG, cell.BG

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != fg || cell.BG != bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(fg, bg).Render(run.String()))
		}
	}
	return sb.String()
}
