package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/block-breaker/internal/core"
)

// helpStyle dims the key help line under the canvas.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// styleCache holds one lipgloss style per palette entry.
var styleCache = map[core.Color]lipgloss.Style{}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if code := c.ANSI(); code >= 0 {
		s = s.Foreground(lipgloss.Color(strconv.Itoa(code)))
	}
	styleCache[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells of the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() && s.GetCell(x, y).Color == color {
				run.WriteRune(s.GetCell(x, y).Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
