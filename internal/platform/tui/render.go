package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/curry-rush/internal/core"
)

// palette maps core.Color to terminal color codes. Empty means the
// terminal default.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBrightRed:    lipgloss.Color("9"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightBlue:   lipgloss.Color("12"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorBrown:        lipgloss.Color("94"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorEmber1:       lipgloss.Color("52"),
	core.ColorEmber2:       lipgloss.Color("88"),
	core.ColorEmber3:       lipgloss.Color("124"),
	core.ColorEmber4:       lipgloss.Color("160"),
}

type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per foreground/background pair.
var styleCache = map[colorPair]lipgloss.Style{}

func styleFor(p colorPair) lipgloss.Style {
	if s, ok := styleCache[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := palette[p.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[p.bg]; ok {
		s = s.Background(c)
	}
	styleCache[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
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
			start := colorPair{cell.Color, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Color, cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
