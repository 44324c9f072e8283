package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorRoles lists every role a screen cell can carry.
var colorRoles = []core.Color{
	core.ColorDefault,
	core.ColorHUD,
	core.ColorBorder,
	core.ColorSnakeHead,
	core.ColorSnakeBody,
	core.ColorApple,
	core.ColorRottenApple,
	core.ColorBrick,
	core.ColorOverlay,
}

// Styles maps cell color roles to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds the cell styles for a palette.
func NewStyles(p config.Palette) Styles {
	styles := make(Styles, len(colorRoles))
	for _, c := range colorRoles {
		style := lipgloss.NewStyle()
		if hex := p.ColorFor(c); hex != "" {
			style = style.Foreground(lipgloss.Color(hex))
		}
		switch c {
		case core.ColorSnakeHead, core.ColorHUD, core.ColorOverlay:
			style = style.Bold(true)
		}
		styles[c] = style
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
