package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/season-quest/internal/core"
)

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorGrass:        fg("70"),
	core.ColorTallGrass:    fg("34"),
	core.ColorDarkGrass:    fg("22"),
	core.ColorPath:         fg("180"),
	core.ColorWater:        fg("33").Background(lipgloss.Color("17")),
	core.ColorTree:         fg("28"),
	core.ColorWall:         fg("252"),
	core.ColorRoof:         fg("160"),
	core.ColorDoor:         fg("94").Bold(true),
	core.ColorFence:        fg("137"),
	core.ColorFlowerRed:    fg("196"),
	core.ColorFlowerYellow: fg("226"),
	core.ColorSand:         fg("222"),
	core.ColorRock:         fg("244"),
	core.ColorSnow:         fg("255"),
	core.ColorPlayer:       fg("15").Bold(true),
	core.ColorNPC:          fg("213"),
	core.ColorText:         fg("15"),
	core.ColorHighlight:    fg("11").Bold(true),
	core.ColorHPGreen:      fg("46"),
	core.ColorHPYellow:     fg("220"),
	core.ColorHPRed:        fg("196"),
	core.ColorDim:          fg("240"),
	core.ColorCover:        fg("0").Background(lipgloss.Color("0")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
