package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	swatchStyle = lipgloss.NewStyle().
			Padding(0, 1)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)
)

// headerHeight is the vertical space taken by the title, swatch strip and
// help line, used to size the list and preview panes.
func headerHeight() int {
	return 4
}
