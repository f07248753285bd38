package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	accent := lipgloss.Color("#" + m.theme.Accent().Hex())
	title := titleStyle.Foreground(accent).Render(m.theme.Name())

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(swatchStyle.Render(m.swatches()))
	b.WriteString("\n")

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.exporters.View(),
		previewStyle.Render(m.preview.View()),
	)
	b.WriteString(panes)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select exporter · q quit"))

	return b.String()
}

// swatches renders the palette as a strip of colored blocks.
func (m Model) swatches() string {
	blocks := make([]string, 0, m.theme.Len())
	for i := 0; i < m.theme.Len(); i++ {
		c, _ := m.theme.Color(i)
		block := lipgloss.NewStyle().
			Background(lipgloss.Color("#" + c.Hex())).
			Render("  ")
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "")
}
