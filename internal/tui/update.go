package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.preview.SetContent(m.renderSelected())
		return m, nil
	}

	var cmds []tea.Cmd

	previous := m.exporters.Index()
	var cmd tea.Cmd
	m.exporters, cmd = m.exporters.Update(msg)
	cmds = append(cmds, cmd)

	if m.exporters.Index() != previous {
		m.preview.SetContent(m.renderSelected())
		m.preview.GotoTop()
	}

	m.preview, cmd = m.preview.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) layout() {
	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	contentHeight := m.height - headerHeight()
	if contentHeight < 1 {
		contentHeight = 1
	}

	m.exporters.SetSize(listWidth, contentHeight)

	previewWidth := m.width - listWidth - 2
	if previewWidth < 1 {
		previewWidth = 1
	}
	if !m.ready {
		m.preview = viewport.New(previewWidth, contentHeight)
	} else {
		m.preview.Width = previewWidth
		m.preview.Height = contentHeight
	}
}
