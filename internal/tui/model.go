// Package tui implements the interactive previewer: an exporter list on the
// left, the rendered output for the loaded theme on the right, and a swatch
// strip of the palette. It is a thin collaborator over the core engines;
// all rendering goes through export.Template.Render.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tintwork/tintwork/internal/export"
	"github.com/tintwork/tintwork/internal/theme"
)

type exporterItem struct {
	name string
	path string
}

func (i exporterItem) Title() string       { return i.name }
func (i exporterItem) Description() string { return i.path }
func (i exporterItem) FilterValue() string { return i.name }

// Model contains the Bubbletea state for the previewer.
type Model struct {
	theme    *theme.Theme
	registry *export.Registry

	exporters list.Model
	preview   viewport.Model

	width  int
	height int
	ready  bool
}

// NewModel constructs a previewer over the given theme and registry.
func NewModel(th *theme.Theme, registry *export.Registry) Model {
	names := registry.Names()
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		item := exporterItem{name: name}
		if tpl, err := registry.Get(name); err == nil {
			item.path = tpl.PathHint()
		}
		items = append(items, item)
	}

	delegate := list.NewDefaultDelegate()
	exporters := list.New(items, delegate, 0, 0)
	exporters.Title = "Exporters"
	exporters.SetShowHelp(false)
	exporters.SetFilteringEnabled(false)

	return Model{
		theme:     th,
		registry:  registry,
		exporters: exporters,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SelectedExporter returns the currently highlighted exporter name, if any.
func (m Model) SelectedExporter() (string, bool) {
	item, ok := m.exporters.SelectedItem().(exporterItem)
	if !ok {
		return "", false
	}
	return item.name, true
}

// renderSelected produces the preview text for the highlighted exporter.
// Render failures (for example a missing extra) become the preview content
// so the user sees exactly why the exporter cannot be used.
func (m Model) renderSelected() string {
	name, ok := m.SelectedExporter()
	if !ok {
		return "no exporters registered"
	}

	tpl, err := m.registry.Get(name)
	if err != nil {
		return err.Error()
	}

	out, err := tpl.Render(m.theme)
	if err != nil {
		return err.Error()
	}
	return out
}
