package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tintwork/tintwork/internal/export"
	"github.com/tintwork/tintwork/internal/theme"
	"github.com/tintwork/tintwork/internal/tui"
)

type uiOptions struct {
	templates string
}

func newUICmd() *cobra.Command {
	opts := &uiOptions{}

	cmd := &cobra.Command{
		Use:   "ui <preset>",
		Short: "Preview a preset's exporters interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.templates, "templates", "", "Directory of user exporter manifests to load")

	return cmd
}

func runUI(presetPath string, opts *uiOptions) error {
	th, err := theme.LoadPreset(presetPath)
	if err != nil {
		return err
	}

	registry := exporterRegistry()
	if opts.templates != "" {
		if err := export.LoadManifestDir(registry, opts.templates); err != nil {
			return err
		}
	}

	appLogger().WithTheme(th.Name()).Debug("starting previewer")

	program := tea.NewProgram(tui.NewModel(th, registry), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
