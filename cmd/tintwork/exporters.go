package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tintwork/tintwork/internal/export"
)

type exportersOptions struct {
	templates string
}

func newExportersCmd() *cobra.Command {
	opts := &exportersOptions{}

	cmd := &cobra.Command{
		Use:   "exporters",
		Short: "List registered exporters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExporters(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.templates, "templates", "", "Directory of user exporter manifests to load")

	return cmd
}

func runExporters(cmd *cobra.Command, opts *exportersOptions) error {
	registry := exporterRegistry()
	if opts.templates != "" {
		if err := export.LoadManifestDir(registry, opts.templates); err != nil {
			return err
		}
	}

	for _, name := range registry.Names() {
		tpl, err := registry.Get(name)
		if err != nil {
			return err
		}
		if hint := tpl.PathHint(); hint != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", name, hint)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", name)
		}
	}
	return nil
}
