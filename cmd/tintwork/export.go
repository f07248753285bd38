package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tintwork/tintwork/internal/export"
	"github.com/tintwork/tintwork/internal/theme"
)

type exportOptions struct {
	templates string
	out       string
	write     bool
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <preset> <exporter>",
		Short: "Render a preset through an exporter template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.templates, "templates", "", "Directory of user exporter manifests to load")
	cmd.Flags().StringVar(&opts.out, "out", "", "Write rendered output to this path instead of stdout")
	cmd.Flags().BoolVar(&opts.write, "write", false, "Write rendered output to the exporter's path hint")

	return cmd
}

func runExport(cmd *cobra.Command, presetPath, exporter string, opts *exportOptions) error {
	if opts.write && opts.out != "" {
		return fmt.Errorf("--write and --out are mutually exclusive")
	}

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

	tpl, err := registry.Get(exporter)
	if err != nil {
		return err
	}

	rendered, err := tpl.Render(th)
	if err != nil {
		return err
	}

	target := opts.out
	if opts.write {
		target, err = expandHome(tpl.PathHint())
		if err != nil {
			return err
		}
		if target == "" {
			return fmt.Errorf("exporter %q declares no path hint; use --out", exporter)
		}
	}

	if target == "" {
		return writeDocument(cmd, []byte(rendered))
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing output to %s: %w", target, err)
	}

	appLogger().WithTheme(th.Name()).WithExporter(exporter).WithPath(target).Info("theme exported")
	return nil
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
