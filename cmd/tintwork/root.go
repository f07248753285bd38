package main

import (
	"github.com/spf13/cobra"

	"github.com/tintwork/tintwork/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tintwork",
		Short:         "Tintwork generates color themes and exports them to terminal configs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !flags.verbose {
				return nil
			}
			log, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
			if err != nil {
				return err
			}
			setAppState(log, exporterRegistry())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newExportersCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newUICmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
