package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "production-optimizer",
		Short: "Two-product workshop production optimizer",
		Long: `production-optimizer finds the most profitable mix of tables and chairs
that fits within the weekly labor hours and wood stock of a workshop.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(newSolveCommand())
	root.AddCommand(newServeCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
