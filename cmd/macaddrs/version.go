package main

import (
	"fmt"

	"github.com/slashdevops/macaddrs/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if long {
				fmt.Fprint(cmd.OutOrStdout(), version.Long(applicationName))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", applicationName, version.Short())
			return nil
		},
	}
	cmd.Flags().BoolVar(&long, "long", false, "Show detailed version information")

	return cmd
}
