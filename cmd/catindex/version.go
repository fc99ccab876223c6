package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the catindex release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/catindex"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the catindex version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "catindex v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
