package main

import "github.com/spf13/cobra"

func newListCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, _, err := a.loadIndex(file)
			if err != nil {
				return err
			}
			return a.printCategories(cmd.OutOrStdout(), idx.Categories())
		},
	}
	addFileFlag(cmd, &file)
	return cmd
}
