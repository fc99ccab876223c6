package main

import "github.com/spf13/cobra"

func newChildrenCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "children <id>",
		Short: "List every descendant of a category",
		Long: `Children prints all descendants of the category, direct and indirect,
breadth-first in the order they were assigned. Each appears once.

Example:
  catindex children -f forest.yaml 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, _, err := a.loadIndex(file)
			if err != nil {
				return err
			}
			cats, err := idx.Children(args[0])
			if err != nil {
				return err
			}
			return a.printCategories(cmd.OutOrStdout(), cats)
		},
	}
	addFileFlag(cmd, &file)
	return cmd
}
