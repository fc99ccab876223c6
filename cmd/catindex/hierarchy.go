package main

import "github.com/spf13/cobra"

func newHierarchyCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "hierarchy <id>",
		Short: "Print the path from the root to a category",
		Long: `Hierarchy prints the ancestors of the category from its root down to
and including the category itself. A category assigned to several
parents resolves through the first one.

Example:
  catindex hierarchy -f forest.yaml 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, _, err := a.loadIndex(file)
			if err != nil {
				return err
			}
			cats, err := idx.Hierarchy(args[0])
			if err != nil {
				return err
			}
			return a.printCategories(cmd.OutOrStdout(), cats)
		},
	}
	addFileFlag(cmd, &file)
	return cmd
}
