package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTopCmd(a *app) *cobra.Command {
	var (
		file string
		k    int
	)
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Rank categories by depth of their deepest descendant chain",
		Long: `Top prints the k categories with the longest chain of descendants,
breaking ties by name. k defaults to top_k from config.yaml.

Example:
  catindex top -f forest.yaml -k 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("count") && k <= 0 {
				return fmt.Errorf("%w: -k must be positive, got %d", errUsage, k)
			}
			if !cmd.Flags().Changed("count") {
				k = a.cfg.TopK
			}
			idx, _, err := a.loadIndex(file)
			if err != nil {
				return err
			}
			return a.printCategories(cmd.OutOrStdout(), idx.TopByDepth(k))
		},
	}
	addFileFlag(cmd, &file)
	cmd.Flags().IntVarP(&k, "count", "k", 0, "number of categories to print (default: config top_k)")
	return cmd
}
