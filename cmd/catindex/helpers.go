// Shared helpers for catindex commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/catindex/internal/fixture"
	"github.com/mesh-intelligence/catindex/internal/paths"
	"github.com/mesh-intelligence/catindex/pkg/forest"
	"github.com/mesh-intelligence/catindex/pkg/types"
)

// addFileFlag registers the --file flag on cmd.
func addFileFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "file", "f", "", "fixture file (.yaml or .jsonl)")
}

// loadIndex resolves the fixture path, loads the document, and applies it
// to a fresh index. The caller may run the document's steps afterwards.
func (a *app) loadIndex(fileFlag string) (types.Index, *fixture.Document, error) {
	path, err := paths.ResolveFixture(fileFlag, a.cfg.Fixture)
	if err != nil {
		return nil, nil, err
	}

	doc, err := fixture.NewOsLoader().Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load fixture: %w", err)
	}

	idx := forest.NewStore(forest.WithLogger(a.logger))
	if err := fixture.Apply(idx, doc); err != nil {
		return nil, nil, fmt.Errorf("apply fixture %s: %w", path, err)
	}
	return idx, doc, nil
}

// printCategories writes categories as JSON or as one id<TAB>name line each.
func (a *app) printCategories(w io.Writer, cats []types.Category) error {
	if a.cfg.Output == types.OutputJSON {
		return writeJSON(w, cats)
	}
	for _, c := range cats {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", c.CategoryID, c.Name); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
