package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/catindex/internal/fixture"
	"github.com/mesh-intelligence/catindex/pkg/types"
)

// stepOutput is the JSON form of a step result.
type stepOutput struct {
	Step       string           `json:"step"`
	Categories []types.Category `json:"categories,omitempty"`
	Value      any              `json:"value,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Apply a fixture and execute its steps",
		Long: `Run loads the fixture, applies its categories and edges, then executes
its steps in order, printing each step's result. A step may declare
expect_error; a matching failure is printed and the run continues.

Example:
  catindex run script.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			idx, doc, err := a.loadIndex(file)
			if err != nil {
				return err
			}

			results, runErr := fixture.NewRunner(idx, a.logger, a.cfg.TopK).Run(doc.Steps)
			if err := a.printResults(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}
			a.logger.Info("run complete",
				zap.Int("steps", len(results)),
				zap.Int("size", idx.Size()),
			)
			return nil
		},
	}
}

func (a *app) printResults(w io.Writer, results []fixture.StepResult) error {
	if a.cfg.Output == types.OutputJSON {
		out := make([]stepOutput, len(results))
		for i, r := range results {
			out[i] = stepOutput{
				Step:       r.Step.String(),
				Categories: r.Categories,
				Value:      r.Value,
				Error:      fixture.ErrorKind(r.Err),
			}
		}
		return writeJSON(w, out)
	}

	for _, r := range results {
		header := "# " + r.Step.String()
		if r.Err != nil {
			header += fmt.Sprintf(" (%s)", fixture.ErrorKind(r.Err))
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		if r.Value != nil {
			if _, err := fmt.Fprintln(w, r.Value); err != nil {
				return err
			}
		}
		if err := a.printCategories(w, r.Categories); err != nil {
			return err
		}
	}
	return nil
}
