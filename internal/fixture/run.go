package fixture

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/catindex/pkg/types"
)

// ErrExpectationFailed is returned when a step expected to fail succeeds.
var ErrExpectationFailed = errors.New("step succeeded but an error was expected")

// errorKinds maps expect_error names to index errors.
var errorKinds = map[string]error{
	"not_found":      types.ErrNotFound,
	"duplicate_key":  types.ErrDuplicateKey,
	"duplicate_edge": types.ErrDuplicateEdge,
	"cycle":          types.ErrCycle,
	"invalid_id":     types.ErrInvalidID,
}

// ErrorKind returns the expect_error name for err, or "" if err is not an
// index error.
func ErrorKind(err error) string {
	for kind, target := range errorKinds {
		if errors.Is(err, target) {
			return kind
		}
	}
	return ""
}

// StepResult is the outcome of one step. Categories is set by queries that
// return categories; Value by size and contains. Err holds an expected
// failure.
type StepResult struct {
	Step       Step
	Categories []types.Category
	Value      any
	Err        error
}

// Runner executes steps against an index.
type Runner struct {
	idx    types.Index
	logger *zap.Logger
	topK   int
}

// NewRunner creates a Runner. topK is used by top steps that leave k unset.
func NewRunner(idx types.Index, logger *zap.Logger, topK int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{idx: idx, logger: logger, topK: topK}
}

// Run executes steps in order. A step whose error matches its
// expect_error is recorded and the run continues. Any other error, or a
// missing expected error, stops the run; the results gathered so far are
// returned with it.
func (r *Runner) Run(steps []Step) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))
	for i, step := range steps {
		res := r.exec(step)
		r.logger.Debug("step executed",
			zap.Int("index", i),
			zap.String("step", step.String()),
			zap.Error(res.Err),
		)

		switch {
		case res.Err != nil && step.ExpectError != "" && errors.Is(res.Err, errorKinds[step.ExpectError]):
			results = append(results, res)
		case res.Err != nil:
			return results, fmt.Errorf("step %d (%s): %w", i, step, res.Err)
		case step.ExpectError != "":
			return results, fmt.Errorf("step %d (%s): %w: %s", i, step, ErrExpectationFailed, step.ExpectError)
		default:
			results = append(results, res)
		}
	}
	return results, nil
}

func (r *Runner) exec(step Step) StepResult {
	res := StepResult{Step: step}
	switch step.Op {
	case OpAdd:
		res.Err = r.idx.Add(types.Category{CategoryID: step.ID, Name: step.Name})
	case OpAssign:
		res.Err = r.idx.AssignParent(step.Child, step.Parent)
	case OpRemove:
		res.Err = r.idx.Remove(step.ID)
	case OpChildren:
		res.Categories, res.Err = r.idx.Children(step.ID)
	case OpHierarchy:
		res.Categories, res.Err = r.idx.Hierarchy(step.ID)
	case OpTop:
		k := step.K
		if k == 0 {
			k = r.topK
		}
		res.Categories = r.idx.TopByDepth(k)
	case OpContains:
		res.Value = r.idx.Contains(types.Category{CategoryID: step.ID})
	case OpSize:
		res.Value = r.idx.Size()
	case OpGet:
		var c types.Category
		c, res.Err = r.idx.Get(step.ID)
		if res.Err == nil {
			res.Categories = []types.Category{c}
		}
	default:
		res.Err = fmt.Errorf("%w: unknown op %q", types.ErrInvalidFixture, step.Op)
	}
	return res
}
