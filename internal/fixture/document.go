// Package fixture loads category forests from YAML or JSONL documents,
// applies them to a types.Index, and runs scripted steps against it.
package fixture

import (
	"fmt"

	"github.com/mesh-intelligence/catindex/pkg/types"
)

// Step operations.
const (
	OpAdd       = "add"
	OpAssign    = "assign"
	OpRemove    = "remove"
	OpChildren  = "children"
	OpHierarchy = "hierarchy"
	OpTop       = "top"
	OpContains  = "contains"
	OpSize      = "size"
	OpGet       = "get"
)

// Document is a forest description: categories are added in order, then
// edges are assigned in order, then steps may be run.
type Document struct {
	Categories []types.Category `json:"categories" yaml:"categories"`
	Edges      []Edge           `json:"edges" yaml:"edges" validate:"dive"`
	Steps      []Step           `json:"steps" yaml:"steps" validate:"dive"`
}

// Edge assigns Child under Parent.
type Edge struct {
	Child  string `json:"child" yaml:"child" validate:"required"`
	Parent string `json:"parent" yaml:"parent" validate:"required"`
}

// Step is one scripted operation. Which fields are required depends on Op.
type Step struct {
	Op          string `json:"op" yaml:"op" validate:"required,oneof=add assign remove children hierarchy top contains size get"`
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Child       string `json:"child,omitempty" yaml:"child,omitempty"`
	Parent      string `json:"parent,omitempty" yaml:"parent,omitempty"`
	K           int    `json:"k,omitempty" yaml:"k,omitempty" validate:"gte=0"`
	ExpectError string `json:"expect_error,omitempty" yaml:"expect_error,omitempty" validate:"omitempty,oneof=not_found duplicate_key duplicate_edge cycle invalid_id"`
}

// checkOperands reports a missing operand for the step's op.
func (s Step) checkOperands() error {
	switch s.Op {
	case OpRemove, OpChildren, OpHierarchy, OpContains, OpGet:
		if s.ID == "" {
			return fmt.Errorf("%w: %s step needs an id", types.ErrInvalidFixture, s.Op)
		}
	case OpAssign:
		if s.Child == "" || s.Parent == "" {
			return fmt.Errorf("%w: assign step needs child and parent", types.ErrInvalidFixture)
		}
	}
	return nil
}

// String renders the step for logs and CLI output.
func (s Step) String() string {
	switch s.Op {
	case OpAssign:
		return fmt.Sprintf("assign %s -> %s", s.Child, s.Parent)
	case OpTop:
		return fmt.Sprintf("top %d", s.K)
	case OpSize:
		return OpSize
	default:
		return fmt.Sprintf("%s %s", s.Op, s.ID)
	}
}
