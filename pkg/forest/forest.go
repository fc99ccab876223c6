// Package forest provides the public constructor for the in-memory category
// index while keeping implementation details internal.
package forest

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/catindex/internal/forest"
	"github.com/mesh-intelligence/catindex/pkg/types"
)

// Option configures a store created by NewStore.
type Option = forest.Option

// WithLogger sets the logger used for mutation events. The default logger
// discards everything.
func WithLogger(logger *zap.Logger) Option {
	return forest.WithLogger(logger)
}

// NewStore creates an empty category index.
//
// Example:
//
//	idx := forest.NewStore()
//	_ = idx.Add(types.Category{CategoryID: "1", Name: "Electronics"})
//	_ = idx.Add(types.Category{CategoryID: "2", Name: "Phones"})
//	_ = idx.AssignParent("2", "1")
//	path, _ := idx.Hierarchy("2") // [Electronics Phones]
func NewStore(opts ...Option) types.Index {
	return forest.NewStore(opts...)
}
