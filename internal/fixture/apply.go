package fixture

import (
	"fmt"

	"github.com/mesh-intelligence/catindex/pkg/types"
)

// Apply adds the document's categories and then assigns its edges, in
// order. It stops at the first failure; the index keeps whatever was
// applied before it.
func Apply(idx types.Index, doc *Document) error {
	for i, c := range doc.Categories {
		if err := idx.Add(c); err != nil {
			return fmt.Errorf("category %d: %w", i, err)
		}
	}
	for i, e := range doc.Edges {
		if err := idx.AssignParent(e.Child, e.Parent); err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return nil
}
