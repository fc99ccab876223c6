package types

import "errors"

// Index stores categories in a forest and answers traversal and ranking
// queries over it. Implementations are not safe for concurrent use; callers
// apply mutations serially. A failing call leaves the index unchanged.
type Index interface {
	// Add registers category as a root.
	// Returns ErrInvalidID for an empty id and ErrDuplicateKey if the id
	// is already stored.
	Add(category Category) error

	// AssignParent appends childID to parentID's ordered children list.
	// The child's parent pointer is recorded only on its first successful
	// assignment; later assignments to other parents extend those parents'
	// children lists but leave Hierarchy and TopByDepth anchored to the
	// first parent.
	// Returns ErrNotFound if either id is absent (parent checked first),
	// ErrDuplicateEdge if the child is already listed under that parent,
	// and ErrCycle if parentID is childID or one of its descendants.
	AssignParent(childID, parentID string) error

	// Remove destroys the category and every descendant.
	// Returns ErrNotFound if id is absent.
	Remove(id string) error

	// Contains reports whether a category with the same id is stored.
	Contains(category Category) bool

	// Size returns the number of stored categories.
	Size() int

	// Get returns the stored category with the given id.
	// Returns ErrNotFound if id is absent.
	Get(id string) (Category, error)

	// Categories returns every stored category in insertion order.
	Categories() []Category

	// Children returns all descendants of id in breadth-first,
	// first-discovery order, each exactly once.
	// Returns ErrNotFound if id is absent.
	Children(id string) ([]Category, error)

	// Hierarchy returns the path from the root down to and including id.
	// Returns ErrNotFound if id is absent.
	Hierarchy(id string) ([]Category, error)

	// TopByDepth returns up to k categories ordered by descending depth of
	// their deepest descendant chain, then by ascending name.
	TopByDepth(k int) []Category
}

// Index operation errors.
var (
	ErrNotFound      = errors.New("category not found")
	ErrDuplicateKey  = errors.New("category id already exists")
	ErrDuplicateEdge = errors.New("category is already a child of this parent")
	ErrCycle         = errors.New("assignment would create a cycle")
	ErrInvalidID     = errors.New("invalid category ID")
)

// Fixture errors.
var ErrInvalidFixture = errors.New("invalid fixture")
