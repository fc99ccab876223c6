// Package forest implements types.Index as an in-memory forest of
// categories. Categories live in an id-keyed table; edges are kept in
// separate id-to-id indices so that removal is a set of map mutations.
package forest

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/catindex/pkg/types"
)

var _ types.Index = (*Store)(nil)

// entry is a stored category with its insertion sequence number. The
// sequence orders Categories and breaks ranking ties that names cannot.
type entry struct {
	category types.Category
	seq      uint64
}

// Store is the category forest. It is not safe for concurrent use.
type Store struct {
	entries map[string]entry
	nextSeq uint64
	index   *forestIndex
	logger  *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]entry),
		index:   newForestIndex(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers category as a root.
func (s *Store) Add(category types.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if _, ok := s.entries[category.CategoryID]; ok {
		return fmt.Errorf("adding category %s: %w", category.CategoryID, types.ErrDuplicateKey)
	}
	s.entries[category.CategoryID] = entry{category: category, seq: s.nextSeq}
	s.nextSeq++

	s.logger.Debug("category added",
		zap.String("category_id", category.CategoryID),
		zap.String("name", category.Name),
	)
	return nil
}

// AssignParent appends childID to parentID's children list and records the
// parent pointer on the child's first assignment only.
func (s *Store) AssignParent(childID, parentID string) error {
	if _, ok := s.entries[parentID]; !ok {
		return fmt.Errorf("assigning parent %s: %w", parentID, types.ErrNotFound)
	}
	if _, ok := s.entries[childID]; !ok {
		return fmt.Errorf("assigning child %s: %w", childID, types.ErrNotFound)
	}
	if s.index.hasChild(parentID, childID) {
		return fmt.Errorf("assigning %s under %s: %w", childID, parentID, types.ErrDuplicateEdge)
	}
	if parentID == childID || s.reachable(childID, parentID) {
		return fmt.Errorf("assigning %s under %s: %w", childID, parentID, types.ErrCycle)
	}

	sticky := s.index.link(parentID, childID)
	s.logger.Debug("parent assigned",
		zap.String("child_id", childID),
		zap.String("parent_id", parentID),
		zap.Bool("sticky", sticky),
	)
	return nil
}

// Remove destroys the category and its whole descendant set.
func (s *Store) Remove(id string) error {
	if _, ok := s.entries[id]; !ok {
		return fmt.Errorf("removing category %s: %w", id, types.ErrNotFound)
	}

	doomed := append([]string{id}, s.descendants(id)...)
	for _, d := range doomed {
		s.index.detach(d)
	}
	for _, d := range doomed {
		s.index.drop(d)
		delete(s.entries, d)
	}

	s.logger.Debug("category removed",
		zap.String("category_id", id),
		zap.Int("destroyed", len(doomed)),
	)
	return nil
}

// Contains reports whether a category with the same id is stored.
func (s *Store) Contains(category types.Category) bool {
	_, ok := s.entries[category.CategoryID]
	return ok
}

// Size returns the number of stored categories.
func (s *Store) Size() int {
	return len(s.entries)
}

// Get returns the category stored under id.
func (s *Store) Get(id string) (types.Category, error) {
	e, ok := s.entries[id]
	if !ok {
		return types.Category{}, fmt.Errorf("getting category %s: %w", id, types.ErrNotFound)
	}
	return e.category, nil
}

// Categories returns every stored category in insertion order.
func (s *Store) Categories() []types.Category {
	ordered := s.orderedEntries()
	out := make([]types.Category, len(ordered))
	for i, e := range ordered {
		out[i] = e.category
	}
	return out
}

// orderedEntries returns the entries sorted by insertion sequence.
func (s *Store) orderedEntries() []entry {
	out := make([]entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b entry) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	return out
}

func (s *Store) categoriesOf(ids []string) []types.Category {
	out := make([]types.Category, len(ids))
	for i, id := range ids {
		out[i] = s.entries[id].category
	}
	return out
}
