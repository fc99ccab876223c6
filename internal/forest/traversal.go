package forest

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/catindex/pkg/types"
)

// Children returns every descendant of id in breadth-first, first-discovery
// order, seeded with the direct children in assignment order.
func (s *Store) Children(id string) ([]types.Category, error) {
	if _, ok := s.entries[id]; !ok {
		return nil, fmt.Errorf("listing children of %s: %w", id, types.ErrNotFound)
	}
	return s.categoriesOf(s.descendants(id)), nil
}

// Hierarchy returns the root-to-id path following sticky parent pointers.
func (s *Store) Hierarchy(id string) ([]types.Category, error) {
	if _, ok := s.entries[id]; !ok {
		return nil, fmt.Errorf("resolving hierarchy of %s: %w", id, types.ErrNotFound)
	}
	path := []string{id}
	for cur := id; ; {
		p, ok := s.index.parentOf(cur)
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)
	return s.categoriesOf(path), nil
}

// descendants walks the children lists breadth-first from id with an
// explicit queue. The result excludes id and holds each node once.
func (s *Store) descendants(id string) []string {
	direct := s.index.children[id]
	if len(direct) == 0 {
		return nil
	}

	seen := map[string]bool{id: true}
	queue := make([]string, 0, len(direct))
	enqueue := func(ids []string) {
		for _, c := range ids {
			if !seen[c] {
				seen[c] = true
				queue = append(queue, c)
			}
		}
	}
	enqueue(direct)

	out := make([]string, 0, len(direct))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)
		enqueue(s.index.children[cur])
	}
	return out
}

// reachable reports whether target is a descendant of from.
func (s *Store) reachable(from, target string) bool {
	seen := map[string]bool{from: true}
	stack := []string{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range s.index.children[cur] {
			if c == target {
				return true
			}
			if !seen[c] {
				seen[c] = true
				stack = append(stack, c)
			}
		}
	}
	return false
}
