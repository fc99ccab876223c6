package forest

import (
	"cmp"
	"slices"

	"github.com/mesh-intelligence/catindex/pkg/types"
)

// TopByDepth ranks categories by the length of their longest chain of
// recorded-parent descendants, descending, then by name in byte order
// (which is code point order for UTF-8). Equal depth and name keep
// insertion order. Depths are recomputed on every call.
func (s *Store) TopByDepth(k int) []types.Category {
	if k <= 0 || len(s.entries) == 0 {
		return []types.Category{}
	}

	depth := s.depths()
	ranked := s.orderedEntries()
	slices.SortStableFunc(ranked, func(a, b entry) int {
		if c := cmp.Compare(depth[b.category.CategoryID], depth[a.category.CategoryID]); c != 0 {
			return c
		}
		return cmp.Compare(a.category.Name, b.category.Name)
	})

	k = min(k, len(ranked))
	out := make([]types.Category, k)
	for i := range k {
		out[i] = ranked[i].category
	}
	return out
}

// depths relaxes depth(parent) = max(depth(parent), depth(child)+1) upward
// from every category. A walk stops early once a parent already holds at
// least the offered depth: whoever raised it walked on to the root.
func (s *Store) depths() map[string]int {
	depth := make(map[string]int, len(s.entries))
	for id := range s.entries {
		if _, ok := depth[id]; !ok {
			depth[id] = 0
		}
		for cur := id; ; {
			p, ok := s.index.parentOf(cur)
			if !ok {
				break
			}
			d := depth[cur] + 1
			if depth[p] >= d {
				break
			}
			depth[p] = d
			cur = p
		}
	}
	return depth
}
