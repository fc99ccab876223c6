package forest

import "slices"

// forestIndex holds the edge indices of the forest. Nodes are referenced
// only by id; the payloads live in Store.entries.
type forestIndex struct {
	// children maps a parent to its children in assignment order.
	// Absence means no children; empty lists are never kept.
	children map[string][]string

	// parent maps a child to its sticky parent. Roots have no entry.
	parent map[string]string

	// listedUnder maps a child to every parent whose children list holds it.
	// A child re-assigned to a second parent appears under both.
	listedUnder map[string][]string
}

func newForestIndex() *forestIndex {
	return &forestIndex{
		children:    make(map[string][]string),
		parent:      make(map[string]string),
		listedUnder: make(map[string][]string),
	}
}

// hasChild reports whether child is already in parent's children list.
func (fi *forestIndex) hasChild(parentID, childID string) bool {
	return slices.Contains(fi.children[parentID], childID)
}

// link appends child to parent's children list and records parent as the
// child's parent if none is recorded yet. It reports whether the parent
// pointer was recorded.
func (fi *forestIndex) link(parentID, childID string) bool {
	fi.children[parentID] = append(fi.children[parentID], childID)
	fi.listedUnder[childID] = append(fi.listedUnder[childID], parentID)
	if _, ok := fi.parent[childID]; ok {
		return false
	}
	fi.parent[childID] = parentID
	return true
}

// parentOf returns the sticky parent of id.
func (fi *forestIndex) parentOf(id string) (string, bool) {
	p, ok := fi.parent[id]
	return p, ok
}

// detach removes id from every children list that holds it, dropping lists
// that become empty.
func (fi *forestIndex) detach(id string) {
	for _, parentID := range fi.listedUnder[id] {
		list, ok := fi.children[parentID]
		if !ok {
			continue
		}
		list = slices.DeleteFunc(list, func(c string) bool { return c == id })
		if len(list) == 0 {
			delete(fi.children, parentID)
			continue
		}
		fi.children[parentID] = list
	}
	delete(fi.listedUnder, id)
}

// drop forgets id's own children list and parent pointer. Callers detach
// the node first.
func (fi *forestIndex) drop(id string) {
	delete(fi.children, id)
	delete(fi.parent, id)
	delete(fi.listedUnder, id)
}
