package forest

import (
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/catindex/pkg/types"
)

// edge is a child→parent assignment used to build test forests.
type edge struct {
	child, parent string
}

// scenarioEdges is the seven-node forest used across the tests:
//
//	1
//	├── 2
//	│   ├── 4
//	│   └── 5
//	│       └── 6
//	└── 3
//	    └── 7
var scenarioEdges = []edge{
	{"2", "1"}, {"3", "1"}, {"4", "2"}, {"5", "2"}, {"6", "5"}, {"7", "3"},
}

// chainEdges links 1..7 as 1←2←4←5←6←7 with 3 under 1.
var chainEdges = []edge{
	{"2", "1"}, {"3", "1"}, {"4", "2"}, {"5", "4"}, {"6", "5"}, {"7", "6"},
}

// named returns a category whose id and name are both id.
func named(id string) types.Category {
	return types.Category{CategoryID: id, Name: id}
}

// randomCategory returns a category with random id and name.
func randomCategory() types.Category {
	return types.Category{CategoryID: uuid.NewString(), Name: uuid.NewString()}
}

// buildStore adds categories 1..n (named after their ids) and applies edges.
func buildStore(t *testing.T, n int, edges []edge) *Store {
	t.Helper()
	s := NewStore()
	for i := 1; i <= n; i++ {
		require.NoError(t, s.Add(named(strconv.Itoa(i))))
	}
	for _, e := range edges {
		require.NoError(t, s.AssignParent(e.child, e.parent))
	}
	return s
}
