// Package timeline holds the pure calendar-projection algorithms behind the
// Gantt views: tree flattening, range resolution, day and jun column grids,
// bar geometry, and the drag state machine. Nothing here performs I/O.
package timeline

import (
	"sort"

	"github.com/alexanderramin/yabane/internal/domain"
)

// Node is one row of a flattened arrow tree.
type Node struct {
	Arrow *domain.Arrow
	Depth int
}

// Flatten converts a flat arrow list into a pre-order depth-first traversal:
// each root before its descendants, siblings by (sort_order, id), a node's
// subtree contiguous immediately after it. Arrows whose id is in collapsed
// keep their own row but contribute no descendants. Runs in O(N log N) via a
// parent->children adjacency map (the log factor is the sibling sort).
func Flatten(arrows []*domain.Arrow, collapsed map[int64]bool) []Node {
	children := make(map[int64][]*domain.Arrow, len(arrows))
	for _, a := range arrows {
		key := rootKey
		if a.ParentID != nil {
			key = *a.ParentID
		}
		children[key] = append(children[key], a)
	}
	for _, group := range children {
		sort.Slice(group, func(i, j int) bool {
			if group[i].SortOrder != group[j].SortOrder {
				return group[i].SortOrder < group[j].SortOrder
			}
			return group[i].ID < group[j].ID
		})
	}

	out := make([]Node, 0, len(arrows))
	var walk func(parent int64, depth int)
	walk = func(parent int64, depth int) {
		for _, a := range children[parent] {
			out = append(out, Node{Arrow: a, Depth: depth})
			if collapsed[a.ID] {
				continue
			}
			walk(a.ID, depth+1)
		}
	}
	walk(rootKey, 0)
	return out
}

// rootKey indexes top-level arrows in the adjacency map. Row ids start at 1,
// so 0 is free.
const rootKey int64 = 0
