// Package state holds the in-memory session collections the interactive
// surfaces work against. Storage cascades are invisible to loaded state, so
// every set knows how to prune itself to match what a re-fetch would return.
package state

import (
	"sort"
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/timeline"
)

// ArrowSet is the loaded arrow collection for one project: a flat slice
// keyed by id with a derived parent index, never a pointer tree. Derived
// views (Tree, DateRange) are recomputed on demand.
type ArrowSet struct {
	arrows []*domain.Arrow
	byID   map[int64]*domain.Arrow
}

// NewArrowSet builds a set from a freshly listed arrow slice.
func NewArrowSet(arrows []*domain.Arrow) *ArrowSet {
	s := &ArrowSet{}
	s.Replace(arrows)
	return s
}

// Replace swaps in a new arrow list, e.g. after an external reload.
func (s *ArrowSet) Replace(arrows []*domain.Arrow) {
	s.arrows = append(s.arrows[:0], arrows...)
	s.byID = make(map[int64]*domain.Arrow, len(arrows))
	for _, a := range arrows {
		s.byID[a.ID] = a
	}
	s.resort()
}

// All returns the arrows ordered by (sort_order, id) within sibling groups.
func (s *ArrowSet) All() []*domain.Arrow { return s.arrows }

// Get looks up one arrow by id.
func (s *ArrowSet) Get(id int64) (*domain.Arrow, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Len returns the number of loaded arrows.
func (s *ArrowSet) Len() int { return len(s.arrows) }

// Add appends a newly created arrow.
func (s *ArrowSet) Add(a *domain.Arrow) {
	s.arrows = append(s.arrows, a)
	s.byID[a.ID] = a
	s.resort()
}

// Update replaces the stored arrow with the same id.
func (s *ArrowSet) Update(a *domain.Arrow) {
	for i, old := range s.arrows {
		if old.ID == a.ID {
			s.arrows[i] = a
			s.byID[a.ID] = a
			s.resort()
			return
		}
	}
}

// Remove drops the arrow and its whole descendant closure. The storage
// layer cascades the same delete server-side; this keeps the loaded state
// in agreement without a re-fetch.
func (s *ArrowSet) Remove(id int64) {
	doomed := map[int64]bool{id: true}
	// Arrows are one level deep in practice, but walk to a fixed point so
	// deeper trees prune correctly too.
	for {
		grew := false
		for _, a := range s.arrows {
			if a.ParentID != nil && doomed[*a.ParentID] && !doomed[a.ID] {
				doomed[a.ID] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	kept := s.arrows[:0]
	for _, a := range s.arrows {
		if doomed[a.ID] {
			delete(s.byID, a.ID)
		} else {
			kept = append(kept, a)
		}
	}
	s.arrows = kept
}

// Subtree returns id plus its whole descendant closure, the arrow ids a
// WbsSet must prune when the subtree is deleted.
func (s *ArrowSet) Subtree(id int64) []int64 {
	ids := []int64{id}
	member := map[int64]bool{id: true}
	for {
		grew := false
		for _, a := range s.arrows {
			if a.ParentID != nil && member[*a.ParentID] && !member[a.ID] {
				member[a.ID] = true
				ids = append(ids, a.ID)
				grew = true
			}
		}
		if !grew {
			break
		}
	}
	return ids
}

// ApplyReorder rewrites sort_order to each id's position in ids, mirroring
// what the repository's Reorder persisted, then resorts.
func (s *ArrowSet) ApplyReorder(ids []int64) {
	for i, id := range ids {
		if a, ok := s.byID[id]; ok {
			a.SortOrder = i
		}
	}
	s.resort()
}

// Tree flattens the set into depth-annotated rows, honoring collapsed ids.
func (s *ArrowSet) Tree(collapsed map[int64]bool) []timeline.Node {
	return timeline.Flatten(s.arrows, collapsed)
}

// Dates returns every start and end date in the set.
func (s *ArrowSet) Dates() []time.Time {
	var out []time.Time
	for _, a := range s.arrows {
		if a.StartDate != nil {
			out = append(out, domain.Date(*a.StartDate))
		}
		if a.EndDate != nil {
			out = append(out, domain.Date(*a.EndDate))
		}
	}
	return out
}

// DateRange derives the render range for the set: explicit project bounds
// win, otherwise the arrows' date span with the given margin, otherwise the
// default window around now.
func (s *ArrowSet) DateRange(p *domain.Project, marginDays int, now time.Time) timeline.Range {
	return timeline.RangeFor(p.StartDate, p.EndDate, s.Dates(), marginDays, now)
}

func (s *ArrowSet) resort() {
	sort.SliceStable(s.arrows, func(i, j int) bool {
		if s.arrows[i].SortOrder != s.arrows[j].SortOrder {
			return s.arrows[i].SortOrder < s.arrows[j].SortOrder
		}
		return s.arrows[i].ID < s.arrows[j].ID
	})
}
