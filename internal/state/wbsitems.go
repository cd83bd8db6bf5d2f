package state

import (
	"sort"
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/wbs"
)

// WbsSet is the loaded task collection plus the active view filter.
type WbsSet struct {
	items  []*domain.WbsItem
	Filter wbs.Filter
}

// NewWbsSet builds a set from a freshly listed item slice.
func NewWbsSet(items []*domain.WbsItem) *WbsSet {
	s := &WbsSet{}
	s.Replace(items)
	return s
}

// Replace swaps in a new item list, keeping the filter.
func (s *WbsSet) Replace(items []*domain.WbsItem) {
	s.items = append(s.items[:0], items...)
}

// All returns the loaded items.
func (s *WbsSet) All() []*domain.WbsItem { return s.items }

// Get looks up one item by id.
func (s *WbsSet) Get(id int64) (*domain.WbsItem, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// Add appends a newly created item.
func (s *WbsSet) Add(it *domain.WbsItem) {
	s.items = append(s.items, it)
}

// Update replaces the stored item with the same id.
func (s *WbsSet) Update(it *domain.WbsItem) {
	for i, old := range s.items {
		if old.ID == it.ID {
			s.items[i] = it
			return
		}
	}
}

// Remove drops one item.
func (s *WbsSet) Remove(id int64) {
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

// RemoveByArrows drops every item attached to the given arrow ids, the local
// mirror of the storage cascade when an arrow subtree is deleted.
func (s *WbsSet) RemoveByArrows(arrowIDs []int64) {
	doomed := make(map[int64]bool, len(arrowIDs))
	for _, id := range arrowIDs {
		doomed[id] = true
	}
	kept := s.items[:0]
	for _, it := range s.items {
		if !doomed[it.ArrowID] {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

// ApplyReorder rewrites sort_order to each id's position in ids.
func (s *WbsSet) ApplyReorder(ids []int64) {
	pos := make(map[int64]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	for _, it := range s.items {
		if p, ok := pos[it.ID]; ok {
			it.SortOrder = p
		}
	}
}

// Owners returns the distinct non-empty owners in the set, sorted.
func (s *WbsSet) Owners() []string {
	seen := make(map[string]bool)
	var owners []string
	for _, it := range s.items {
		if it.Owner != "" && !seen[it.Owner] {
			seen[it.Owner] = true
			owners = append(owners, it.Owner)
		}
	}
	sort.Strings(owners)
	return owners
}

// Rows aggregates the set against the given arrows under the active filter.
func (s *WbsSet) Rows(arrows []*domain.Arrow) []wbs.Row {
	return wbs.BuildRows(arrows, s.items, s.Filter)
}

// Dates returns every start and end date in the set.
func (s *WbsSet) Dates() []time.Time {
	var out []time.Time
	for _, it := range s.items {
		if it.StartDate != nil {
			out = append(out, domain.Date(*it.StartDate))
		}
		if it.EndDate != nil {
			out = append(out, domain.Date(*it.EndDate))
		}
	}
	return out
}
