// Package wbs flattens the three-level parent arrow / child arrow / task
// hierarchy into the ordered row list shared by the table view and the
// spreadsheet export.
package wbs

import (
	"sort"
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
)

// RowType tags what a row represents.
type RowType string

const (
	// RowParent is a top-level arrow with no children, shown standalone.
	RowParent RowType = "parent"
	// RowChild is a child arrow with no tasks yet, kept as a placeholder
	// so the UI has somewhere to attach the first task.
	RowChild RowType = "child"
	// RowTask is one WBS task, the common case.
	RowTask RowType = "task"
)

// Row is one line of the aggregated WBS table. Parent is always set; Child
// is set for child and task rows; Task only for task rows. ShowParent and
// ShowChild are true on the first row of a contiguous run sharing the same
// parent or child arrow, which is where consumers start a vertical merge.
type Row struct {
	Type       RowType
	Parent     *domain.Arrow
	Child      *domain.Arrow
	Task       *domain.WbsItem
	ShowParent bool
	ShowChild  bool
}

// Filter narrows the aggregation to tasks matching every set field. While
// any field is set only task rows are emitted: placeholder parent and child
// rows are suppressed, and branches with no surviving task disappear.
type Filter struct {
	ArrowID *int64
	Status  *domain.Status
	Owner   *string
}

// Active reports whether any filter field is set.
func (f Filter) Active() bool {
	return f.ArrowID != nil || f.Status != nil || f.Owner != nil
}

func (f Filter) matches(t *domain.WbsItem) bool {
	if f.ArrowID != nil && t.ArrowID != *f.ArrowID {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Owner != nil && t.Owner != *f.Owner {
		return false
	}
	return true
}

// BuildRows merges the full arrow and task lists for a project into ordered
// rows. Top-level arrows, their children, and each child's tasks are each
// ordered by sort order with id as the tiebreak.
func BuildRows(arrows []*domain.Arrow, items []*domain.WbsItem, f Filter) []Row {
	var parents []*domain.Arrow
	children := make(map[int64][]*domain.Arrow)
	for _, a := range arrows {
		if a.ParentID == nil {
			parents = append(parents, a)
		} else {
			children[*a.ParentID] = append(children[*a.ParentID], a)
		}
	}
	sortArrows(parents)
	for _, cs := range children {
		sortArrows(cs)
	}

	tasks := make(map[int64][]*domain.WbsItem)
	for _, t := range items {
		if f.matches(t) {
			tasks[t.ArrowID] = append(tasks[t.ArrowID], t)
		}
	}
	for _, ts := range tasks {
		sort.SliceStable(ts, func(i, j int) bool {
			if ts[i].SortOrder != ts[j].SortOrder {
				return ts[i].SortOrder < ts[j].SortOrder
			}
			return ts[i].ID < ts[j].ID
		})
	}

	filtered := f.Active()
	var rows []Row
	for _, parent := range parents {
		cs := children[parent.ID]
		if len(cs) == 0 {
			if !filtered {
				// ShowChild is set so the row closes any child-column
				// run a consumer is accumulating.
				rows = append(rows, Row{
					Type:       RowParent,
					Parent:     parent,
					ShowParent: true,
					ShowChild:  true,
				})
			}
			continue
		}
		firstOfParent := true
		for _, child := range cs {
			ts := tasks[child.ID]
			if len(ts) == 0 {
				if filtered {
					continue
				}
				rows = append(rows, Row{
					Type:       RowChild,
					Parent:     parent,
					Child:      child,
					ShowParent: firstOfParent,
					ShowChild:  true,
				})
				firstOfParent = false
				continue
			}
			for i, t := range ts {
				rows = append(rows, Row{
					Type:       RowTask,
					Parent:     parent,
					Child:      child,
					Task:       t,
					ShowParent: firstOfParent,
					ShowChild:  i == 0,
				})
				firstOfParent = false
			}
		}
	}
	return rows
}

// Dates collects every start and end date appearing in the rows, feeding the
// date range derivation for the day grid.
func Dates(rows []Row) []time.Time {
	var out []time.Time
	seenArrow := make(map[int64]bool)
	for _, r := range rows {
		if r.Task != nil {
			if r.Task.StartDate != nil {
				out = append(out, domain.Date(*r.Task.StartDate))
			}
			if r.Task.EndDate != nil {
				out = append(out, domain.Date(*r.Task.EndDate))
			}
		}
		for _, a := range []*domain.Arrow{r.Parent, r.Child} {
			if a == nil || seenArrow[a.ID] {
				continue
			}
			seenArrow[a.ID] = true
			if a.StartDate != nil {
				out = append(out, domain.Date(*a.StartDate))
			}
			if a.EndDate != nil {
				out = append(out, domain.Date(*a.EndDate))
			}
		}
	}
	return out
}

func sortArrows(as []*domain.Arrow) {
	sort.SliceStable(as, func(i, j int) bool {
		if as[i].SortOrder != as[j].SortOrder {
			return as[i].SortOrder < as[j].SortOrder
		}
		return as[i].ID < as[j].ID
	})
}
