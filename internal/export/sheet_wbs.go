package export

import (
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/timeline"
	"github.com/alexanderramin/yabane/internal/wbs"
)

var wbsFixedHeaders = []string{
	"Parent", "Child", "Task", "Owner", "Status", "%", "Start", "End",
}

// exportMarginDays pads the day grid around the outermost dates. The
// interactive view uses a wider margin; print output stays tight.
const exportMarginDays = 3

// WbsSheet renders the aggregated three-level rows with a day-granularity
// gantt: merged month groups over weekend-tinted day numbers, vertical
// merges on the parent and child columns following the first-of-run flags,
// and status-colored interval fills.
func WbsSheet(arrows []*domain.Arrow, items []*domain.WbsItem) *Sheet {
	s := NewSheet("WBS")
	rows := wbs.BuildRows(arrows, items, wbs.Filter{})

	var dates []time.Time
	for _, it := range items {
		if it.StartDate != nil {
			dates = append(dates, domain.Date(*it.StartDate))
		}
		if it.EndDate != nil {
			dates = append(dates, domain.Date(*it.EndDate))
		}
	}
	for _, a := range arrows {
		if a.StartDate != nil {
			dates = append(dates, domain.Date(*a.StartDate))
		}
		if a.EndDate != nil {
			dates = append(dates, domain.Date(*a.EndDate))
		}
	}

	var days []time.Time
	if r, ok := timeline.RangeAround(dates, exportMarginDays); ok {
		days = timeline.Days(r)
	}

	fixedCount := len(wbsFixedHeaders)
	for c, h := range wbsFixedHeaders {
		s.Set(0, c, headerCell(h))
		s.Set(1, c, headerCell(""))
		s.MergeCells(0, c, 1, c)
	}

	for _, span := range timeline.MonthSpansOfDays(days) {
		col := fixedCount + span.Offset
		s.Set(0, col, headerCell(monthLabel(span)))
		if span.Width > 1 {
			s.MergeCells(0, col, 0, col+span.Width-1)
		}
	}
	for i, d := range days {
		style := StyleDay
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			style = StyleDayWeekend
		}
		s.Set(1, fixedCount+i, Cell{Value: d.Day(), Style: style})
	}

	const dataStart = 2
	for i, row := range rows {
		r := dataStart + i
		parentName, childName := "", ""
		if row.ShowParent {
			parentName = row.Parent.Name
		}
		if row.ShowChild && row.Child != nil {
			childName = row.Child.Name
		}
		s.Set(r, 0, textCell(parentName))
		s.Set(r, 1, textCell(childName))

		if row.Task != nil {
			t := row.Task
			s.Set(r, 2, textCell(t.Name))
			s.Set(r, 3, textCell(t.Owner))
			s.Set(r, 4, textCell(statusLabel(string(t.Status))))
			s.Set(r, 5, numberCell(t.Progress))
			s.Set(r, 6, textCell(dateString(t.StartDate)))
			s.Set(r, 7, textCell(dateString(t.EndDate)))

			if t.HasDates() {
				fill := barColor(string(t.Status))
				start, end := domain.Date(*t.StartDate), domain.Date(*t.EndDate)
				for di, d := range days {
					if !d.Before(start) && !d.After(end) {
						s.Set(r, fixedCount+di, barCell(fill))
					}
				}
			}
		} else {
			for c := 2; c < fixedCount; c++ {
				s.Set(r, c, textCell(""))
			}
		}
	}

	mergeRuns(s, rows, dataStart, 0, func(row wbs.Row) bool { return row.ShowParent })
	mergeRuns(s, rows, dataStart, 1, func(row wbs.Row) bool { return row.ShowChild })

	s.ColWidths = append([]float64{16, 16, 20, 10, 10, 6, 12, 12}, repeatWidth(3.5, len(days))...)
	return s
}

// mergeRuns emits one vertical merge per contiguous run, where a run starts
// at every row whose flag is set.
func mergeRuns(s *Sheet, rows []wbs.Row, dataStart, col int, startsRun func(wbs.Row) bool) {
	runStart := dataStart
	for i := dataStart; i <= dataStart+len(rows); i++ {
		atEnd := i == dataStart+len(rows)
		if atEnd || startsRun(rows[i-dataStart]) {
			if i-runStart > 1 {
				s.MergeCells(runStart, col, i-1, col)
			}
			runStart = i
		}
	}
}
