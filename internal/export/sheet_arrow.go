package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/timeline"
)

var arrowFixedHeaders = []string{"Arrow", "Owner", "Status", "Start", "End"}

// junLabels marks the early, mid, and late third of a month.
var junLabels = [3]string{"E", "M", "L"}

// ArrowSheet renders the arrow tree with a jun-granularity gantt: a two-row
// header (merged month groups over third-of-month labels) and one row per
// arrow in tree order, names indented by depth.
func ArrowSheet(arrows []*domain.Arrow) *Sheet {
	s := NewSheet("Arrows")
	nodes := timeline.Flatten(arrows, nil)

	var dates []time.Time
	for _, a := range arrows {
		if a.StartDate != nil {
			dates = append(dates, domain.Date(*a.StartDate))
		}
		if a.EndDate != nil {
			dates = append(dates, domain.Date(*a.EndDate))
		}
	}
	periods := timeline.JunRange(dates)

	fixedCount := len(arrowFixedHeaders)
	for c, h := range arrowFixedHeaders {
		s.Set(0, c, headerCell(h))
		s.Set(1, c, headerCell(""))
		s.MergeCells(0, c, 1, c)
	}

	for _, span := range timeline.MonthSpansOfJuns(periods) {
		col := fixedCount + span.Offset
		s.Set(0, col, headerCell(monthLabel(span)))
		if span.Width > 1 {
			s.MergeCells(0, col, 0, col+span.Width-1)
		}
	}
	for i, p := range periods {
		s.Set(1, fixedCount+i, headerCell(junLabels[p.Jun]))
	}

	for i, node := range nodes {
		r := i + 2
		a := node.Arrow
		indent := strings.Repeat("  ", node.Depth)
		s.Set(r, 0, textCell(indent+a.Name))
		s.Set(r, 1, textCell(a.Owner))
		s.Set(r, 2, textCell(statusLabel(string(a.Status))))
		s.Set(r, 3, textCell(dateString(a.StartDate)))
		s.Set(r, 4, textCell(dateString(a.EndDate)))

		if !a.HasDates() {
			continue
		}
		fill := barColor(string(a.Status))
		start, end := domain.Date(*a.StartDate), domain.Date(*a.EndDate)
		for pi, p := range periods {
			if p.Overlaps(start, end) {
				s.Set(r, fixedCount+pi, barCell(fill))
			}
		}
	}

	s.ColWidths = append([]float64{24, 12, 10, 12, 12}, repeatWidth(4, len(periods))...)
	return s
}

func monthLabel(span timeline.MonthSpan) string {
	return fmt.Sprintf("%s %d", span.Month.String()[:3], span.Year)
}

func dateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func repeatWidth(w float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = w
	}
	return out
}
