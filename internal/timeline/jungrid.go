package timeline

import (
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
)

// JunPeriod is a third of a month: days 1-10 (jun 0), 11-20 (jun 1), 21 to
// month end (jun 2, variable length). The high-level arrow Gantt uses juns
// as its column granularity.
type JunPeriod struct {
	Year  int
	Month time.Month
	Jun   int // 0, 1 or 2
}

// JunOf returns the jun period containing t.
func JunOf(t time.Time) JunPeriod {
	jun := 0
	switch day := t.Day(); {
	case day > 20:
		jun = 2
	case day > 10:
		jun = 1
	}
	return JunPeriod{Year: t.Year(), Month: t.Month(), Jun: jun}
}

// Bounds returns the first and last day of the period at local midnight.
func (p JunPeriod) Bounds() (start, end time.Time) {
	lastDay := time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
	starts := [3]int{1, 11, 21}
	ends := [3]int{10, 20, lastDay}
	start = time.Date(p.Year, p.Month, starts[p.Jun], 0, 0, 0, 0, time.Local)
	end = time.Date(p.Year, p.Month, ends[p.Jun], 0, 0, 0, 0, time.Local)
	return start, end
}

// Overlaps reports whether the period intersects [s, e], inclusive both ends.
func (p JunPeriod) Overlaps(s, e time.Time) bool {
	start, end := p.Bounds()
	return !start.After(domain.Date(e)) && !end.Before(domain.Date(s))
}

// Next returns the following jun, rolling over month and year boundaries.
func (p JunPeriod) Next() JunPeriod {
	if p.Jun < 2 {
		return JunPeriod{Year: p.Year, Month: p.Month, Jun: p.Jun + 1}
	}
	if p.Month == time.December {
		return JunPeriod{Year: p.Year + 1, Month: time.January, Jun: 0}
	}
	return JunPeriod{Year: p.Year, Month: p.Month + 1, Jun: 0}
}

// Prev returns the preceding jun, rolling over month and year boundaries.
func (p JunPeriod) Prev() JunPeriod {
	if p.Jun > 0 {
		return JunPeriod{Year: p.Year, Month: p.Month, Jun: p.Jun - 1}
	}
	if p.Month == time.January {
		return JunPeriod{Year: p.Year - 1, Month: time.December, Jun: 2}
	}
	return JunPeriod{Year: p.Year, Month: p.Month - 1, Jun: 2}
}

func (p JunPeriod) lessOrEqual(q JunPeriod) bool {
	if p.Year != q.Year {
		return p.Year < q.Year
	}
	if p.Month != q.Month {
		return p.Month < q.Month
	}
	return p.Jun <= q.Jun
}

// JunRange computes the covering column range for a set of dates. The range
// spans the whole months of the earliest and latest dates, padded by one jun
// on each side, so a lone mid-March date still yields February's last jun
// through April's first. Chronological order, empty input yields nil.
func JunRange(dates []time.Time) []JunPeriod {
	if len(dates) == 0 {
		return nil
	}
	min, max := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}

	cur := JunPeriod{Year: min.Year(), Month: min.Month(), Jun: 0}.Prev()
	end := JunPeriod{Year: max.Year(), Month: max.Month(), Jun: 2}.Next()
	var out []JunPeriod
	for cur.lessOrEqual(end) {
		out = append(out, cur)
		cur = cur.Next()
	}
	return out
}

// MonthSpansOfJuns groups consecutive jun columns by (year, month), one
// merged header cell per month.
func MonthSpansOfJuns(periods []JunPeriod) []MonthSpan {
	var spans []MonthSpan
	for i, p := range periods {
		if i == 0 || p.Year != periods[i-1].Year || p.Month != periods[i-1].Month {
			spans = append(spans, MonthSpan{Year: p.Year, Month: p.Month, Offset: i, Width: 1})
			continue
		}
		spans[len(spans)-1].Width++
	}
	return spans
}
