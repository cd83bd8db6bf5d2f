package timeline

import "time"

// Days enumerates every calendar day in r, inclusive both ends, in order.
func Days(r Range) []time.Time {
	n := DaysBetween(r.Start, r.End)
	if n < 0 {
		return nil
	}
	out := make([]time.Time, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, AddDays(r.Start, i))
	}
	return out
}

// MonthSpan is a merged header cell covering the consecutive columns that
// share one (year, month). Offset and Width are in column units; consumers
// multiply by their own column width.
type MonthSpan struct {
	Year   int
	Month  time.Month
	Offset int
	Width  int
}

// MonthSpansOfDays groups consecutive day columns by (year, month). A new
// span starts exactly where the month changes.
func MonthSpansOfDays(days []time.Time) []MonthSpan {
	var spans []MonthSpan
	for i, d := range days {
		if i == 0 || d.Year() != days[i-1].Year() || d.Month() != days[i-1].Month() {
			spans = append(spans, MonthSpan{Year: d.Year(), Month: d.Month(), Offset: i, Width: 1})
			continue
		}
		spans[len(spans)-1].Width++
	}
	return spans
}

// GridLineKind distinguishes month boundaries from the lighter jun
// separators drawn at days 11 and 21.
type GridLineKind int

const (
	LineMonth GridLineKind = iota
	LineThird
)

// GridLine marks a vertical separator before the day column at Index.
type GridLine struct {
	Index int
	Kind  GridLineKind
}

// GridLines emits a month line at each day-of-month 1 and third lines at 11
// and 21. These are visual separators only; merging uses MonthSpansOfDays.
func GridLines(days []time.Time) []GridLine {
	var lines []GridLine
	for i, d := range days {
		switch d.Day() {
		case 1:
			lines = append(lines, GridLine{Index: i, Kind: LineMonth})
		case 11, 21:
			lines = append(lines, GridLine{Index: i, Kind: LineThird})
		}
	}
	return lines
}
