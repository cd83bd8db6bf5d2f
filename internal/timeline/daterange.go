package timeline

import (
	"math"
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
)

// Range is an inclusive span of calendar days at local midnight.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, inclusive both ends.
func (r Range) Contains(t time.Time) bool {
	d := domain.Date(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// DaysBetween returns the calendar-day difference b - a. Both instants are
// normalized to midnight first; the division is rounded so DST transitions
// (23h/25h days) cannot skew the count.
func DaysBetween(a, b time.Time) int {
	diff := domain.Date(b).Sub(domain.Date(a))
	return int(math.Round(diff.Hours() / 24))
}

// AddDays shifts t by n calendar days, preserving local midnight.
func AddDays(t time.Time, n int) time.Time {
	return domain.Date(t).AddDate(0, 0, n)
}

// Default window when nothing is dated: 30 days back, 60 forward. The
// asymmetry reflects a forward-planning bias.
const (
	defaultBackDays    = 30
	defaultForwardDays = 60
)

// RangeFor resolves the date span to render or export. Explicit project
// bounds win verbatim (no margin). Otherwise the min/max over dates, widened
// by marginDays on each side. With no dates at all, a default window around
// now. Pure except for the caller-supplied now.
func RangeFor(projectStart, projectEnd *time.Time, dates []time.Time, marginDays int, now time.Time) Range {
	if projectStart != nil && projectEnd != nil {
		return Range{Start: domain.Date(*projectStart), End: domain.Date(*projectEnd)}
	}
	if r, ok := RangeAround(dates, marginDays); ok {
		return r
	}
	return Range{
		Start: AddDays(now, -defaultBackDays),
		End:   AddDays(now, defaultForwardDays),
	}
}

// RangeAround returns [min-marginDays, max+marginDays] over the given dates,
// or ok=false when dates is empty. The export sheets use this directly with
// their own margin.
func RangeAround(dates []time.Time, marginDays int) (Range, bool) {
	if len(dates) == 0 {
		return Range{}, false
	}
	min, max := domain.Date(dates[0]), domain.Date(dates[0])
	for _, d := range dates[1:] {
		d = domain.Date(d)
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return Range{Start: AddDays(min, -marginDays), End: AddDays(max, marginDays)}, true
}
