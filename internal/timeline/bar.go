package timeline

import (
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
)

// Status bar palette, RGB hex without the leading '#'. The export sheets and
// the TUI both key off this so screen and spreadsheet stay in step.
const (
	ColorNotStarted = "BFBFBF"
	ColorInProgress = "4472C4"
	ColorDone       = "70AD47"
)

// StatusColor maps a status to its bar color. Unrecognized statuses fall
// back to the not-started gray.
func StatusColor(s domain.Status) string {
	switch s {
	case domain.StatusInProgress:
		return ColorInProgress
	case domain.StatusDone:
		return ColorDone
	case domain.StatusNotStarted:
		return ColorNotStarted
	default:
		return ColorNotStarted
	}
}

// Bar is the projected geometry of one interval: Left and Width in the
// consumer's pixel/cell unit (dayWidth per day), Color from the status
// palette.
type Bar struct {
	Left  int
	Width int
	Color string
}

// BarFor projects [start, end] onto the column grid anchored at rangeStart.
// Both end days are included, so a single-day bar has width == dayWidth.
// An inverted interval (start after end) yields a non-positive width rather
// than an error; renderers must not assume Width > 0.
func BarFor(start, end, rangeStart time.Time, dayWidth int, status domain.Status) Bar {
	return Bar{
		Left:  DaysBetween(rangeStart, start) * dayWidth,
		Width: (DaysBetween(start, end) + 1) * dayWidth,
		Color: StatusColor(status),
	}
}

// TodayOffset returns the left offset of the today marker, or ok=false when
// today falls outside the range.
func TodayOffset(today time.Time, r Range, dayWidth int) (int, bool) {
	if !r.Contains(today) {
		return 0, false
	}
	return DaysBetween(r.Start, today) * dayWidth, true
}

// MilestoneMark is a vertical milestone line, centered within its day column.
type MilestoneMark struct {
	Milestone *domain.Milestone
	Offset    int
}

// MilestoneMarks projects every milestone whose due date falls within r,
// inclusive. Undated milestones are skipped.
func MilestoneMarks(milestones []*domain.Milestone, r Range, dayWidth int) []MilestoneMark {
	var marks []MilestoneMark
	for _, m := range milestones {
		if m.DueDate == nil || !r.Contains(*m.DueDate) {
			continue
		}
		marks = append(marks, MilestoneMark{
			Milestone: m,
			Offset:    DaysBetween(r.Start, *m.DueDate)*dayWidth + dayWidth/2,
		})
	}
	return marks
}
