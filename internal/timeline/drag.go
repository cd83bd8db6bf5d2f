package timeline

import (
	"math"
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
)

// DragMode selects how pointer movement maps onto the bar interval.
type DragMode int

const (
	DragMove DragMode = iota
	DragResizeStart
	DragResizeEnd
)

// Drag tracks one in-flight bar edit. It is a plain value state machine:
// BeginDrag captures the origin, MoveTo folds pointer movement into a day
// delta, Drop decides whether anything actually changed. The owner (the TUI
// model) is responsible for cancelling an in-flight drag on teardown instead
// of committing it.
type Drag struct {
	ArrowID   int64
	Mode      DragMode
	Status    domain.Status
	originX   int
	origStart time.Time
	origEnd   time.Time
	delta     int
}

// BeginDrag starts a drag for the given arrow. Returns ok=false when the
// arrow is missing either date: undated bars are not drawn and cannot be
// dragged.
func BeginDrag(a *domain.Arrow, mode DragMode, originX int) (*Drag, bool) {
	if !a.HasDates() {
		return nil, false
	}
	return &Drag{
		ArrowID:   a.ID,
		Mode:      mode,
		Status:    a.Status,
		originX:   originX,
		origStart: domain.Date(*a.StartDate),
		origEnd:   domain.Date(*a.EndDate),
	}, true
}

// MoveTo updates the day delta from the current pointer x position,
// rounding to the nearest whole day.
func (d *Drag) MoveTo(x, dayWidth int) {
	if dayWidth <= 0 {
		return
	}
	d.delta = int(math.Round(float64(x-d.originX) / float64(dayWidth)))
}

// Delta returns the current signed day delta.
func (d *Drag) Delta() int { return d.delta }

// Preview computes the candidate dates for the current delta. Move shifts
// both ends; resize-start shifts only the start and clamps it to the end;
// resize-end shifts only the end and clamps it to the start.
func (d *Drag) Preview() (start, end time.Time) {
	switch d.Mode {
	case DragMove:
		return AddDays(d.origStart, d.delta), AddDays(d.origEnd, d.delta)
	case DragResizeStart:
		start = AddDays(d.origStart, d.delta)
		if start.After(d.origEnd) {
			start = d.origEnd
		}
		return start, d.origEnd
	default: // DragResizeEnd
		end = AddDays(d.origEnd, d.delta)
		if end.Before(d.origStart) {
			end = d.origStart
		}
		return d.origStart, end
	}
}

// Bar projects the preview interval for rendering the live drag feedback.
func (d *Drag) Bar(rangeStart time.Time, dayWidth int) Bar {
	start, end := d.Preview()
	return BarFor(start, end, rangeStart, dayWidth, d.Status)
}

// Drop finishes the drag. changed is false when the preview equals the
// original interval (zero net delta or a drag returned to origin); callers
// must not persist in that case.
func (d *Drag) Drop() (start, end time.Time, changed bool) {
	start, end = d.Preview()
	changed = !start.Equal(d.origStart) || !end.Equal(d.origEnd)
	return start, end, changed
}
