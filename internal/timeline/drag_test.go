package timeline

import (
	"testing"
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datedArrow(id int64, start, end time.Time) *domain.Arrow {
	return &domain.Arrow{
		ID:        id,
		Name:      "bar",
		StartDate: &start,
		EndDate:   &end,
		Status:    domain.StatusInProgress,
	}
}

func TestBeginDrag_RefusesUndatedArrow(t *testing.T) {
	_, ok := BeginDrag(&domain.Arrow{ID: 1, Status: domain.StatusNotStarted}, DragMove, 100)
	assert.False(t, ok)

	s := day(2024, 1, 1)
	_, ok = BeginDrag(&domain.Arrow{ID: 1, StartDate: &s}, DragMove, 100)
	assert.False(t, ok, "end date missing")
}

func TestDrag_MoveShiftsBothEnds(t *testing.T) {
	d, ok := BeginDrag(datedArrow(1, day(2024, 1, 10), day(2024, 1, 12)), DragMove, 100)
	require.True(t, ok)

	d.MoveTo(100+3*20, 20)

	start, end := d.Preview()
	assert.Equal(t, day(2024, 1, 13), start)
	assert.Equal(t, day(2024, 1, 15), end)
}

func TestDrag_DeltaRoundsToNearestDay(t *testing.T) {
	d, ok := BeginDrag(datedArrow(1, day(2024, 1, 10), day(2024, 1, 12)), DragMove, 0)
	require.True(t, ok)

	d.MoveTo(9, 20) // 0.45 days
	assert.Equal(t, 0, d.Delta())

	d.MoveTo(11, 20) // 0.55 days
	assert.Equal(t, 1, d.Delta())

	d.MoveTo(-11, 20)
	assert.Equal(t, -1, d.Delta())
}

func TestDrag_ResizeStartClampedToEnd(t *testing.T) {
	d, ok := BeginDrag(datedArrow(1, day(2024, 1, 10), day(2024, 1, 12)), DragResizeStart, 0)
	require.True(t, ok)

	// Push start 10 days right, past the end.
	d.MoveTo(10*20, 20)

	start, end := d.Preview()
	assert.Equal(t, day(2024, 1, 12), start, "clamped to equal end, never past it")
	assert.Equal(t, day(2024, 1, 12), end)
}

func TestDrag_ResizeEndClampedToStart(t *testing.T) {
	d, ok := BeginDrag(datedArrow(1, day(2024, 1, 10), day(2024, 1, 12)), DragResizeEnd, 0)
	require.True(t, ok)

	d.MoveTo(-10*20, 20)

	start, end := d.Preview()
	assert.Equal(t, day(2024, 1, 10), start)
	assert.Equal(t, day(2024, 1, 10), end, "clamped to equal start")
}

func TestDrag_ZeroDeltaDropReportsUnchanged(t *testing.T) {
	d, ok := BeginDrag(datedArrow(1, day(2024, 1, 10), day(2024, 1, 12)), DragMove, 50)
	require.True(t, ok)

	_, _, changed := d.Drop()
	assert.False(t, changed, "no movement at all")

	// Drag away and back to origin.
	d.MoveTo(50+5*20, 20)
	d.MoveTo(50, 20)
	_, _, changed = d.Drop()
	assert.False(t, changed, "returned to origin, must not persist")
}

func TestDrag_ChangedDropReportsNewDates(t *testing.T) {
	d, ok := BeginDrag(datedArrow(1, day(2024, 1, 10), day(2024, 1, 12)), DragResizeEnd, 0)
	require.True(t, ok)

	d.MoveTo(2*20, 20)

	start, end, changed := d.Drop()
	require.True(t, changed)
	assert.Equal(t, day(2024, 1, 10), start)
	assert.Equal(t, day(2024, 1, 14), end)
}

func TestDrag_ClampedResizeBackAndForth(t *testing.T) {
	// Over-shrink then partially recover: preview tracks the live delta.
	d, ok := BeginDrag(datedArrow(1, day(2024, 1, 10), day(2024, 1, 14)), DragResizeEnd, 0)
	require.True(t, ok)

	d.MoveTo(-8*20, 20) // clamp to start
	_, end := d.Preview()
	assert.Equal(t, day(2024, 1, 10), end)

	d.MoveTo(-2*20, 20)
	_, end = d.Preview()
	assert.Equal(t, day(2024, 1, 12), end)
}

func TestDrag_BarUsesPreviewGeometry(t *testing.T) {
	d, ok := BeginDrag(datedArrow(1, day(2024, 1, 10), day(2024, 1, 11)), DragMove, 0)
	require.True(t, ok)
	d.MoveTo(2*10, 10)

	b := d.Bar(day(2024, 1, 1), 10)

	assert.Equal(t, 110, b.Left, "Jan 12 offset")
	assert.Equal(t, 20, b.Width)
	assert.Equal(t, ColorInProgress, b.Color)
}
