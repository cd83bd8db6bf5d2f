package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(day(2024, 1, 1), day(2024, 1, 1)))
	assert.Equal(t, 2, DaysBetween(day(2024, 1, 3), day(2024, 1, 5)))
	assert.Equal(t, -2, DaysBetween(day(2024, 1, 5), day(2024, 1, 3)))
	// Leap year boundary.
	assert.Equal(t, 2, DaysBetween(day(2024, 2, 28), day(2024, 3, 1)))
	// Non-midnight inputs are normalized first.
	assert.Equal(t, 1, DaysBetween(
		time.Date(2024, 1, 1, 23, 0, 0, 0, time.Local),
		time.Date(2024, 1, 2, 1, 0, 0, 0, time.Local)))
}

func TestRangeFor_ExplicitProjectBoundsWin(t *testing.T) {
	ps := day(2024, 4, 1)
	pe := day(2024, 6, 30)
	items := []time.Time{day(2023, 1, 1), day(2025, 12, 31)}

	r := RangeFor(&ps, &pe, items, 7, day(2024, 5, 1))

	assert.Equal(t, ps, r.Start, "no margin on explicit bounds")
	assert.Equal(t, pe, r.End)
}

func TestRangeFor_DerivedWithMargin(t *testing.T) {
	items := []time.Time{day(2024, 1, 10), day(2024, 1, 20)}

	r := RangeFor(nil, nil, items, 7, day(2024, 6, 1))

	assert.Equal(t, day(2024, 1, 3), r.Start)
	assert.Equal(t, day(2024, 1, 27), r.End)
}

func TestRangeFor_SingleBoundDoesNotOverride(t *testing.T) {
	// Only one project bound set: fall through to the derived range.
	ps := day(2024, 4, 1)
	items := []time.Time{day(2024, 2, 10)}

	r := RangeFor(&ps, nil, items, 7, day(2024, 6, 1))

	assert.Equal(t, day(2024, 2, 3), r.Start)
	assert.Equal(t, day(2024, 2, 17), r.End)
}

func TestRangeFor_DefaultWindow(t *testing.T) {
	now := day(2024, 6, 15)

	r := RangeFor(nil, nil, nil, 7, now)

	assert.Equal(t, day(2024, 5, 16), r.Start, "30 days back")
	assert.Equal(t, day(2024, 8, 14), r.End, "60 days forward")
}

func TestRangeAround(t *testing.T) {
	r, ok := RangeAround([]time.Time{day(2024, 3, 10), day(2024, 3, 5), day(2024, 3, 20)}, 3)
	require.True(t, ok)
	assert.Equal(t, day(2024, 3, 2), r.Start)
	assert.Equal(t, day(2024, 3, 23), r.End)

	_, ok = RangeAround(nil, 3)
	assert.False(t, ok)
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: day(2024, 1, 10), End: day(2024, 1, 20)}
	assert.True(t, r.Contains(day(2024, 1, 10)), "inclusive start")
	assert.True(t, r.Contains(day(2024, 1, 20)), "inclusive end")
	assert.False(t, r.Contains(day(2024, 1, 9)))
	assert.False(t, r.Contains(day(2024, 1, 21)))
}
