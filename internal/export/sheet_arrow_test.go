package export

import (
	"testing"
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func datedArrow(id int64, parentID *int64, name string, start, end time.Time, status domain.Status) *domain.Arrow {
	return &domain.Arrow{
		ID: id, ProjectID: 1, ParentID: parentID, Name: name,
		StartDate: &start, EndDate: &end, Status: status,
	}
}

func ptr(v int64) *int64 { return &v }

func TestArrowSheet_HeaderAndTreeRows(t *testing.T) {
	parent := datedArrow(1, nil, "Design", day(2024, 3, 5), day(2024, 3, 25), domain.StatusInProgress)
	child := datedArrow(2, ptr(1), "Wireframes", day(2024, 3, 6), day(2024, 3, 9), domain.StatusDone)

	s := ArrowSheet([]*domain.Arrow{parent, child})

	// Two-row header: fixed columns merged vertically.
	c, ok := s.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, "Arrow", c.Value)
	assert.Equal(t, StyleHeader, c.Style)
	assert.Contains(t, s.Merges, Merge{0, 0, 1, 0})

	// Jun columns: one jun before Mar 5 through one after Mar 25.
	assert.Equal(t, 5+5, s.Cols)
	junRow := []string{"L", "E", "M", "L", "E"}
	for i, want := range junRow {
		c, ok := s.At(1, 5+i)
		require.True(t, ok)
		assert.Equal(t, want, c.Value)
	}

	// Tree order with indent.
	c, _ = s.At(2, 0)
	assert.Equal(t, "Design", c.Value)
	c, _ = s.At(3, 0)
	assert.Equal(t, "  Wireframes", c.Value)

	c, _ = s.At(2, 2)
	assert.Equal(t, "In progress", c.Value)
	c, _ = s.At(2, 3)
	assert.Equal(t, "2024-03-05", c.Value)
}

func TestArrowSheet_BarsPerOverlappingJun(t *testing.T) {
	a := datedArrow(1, nil, "Build", day(2024, 3, 5), day(2024, 3, 25), domain.StatusInProgress)

	s := ArrowSheet([]*domain.Arrow{a})

	// Periods: Feb L, Mar E, Mar M, Mar L, Apr E. The bar covers the three
	// March juns only.
	for i, want := range []bool{false, true, true, true, false} {
		c, ok := s.At(2, 5+i)
		if want {
			require.True(t, ok, "jun %d should carry a bar", i)
			assert.Equal(t, StyleBar, c.Style)
			assert.Equal(t, ColorInProgress, c.Fill)
		} else {
			assert.False(t, ok, "jun %d should stay empty", i)
		}
	}
}

func TestArrowSheet_MonthGroupMerges(t *testing.T) {
	a := datedArrow(1, nil, "Build", day(2024, 3, 5), day(2024, 3, 25), domain.StatusNotStarted)

	s := ArrowSheet([]*domain.Arrow{a})

	c, ok := s.At(0, 6)
	require.True(t, ok)
	assert.Equal(t, "Mar 2024", c.Value)
	assert.Contains(t, s.Merges, Merge{0, 6, 0, 8}, "three March juns merged")

	// Single-jun months get a label but no merge.
	c, ok = s.At(0, 5)
	require.True(t, ok)
	assert.Equal(t, "Feb 2024", c.Value)
	assert.NotContains(t, s.Merges, Merge{0, 5, 0, 5})
}

func TestArrowSheet_UndatedArrowHasNoBar(t *testing.T) {
	dated := datedArrow(1, nil, "Dated", day(2024, 3, 5), day(2024, 3, 8), domain.StatusNotStarted)
	undated := &domain.Arrow{ID: 2, ProjectID: 1, Name: "Someday", Status: domain.StatusNotStarted}

	s := ArrowSheet([]*domain.Arrow{dated, undated})

	c, _ := s.At(3, 0)
	assert.Equal(t, "Someday", c.Value)
	c, _ = s.At(3, 3)
	assert.Equal(t, "", c.Value)
	for i := 0; i < 4; i++ {
		_, ok := s.At(3, 5+i)
		assert.False(t, ok)
	}
}
