package export

import (
	"testing"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wbsTask(id, arrowID int64, name string, opts ...func(*domain.WbsItem)) *domain.WbsItem {
	t := &domain.WbsItem{ID: id, ArrowID: arrowID, Name: name, Status: domain.StatusNotStarted}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func TestWbsSheet_DayGridWithWeekendTint(t *testing.T) {
	parent := &domain.Arrow{ID: 1, ProjectID: 1, Name: "Phase", Status: domain.StatusNotStarted}
	child := &domain.Arrow{ID: 2, ProjectID: 1, ParentID: ptr(1), Name: "Sub", Status: domain.StatusNotStarted}
	task := wbsTask(10, 2, "Write draft", func(w *domain.WbsItem) {
		s, e := day(2024, 1, 10), day(2024, 1, 12)
		w.StartDate, w.EndDate = &s, &e
		w.Status = domain.StatusInProgress
		w.Progress = 30
		w.Owner = "ann"
	})

	s := WbsSheet([]*domain.Arrow{parent, child}, []*domain.WbsItem{task})

	// 3-day margin: Jan 7 through Jan 15, nine day columns.
	assert.Equal(t, 8+9, s.Cols)

	// Jan 7 2024 is a Sunday, Jan 8 a Monday.
	c, ok := s.At(1, 8)
	require.True(t, ok)
	assert.Equal(t, 7, c.Value)
	assert.Equal(t, StyleDayWeekend, c.Style)
	c, _ = s.At(1, 9)
	assert.Equal(t, StyleDay, c.Style)

	// Task row carries labels and the three-day bar.
	c, _ = s.At(2, 0)
	assert.Equal(t, "Phase", c.Value)
	c, _ = s.At(2, 2)
	assert.Equal(t, "Write draft", c.Value)
	c, _ = s.At(2, 5)
	assert.Equal(t, 30, c.Value)
	assert.Equal(t, StyleNumber, c.Style)

	for i := 0; i < 9; i++ {
		c, ok := s.At(2, 8+i)
		inBar := i >= 3 && i <= 5 // Jan 10, 11, 12
		if inBar {
			require.True(t, ok)
			assert.Equal(t, StyleBar, c.Style)
			assert.Equal(t, ColorInProgress, c.Fill)
		} else {
			assert.False(t, ok && c.Style == StyleBar, "day %d should not carry a bar", i)
		}
	}
}

func TestWbsSheet_VerticalMergesFollowRuns(t *testing.T) {
	parent := &domain.Arrow{ID: 1, ProjectID: 1, Name: "Phase", Status: domain.StatusNotStarted}
	child := &domain.Arrow{ID: 2, ProjectID: 1, ParentID: ptr(1), Name: "Sub", Status: domain.StatusNotStarted}
	t1 := wbsTask(10, 2, "one")
	t2 := wbsTask(11, 2, "two")
	t3 := wbsTask(12, 2, "three")

	s := WbsSheet([]*domain.Arrow{parent, child}, []*domain.WbsItem{t1, t2, t3})

	// One parent run and one child run, each spanning all three task rows.
	assert.Contains(t, s.Merges, Merge{2, 0, 4, 0})
	assert.Contains(t, s.Merges, Merge{2, 1, 4, 1})

	// The repeated labels are blanked on the follow-up rows.
	c, _ := s.At(3, 0)
	assert.Equal(t, "", c.Value)
	c, _ = s.At(3, 1)
	assert.Equal(t, "", c.Value)
}

func TestWbsSheet_PlaceholderChildRow(t *testing.T) {
	parent := &domain.Arrow{ID: 1, ProjectID: 1, Name: "Phase", Status: domain.StatusNotStarted}
	child := &domain.Arrow{ID: 2, ProjectID: 1, ParentID: ptr(1), Name: "Sub", Status: domain.StatusNotStarted}

	s := WbsSheet([]*domain.Arrow{parent, child}, nil)

	c, ok := s.At(2, 1)
	require.True(t, ok)
	assert.Equal(t, "Sub", c.Value)
	c, _ = s.At(2, 2)
	assert.Equal(t, "", c.Value, "no task on a placeholder row")
}

func TestWbsSheet_NoDatesMeansNoDayColumns(t *testing.T) {
	parent := &domain.Arrow{ID: 1, ProjectID: 1, Name: "Phase", Status: domain.StatusNotStarted}

	s := WbsSheet([]*domain.Arrow{parent}, nil)

	assert.Equal(t, 8, s.Cols, "fixed columns only")
}
