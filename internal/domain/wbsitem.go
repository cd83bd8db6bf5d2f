package domain

import (
	"fmt"
	"time"
)

// WbsItem is a leaf task attached to a child arrow.
type WbsItem struct {
	ID             int64
	ArrowID        int64
	Name           string
	StartDate      *time.Time
	EndDate        *time.Time
	Owner          string
	Status         Status
	Progress       int // 0-100
	EstimatedHours *float64
	ActualHours    *float64
	SortOrder      int
	CreatedAt      time.Time
}

func (w *WbsItem) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if !ValidStatuses[string(w.Status)] {
		return fmt.Errorf("invalid task status %q", w.Status)
	}
	if w.Progress < 0 || w.Progress > 100 {
		return fmt.Errorf("progress %d out of range 0-100", w.Progress)
	}
	return nil
}

func (w *WbsItem) HasDates() bool { return w.StartDate != nil && w.EndDate != nil }
