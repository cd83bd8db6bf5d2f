package domain

import (
	"fmt"
	"time"
)

// Arrow is a timeline bar: a top-level phase (ParentID nil) or a sub-phase
// nested one level under a top-level arrow. The tree code itself is
// depth-generic; the application only ever creates two levels.
type Arrow struct {
	ID        int64
	ProjectID int64
	ParentID  *int64
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Owner     string
	Status    Status
	SortOrder int
	CreatedAt time.Time
}

func (a *Arrow) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("arrow name is required")
	}
	if !ValidStatuses[string(a.Status)] {
		return fmt.Errorf("invalid arrow status %q", a.Status)
	}
	return nil
}

// IsChild reports whether this arrow is nested under a parent.
func (a *Arrow) IsChild() bool { return a.ParentID != nil }

// HasDates reports whether both interval ends are set. Bars without both
// dates are not drawn and cannot be dragged.
func (a *Arrow) HasDates() bool { return a.StartDate != nil && a.EndDate != nil }
