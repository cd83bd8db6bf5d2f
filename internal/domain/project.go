package domain

import (
	"fmt"
	"time"
)

type Project struct {
	ID          int64
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      ProjectStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the fields a project must have before persisting.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.StartDate != nil && p.EndDate != nil && p.StartDate.After(*p.EndDate) {
		return fmt.Errorf("project start date %s is after end date %s",
			p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"))
	}
	return nil
}

// HasExplicitRange reports whether both bounds are set, in which case they
// override any range derived from arrows or tasks.
func (p *Project) HasExplicitRange() bool {
	return p.StartDate != nil && p.EndDate != nil
}
