package domain

import "time"

type Milestone struct {
	ID          int64
	ProjectID   int64
	Name        string
	Description string
	DueDate     *time.Time
	Color       string // hex, e.g. "#E91E63"
	SortOrder   int
	CreatedAt   time.Time
}
