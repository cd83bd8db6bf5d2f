package domain

import "time"

type Issue struct {
	ID          int64
	ProjectID   int64
	Title       string
	Description string
	Owner       string
	Priority    IssuePriority
	Status      IssueStatus
	DueDate     *time.Time
	Resolution  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
