package domain

import "time"

type Member struct {
	ID           int64
	ProjectID    int64
	Name         string
	Role         string
	Organization string
	Email        string
	Note         string
	SortOrder    int
	CreatedAt    time.Time
}
