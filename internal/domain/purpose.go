package domain

import "time"

// Purpose is the one-per-project background/objective block shown on the
// export overview sheet. It is upserted, never listed.
type Purpose struct {
	ID         int64
	ProjectID  int64
	Background string
	Objective  string
	Scope      string
	OutOfScope string
	Assumption string
	UpdatedAt  time.Time
}
