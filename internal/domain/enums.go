package domain

// Status is shared by arrows and WBS items.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[string]bool{
	"not_started": true, "in_progress": true, "done": true,
}

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

type IssuePriority string

const (
	PriorityLow      IssuePriority = "low"
	PriorityMedium   IssuePriority = "medium"
	PriorityHigh     IssuePriority = "high"
	PriorityCritical IssuePriority = "critical"
)

// ValidIssuePriorities is the canonical set of accepted priority strings.
var ValidIssuePriorities = map[string]bool{
	"low": true, "medium": true, "high": true, "critical": true,
}

type IssueStatus string

const (
	IssueOpen       IssueStatus = "open"
	IssueInProgress IssueStatus = "in_progress"
	IssueResolved   IssueStatus = "resolved"
	IssueClosed     IssueStatus = "closed"
)

// ValidIssueStatuses is the canonical set of accepted issue status strings.
var ValidIssueStatuses = map[string]bool{
	"open": true, "in_progress": true, "resolved": true, "closed": true,
}
