package testutil

import (
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectRange(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = &start
		p.EndDate = &end
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		Name:   name,
		Status: domain.ProjectActive,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Arrow options
type ArrowOption func(*domain.Arrow)

func WithParent(id int64) ArrowOption {
	return func(a *domain.Arrow) {
		a.ParentID = &id
	}
}

func WithArrowDates(start, end time.Time) ArrowOption {
	return func(a *domain.Arrow) {
		a.StartDate = &start
		a.EndDate = &end
	}
}

func WithArrowOwner(owner string) ArrowOption {
	return func(a *domain.Arrow) {
		a.Owner = owner
	}
}

func WithArrowStatus(s domain.Status) ArrowOption {
	return func(a *domain.Arrow) {
		a.Status = s
	}
}

func NewTestArrow(projectID int64, name string, opts ...ArrowOption) *domain.Arrow {
	a := &domain.Arrow{
		ProjectID: projectID,
		Name:      name,
		Status:    domain.StatusNotStarted,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WbsItem options
type WbsItemOption func(*domain.WbsItem)

func WithTaskDates(start, end time.Time) WbsItemOption {
	return func(w *domain.WbsItem) {
		w.StartDate = &start
		w.EndDate = &end
	}
}

func WithTaskOwner(owner string) WbsItemOption {
	return func(w *domain.WbsItem) {
		w.Owner = owner
	}
}

func WithTaskStatus(s domain.Status) WbsItemOption {
	return func(w *domain.WbsItem) {
		w.Status = s
	}
}

func WithProgress(p int) WbsItemOption {
	return func(w *domain.WbsItem) {
		w.Progress = p
	}
}

func WithHours(estimated, actual float64) WbsItemOption {
	return func(w *domain.WbsItem) {
		w.EstimatedHours = &estimated
		w.ActualHours = &actual
	}
}

func NewTestWbsItem(arrowID int64, name string, opts ...WbsItemOption) *domain.WbsItem {
	w := &domain.WbsItem{
		ArrowID: arrowID,
		Name:    name,
		Status:  domain.StatusNotStarted,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Milestone options
type MilestoneOption func(*domain.Milestone)

func WithDueDate(d time.Time) MilestoneOption {
	return func(m *domain.Milestone) {
		m.DueDate = &d
	}
}

func WithColor(hex string) MilestoneOption {
	return func(m *domain.Milestone) {
		m.Color = hex
	}
}

func NewTestMilestone(projectID int64, name string, opts ...MilestoneOption) *domain.Milestone {
	m := &domain.Milestone{
		ProjectID: projectID,
		Name:      name,
		Color:     "#4472C4",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func NewTestMember(projectID int64, name, role string) *domain.Member {
	return &domain.Member{
		ProjectID: projectID,
		Name:      name,
		Role:      role,
	}
}

// Issue options
type IssueOption func(*domain.Issue)

func WithPriority(p domain.IssuePriority) IssueOption {
	return func(i *domain.Issue) {
		i.Priority = p
	}
}

func WithIssueStatus(s domain.IssueStatus) IssueOption {
	return func(i *domain.Issue) {
		i.Status = s
	}
}

func NewTestIssue(projectID int64, title string, opts ...IssueOption) *domain.Issue {
	i := &domain.Issue{
		ProjectID: projectID,
		Title:     title,
		Priority:  domain.PriorityMedium,
		Status:    domain.IssueOpen,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}
