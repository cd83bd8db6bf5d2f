package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/repository"
)

type issueService struct {
	issues repository.IssueRepo
}

func NewIssueService(issues repository.IssueRepo) IssueService {
	return &issueService{issues: issues}
}

func validateIssue(i *domain.Issue) error {
	if i.Title == "" {
		return fmt.Errorf("issue title is required")
	}
	if !domain.ValidIssuePriorities[string(i.Priority)] {
		return fmt.Errorf("invalid issue priority %q", i.Priority)
	}
	if !domain.ValidIssueStatuses[string(i.Status)] {
		return fmt.Errorf("invalid issue status %q", i.Status)
	}
	return nil
}

func (s *issueService) Create(ctx context.Context, i *domain.Issue) error {
	if i.Priority == "" {
		i.Priority = domain.PriorityMedium
	}
	if i.Status == "" {
		i.Status = domain.IssueOpen
	}
	if err := validateIssue(i); err != nil {
		return err
	}
	return s.issues.Create(ctx, i)
}

func (s *issueService) GetByID(ctx context.Context, id int64) (*domain.Issue, error) {
	return s.issues.GetByID(ctx, id)
}

func (s *issueService) ListByProject(ctx context.Context, projectID int64) ([]*domain.Issue, error) {
	return s.issues.ListByProject(ctx, projectID)
}

func (s *issueService) Update(ctx context.Context, i *domain.Issue) error {
	if err := validateIssue(i); err != nil {
		return err
	}
	return s.issues.Update(ctx, i)
}

// Resolve marks the issue resolved and records the resolution text.
func (s *issueService) Resolve(ctx context.Context, id int64, resolution string) error {
	i, err := s.issues.GetByID(ctx, id)
	if err != nil {
		return err
	}
	i.Status = domain.IssueResolved
	i.Resolution = resolution
	return s.issues.Update(ctx, i)
}

func (s *issueService) Delete(ctx context.Context, id int64) error {
	return s.issues.Delete(ctx, id)
}
