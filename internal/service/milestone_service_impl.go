package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/yabane/internal/db"
	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/repository"
)

// defaultMilestoneColor matches the bar palette's in-progress blue.
const defaultMilestoneColor = "#4472C4"

type milestoneService struct {
	milestones repository.MilestoneRepo
	uow        db.UnitOfWork
}

func NewMilestoneService(milestones repository.MilestoneRepo, uow db.UnitOfWork) MilestoneService {
	return &milestoneService{milestones: milestones, uow: uow}
}

func (s *milestoneService) Create(ctx context.Context, m *domain.Milestone) error {
	if m.Name == "" {
		return fmt.Errorf("milestone name is required")
	}
	if m.Color == "" {
		m.Color = defaultMilestoneColor
	}
	return s.milestones.Create(ctx, m)
}

func (s *milestoneService) GetByID(ctx context.Context, id int64) (*domain.Milestone, error) {
	return s.milestones.GetByID(ctx, id)
}

func (s *milestoneService) ListByProject(ctx context.Context, projectID int64) ([]*domain.Milestone, error) {
	return s.milestones.ListByProject(ctx, projectID)
}

func (s *milestoneService) Update(ctx context.Context, m *domain.Milestone) error {
	if m.Name == "" {
		return fmt.Errorf("milestone name is required")
	}
	return s.milestones.Update(ctx, m)
}

func (s *milestoneService) Delete(ctx context.Context, id int64) error {
	return s.milestones.Delete(ctx, id)
}

func (s *milestoneService) Reorder(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteMilestoneRepo(tx).Reorder(ctx, ids)
	})
}
