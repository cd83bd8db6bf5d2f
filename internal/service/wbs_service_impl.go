package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/yabane/internal/db"
	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/repository"
)

type wbsService struct {
	items repository.WbsItemRepo
	uow   db.UnitOfWork
}

func NewWbsService(items repository.WbsItemRepo, uow db.UnitOfWork) WbsService {
	return &wbsService{items: items, uow: uow}
}

func (s *wbsService) Create(ctx context.Context, w *domain.WbsItem) error {
	if w.Status == "" {
		w.Status = domain.StatusNotStarted
	}
	if err := w.Validate(); err != nil {
		return err
	}
	if w.StartDate != nil && w.EndDate != nil && w.StartDate.After(*w.EndDate) {
		return fmt.Errorf("task start date is after end date")
	}
	return s.items.Create(ctx, w)
}

func (s *wbsService) GetByID(ctx context.Context, id int64) (*domain.WbsItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *wbsService) ListByArrow(ctx context.Context, arrowID int64) ([]*domain.WbsItem, error) {
	return s.items.ListByArrow(ctx, arrowID)
}

func (s *wbsService) ListByProject(ctx context.Context, projectID int64) ([]*domain.WbsItem, error) {
	return s.items.ListByProject(ctx, projectID)
}

func (s *wbsService) Update(ctx context.Context, w *domain.WbsItem) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.StartDate != nil && w.EndDate != nil && w.StartDate.After(*w.EndDate) {
		return fmt.Errorf("task start date is after end date")
	}
	return s.items.Update(ctx, w)
}

func (s *wbsService) Delete(ctx context.Context, id int64) error {
	return s.items.Delete(ctx, id)
}

func (s *wbsService) Reorder(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteWbsItemRepo(tx).Reorder(ctx, ids)
	})
}
