package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/yabane/internal/db"
	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/repository"
)

type arrowService struct {
	arrows   repository.ArrowRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewArrowService(
	arrows repository.ArrowRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ArrowService {
	return &arrowService{
		arrows:   arrows,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *arrowService) Create(ctx context.Context, a *domain.Arrow) error {
	if a.Status == "" {
		a.Status = domain.StatusNotStarted
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if a.StartDate != nil && a.EndDate != nil && a.StartDate.After(*a.EndDate) {
		return fmt.Errorf("arrow start date is after end date")
	}
	return s.arrows.Create(ctx, a)
}

func (s *arrowService) GetByID(ctx context.Context, id int64) (*domain.Arrow, error) {
	return s.arrows.GetByID(ctx, id)
}

func (s *arrowService) ListByProject(ctx context.Context, projectID int64) ([]*domain.Arrow, error) {
	return s.arrows.ListByProject(ctx, projectID)
}

func (s *arrowService) Update(ctx context.Context, a *domain.Arrow) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.StartDate != nil && a.EndDate != nil && a.StartDate.After(*a.EndDate) {
		return fmt.Errorf("arrow start date is after end date")
	}
	return s.arrows.Update(ctx, a)
}

// UpdateDates re-reads the arrow and persists only the interval. The gantt
// drag commit goes through here so a stale in-memory copy cannot clobber
// other fields.
func (s *arrowService) UpdateDates(ctx context.Context, id int64, start, end *time.Time) error {
	a, err := s.arrows.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.StartDate = start
	a.EndDate = end
	if a.StartDate != nil && a.EndDate != nil && a.StartDate.After(*a.EndDate) {
		return fmt.Errorf("arrow start date is after end date")
	}
	return s.arrows.Update(ctx, a)
}

func (s *arrowService) Delete(ctx context.Context, id int64) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-arrow",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Err:       err,
			Fields:    map[string]any{"arrow_id": id},
		})
	}()
	return s.arrows.Delete(ctx, id)
}

// Reorder rewrites sort_order for the given sibling ids inside one
// transaction so a mid-write failure leaves the old order intact.
func (s *arrowService) Reorder(ctx context.Context, ids []int64) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "reorder-arrows",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Err:       err,
			Fields:    map[string]any{"count": len(ids)},
		})
	}()
	if len(ids) == 0 {
		return nil
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteArrowRepo(tx).Reorder(ctx, ids)
	})
}
