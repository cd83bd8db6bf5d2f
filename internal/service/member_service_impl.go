package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/yabane/internal/db"
	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/export"
	"github.com/alexanderramin/yabane/internal/repository"
)

type memberService struct {
	members  repository.MemberRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewMemberService(
	members repository.MemberRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) MemberService {
	return &memberService{
		members:  members,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *memberService) Create(ctx context.Context, m *domain.Member) error {
	if m.Name == "" {
		return fmt.Errorf("member name is required")
	}
	return s.members.Create(ctx, m)
}

func (s *memberService) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	return s.members.GetByID(ctx, id)
}

func (s *memberService) ListByProject(ctx context.Context, projectID int64) ([]*domain.Member, error) {
	return s.members.ListByProject(ctx, projectID)
}

func (s *memberService) Update(ctx context.Context, m *domain.Member) error {
	if m.Name == "" {
		return fmt.Errorf("member name is required")
	}
	return s.members.Update(ctx, m)
}

func (s *memberService) Delete(ctx context.Context, id int64) error {
	return s.members.Delete(ctx, id)
}

func (s *memberService) Reorder(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteMemberRepo(tx).Reorder(ctx, ids)
	})
}

// ImportCSV parses a member CSV and inserts every row inside a single
// transaction. A bad row aborts the whole import.
func (s *memberService) ImportCSV(ctx context.Context, projectID int64, data []byte) (count int, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-members",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Err:       err,
			Fields:    map[string]any{"project_id": projectID, "count": count},
		})
	}()

	parsed, err := export.ParseMemberCSV(data, projectID)
	if err != nil {
		return 0, fmt.Errorf("parsing member csv: %w", err)
	}
	if len(parsed) == 0 {
		return 0, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txMembers := repository.NewSQLiteMemberRepo(tx)
		for i, m := range parsed {
			if m.Name == "" {
				return fmt.Errorf("row %d: member name is required", i+1)
			}
			if err := txMembers.Create(ctx, m); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(parsed), nil
}

func (s *memberService) ExportCSV(ctx context.Context, projectID int64) ([]byte, error) {
	members, err := s.members.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return export.BuildMemberCSV(members)
}
