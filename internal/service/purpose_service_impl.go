package service

import (
	"context"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/repository"
)

type purposeService struct {
	purposes repository.PurposeRepo
}

func NewPurposeService(purposes repository.PurposeRepo) PurposeService {
	return &purposeService{purposes: purposes}
}

func (s *purposeService) GetByProject(ctx context.Context, projectID int64) (*domain.Purpose, error) {
	return s.purposes.GetByProject(ctx, projectID)
}

func (s *purposeService) Upsert(ctx context.Context, p *domain.Purpose) error {
	return s.purposes.Upsert(ctx, p)
}
