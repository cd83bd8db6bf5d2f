package repository

import (
	"context"

	"github.com/alexanderramin/yabane/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type ArrowRepo interface {
	Create(ctx context.Context, a *domain.Arrow) error
	GetByID(ctx context.Context, id int64) (*domain.Arrow, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Arrow, error)
	ListChildren(ctx context.Context, parentID int64) ([]*domain.Arrow, error)
	NextSortOrder(ctx context.Context, projectID int64, parentID *int64) (int, error)
	Update(ctx context.Context, a *domain.Arrow) error
	Delete(ctx context.Context, id int64) error
	// Reorder assigns sort_order 0..n-1 following the slice order. Callers
	// run it through a UnitOfWork so the rewrite is all-or-nothing.
	Reorder(ctx context.Context, ids []int64) error
}

type WbsItemRepo interface {
	Create(ctx context.Context, w *domain.WbsItem) error
	GetByID(ctx context.Context, id int64) (*domain.WbsItem, error)
	ListByArrow(ctx context.Context, arrowID int64) ([]*domain.WbsItem, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.WbsItem, error)
	Update(ctx context.Context, w *domain.WbsItem) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, ids []int64) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id int64) (*domain.Milestone, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, ids []int64) error
}

type MemberRepo interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Member, error)
	Update(ctx context.Context, m *domain.Member) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, ids []int64) error
}

type IssueRepo interface {
	Create(ctx context.Context, i *domain.Issue) error
	GetByID(ctx context.Context, id int64) (*domain.Issue, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Issue, error)
	Update(ctx context.Context, i *domain.Issue) error
	Delete(ctx context.Context, id int64) error
}

type PurposeRepo interface {
	GetByProject(ctx context.Context, projectID int64) (*domain.Purpose, error)
	Upsert(ctx context.Context, p *domain.Purpose) error
}
