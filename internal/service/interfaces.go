package service

import (
	"context"
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
)

// ProjectService manages project lifecycle.
type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64, force bool) error
}

// ArrowService manages timeline bars, including the atomic sibling reorder
// used by drag-and-drop.
type ArrowService interface {
	Create(ctx context.Context, a *domain.Arrow) error
	GetByID(ctx context.Context, id int64) (*domain.Arrow, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Arrow, error)
	Update(ctx context.Context, a *domain.Arrow) error
	// UpdateDates persists a committed drag or resize without touching any
	// other field.
	UpdateDates(ctx context.Context, id int64, start, end *time.Time) error
	Delete(ctx context.Context, id int64) error
	// Reorder rewrites sort_order 0..n-1 following ids, all-or-nothing.
	Reorder(ctx context.Context, ids []int64) error
}

// WbsService manages leaf tasks under child arrows.
type WbsService interface {
	Create(ctx context.Context, w *domain.WbsItem) error
	GetByID(ctx context.Context, id int64) (*domain.WbsItem, error)
	ListByArrow(ctx context.Context, arrowID int64) ([]*domain.WbsItem, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.WbsItem, error)
	Update(ctx context.Context, w *domain.WbsItem) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, ids []int64) error
}

// MilestoneService manages dated project markers.
type MilestoneService interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id int64) (*domain.Milestone, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, ids []int64) error
}

// MemberService manages the project roster and its CSV round-trip.
type MemberService interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Member, error)
	Update(ctx context.Context, m *domain.Member) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, ids []int64) error
	// ImportCSV creates one member per data row inside a single transaction
	// and returns the number imported.
	ImportCSV(ctx context.Context, projectID int64, data []byte) (int, error)
	ExportCSV(ctx context.Context, projectID int64) ([]byte, error)
}

// IssueService manages the project issue log.
type IssueService interface {
	Create(ctx context.Context, i *domain.Issue) error
	GetByID(ctx context.Context, id int64) (*domain.Issue, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Issue, error)
	Update(ctx context.Context, i *domain.Issue) error
	Resolve(ctx context.Context, id int64, resolution string) error
	Delete(ctx context.Context, id int64) error
}

// PurposeService manages the one-per-project background block.
type PurposeService interface {
	GetByProject(ctx context.Context, projectID int64) (*domain.Purpose, error)
	Upsert(ctx context.Context, p *domain.Purpose) error
}

// ExportSections selects which sheets go into an exported workbook.
type ExportSections struct {
	Overview   bool
	Arrows     bool
	Wbs        bool
	Milestones bool
	Members    bool
	Issues     bool
}

// AllSections selects every sheet.
func AllSections() ExportSections {
	return ExportSections{
		Overview: true, Arrows: true, Wbs: true,
		Milestones: true, Members: true, Issues: true,
	}
}

// ExportService assembles styled workbooks from a project's data.
type ExportService interface {
	Workbook(ctx context.Context, projectID int64, sections ExportSections) ([]byte, error)
}
