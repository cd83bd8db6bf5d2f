package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/yabane/internal/db"
	"github.com/alexanderramin/yabane/internal/domain"
)

// SQLitePurposeRepo implements PurposeRepo using a SQLite database. A project
// has at most one purpose row, enforced by the UNIQUE project_id constraint.
type SQLitePurposeRepo struct {
	db db.DBTX
}

// NewSQLitePurposeRepo creates a new SQLitePurposeRepo.
func NewSQLitePurposeRepo(db db.DBTX) *SQLitePurposeRepo {
	return &SQLitePurposeRepo{db: db}
}

func (r *SQLitePurposeRepo) GetByProject(ctx context.Context, projectID int64) (*domain.Purpose, error) {
	query := `SELECT id, project_id, background, objective, scope, out_of_scope, assumption, updated_at
		FROM purposes WHERE project_id = ?`
	row := r.db.QueryRowContext(ctx, query, projectID)

	var p domain.Purpose
	var updatedAtStr string
	err := row.Scan(&p.ID, &p.ProjectID, &p.Background, &p.Objective,
		&p.Scope, &p.OutOfScope, &p.Assumption, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("purpose: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning purpose: %w", err)
	}
	p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}

func (r *SQLitePurposeRepo) Upsert(ctx context.Context, p *domain.Purpose) error {
	query := `INSERT INTO purposes (project_id, background, objective, scope, out_of_scope, assumption, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(project_id) DO UPDATE SET
			background = excluded.background,
			objective = excluded.objective,
			scope = excluded.scope,
			out_of_scope = excluded.out_of_scope,
			assumption = excluded.assumption,
			updated_at = excluded.updated_at`
	now := nowUTC()
	_, err := r.db.ExecContext(ctx, query,
		p.ProjectID, p.Background, p.Objective, p.Scope, p.OutOfScope, p.Assumption, now.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting purpose: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `SELECT id FROM purposes WHERE project_id = ?`, p.ProjectID)
	if err := row.Scan(&p.ID); err != nil {
		return fmt.Errorf("reading purpose id: %w", err)
	}
	p.UpdatedAt = now
	return nil
}
