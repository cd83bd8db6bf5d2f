package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/yabane/internal/db"
	"github.com/alexanderramin/yabane/internal/domain"
)

// milestoneColumns is the canonical SELECT column list for milestones.
const milestoneColumns = `id, project_id, name, description, due_date, color, sort_order, created_at`

// SQLiteMilestoneRepo implements MilestoneRepo using a SQLite database.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

// NewSQLiteMilestoneRepo creates a new SQLiteMilestoneRepo.
func NewSQLiteMilestoneRepo(db db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: db}
}

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	now := nowUTC()
	query := `INSERT INTO milestones (project_id, name, description, due_date, color, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM milestones WHERE project_id = ?),
			?)`
	res, err := r.db.ExecContext(ctx, query,
		m.ProjectID,
		m.Name,
		m.Description,
		nullableTimeToString(m.DueDate, dateLayout),
		m.Color,
		m.ProjectID,
		now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	m.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading milestone id: %w", err)
	}
	m.CreatedAt = now

	row := r.db.QueryRowContext(ctx, `SELECT sort_order FROM milestones WHERE id = ?`, m.ID)
	if err := row.Scan(&m.SortOrder); err != nil {
		return fmt.Errorf("reading milestone sort order: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id int64) (*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	m, err := r.scanMilestone(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("milestone: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning milestone: %w", err)
	}
	return m, nil
}

func (r *SQLiteMilestoneRepo) ListByProject(ctx context.Context, projectID int64) ([]*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE project_id = ? ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		m, err := r.scanMilestone(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning milestone row: %w", err)
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return milestones, nil
}

func (r *SQLiteMilestoneRepo) Update(ctx context.Context, m *domain.Milestone) error {
	query := `UPDATE milestones SET name = ?, description = ?, due_date = ?, color = ?, sort_order = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Name,
		m.Description,
		nullableTimeToString(m.DueDate, dateLayout),
		m.Color,
		m.SortOrder,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating milestone: %w", err)
	}
	return requireRowAffected(res, "milestone")
}

func (r *SQLiteMilestoneRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM milestones WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting milestone: %w", err)
	}
	return requireRowAffected(res, "milestone")
}

// Reorder rewrites sort_order to the 0-based position of each id in ids.
func (r *SQLiteMilestoneRepo) Reorder(ctx context.Context, ids []int64) error {
	query := `UPDATE milestones SET sort_order = ? WHERE id = ?`
	for i, id := range ids {
		if _, err := r.db.ExecContext(ctx, query, i, id); err != nil {
			return fmt.Errorf("reordering milestone %d: %w", id, err)
		}
	}
	return nil
}

func (r *SQLiteMilestoneRepo) scanMilestone(scan func(dest ...any) error) (*domain.Milestone, error) {
	var m domain.Milestone
	var createdAtStr string
	var dueStr sql.NullString

	err := scan(&m.ID, &m.ProjectID, &m.Name, &m.Description, &dueStr,
		&m.Color, &m.SortOrder, &createdAtStr)
	if err != nil {
		return nil, err
	}
	m.DueDate = parseNullableTime(dueStr, dateLayout)
	m.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &m, nil
}
