package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/yabane/internal/db"
	"github.com/alexanderramin/yabane/internal/domain"
)

// arrowColumns is the canonical SELECT column list for arrows.
const arrowColumns = `id, project_id, parent_id, name, start_date, end_date, owner, status,
		sort_order, created_at`

// SQLiteArrowRepo implements ArrowRepo using a SQLite database.
type SQLiteArrowRepo struct {
	db db.DBTX
}

// NewSQLiteArrowRepo creates a new SQLiteArrowRepo.
func NewSQLiteArrowRepo(db db.DBTX) *SQLiteArrowRepo {
	return &SQLiteArrowRepo{db: db}
}

// Create inserts the arrow at the end of its sibling group: sort_order is
// assigned COALESCE(MAX(sort_order), -1) + 1 over siblings sharing the same
// project and parent.
func (r *SQLiteArrowRepo) Create(ctx context.Context, a *domain.Arrow) error {
	now := nowUTC()
	query := `INSERT INTO arrows (project_id, parent_id, name, start_date, end_date, owner, status,
		sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM arrows
			 WHERE project_id = ? AND parent_id IS ?),
			?)`
	res, err := r.db.ExecContext(ctx, query,
		a.ProjectID,
		a.ParentID, // *int64: nil becomes SQL NULL
		a.Name,
		nullableTimeToString(a.StartDate, dateLayout),
		nullableTimeToString(a.EndDate, dateLayout),
		a.Owner,
		string(a.Status),
		a.ProjectID,
		a.ParentID,
		now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting arrow: %w", err)
	}
	a.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading arrow id: %w", err)
	}
	a.CreatedAt = now

	row := r.db.QueryRowContext(ctx, `SELECT sort_order FROM arrows WHERE id = ?`, a.ID)
	if err := row.Scan(&a.SortOrder); err != nil {
		return fmt.Errorf("reading arrow sort order: %w", err)
	}
	return nil
}

// NextSortOrder returns the sort_order an arrow appended to the given
// sibling group would receive.
func (r *SQLiteArrowRepo) NextSortOrder(ctx context.Context, projectID int64, parentID *int64) (int, error) {
	query := `SELECT COALESCE(MAX(sort_order), -1) + 1 FROM arrows
		WHERE project_id = ? AND parent_id IS ?`
	var next int
	if err := r.db.QueryRowContext(ctx, query, projectID, parentID).Scan(&next); err != nil {
		return 0, fmt.Errorf("computing next sort order: %w", err)
	}
	return next, nil
}

func (r *SQLiteArrowRepo) GetByID(ctx context.Context, id int64) (*domain.Arrow, error) {
	query := `SELECT ` + arrowColumns + ` FROM arrows WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanArrow(row)
}

func (r *SQLiteArrowRepo) ListByProject(ctx context.Context, projectID int64) ([]*domain.Arrow, error) {
	query := `SELECT ` + arrowColumns + ` FROM arrows WHERE project_id = ? ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing arrows by project: %w", err)
	}
	defer rows.Close()
	return r.scanArrows(rows)
}

func (r *SQLiteArrowRepo) ListChildren(ctx context.Context, parentID int64) ([]*domain.Arrow, error) {
	query := `SELECT ` + arrowColumns + ` FROM arrows WHERE parent_id = ? ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing child arrows: %w", err)
	}
	defer rows.Close()
	return r.scanArrows(rows)
}

func (r *SQLiteArrowRepo) Update(ctx context.Context, a *domain.Arrow) error {
	query := `UPDATE arrows SET project_id = ?, parent_id = ?, name = ?, start_date = ?,
		end_date = ?, owner = ?, status = ?, sort_order = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.ProjectID,
		a.ParentID,
		a.Name,
		nullableTimeToString(a.StartDate, dateLayout),
		nullableTimeToString(a.EndDate, dateLayout),
		a.Owner,
		string(a.Status),
		a.SortOrder,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating arrow: %w", err)
	}
	return requireRowAffected(res, "arrow")
}

// Delete removes the arrow. Child arrows and WBS items go with it via the
// schema's ON DELETE CASCADE.
func (r *SQLiteArrowRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM arrows WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting arrow: %w", err)
	}
	return requireRowAffected(res, "arrow")
}

// Reorder rewrites sort_order to the 0-based position of each id in ids.
func (r *SQLiteArrowRepo) Reorder(ctx context.Context, ids []int64) error {
	query := `UPDATE arrows SET sort_order = ? WHERE id = ?`
	for i, id := range ids {
		if _, err := r.db.ExecContext(ctx, query, i, id); err != nil {
			return fmt.Errorf("reordering arrow %d: %w", id, err)
		}
	}
	return nil
}

// scanArrow scans a single arrow from a *sql.Row.
func (r *SQLiteArrowRepo) scanArrow(row *sql.Row) (*domain.Arrow, error) {
	var a domain.Arrow
	var statusStr, createdAtStr string
	var parentID sql.NullInt64
	var startStr, endStr sql.NullString

	err := row.Scan(&a.ID, &a.ProjectID, &parentID, &a.Name, &startStr, &endStr,
		&a.Owner, &statusStr, &a.SortOrder, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("arrow: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning arrow: %w", err)
	}
	return r.populateArrow(&a, statusStr, createdAtStr, parentID, startStr, endStr)
}

// scanArrows scans multiple arrows from *sql.Rows.
func (r *SQLiteArrowRepo) scanArrows(rows *sql.Rows) ([]*domain.Arrow, error) {
	var arrows []*domain.Arrow
	for rows.Next() {
		var a domain.Arrow
		var statusStr, createdAtStr string
		var parentID sql.NullInt64
		var startStr, endStr sql.NullString

		err := rows.Scan(&a.ID, &a.ProjectID, &parentID, &a.Name, &startStr, &endStr,
			&a.Owner, &statusStr, &a.SortOrder, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning arrow row: %w", err)
		}
		arrow, err := r.populateArrow(&a, statusStr, createdAtStr, parentID, startStr, endStr)
		if err != nil {
			return nil, err
		}
		arrows = append(arrows, arrow)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating arrows: %w", err)
	}
	return arrows, nil
}

// populateArrow fills in parsed fields after scanning raw strings.
func (r *SQLiteArrowRepo) populateArrow(
	a *domain.Arrow,
	statusStr, createdAtStr string,
	parentID sql.NullInt64,
	startStr, endStr sql.NullString,
) (*domain.Arrow, error) {
	a.Status = domain.Status(statusStr)
	if parentID.Valid {
		v := parentID.Int64
		a.ParentID = &v
	}
	a.StartDate = parseNullableTime(startStr, dateLayout)
	a.EndDate = parseNullableTime(endStr, dateLayout)

	var parseErr error
	a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return a, nil
}
