package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/yabane/internal/db"
	"github.com/alexanderramin/yabane/internal/domain"
)

// wbsItemColumns is the canonical SELECT column list for wbs_items.
const wbsItemColumns = `id, arrow_id, name, start_date, end_date, owner, status, progress,
		estimated_hours, actual_hours, sort_order, created_at`

// SQLiteWbsItemRepo implements WbsItemRepo using a SQLite database.
type SQLiteWbsItemRepo struct {
	db db.DBTX
}

// NewSQLiteWbsItemRepo creates a new SQLiteWbsItemRepo.
func NewSQLiteWbsItemRepo(db db.DBTX) *SQLiteWbsItemRepo {
	return &SQLiteWbsItemRepo{db: db}
}

// Create inserts the task at the end of its arrow's sibling group.
func (r *SQLiteWbsItemRepo) Create(ctx context.Context, w *domain.WbsItem) error {
	now := nowUTC()
	query := `INSERT INTO wbs_items (arrow_id, name, start_date, end_date, owner, status, progress,
		estimated_hours, actual_hours, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM wbs_items WHERE arrow_id = ?),
			?)`
	res, err := r.db.ExecContext(ctx, query,
		w.ArrowID,
		w.Name,
		nullableTimeToString(w.StartDate, dateLayout),
		nullableTimeToString(w.EndDate, dateLayout),
		w.Owner,
		string(w.Status),
		w.Progress,
		nullableFloatToValue(w.EstimatedHours),
		nullableFloatToValue(w.ActualHours),
		w.ArrowID,
		now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting wbs item: %w", err)
	}
	w.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading wbs item id: %w", err)
	}
	w.CreatedAt = now

	row := r.db.QueryRowContext(ctx, `SELECT sort_order FROM wbs_items WHERE id = ?`, w.ID)
	if err := row.Scan(&w.SortOrder); err != nil {
		return fmt.Errorf("reading wbs item sort order: %w", err)
	}
	return nil
}

func (r *SQLiteWbsItemRepo) GetByID(ctx context.Context, id int64) (*domain.WbsItem, error) {
	query := `SELECT ` + wbsItemColumns + ` FROM wbs_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanItem(row)
}

func (r *SQLiteWbsItemRepo) ListByArrow(ctx context.Context, arrowID int64) ([]*domain.WbsItem, error) {
	query := `SELECT ` + wbsItemColumns + ` FROM wbs_items WHERE arrow_id = ? ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, query, arrowID)
	if err != nil {
		return nil, fmt.Errorf("listing wbs items by arrow: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

// ListByProject joins through arrows so one query loads a whole project's
// tasks for the aggregated WBS view.
func (r *SQLiteWbsItemRepo) ListByProject(ctx context.Context, projectID int64) ([]*domain.WbsItem, error) {
	query := `SELECT w.id, w.arrow_id, w.name, w.start_date, w.end_date, w.owner, w.status,
		w.progress, w.estimated_hours, w.actual_hours, w.sort_order, w.created_at
		FROM wbs_items w
		JOIN arrows a ON w.arrow_id = a.id
		WHERE a.project_id = ?
		ORDER BY w.sort_order, w.id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing wbs items by project: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteWbsItemRepo) Update(ctx context.Context, w *domain.WbsItem) error {
	query := `UPDATE wbs_items SET arrow_id = ?, name = ?, start_date = ?, end_date = ?,
		owner = ?, status = ?, progress = ?, estimated_hours = ?, actual_hours = ?, sort_order = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.ArrowID,
		w.Name,
		nullableTimeToString(w.StartDate, dateLayout),
		nullableTimeToString(w.EndDate, dateLayout),
		w.Owner,
		string(w.Status),
		w.Progress,
		nullableFloatToValue(w.EstimatedHours),
		nullableFloatToValue(w.ActualHours),
		w.SortOrder,
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating wbs item: %w", err)
	}
	return requireRowAffected(res, "wbs item")
}

func (r *SQLiteWbsItemRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM wbs_items WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting wbs item: %w", err)
	}
	return requireRowAffected(res, "wbs item")
}

// Reorder rewrites sort_order to the 0-based position of each id in ids.
func (r *SQLiteWbsItemRepo) Reorder(ctx context.Context, ids []int64) error {
	query := `UPDATE wbs_items SET sort_order = ? WHERE id = ?`
	for i, id := range ids {
		if _, err := r.db.ExecContext(ctx, query, i, id); err != nil {
			return fmt.Errorf("reordering wbs item %d: %w", id, err)
		}
	}
	return nil
}

// scanItem scans a single wbs item from a *sql.Row.
func (r *SQLiteWbsItemRepo) scanItem(row *sql.Row) (*domain.WbsItem, error) {
	var w domain.WbsItem
	var statusStr, createdAtStr string
	var startStr, endStr sql.NullString
	var estimated, actual sql.NullFloat64

	err := row.Scan(&w.ID, &w.ArrowID, &w.Name, &startStr, &endStr, &w.Owner,
		&statusStr, &w.Progress, &estimated, &actual, &w.SortOrder, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("wbs item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning wbs item: %w", err)
	}
	return r.populateItem(&w, statusStr, createdAtStr, startStr, endStr, estimated, actual)
}

// scanItems scans multiple wbs items from *sql.Rows.
func (r *SQLiteWbsItemRepo) scanItems(rows *sql.Rows) ([]*domain.WbsItem, error) {
	var items []*domain.WbsItem
	for rows.Next() {
		var w domain.WbsItem
		var statusStr, createdAtStr string
		var startStr, endStr sql.NullString
		var estimated, actual sql.NullFloat64

		err := rows.Scan(&w.ID, &w.ArrowID, &w.Name, &startStr, &endStr, &w.Owner,
			&statusStr, &w.Progress, &estimated, &actual, &w.SortOrder, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning wbs item row: %w", err)
		}
		item, err := r.populateItem(&w, statusStr, createdAtStr, startStr, endStr, estimated, actual)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating wbs items: %w", err)
	}
	return items, nil
}

// populateItem fills in parsed fields after scanning raw strings.
func (r *SQLiteWbsItemRepo) populateItem(
	w *domain.WbsItem,
	statusStr, createdAtStr string,
	startStr, endStr sql.NullString,
	estimated, actual sql.NullFloat64,
) (*domain.WbsItem, error) {
	w.Status = domain.Status(statusStr)
	w.StartDate = parseNullableTime(startStr, dateLayout)
	w.EndDate = parseNullableTime(endStr, dateLayout)
	if estimated.Valid {
		v := estimated.Float64
		w.EstimatedHours = &v
	}
	if actual.Valid {
		v := actual.Float64
		w.ActualHours = &v
	}

	var parseErr error
	w.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return w, nil
}
