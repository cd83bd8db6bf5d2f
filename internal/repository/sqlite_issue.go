package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/yabane/internal/db"
	"github.com/alexanderramin/yabane/internal/domain"
)

// issueColumns is the canonical SELECT column list for issues.
const issueColumns = `id, project_id, title, description, owner, priority, status, due_date,
		resolution, created_at, updated_at`

// SQLiteIssueRepo implements IssueRepo using a SQLite database.
type SQLiteIssueRepo struct {
	db db.DBTX
}

// NewSQLiteIssueRepo creates a new SQLiteIssueRepo.
func NewSQLiteIssueRepo(db db.DBTX) *SQLiteIssueRepo {
	return &SQLiteIssueRepo{db: db}
}

func (r *SQLiteIssueRepo) Create(ctx context.Context, i *domain.Issue) error {
	now := nowUTC()
	query := `INSERT INTO issues (project_id, title, description, owner, priority, status, due_date,
		resolution, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		i.ProjectID,
		i.Title,
		i.Description,
		i.Owner,
		string(i.Priority),
		string(i.Status),
		nullableTimeToString(i.DueDate, dateLayout),
		i.Resolution,
		now.Format(time.RFC3339),
		now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting issue: %w", err)
	}
	i.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading issue id: %w", err)
	}
	i.CreatedAt = now
	i.UpdatedAt = i.CreatedAt
	return nil
}

func (r *SQLiteIssueRepo) GetByID(ctx context.Context, id int64) (*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issues WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	i, err := r.scanIssue(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("issue: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning issue: %w", err)
	}
	return i, nil
}

func (r *SQLiteIssueRepo) ListByProject(ctx context.Context, projectID int64) ([]*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issues WHERE project_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}
	defer rows.Close()

	var issues []*domain.Issue
	for rows.Next() {
		i, err := r.scanIssue(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning issue row: %w", err)
		}
		issues = append(issues, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating issues: %w", err)
	}
	return issues, nil
}

func (r *SQLiteIssueRepo) Update(ctx context.Context, i *domain.Issue) error {
	query := `UPDATE issues SET title = ?, description = ?, owner = ?, priority = ?, status = ?,
		due_date = ?, resolution = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		i.Title,
		i.Description,
		i.Owner,
		string(i.Priority),
		string(i.Status),
		nullableTimeToString(i.DueDate, dateLayout),
		i.Resolution,
		nowUTC().Format(time.RFC3339),
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating issue: %w", err)
	}
	return requireRowAffected(res, "issue")
}

func (r *SQLiteIssueRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM issues WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting issue: %w", err)
	}
	return requireRowAffected(res, "issue")
}

func (r *SQLiteIssueRepo) scanIssue(scan func(dest ...any) error) (*domain.Issue, error) {
	var i domain.Issue
	var priorityStr, statusStr, createdAtStr, updatedAtStr string
	var dueStr sql.NullString

	err := scan(&i.ID, &i.ProjectID, &i.Title, &i.Description, &i.Owner,
		&priorityStr, &statusStr, &dueStr, &i.Resolution, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, err
	}
	i.Priority = domain.IssuePriority(priorityStr)
	i.Status = domain.IssueStatus(statusStr)
	i.DueDate = parseNullableTime(dueStr, dateLayout)

	i.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	i.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &i, nil
}
