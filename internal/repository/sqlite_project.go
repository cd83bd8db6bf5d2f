package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/yabane/internal/db"
	"github.com/alexanderramin/yabane/internal/domain"
)

// projectColumns is the canonical SELECT column list for projects.
const projectColumns = `id, name, description, start_date, end_date, status, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	now := nowUTC()
	query := `INSERT INTO projects (name, description, start_date, end_date, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		nullableTimeToString(p.StartDate, dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		string(p.Status),
		now.Format(time.RFC3339),
		now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading project id: %w", err)
	}
	p.CreatedAt = now
	p.UpdatedAt = p.CreatedAt
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanProject(row)
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if !includeArchived {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := r.scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, description = ?, start_date = ?, end_date = ?,
		status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		nullableTimeToString(p.StartDate, dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		string(p.Status),
		nowUTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return requireRowAffected(res, "project")
}

func (r *SQLiteProjectRepo) Archive(ctx context.Context, id int64) error {
	query := `UPDATE projects SET status = 'archived', updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, nowUTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("archiving project: %w", err)
	}
	return requireRowAffected(res, "project")
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM projects WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return requireRowAffected(res, "project")
}

// scanProject scans a single project from a *sql.Row.
func (r *SQLiteProjectRepo) scanProject(row *sql.Row) (*domain.Project, error) {
	var p domain.Project
	var statusStr, createdAtStr, updatedAtStr string
	var startStr, endStr sql.NullString

	err := row.Scan(&p.ID, &p.Name, &p.Description, &startStr, &endStr,
		&statusStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return r.populateProject(&p, statusStr, createdAtStr, updatedAtStr, startStr, endStr)
}

func (r *SQLiteProjectRepo) scanProjectRow(rows *sql.Rows) (*domain.Project, error) {
	var p domain.Project
	var statusStr, createdAtStr, updatedAtStr string
	var startStr, endStr sql.NullString

	err := rows.Scan(&p.ID, &p.Name, &p.Description, &startStr, &endStr,
		&statusStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning project row: %w", err)
	}
	return r.populateProject(&p, statusStr, createdAtStr, updatedAtStr, startStr, endStr)
}

// populateProject fills in parsed fields after scanning raw strings.
func (r *SQLiteProjectRepo) populateProject(
	p *domain.Project,
	statusStr, createdAtStr, updatedAtStr string,
	startStr, endStr sql.NullString,
) (*domain.Project, error) {
	p.Status = domain.ProjectStatus(statusStr)
	p.StartDate = parseNullableTime(startStr, dateLayout)
	p.EndDate = parseNullableTime(endStr, dateLayout)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}
