package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/yabane/internal/db"
	"github.com/alexanderramin/yabane/internal/domain"
)

// memberColumns is the canonical SELECT column list for members.
const memberColumns = `id, project_id, name, role, organization, email, note, sort_order, created_at`

// SQLiteMemberRepo implements MemberRepo using a SQLite database.
type SQLiteMemberRepo struct {
	db db.DBTX
}

// NewSQLiteMemberRepo creates a new SQLiteMemberRepo.
func NewSQLiteMemberRepo(db db.DBTX) *SQLiteMemberRepo {
	return &SQLiteMemberRepo{db: db}
}

func (r *SQLiteMemberRepo) Create(ctx context.Context, m *domain.Member) error {
	now := nowUTC()
	query := `INSERT INTO members (project_id, name, role, organization, email, note, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM members WHERE project_id = ?),
			?)`
	res, err := r.db.ExecContext(ctx, query,
		m.ProjectID, m.Name, m.Role, m.Organization, m.Email, m.Note, m.ProjectID, now.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting member: %w", err)
	}
	m.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading member id: %w", err)
	}
	m.CreatedAt = now

	row := r.db.QueryRowContext(ctx, `SELECT sort_order FROM members WHERE id = ?`, m.ID)
	if err := row.Scan(&m.SortOrder); err != nil {
		return fmt.Errorf("reading member sort order: %w", err)
	}
	return nil
}

func (r *SQLiteMemberRepo) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	m, err := r.scanMember(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("member: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning member: %w", err)
	}
	return m, nil
}

func (r *SQLiteMemberRepo) ListByProject(ctx context.Context, projectID int64) ([]*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE project_id = ? ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		m, err := r.scanMember(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating members: %w", err)
	}
	return members, nil
}

func (r *SQLiteMemberRepo) Update(ctx context.Context, m *domain.Member) error {
	query := `UPDATE members SET name = ?, role = ?, organization = ?, email = ?, note = ?, sort_order = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Name, m.Role, m.Organization, m.Email, m.Note, m.SortOrder, m.ID)
	if err != nil {
		return fmt.Errorf("updating member: %w", err)
	}
	return requireRowAffected(res, "member")
}

func (r *SQLiteMemberRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM members WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting member: %w", err)
	}
	return requireRowAffected(res, "member")
}

// Reorder rewrites sort_order to the 0-based position of each id in ids.
func (r *SQLiteMemberRepo) Reorder(ctx context.Context, ids []int64) error {
	query := `UPDATE members SET sort_order = ? WHERE id = ?`
	for i, id := range ids {
		if _, err := r.db.ExecContext(ctx, query, i, id); err != nil {
			return fmt.Errorf("reordering member %d: %w", id, err)
		}
	}
	return nil
}

func (r *SQLiteMemberRepo) scanMember(scan func(dest ...any) error) (*domain.Member, error) {
	var m domain.Member
	var createdAtStr string

	err := scan(&m.ID, &m.ProjectID, &m.Name, &m.Role, &m.Organization,
		&m.Email, &m.Note, &m.SortOrder, &createdAtStr)
	if err != nil {
		return nil, err
	}
	m.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &m, nil
}
