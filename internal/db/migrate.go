package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list is re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date  TEXT,
		end_date    TEXT,
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','archived')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS purposes (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id   INTEGER NOT NULL UNIQUE REFERENCES projects(id) ON DELETE CASCADE,
		background   TEXT NOT NULL DEFAULT '',
		objective    TEXT NOT NULL DEFAULT '',
		scope        TEXT NOT NULL DEFAULT '',
		out_of_scope TEXT NOT NULL DEFAULT '',
		assumption   TEXT NOT NULL DEFAULT '',
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id  INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		due_date    TEXT,
		color       TEXT NOT NULL DEFAULT '#4472C4',
		sort_order  INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS arrows (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id  INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		parent_id   INTEGER REFERENCES arrows(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		start_date  TEXT,
		end_date    TEXT,
		owner       TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'not_started'
		            CHECK(status IN ('not_started','in_progress','done')),
		sort_order  INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_arrows_project ON arrows(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_arrows_parent ON arrows(parent_id)`,

	`CREATE TABLE IF NOT EXISTS wbs_items (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		arrow_id        INTEGER NOT NULL REFERENCES arrows(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		start_date      TEXT,
		end_date        TEXT,
		owner           TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'not_started'
		                CHECK(status IN ('not_started','in_progress','done')),
		progress        INTEGER NOT NULL DEFAULT 0
		                CHECK(progress BETWEEN 0 AND 100),
		estimated_hours REAL,
		actual_hours    REAL,
		sort_order      INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_wbs_items_arrow ON wbs_items(arrow_id)`,

	`CREATE TABLE IF NOT EXISTS members (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id   INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		role         TEXT NOT NULL DEFAULT '',
		organization TEXT NOT NULL DEFAULT '',
		email        TEXT NOT NULL DEFAULT '',
		note         TEXT NOT NULL DEFAULT '',
		sort_order   INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS issues (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id  INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		owner       TEXT NOT NULL DEFAULT '',
		priority    TEXT NOT NULL DEFAULT 'medium'
		            CHECK(priority IN ('low','medium','high','critical')),
		status      TEXT NOT NULL DEFAULT 'open'
		            CHECK(status IN ('open','in_progress','resolved','closed')),
		due_date    TEXT,
		resolution  TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_issues_project ON issues(project_id)`,
}
