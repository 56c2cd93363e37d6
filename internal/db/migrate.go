package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Statements are idempotent, so re-running on
// an existing database is safe.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS children (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	// Skill snapshots are stored as one JSON document per child: the
	// snapshot round-trips through the planner whole, never queried by
	// field.
	`CREATE TABLE IF NOT EXISTS skill_snapshots (
		child_id   TEXT PRIMARY KEY,
		doc        TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		id              TEXT PRIMARY KEY,
		child_id        TEXT NOT NULL,
		subject         TEXT NOT NULL,
		workbook        TEXT NOT NULL,
		lesson          TEXT NOT NULL,
		estimated_min   INTEGER NOT NULL,
		difficulty_cues TEXT NOT NULL DEFAULT '[]',
		action          TEXT NOT NULL DEFAULT 'keep',
		created_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_child ON assignments(child_id)`,

	`CREATE TABLE IF NOT EXISTS weekly_plans (
		child_id   TEXT NOT NULL,
		week_key   TEXT NOT NULL,
		doc        TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (child_id, week_key)
	)`,

	// Adjustments are re-applied in position order on every regeneration.
	`CREATE TABLE IF NOT EXISTS adjustments (
		id         TEXT PRIMARY KEY,
		child_id   TEXT NOT NULL,
		week_key   TEXT NOT NULL,
		position   INTEGER NOT NULL,
		kind       TEXT NOT NULL,
		doc        TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_adjustments_week ON adjustments(child_id, week_key, position)`,

	`CREATE TABLE IF NOT EXISTS day_types (
		child_id TEXT NOT NULL,
		week_key TEXT NOT NULL,
		day      TEXT NOT NULL,
		day_type TEXT NOT NULL,
		PRIMARY KEY (child_id, week_key, day)
	)`,

	`CREATE TABLE IF NOT EXISTS ladder_progress (
		child_id        TEXT NOT NULL,
		ladder_key      TEXT NOT NULL,
		current_rung_id TEXT NOT NULL,
		streak_count    INTEGER NOT NULL DEFAULT 0,
		last_support    TEXT NOT NULL DEFAULT 'none',
		PRIMARY KEY (child_id, ladder_key)
	)`,

	`CREATE TABLE IF NOT EXISTS ladder_sessions (
		id         TEXT PRIMARY KEY,
		child_id   TEXT NOT NULL,
		ladder_key TEXT NOT NULL,
		date_key   TEXT NOT NULL,
		rung_id    TEXT NOT NULL,
		support    TEXT NOT NULL,
		result     TEXT NOT NULL,
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ladder_sessions ON ladder_sessions(child_id, ladder_key, created_at)`,

	`CREATE TABLE IF NOT EXISTS workbooks (
		id                   TEXT PRIMARY KEY,
		child_id             TEXT NOT NULL,
		name                 TEXT NOT NULL,
		unit_label           TEXT NOT NULL DEFAULT 'pages',
		total_units          INTEGER NOT NULL,
		current_unit         INTEGER NOT NULL DEFAULT 0,
		target_date          TEXT NOT NULL,
		school_days_per_week INTEGER NOT NULL DEFAULT 5,
		planned_per_week     REAL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workbooks_child ON workbooks(child_id)`,
}
