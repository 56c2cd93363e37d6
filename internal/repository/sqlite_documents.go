package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avandermeer/hearthplan/internal/db"
	"github.com/avandermeer/hearthplan/internal/domain"
)

// Snapshot and plan documents round-trip whole between the planner and the
// store; they are JSON columns, never queried by field.

// SQLiteSnapshotRepo implements SnapshotRepo on SQLite.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

func NewSQLiteSnapshotRepo(dbtx db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: dbtx}
}

func (r *SQLiteSnapshotRepo) Get(ctx context.Context, childID string) (*domain.SkillSnapshot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT doc FROM skill_snapshots WHERE child_id = ?`, childID)

	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("snapshot for child %s: %w", childID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	var snapshot domain.SkillSnapshot
	if err := json.Unmarshal(doc, &snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot document: %w", err)
	}
	return &snapshot, nil
}

func (r *SQLiteSnapshotRepo) Put(ctx context.Context, snapshot *domain.SkillSnapshot) error {
	doc, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding snapshot document: %w", err)
	}
	query := `INSERT INTO skill_snapshots (child_id, doc, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(child_id) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, snapshot.ChildID, string(doc), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("upserting snapshot: %w", err)
	}
	return nil
}

// SQLitePlanRepo implements PlanRepo on SQLite.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(dbtx db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: dbtx}
}

func (r *SQLitePlanRepo) Get(ctx context.Context, childID, weekKey string) (*domain.WeeklyPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT doc FROM weekly_plans WHERE child_id = ? AND week_key = ?`, childID, weekKey)

	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan %s/%s: %w", childID, weekKey, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	var plan domain.WeeklyPlan
	if err := json.Unmarshal(doc, &plan); err != nil {
		return nil, fmt.Errorf("decoding plan document: %w", err)
	}
	return &plan, nil
}

func (r *SQLitePlanRepo) Put(ctx context.Context, childID, weekKey string, plan *domain.WeeklyPlan) error {
	doc, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encoding plan document: %w", err)
	}
	query := `INSERT INTO weekly_plans (child_id, week_key, doc, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(child_id, week_key) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, childID, weekKey, string(doc), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("upserting plan: %w", err)
	}
	return nil
}
