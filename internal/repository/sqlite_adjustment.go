package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/avandermeer/hearthplan/internal/db"
	"github.com/avandermeer/hearthplan/internal/domain"
)

// SQLiteAdjustmentRepo implements AdjustmentRepo on SQLite.
type SQLiteAdjustmentRepo struct {
	db db.DBTX
}

func NewSQLiteAdjustmentRepo(dbtx db.DBTX) *SQLiteAdjustmentRepo {
	return &SQLiteAdjustmentRepo{db: dbtx}
}

// Append stores adj after the week's existing adjustments so regeneration
// replays them in the order the parent asked for them.
func (r *SQLiteAdjustmentRepo) Append(ctx context.Context, id, childID, weekKey string, adj domain.Adjustment) error {
	kind, doc, err := domain.EncodeAdjustment(adj)
	if err != nil {
		return err
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), -1) + 1 FROM adjustments WHERE child_id = ? AND week_key = ?`,
		childID, weekKey)
	var position int
	if err := row.Scan(&position); err != nil {
		return fmt.Errorf("finding next adjustment position: %w", err)
	}

	query := `INSERT INTO adjustments (id, child_id, week_key, position, kind, doc, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		id, childID, weekKey, position, string(kind), string(doc),
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("inserting adjustment: %w", err)
	}
	return nil
}

func (r *SQLiteAdjustmentRepo) ListByWeek(ctx context.Context, childID, weekKey string) ([]domain.Adjustment, error) {
	query := `SELECT kind, doc FROM adjustments
		WHERE child_id = ? AND week_key = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, childID, weekKey)
	if err != nil {
		return nil, fmt.Errorf("listing adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []domain.Adjustment
	for rows.Next() {
		var kind, doc string
		if err := rows.Scan(&kind, &doc); err != nil {
			return nil, fmt.Errorf("scanning adjustment: %w", err)
		}
		adj, err := domain.DecodeAdjustment(domain.AdjustmentKind(kind), []byte(doc))
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, adj)
	}
	return adjustments, rows.Err()
}

func (r *SQLiteAdjustmentRepo) ClearWeek(ctx context.Context, childID, weekKey string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM adjustments WHERE child_id = ? AND week_key = ?`, childID, weekKey)
	if err != nil {
		return fmt.Errorf("clearing adjustments: %w", err)
	}
	return nil
}
