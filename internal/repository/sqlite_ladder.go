package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avandermeer/hearthplan/internal/db"
	"github.com/avandermeer/hearthplan/internal/domain"
)

// SQLiteLadderRepo implements LadderRepo on SQLite. Progress lives in one
// row per (child, ladder); history is hydrated from the ladder_sessions log.
type SQLiteLadderRepo struct {
	db db.DBTX
}

func NewSQLiteLadderRepo(dbtx db.DBTX) *SQLiteLadderRepo {
	return &SQLiteLadderRepo{db: dbtx}
}

func (r *SQLiteLadderRepo) GetProgress(ctx context.Context, childID, ladderKey string) (*domain.LadderProgress, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT current_rung_id, streak_count, last_support FROM ladder_progress
		WHERE child_id = ? AND ladder_key = ?`, childID, ladderKey)

	progress := domain.LadderProgress{ChildID: childID, LadderKey: ladderKey}
	var lastSupport string
	if err := row.Scan(&progress.CurrentRungID, &progress.StreakCount, &lastSupport); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("ladder progress %s/%s: %w", childID, ladderKey, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning ladder progress: %w", err)
	}
	progress.LastSupport = domain.SupportLevel(lastSupport)

	history, err := r.listSessions(ctx, childID, ladderKey)
	if err != nil {
		return nil, err
	}
	progress.History = history
	return &progress, nil
}

func (r *SQLiteLadderRepo) PutProgress(ctx context.Context, progress *domain.LadderProgress) error {
	query := `INSERT INTO ladder_progress (child_id, ladder_key, current_rung_id, streak_count, last_support)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(child_id, ladder_key) DO UPDATE SET
			current_rung_id = excluded.current_rung_id,
			streak_count = excluded.streak_count,
			last_support = excluded.last_support`
	_, err := r.db.ExecContext(ctx, query,
		progress.ChildID, progress.LadderKey, progress.CurrentRungID,
		progress.StreakCount, string(progress.LastSupport))
	if err != nil {
		return fmt.Errorf("upserting ladder progress: %w", err)
	}
	return nil
}

func (r *SQLiteLadderRepo) AppendSession(ctx context.Context, id, childID, ladderKey string, entry domain.SessionEntry, createdAt time.Time) error {
	query := `INSERT INTO ladder_sessions
		(id, child_id, ladder_key, date_key, rung_id, support, result, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		id, childID, ladderKey, entry.DateKey, entry.RungID,
		string(entry.Support), string(entry.Result), entry.Note,
		createdAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting ladder session: %w", err)
	}
	return nil
}

func (r *SQLiteLadderRepo) listSessions(ctx context.Context, childID, ladderKey string) ([]domain.SessionEntry, error) {
	query := `SELECT date_key, rung_id, support, result, note FROM ladder_sessions
		WHERE child_id = ? AND ladder_key = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, childID, ladderKey)
	if err != nil {
		return nil, fmt.Errorf("listing ladder sessions: %w", err)
	}
	defer rows.Close()

	var entries []domain.SessionEntry
	for rows.Next() {
		var e domain.SessionEntry
		var support, result string
		if err := rows.Scan(&e.DateKey, &e.RungID, &support, &result, &e.Note); err != nil {
			return nil, fmt.Errorf("scanning ladder session: %w", err)
		}
		e.Support = domain.SupportLevel(support)
		e.Result = domain.SessionResult(result)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
