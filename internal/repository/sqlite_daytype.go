package repository

import (
	"context"
	"fmt"

	"github.com/avandermeer/hearthplan/internal/db"
	"github.com/avandermeer/hearthplan/internal/domain"
)

// SQLiteDayTypeRepo implements DayTypeRepo on SQLite.
type SQLiteDayTypeRepo struct {
	db db.DBTX
}

func NewSQLiteDayTypeRepo(dbtx db.DBTX) *SQLiteDayTypeRepo {
	return &SQLiteDayTypeRepo{db: dbtx}
}

func (r *SQLiteDayTypeRepo) Set(ctx context.Context, childID, weekKey string, cfg domain.DayTypeConfig) error {
	query := `INSERT INTO day_types (child_id, week_key, day, day_type) VALUES (?, ?, ?, ?)
		ON CONFLICT(child_id, week_key, day) DO UPDATE SET day_type = excluded.day_type`
	_, err := r.db.ExecContext(ctx, query, childID, weekKey, string(cfg.Day), string(cfg.DayType))
	if err != nil {
		return fmt.Errorf("setting day type: %w", err)
	}
	return nil
}

func (r *SQLiteDayTypeRepo) ListByWeek(ctx context.Context, childID, weekKey string) ([]domain.DayTypeConfig, error) {
	query := `SELECT day, day_type FROM day_types WHERE child_id = ? AND week_key = ?`
	rows, err := r.db.QueryContext(ctx, query, childID, weekKey)
	if err != nil {
		return nil, fmt.Errorf("listing day types: %w", err)
	}
	defer rows.Close()

	var configs []domain.DayTypeConfig
	for rows.Next() {
		var day, dayType string
		if err := rows.Scan(&day, &dayType); err != nil {
			return nil, fmt.Errorf("scanning day type: %w", err)
		}
		configs = append(configs, domain.DayTypeConfig{
			Day:     domain.Weekday(day),
			DayType: domain.DayType(dayType),
		})
	}
	return configs, rows.Err()
}
