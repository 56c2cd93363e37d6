package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avandermeer/hearthplan/internal/db"
	"github.com/avandermeer/hearthplan/internal/domain"
)

// SQLiteWorkbookRepo implements WorkbookRepo on SQLite.
type SQLiteWorkbookRepo struct {
	db db.DBTX
}

func NewSQLiteWorkbookRepo(dbtx db.DBTX) *SQLiteWorkbookRepo {
	return &SQLiteWorkbookRepo{db: dbtx}
}

const workbookColumns = `id, child_id, name, unit_label, total_units, current_unit,
	target_date, school_days_per_week, planned_per_week`

func (r *SQLiteWorkbookRepo) Create(ctx context.Context, w *domain.WorkbookConfig) error {
	query := `INSERT INTO workbooks (` + workbookColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID, w.ChildID, w.Name, w.UnitLabel, w.TotalUnits, w.CurrentUnit,
		w.TargetFinishDate.UTC().Format(time.RFC3339), w.SchoolDaysPerWeek,
		plannedPerWeekArg(w.PlannedPerWeek))
	if err != nil {
		return fmt.Errorf("inserting workbook: %w", err)
	}
	return nil
}

func (r *SQLiteWorkbookRepo) GetByID(ctx context.Context, id string) (*domain.WorkbookConfig, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+workbookColumns+` FROM workbooks WHERE id = ?`, id)
	w, err := scanWorkbook(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workbook %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return w, nil
}

func (r *SQLiteWorkbookRepo) ListByChild(ctx context.Context, childID string) ([]*domain.WorkbookConfig, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+workbookColumns+` FROM workbooks WHERE child_id = ? ORDER BY name`, childID)
	if err != nil {
		return nil, fmt.Errorf("listing workbooks: %w", err)
	}
	defer rows.Close()

	var workbooks []*domain.WorkbookConfig
	for rows.Next() {
		w, err := scanWorkbook(rows)
		if err != nil {
			return nil, err
		}
		workbooks = append(workbooks, w)
	}
	return workbooks, rows.Err()
}

func (r *SQLiteWorkbookRepo) Update(ctx context.Context, w *domain.WorkbookConfig) error {
	query := `UPDATE workbooks SET
		name = ?, unit_label = ?, total_units = ?, current_unit = ?,
		target_date = ?, school_days_per_week = ?, planned_per_week = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.Name, w.UnitLabel, w.TotalUnits, w.CurrentUnit,
		w.TargetFinishDate.UTC().Format(time.RFC3339), w.SchoolDaysPerWeek,
		plannedPerWeekArg(w.PlannedPerWeek), w.ID)
	if err != nil {
		return fmt.Errorf("updating workbook: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("workbook %s: %w", w.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteWorkbookRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workbooks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workbook: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("workbook %s: %w", id, ErrNotFound)
	}
	return nil
}

func plannedPerWeekArg(planned *float64) any {
	if planned == nil {
		return nil
	}
	return *planned
}

func scanWorkbook(row rowScanner) (*domain.WorkbookConfig, error) {
	var w domain.WorkbookConfig
	var targetDate string
	var planned sql.NullFloat64
	if err := row.Scan(&w.ID, &w.ChildID, &w.Name, &w.UnitLabel, &w.TotalUnits,
		&w.CurrentUnit, &targetDate, &w.SchoolDaysPerWeek, &planned); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning workbook: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339, targetDate)
	if err != nil {
		return nil, fmt.Errorf("parsing workbook target date: %w", err)
	}
	w.TargetFinishDate = parsed
	if planned.Valid {
		w.PlannedPerWeek = &planned.Float64
	}
	return &w, nil
}
