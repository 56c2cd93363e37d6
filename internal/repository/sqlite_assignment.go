package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avandermeer/hearthplan/internal/db"
	"github.com/avandermeer/hearthplan/internal/domain"
)

// SQLiteAssignmentRepo implements AssignmentRepo on SQLite.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

func NewSQLiteAssignmentRepo(dbtx db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: dbtx}
}

func (r *SQLiteAssignmentRepo) Create(ctx context.Context, childID string, a *domain.AssignmentCandidate) error {
	cues, err := json.Marshal(a.DifficultyCues)
	if err != nil {
		return fmt.Errorf("encoding difficulty cues: %w", err)
	}
	query := `INSERT INTO assignments
		(id, child_id, subject, workbook, lesson, estimated_min, difficulty_cues, action, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID, childID, string(a.Subject), a.WorkbookName, a.LessonName,
		a.EstimatedMinutes, string(cues), string(a.Action),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) ListByChild(ctx context.Context, childID string) ([]domain.AssignmentCandidate, error) {
	query := `SELECT id, subject, workbook, lesson, estimated_min, difficulty_cues, action
		FROM assignments WHERE child_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, childID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []domain.AssignmentCandidate
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *a)
	}
	return assignments, rows.Err()
}

func (r *SQLiteAssignmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("assignment %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssignment(row rowScanner) (*domain.AssignmentCandidate, error) {
	var a domain.AssignmentCandidate
	var subject, action, cues string
	if err := row.Scan(&a.ID, &subject, &a.WorkbookName, &a.LessonName,
		&a.EstimatedMinutes, &cues, &action); err != nil {
		return nil, fmt.Errorf("scanning assignment: %w", err)
	}
	a.Subject = domain.SubjectBucket(subject)
	a.Action = domain.ItemAction(action)
	if err := json.Unmarshal([]byte(cues), &a.DifficultyCues); err != nil {
		return nil, fmt.Errorf("decoding difficulty cues: %w", err)
	}
	return &a, nil
}
