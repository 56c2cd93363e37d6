package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avandermeer/hearthplan/internal/db"
)

// SQLiteChildRepo implements ChildRepo on SQLite.
type SQLiteChildRepo struct {
	db db.DBTX
}

func NewSQLiteChildRepo(dbtx db.DBTX) *SQLiteChildRepo {
	return &SQLiteChildRepo{db: dbtx}
}

func (r *SQLiteChildRepo) Create(ctx context.Context, c *Child) error {
	query := `INSERT INTO children (id, name, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting child: %w", err)
	}
	return nil
}

func (r *SQLiteChildRepo) GetByID(ctx context.Context, id string) (*Child, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM children WHERE id = ?`, id)

	var c Child
	var createdAt string
	if err := row.Scan(&c.ID, &c.Name, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("child %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning child: %w", err)
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &c, nil
}

func (r *SQLiteChildRepo) List(ctx context.Context) ([]*Child, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM children ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing children: %w", err)
	}
	defer rows.Close()

	var children []*Child
	for rows.Next() {
		var c Child
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning child: %w", err)
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		children = append(children, &c)
	}
	return children, rows.Err()
}
