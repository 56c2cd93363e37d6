package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/avandermeer/hearthplan/internal/db"
)

// NewTestDB opens an in-memory SQLite database with the full schema applied
// and registers cleanup with t.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	database.SetMaxOpenConns(1)

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enabling foreign keys: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}

// NewTestUoW wraps a test database in a UnitOfWork.
func NewTestUoW(t *testing.T, database *sql.DB) db.UnitOfWork {
	t.Helper()
	return db.NewSQLiteUnitOfWork(database)
}
