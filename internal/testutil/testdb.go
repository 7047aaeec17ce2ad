package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/gemdesk/internal/db"
)

// NewTestDB returns a migrated in-memory store, closed via t.Cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// NewTestUoW wraps a test store in a unit of work.
func NewTestUoW(conn *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(conn)
}
