package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{
		"agents", "clients", "quotations", "final_quotations",
		"shipments", "ledger_transactions",
	} {
		var name string
		err := conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s missing", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	// Re-running the full migration set must be harmless.
	require.NoError(t, Migrate(conn))
	require.NoError(t, Migrate(conn))
}

func TestMigrate_AmountCheckEnforced(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO agents (id, username, created_at) VALUES ('a1', 'maria', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO clients (id, client_name, agent_id) VALUES ('c1', 'Acme', 'a1')`)
	require.NoError(t, err)

	_, err = conn.Exec(`INSERT INTO ledger_transactions (id, client_id, amount, type, note, create_date)
		VALUES ('t1', 'c1', 0, 'CREDIT', 'x', '2026-01-01')`)
	assert.Error(t, err, "zero amount must violate the CHECK constraint")
}
