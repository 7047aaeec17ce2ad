package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS agents (
		id         TEXT PRIMARY KEY,
		username   TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id               TEXT PRIMARY KEY,
		client_name      TEXT NOT NULL,
		email            TEXT NOT NULL DEFAULT '',
		shipping_address TEXT NOT NULL DEFAULT '',
		city             TEXT NOT NULL DEFAULT '',
		state            TEXT NOT NULL DEFAULT '',
		country          TEXT NOT NULL DEFAULT '',
		zip_code         TEXT NOT NULL DEFAULT '',
		ein_number       TEXT NOT NULL DEFAULT '',
		agent_id         TEXT NOT NULL REFERENCES agents(id),
		client_since     TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS quotations (
		id         TEXT PRIMARY KEY,
		price      REAL NOT NULL DEFAULT 0,
		status     TEXT NOT NULL
		           CHECK(status IN ('new','pending','approved','declined',
		                            'send_to_manufacture','manufacturing_complete',
		                            'sentforshipping','shipped','delivered',
		                            'returned','cancelled')),
		agent_id   TEXT NOT NULL REFERENCES agents(id),
		client_id  TEXT REFERENCES clients(id),
		image_url  TEXT NOT NULL DEFAULT '',
		data       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// One final quotation per parent; the UNIQUE constraint is the
	// only-once rule.
	`CREATE TABLE IF NOT EXISTS final_quotations (
		id           TEXT PRIMARY KEY,
		quotation_id TEXT NOT NULL UNIQUE REFERENCES quotations(id) ON DELETE CASCADE,
		price        REAL NOT NULL DEFAULT 0,
		status       TEXT NOT NULL,
		data         TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS shipments (
		id           TEXT PRIMARY KEY,
		quotation_id TEXT NOT NULL UNIQUE REFERENCES quotations(id) ON DELETE CASCADE,
		status       TEXT NOT NULL
		             CHECK(status IN ('sentforshipping','shipped','delivered',
		                              'returned','cancelled')),
		tracking_id  TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	// Append-only: nothing in the codebase updates or deletes rows here.
	`CREATE TABLE IF NOT EXISTS ledger_transactions (
		id          TEXT PRIMARY KEY,
		client_id   TEXT NOT NULL REFERENCES clients(id),
		amount      REAL NOT NULL CHECK(amount > 0),
		type        TEXT NOT NULL CHECK(type IN ('CREDIT','DEBIT')),
		note        TEXT NOT NULL,
		shipping_id TEXT REFERENCES shipments(id),
		create_date TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_quotations_agent ON quotations(agent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_quotations_client ON quotations(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_quotations_status ON quotations(status)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_agent ON clients(agent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_client ON ledger_transactions(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_quotation ON shipments(quotation_id)`,
}
