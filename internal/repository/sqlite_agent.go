package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gemdesk/internal/db"
	"github.com/alexanderramin/gemdesk/internal/domain"
)

// SQLiteAgentRepo implements AgentRepo over SQLite.
type SQLiteAgentRepo struct {
	db db.DBTX
}

// NewSQLiteAgentRepo creates a new SQLiteAgentRepo.
func NewSQLiteAgentRepo(conn db.DBTX) *SQLiteAgentRepo {
	return &SQLiteAgentRepo{db: conn}
}

func (r *SQLiteAgentRepo) Create(ctx context.Context, a *domain.Agent) error {
	query := `INSERT INTO agents (id, username, created_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, a.ID, a.Username, nowUTC()); err != nil {
		return fmt.Errorf("inserting agent: %w", err)
	}
	return nil
}

func (r *SQLiteAgentRepo) List(ctx context.Context) ([]domain.Agent, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username FROM agents ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	defer rows.Close()

	var out []domain.Agent
	for rows.Next() {
		var a domain.Agent
		if err := rows.Scan(&a.ID, &a.Username); err != nil {
			return nil, fmt.Errorf("scanning agent: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
