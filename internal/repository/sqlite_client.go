package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/gemdesk/internal/db"
	"github.com/alexanderramin/gemdesk/internal/domain"
)

const clientSinceLayout = "2006-01-02"

// SQLiteClientRepo implements ClientRepo over SQLite.
type SQLiteClientRepo struct {
	db db.DBTX
}

// NewSQLiteClientRepo creates a new SQLiteClientRepo.
func NewSQLiteClientRepo(conn db.DBTX) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: conn}
}

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (id, client_name, email, shipping_address, city, state, country, zip_code, ein_number, agent_id, client_since)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.ClientName,
		c.Email,
		c.ShippingAddress,
		c.City,
		c.State,
		c.Country,
		c.ZipCode,
		c.EINNumber,
		c.AgentID,
		nullableTimeToString(c.ClientSince, clientSinceLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}
	return nil
}

const clientColumns = `id, client_name, email, shipping_address, city, state, country, zip_code, ein_number, agent_id, client_since`

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	c, err := scanClient(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteClientRepo) ListByAgent(ctx context.Context, agentID string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	args := []any{}
	if agentID != "" {
		query += ` WHERE agent_id = ?`
		args = append(args, agentID)
	}
	query += ` ORDER BY client_name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	var since sql.NullString
	err := row.Scan(
		&c.ID,
		&c.ClientName,
		&c.Email,
		&c.ShippingAddress,
		&c.City,
		&c.State,
		&c.Country,
		&c.ZipCode,
		&c.EINNumber,
		&c.AgentID,
		&since,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning client: %w", err)
	}
	c.ClientSince = parseNullableTime(since, clientSinceLayout)
	return &c, nil
}
