package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gemdesk/internal/db"
	"github.com/alexanderramin/gemdesk/internal/domain"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// SQLiteQuotationRepo implements QuotationRepo over SQLite.
type SQLiteQuotationRepo struct {
	db db.DBTX
}

// NewSQLiteQuotationRepo creates a new SQLiteQuotationRepo.
func NewSQLiteQuotationRepo(conn db.DBTX) *SQLiteQuotationRepo {
	return &SQLiteQuotationRepo{db: conn}
}

func (r *SQLiteQuotationRepo) Create(ctx context.Context, q *domain.Quotation, rawData string) error {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	q.UpdatedAt = q.CreatedAt

	query := `INSERT INTO quotations (id, price, status, agent_id, client_id, image_url, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		q.ID,
		q.Price,
		string(q.Status),
		q.AgentID,
		nullableString(q.ClientID),
		q.ImageURL,
		rawData,
		q.CreatedAt.Format(time.RFC3339),
		q.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting quotation: %w", err)
	}
	return nil
}

const quotationColumns = `q.id, q.price, q.status, q.agent_id, q.image_url, q.data,
	q.created_at, q.updated_at, s.id`

const quotationFromClause = `FROM quotations q
	LEFT JOIN shipments s ON s.quotation_id = q.id`

func (r *SQLiteQuotationRepo) GetByID(ctx context.Context, id string) (*domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` ` + quotationFromClause + ` WHERE q.id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	q, err := scanQuotation(row)
	if err != nil {
		return nil, err
	}
	if err := r.attachFinals(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (r *SQLiteQuotationRepo) List(ctx context.Context, agentID string, offset, size int) ([]*domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` ` + quotationFromClause
	args := []any{}
	if agentID != "" {
		query += ` WHERE q.agent_id = ?`
		args = append(args, agentID)
	}
	query += ` ORDER BY q.id LIMIT ? OFFSET ?`
	args = append(args, size, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotations: %w", err)
	}

	for _, q := range out {
		if err := r.attachFinals(ctx, q); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *SQLiteQuotationRepo) Count(ctx context.Context, agentID string) (int, error) {
	query := `SELECT COUNT(*) FROM quotations`
	args := []any{}
	if agentID != "" {
		query += ` WHERE agent_id = ?`
		args = append(args, agentID)
	}
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting quotations: %w", err)
	}
	return count, nil
}

func (r *SQLiteQuotationRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	query := `UPDATE quotations SET status = ?, updated_at = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, string(status), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating quotation status: %w", err)
	}
	return requireRow(result)
}

func (r *SQLiteQuotationRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM quotations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting quotation: %w", err)
	}
	return requireRow(result)
}

func (r *SQLiteQuotationRepo) CreateFinal(ctx context.Context, quotationID string, f *domain.FinalQuotation, rawData string) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	f.UpdatedAt = f.CreatedAt

	query := `INSERT INTO final_quotations (id, quotation_id, price, status, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		quotationID,
		f.Price,
		string(f.Status),
		rawData,
		f.CreatedAt.Format(time.RFC3339),
		f.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting final quotation: %w", err)
	}
	return nil
}

func (r *SQLiteQuotationRepo) attachFinals(ctx context.Context, q *domain.Quotation) error {
	query := `SELECT id, price, status, data, created_at, updated_at
		FROM final_quotations WHERE quotation_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, q.ID)
	if err != nil {
		return fmt.Errorf("listing final quotations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f domain.FinalQuotation
		var status, data, createdAt, updatedAt string
		if err := rows.Scan(&f.ID, &f.Price, &status, &data, &createdAt, &updatedAt); err != nil {
			return fmt.Errorf("scanning final quotation: %w", err)
		}
		f.Status = domain.Status(status)
		f.CreatedAt = parseTime(createdAt)
		f.UpdatedAt = parseTime(updatedAt)
		if p, err := domain.ParsePayload(data); err == nil {
			f.Payload = p
			f.ClientName = p.Client.ClientName
		}
		q.FinalQuotations = append(q.FinalQuotations, f)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuotation(row rowScanner) (*domain.Quotation, error) {
	var q domain.Quotation
	var status, data, createdAt, updatedAt string
	var shippingID sql.NullString

	err := row.Scan(
		&q.ID,
		&q.Price,
		&status,
		&q.AgentID,
		&q.ImageURL,
		&data,
		&createdAt,
		&updatedAt,
		&shippingID,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning quotation: %w", err)
	}

	q.Status = domain.Status(status)
	q.CreatedAt = parseTime(createdAt)
	q.UpdatedAt = parseTime(updatedAt)
	q.ShippingID = shippingID.String
	_ = q.IngestPayload(data)
	return &q, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
