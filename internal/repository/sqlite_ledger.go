package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/gemdesk/internal/db"
	"github.com/alexanderramin/gemdesk/internal/domain"
)

const ledgerDateLayout = "2006-01-02"

// SQLiteLedgerRepo implements LedgerRepo over SQLite. The ledger is
// append-only; this type deliberately has no update or delete method.
type SQLiteLedgerRepo struct {
	db db.DBTX
}

// NewSQLiteLedgerRepo creates a new SQLiteLedgerRepo.
func NewSQLiteLedgerRepo(conn db.DBTX) *SQLiteLedgerRepo {
	return &SQLiteLedgerRepo{db: conn}
}

func (r *SQLiteLedgerRepo) Append(ctx context.Context, tx *domain.LedgerTransaction, clientID string) error {
	if tx.CreateDate.IsZero() {
		tx.CreateDate = time.Now().UTC()
	}
	query := `INSERT INTO ledger_transactions (id, client_id, amount, type, note, shipping_id, create_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		clientID,
		tx.Amount,
		string(tx.Type),
		tx.Note,
		nullableString(tx.ShippingID),
		tx.CreateDate.Format(ledgerDateLayout),
	)
	if err != nil {
		return fmt.Errorf("appending ledger transaction: %w", err)
	}
	return nil
}

func (r *SQLiteLedgerRepo) CountByClient(ctx context.Context, clientID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ledger_transactions WHERE client_id = ?`, clientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting ledger transactions: %w", err)
	}
	return count, nil
}

func (r *SQLiteLedgerRepo) ListByClient(ctx context.Context, clientID string, offset, size int) ([]domain.LedgerTransaction, error) {
	query := `SELECT t.id, t.amount, t.type, t.note, t.shipping_id, t.create_date, s.status
		FROM ledger_transactions t
		LEFT JOIN shipments s ON s.id = t.shipping_id
		WHERE t.client_id = ?
		ORDER BY t.create_date, t.id
		LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, clientID, size, offset)
	if err != nil {
		return nil, fmt.Errorf("listing ledger transactions: %w", err)
	}
	defer rows.Close()

	var out []domain.LedgerTransaction
	for rows.Next() {
		var tx domain.LedgerTransaction
		var txType, createDate string
		var shippingID, shipmentStatus sql.NullString
		if err := rows.Scan(&tx.ID, &tx.Amount, &txType, &tx.Note, &shippingID, &createDate, &shipmentStatus); err != nil {
			return nil, fmt.Errorf("scanning ledger transaction: %w", err)
		}
		tx.Type = domain.TransactionType(txType)
		tx.ShippingID = shippingID.String
		tx.ShipmentStatus = domain.Status(shipmentStatus.String)
		if d, err := time.Parse(ledgerDateLayout, createDate); err == nil {
			tx.CreateDate = d
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger transactions: %w", err)
	}
	return out, nil
}
