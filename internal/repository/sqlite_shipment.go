package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/gemdesk/internal/db"
	"github.com/alexanderramin/gemdesk/internal/domain"
)

// SQLiteShipmentRepo implements ShipmentRepo over SQLite.
type SQLiteShipmentRepo struct {
	db db.DBTX
}

// NewSQLiteShipmentRepo creates a new SQLiteShipmentRepo.
func NewSQLiteShipmentRepo(conn db.DBTX) *SQLiteShipmentRepo {
	return &SQLiteShipmentRepo{db: conn}
}

func (r *SQLiteShipmentRepo) Create(ctx context.Context, s *domain.Shipment) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	s.UpdatedAt = s.CreatedAt

	query := `INSERT INTO shipments (id, quotation_id, status, tracking_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.QuotationID,
		string(s.Status),
		s.TrackingID,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting shipment: %w", err)
	}
	return nil
}

func (r *SQLiteShipmentRepo) GetByID(ctx context.Context, id string) (*domain.Shipment, error) {
	query := `SELECT id, quotation_id, status, tracking_id, created_at, updated_at
		FROM shipments WHERE id = ?`
	return r.scanShipment(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteShipmentRepo) GetByQuotation(ctx context.Context, quotationID string) (*domain.Shipment, error) {
	query := `SELECT id, quotation_id, status, tracking_id, created_at, updated_at
		FROM shipments WHERE quotation_id = ?`
	return r.scanShipment(r.db.QueryRowContext(ctx, query, quotationID))
}

func (r *SQLiteShipmentRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE shipments SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating shipment status: %w", err)
	}
	return requireRow(result)
}

func (r *SQLiteShipmentRepo) SetTracking(ctx context.Context, id, trackingID string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE shipments SET tracking_id = ?, updated_at = ? WHERE id = ?`,
		trackingID, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("setting tracking id: %w", err)
	}
	return requireRow(result)
}

func (r *SQLiteShipmentRepo) scanShipment(row *sql.Row) (*domain.Shipment, error) {
	var s domain.Shipment
	var status, createdAt, updatedAt string
	err := row.Scan(&s.ID, &s.QuotationID, &status, &s.TrackingID, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning shipment: %w", err)
	}
	s.Status = domain.Status(status)
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}
