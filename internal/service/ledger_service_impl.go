package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/gateway"
	"github.com/alexanderramin/gemdesk/internal/projection"
)

type ledgerService struct {
	gw gateway.Gateway
}

func NewLedgerService(gw gateway.Gateway) LedgerService {
	return &ledgerService{gw: gw}
}

// Ledger fetches one page of a client's ledger and derives the view
// aggregates from the rows by folding over them. A page outside
// [1, totalPages] is clamped: the nearest valid page is served instead.
func (s *ledgerService) Ledger(ctx context.Context, clientID string, page int) (*LedgerView, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, domain.Validationf("client id is required")
	}
	if page < 1 {
		page = 1
	}
	ledger, err := s.gw.FetchClientLedger(ctx, clientID,
		projection.Offset(page, projection.DefaultPageSize), projection.DefaultPageSize)
	if err != nil {
		return nil, domain.Remotef("fetch client ledger", err)
	}
	if last := projection.PageCount(ledger.TotalRecords, projection.DefaultPageSize); page > last {
		page = last
		ledger, err = s.gw.FetchClientLedger(ctx, clientID,
			projection.Offset(page, projection.DefaultPageSize), projection.DefaultPageSize)
		if err != nil {
			return nil, domain.Remotef("fetch client ledger", err)
		}
	}
	return &LedgerView{
		Ledger: ledger,
		Totals: domain.FoldTotals(ledger.Transactions),
		Stats:  domain.CountShipmentStats(ledger.Transactions),
		Page:   page,
	}, nil
}

// Record appends one transaction to a client's ledger. The ledger is
// append-only; there is no update or delete path anywhere in the system.
func (s *ledgerService) Record(ctx context.Context, role domain.Role, rec gateway.LedgerRecord) (*domain.LedgerTransaction, error) {
	if role != domain.RoleAdmin {
		return nil, &domain.AuthorizationError{Role: role}
	}
	if strings.TrimSpace(rec.ClientID) == "" {
		return nil, domain.Validationf("client id is required")
	}
	if rec.Amount <= 0 {
		return nil, domain.Validationf("amount must be greater than zero")
	}
	if _, err := domain.ParseTransactionType(string(rec.Type)); err != nil {
		return nil, domain.Validationf("transaction type must be CREDIT or DEBIT")
	}
	rec.Note = strings.TrimSpace(rec.Note)
	if rec.Note == "" {
		return nil, domain.Validationf("a note is required")
	}

	tx, err := s.gw.AppendLedgerTransaction(ctx, rec)
	if err != nil {
		return nil, domain.Remotef("append ledger transaction", err)
	}
	return tx, nil
}

// AssignTracking sets a tracking id on a shipment record from the ledger
// view.
func (s *ledgerService) AssignTracking(ctx context.Context, role domain.Role, shippingID, trackingID string) error {
	if role != domain.RoleAdmin {
		return &domain.AuthorizationError{Role: role}
	}
	if strings.TrimSpace(shippingID) == "" {
		return domain.Validationf("shipping id is required")
	}
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return domain.Validationf("tracking id must not be blank")
	}
	if err := s.gw.AssignTrackingID(ctx, shippingID, trackingID); err != nil {
		return domain.Remotef("assign tracking id", err)
	}
	return nil
}

// UpdateShipment advances a shipment record's status from the ledger view.
func (s *ledgerService) UpdateShipment(ctx context.Context, role domain.Role, shippingID string, from, to domain.Status) error {
	if role != domain.RoleAdmin {
		return &domain.AuthorizationError{Role: role}
	}
	if strings.TrimSpace(shippingID) == "" {
		return domain.Validationf("shipping id is required")
	}
	if !domain.CanAdvanceShipment(from, to) {
		return domain.Preconditionf("shipment cannot move from %s to %s", from, to)
	}
	if err := s.gw.UpdateShipmentStatus(ctx, shippingID, to); err != nil {
		return domain.Remotef("update shipment status", err)
	}
	return nil
}
