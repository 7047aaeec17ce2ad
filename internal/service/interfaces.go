package service

import (
	"context"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/gateway"
)

// LifecycleService mutates quotations through the remote store. Mutations
// never patch the quotation they were handed; the fresh state comes from
// re-fetching the collection afterwards.
type LifecycleService interface {
	List(ctx context.Context, agentID string, page int) (*gateway.QuotationPage, error)
	RequestStatusChange(ctx context.Context, role domain.Role, q *domain.Quotation, target domain.Status) error
	CreateFinalQuotation(ctx context.Context, role domain.Role, q *domain.Quotation) error
	DeleteQuotation(ctx context.Context, role domain.Role, q *domain.Quotation) error
	MarkShipped(ctx context.Context, q *domain.Quotation, trackingID string) error
	AdvanceShipment(ctx context.Context, q *domain.Quotation, target domain.Status) error
}

// BatchFailure records one quotation that could not be transitioned during
// a batch ship attempt.
type BatchFailure struct {
	QuotationID string
	Err         error
}

// BatchOutcome reports a batch ship attempt item by item. A batch is not
// atomic: items that succeeded stay succeeded even when later items fail.
type BatchOutcome struct {
	Succeeded []string
	Failed    []BatchFailure
}

// AllSucceeded reports whether every item in the batch went through.
func (o *BatchOutcome) AllSucceeded() bool {
	return len(o.Failed) == 0
}

// ShipmentService coordinates batch shipping. The selection context comes
// in whole: the client scope the selection was made under plus the
// selected quotations, so the one-client rule is enforced here and not
// left to whichever surface built the selection.
type ShipmentService interface {
	ShipSelected(ctx context.Context, clientID string, selection []*domain.Quotation) (*BatchOutcome, error)
}

// LedgerView bundles a fetched ledger page with the aggregates derived
// from it. Totals are always recomputed from the transactions, never
// carried over from a previous view. Page is the page actually served,
// after clamping the requested one into range.
type LedgerView struct {
	Ledger *domain.ClientLedger
	Totals domain.LedgerTotals
	Stats  domain.ShipmentStats
	Page   int
}

type LedgerService interface {
	Ledger(ctx context.Context, clientID string, page int) (*LedgerView, error)
	Record(ctx context.Context, role domain.Role, rec gateway.LedgerRecord) (*domain.LedgerTransaction, error)
	AssignTracking(ctx context.Context, role domain.Role, shippingID, trackingID string) error
	UpdateShipment(ctx context.Context, role domain.Role, shippingID string, from, to domain.Status) error
}

type DirectoryService interface {
	Agents(ctx context.Context) ([]domain.Agent, error)
	Clients(ctx context.Context, agentID string) ([]domain.Client, error)
}
