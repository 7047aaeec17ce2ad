package gateway

import (
	"context"

	"github.com/alexanderramin/gemdesk/internal/domain"
)

// QuotationScope selects whose quotations to fetch. AgentID may be
// domain.ScopeAll for the business admin's cross-agent view.
type QuotationScope struct {
	AgentID string
	Offset  int
	Size    int
}

// QuotationPage is one page of quotations plus the total row count the
// remote store reports for the scope.
type QuotationPage struct {
	Items        []*domain.Quotation
	TotalRecords int
}

// LedgerRecord is the input for appending a ledger transaction.
type LedgerRecord struct {
	ClientID string
	Amount   float64
	Type     domain.TransactionType
	Note     string
}

// Gateway is the remote authoritative store. Every call is a discrete
// network operation that may fail or time out; callers treat their local
// copies as stale after any mutation and re-fetch.
//
// The store is idempotent per call: re-setting a status the entity already
// has is a no-op success, and AssignTrackingID may be retried by shipment id.
type Gateway interface {
	FetchQuotations(ctx context.Context, scope QuotationScope) (*QuotationPage, error)
	UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.Status) error
	DeleteQuotation(ctx context.Context, quotationID string) error
	CreateFinalQuotation(ctx context.Context, quotationID string) error

	MarkForShipping(ctx context.Context, quotationIDs []string) error
	AssignTrackingID(ctx context.Context, shippingID, trackingID string) error
	UpdateShipmentStatus(ctx context.Context, shippingID string, status domain.Status) error

	FetchClientLedger(ctx context.Context, clientID string, offset, size int) (*domain.ClientLedger, error)
	AppendLedgerTransaction(ctx context.Context, rec LedgerRecord) (*domain.LedgerTransaction, error)

	FetchAgents(ctx context.Context) ([]domain.Agent, error)
	FetchClients(ctx context.Context, agentID string) ([]domain.Client, error)
}
