package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/gateway"
)

// fakeGateway records every call and fails on demand, either per
// operation or per quotation id.
type fakeGateway struct {
	calls   []string
	failOp  map[string]error
	failID  map[string]error
	page    *gateway.QuotationPage
	ledger  *domain.ClientLedger
	agents  []domain.Agent
	clients []domain.Client
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		failOp: make(map[string]error),
		failID: make(map[string]error),
	}
}

func (f *fakeGateway) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGateway) FetchQuotations(ctx context.Context, scope gateway.QuotationScope) (*gateway.QuotationPage, error) {
	f.record("fetchQuotations agent=%s offset=%d size=%d", scope.AgentID, scope.Offset, scope.Size)
	if err := f.failOp["fetchQuotations"]; err != nil {
		return nil, err
	}
	if f.page != nil {
		return f.page, nil
	}
	return &gateway.QuotationPage{}, nil
}

func (f *fakeGateway) UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.Status) error {
	f.record("updateStatus %s -> %s", quotationID, status)
	if err := f.failID[quotationID]; err != nil {
		return err
	}
	return f.failOp["updateStatus"]
}

func (f *fakeGateway) DeleteQuotation(ctx context.Context, quotationID string) error {
	f.record("delete %s", quotationID)
	return f.failOp["delete"]
}

func (f *fakeGateway) CreateFinalQuotation(ctx context.Context, quotationID string) error {
	f.record("createFinal %s", quotationID)
	return f.failOp["createFinal"]
}

func (f *fakeGateway) MarkForShipping(ctx context.Context, quotationIDs []string) error {
	f.record("markForShipping %v", quotationIDs)
	return f.failOp["markForShipping"]
}

func (f *fakeGateway) AssignTrackingID(ctx context.Context, shippingID, trackingID string) error {
	f.record("assignTracking %s %s", shippingID, trackingID)
	return f.failOp["assignTracking"]
}

func (f *fakeGateway) UpdateShipmentStatus(ctx context.Context, shippingID string, status domain.Status) error {
	f.record("updateShipment %s -> %s", shippingID, status)
	return f.failOp["updateShipment"]
}

func (f *fakeGateway) FetchClientLedger(ctx context.Context, clientID string, offset, size int) (*domain.ClientLedger, error) {
	f.record("fetchLedger %s offset=%d size=%d", clientID, offset, size)
	if err := f.failOp["fetchLedger"]; err != nil {
		return nil, err
	}
	if f.ledger != nil {
		return f.ledger, nil
	}
	return &domain.ClientLedger{Client: domain.Client{ID: clientID}}, nil
}

func (f *fakeGateway) AppendLedgerTransaction(ctx context.Context, rec gateway.LedgerRecord) (*domain.LedgerTransaction, error) {
	f.record("appendLedger %s %.2f %s", rec.ClientID, rec.Amount, rec.Type)
	if err := f.failOp["appendLedger"]; err != nil {
		return nil, err
	}
	return &domain.LedgerTransaction{
		ID:     "tx-1",
		Amount: rec.Amount,
		Type:   rec.Type,
		Note:   rec.Note,
	}, nil
}

func (f *fakeGateway) FetchAgents(ctx context.Context) ([]domain.Agent, error) {
	f.record("fetchAgents")
	if err := f.failOp["fetchAgents"]; err != nil {
		return nil, err
	}
	return f.agents, nil
}

func (f *fakeGateway) FetchClients(ctx context.Context, agentID string) ([]domain.Client, error) {
	f.record("fetchClients %s", agentID)
	if err := f.failOp["fetchClients"]; err != nil {
		return nil, err
	}
	return f.clients, nil
}
