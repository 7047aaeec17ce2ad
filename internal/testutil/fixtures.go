package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/gemdesk/internal/domain"
)

// Agent options
type AgentOption func(*domain.Agent)

func WithUsername(name string) AgentOption {
	return func(a *domain.Agent) {
		a.Username = name
	}
}

func NewTestAgent(opts ...AgentOption) *domain.Agent {
	a := &domain.Agent{
		ID:       uuid.New().String(),
		Username: "agent-" + uuid.New().String()[:8],
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Client options
type ClientOption func(*domain.Client)

func WithClientName(name string) ClientOption {
	return func(c *domain.Client) {
		c.ClientName = name
	}
}

func WithClientSince(d time.Time) ClientOption {
	return func(c *domain.Client) {
		c.ClientSince = &d
	}
}

func NewTestClient(agentID string, opts ...ClientOption) *domain.Client {
	c := &domain.Client{
		ID:         uuid.New().String(),
		ClientName: "client-" + uuid.New().String()[:8],
		Email:      "client@example.com",
		AgentID:    agentID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Quotation options
type QuotationOption func(*domain.Quotation)

func WithStatus(s domain.Status) QuotationOption {
	return func(q *domain.Quotation) {
		q.Status = s
	}
}

func WithPrice(p float64) QuotationOption {
	return func(q *domain.Quotation) {
		q.Price = p
	}
}

func NewTestQuotation(agentID string, opts ...QuotationOption) *domain.Quotation {
	now := time.Now().UTC()
	q := &domain.Quotation{
		ID:        uuid.New().String(),
		Price:     1000,
		Status:    domain.StatusNew,
		AgentID:   agentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// QuotationData builds the serialized payload blob a quotation carries,
// with just enough structure for filtering and display.
func QuotationData(clientID, clientName string) string {
	return fmt.Sprintf(
		`{"client":{"id":%q,"clientName":%q},"quotationDetails":{"quotationNo":"Q-%s"}}`,
		clientID, clientName, uuid.New().String()[:8])
}

// Ledger options
type TransactionOption func(*domain.LedgerTransaction)

func WithShipping(shippingID string) TransactionOption {
	return func(tx *domain.LedgerTransaction) {
		tx.ShippingID = shippingID
	}
}

func WithCreateDate(d time.Time) TransactionOption {
	return func(tx *domain.LedgerTransaction) {
		tx.CreateDate = d
	}
}

func NewTestTransaction(amount float64, txType domain.TransactionType, opts ...TransactionOption) *domain.LedgerTransaction {
	tx := &domain.LedgerTransaction{
		ID:         uuid.New().String(),
		Amount:     amount,
		Type:       txType,
		Note:       "test transaction",
		CreateDate: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(tx)
	}
	return tx
}
