package repository

import (
	"context"

	"github.com/alexanderramin/gemdesk/internal/domain"
)

type QuotationRepo interface {
	Create(ctx context.Context, q *domain.Quotation, rawData string) error
	GetByID(ctx context.Context, id string) (*domain.Quotation, error)
	// List returns one page scoped to an agent; agentID "" means all agents.
	List(ctx context.Context, agentID string, offset, size int) ([]*domain.Quotation, error)
	Count(ctx context.Context, agentID string) (int, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	Delete(ctx context.Context, id string) error
	CreateFinal(ctx context.Context, quotationID string, f *domain.FinalQuotation, rawData string) error
}

type ShipmentRepo interface {
	Create(ctx context.Context, s *domain.Shipment) error
	GetByID(ctx context.Context, id string) (*domain.Shipment, error)
	GetByQuotation(ctx context.Context, quotationID string) (*domain.Shipment, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	SetTracking(ctx context.Context, id, trackingID string) error
}

type LedgerRepo interface {
	Append(ctx context.Context, tx *domain.LedgerTransaction, clientID string) error
	ListByClient(ctx context.Context, clientID string, offset, size int) ([]domain.LedgerTransaction, error)
	CountByClient(ctx context.Context, clientID string) (int, error)
}

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	// ListByAgent returns an agent's clients; agentID "" means all agents.
	ListByAgent(ctx context.Context, agentID string) ([]domain.Client, error)
}

type AgentRepo interface {
	Create(ctx context.Context, a *domain.Agent) error
	List(ctx context.Context) ([]domain.Agent, error)
}
