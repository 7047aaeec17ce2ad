package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alexanderramin/gemdesk/internal/db"
	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/repository"
)

// localGateway implements Gateway against an embedded SQLite store. It
// exists for offline use and demos; the service layer cannot tell it
// apart from the HTTP gateway.
type localGateway struct {
	conn       *sql.DB
	uow        db.UnitOfWork
	quotations repository.QuotationRepo
	shipments  repository.ShipmentRepo
	ledger     repository.LedgerRepo
	clients    repository.ClientRepo
	agents     repository.AgentRepo
}

// NewLocalGateway creates a Gateway backed by the SQLite database at path.
func NewLocalGateway(path string) (Gateway, error) {
	conn, err := db.OpenDB(path)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}
	return NewLocalGatewayFromDB(conn), nil
}

// NewLocalGatewayFromDB wraps an already-open database.
func NewLocalGatewayFromDB(conn *sql.DB) Gateway {
	return &localGateway{
		conn:       conn,
		uow:        db.NewSQLiteUnitOfWork(conn),
		quotations: repository.NewSQLiteQuotationRepo(conn),
		shipments:  repository.NewSQLiteShipmentRepo(conn),
		ledger:     repository.NewSQLiteLedgerRepo(conn),
		clients:    repository.NewSQLiteClientRepo(conn),
		agents:     repository.NewSQLiteAgentRepo(conn),
	}
}

func (g *localGateway) FetchQuotations(ctx context.Context, scope QuotationScope) (*QuotationPage, error) {
	agentID := scope.AgentID
	if agentID == domain.ScopeAll {
		agentID = ""
	}
	items, err := g.quotations.List(ctx, agentID, scope.Offset, scope.Size)
	if err != nil {
		return nil, err
	}
	total, err := g.quotations.Count(ctx, agentID)
	if err != nil {
		return nil, err
	}
	return &QuotationPage{Items: items, TotalRecords: total}, nil
}

func (g *localGateway) UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.Status) error {
	return mapLocalErr(g.quotations.UpdateStatus(ctx, quotationID, status))
}

func (g *localGateway) DeleteQuotation(ctx context.Context, quotationID string) error {
	return mapLocalErr(g.quotations.Delete(ctx, quotationID))
}

func (g *localGateway) CreateFinalQuotation(ctx context.Context, quotationID string) error {
	return g.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		quotations := repository.NewSQLiteQuotationRepo(tx)
		parent, err := quotations.GetByID(ctx, quotationID)
		if err != nil {
			return mapLocalErr(err)
		}

		final := &domain.FinalQuotation{
			ID:     uuid.New().String(),
			Price:  parent.Price,
			Status: domain.StatusNew,
		}
		err = quotations.CreateFinal(ctx, quotationID, final, rawPayload(parent))
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: quotation %s already has a final quotation", ErrRemoteRejected, quotationID)
		}
		return err
	})
}

func (g *localGateway) MarkForShipping(ctx context.Context, quotationIDs []string) error {
	// All records are created in one transaction: either every selected
	// quotation gets a shipment record or none does.
	return g.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		quotations := repository.NewSQLiteQuotationRepo(tx)
		shipments := repository.NewSQLiteShipmentRepo(tx)
		for _, id := range quotationIDs {
			if _, err := quotations.GetByID(ctx, id); err != nil {
				return mapLocalErr(err)
			}
			// Re-marking an already marked quotation is a no-op.
			if _, err := shipments.GetByQuotation(ctx, id); err == nil {
				continue
			} else if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			shipment := &domain.Shipment{
				ID:          uuid.New().String(),
				QuotationID: id,
				Status:      domain.StatusSentForShipping,
			}
			if err := shipments.Create(ctx, shipment); err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *localGateway) AssignTrackingID(ctx context.Context, shippingID, trackingID string) error {
	return mapLocalErr(g.shipments.SetTracking(ctx, shippingID, trackingID))
}

func (g *localGateway) UpdateShipmentStatus(ctx context.Context, shippingID string, status domain.Status) error {
	return mapLocalErr(g.shipments.UpdateStatus(ctx, shippingID, status))
}

func (g *localGateway) FetchClientLedger(ctx context.Context, clientID string, offset, size int) (*domain.ClientLedger, error) {
	client, err := g.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, mapLocalErr(err)
	}
	txs, err := g.ledger.ListByClient(ctx, clientID, offset, size)
	if err != nil {
		return nil, err
	}
	total, err := g.ledger.CountByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return &domain.ClientLedger{Client: *client, Transactions: txs, TotalRecords: total}, nil
}

func (g *localGateway) AppendLedgerTransaction(ctx context.Context, rec LedgerRecord) (*domain.LedgerTransaction, error) {
	if _, err := g.clients.GetByID(ctx, rec.ClientID); err != nil {
		return nil, mapLocalErr(err)
	}
	tx := &domain.LedgerTransaction{
		ID:     uuid.New().String(),
		Amount: rec.Amount,
		Type:   rec.Type,
		Note:   rec.Note,
	}
	if err := g.ledger.Append(ctx, tx, rec.ClientID); err != nil {
		return nil, err
	}
	return tx, nil
}

func (g *localGateway) FetchAgents(ctx context.Context) ([]domain.Agent, error) {
	return g.agents.List(ctx)
}

func (g *localGateway) FetchClients(ctx context.Context, agentID string) ([]domain.Client, error) {
	if agentID == domain.ScopeAll {
		agentID = ""
	}
	return g.clients.ListByAgent(ctx, agentID)
}

func rawPayload(q *domain.Quotation) string {
	if q.Payload == nil {
		return ""
	}
	// Children carry the same client blob as the parent.
	return fmt.Sprintf(`{"client":{"id":%q,"clientName":%q}}`, q.ClientID, q.ClientName)
}

func mapLocalErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}
