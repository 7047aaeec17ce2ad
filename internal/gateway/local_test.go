package gateway

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/repository"
	"github.com/alexanderramin/gemdesk/internal/testutil"
)

type localFixture struct {
	gw     Gateway
	conn   *sql.DB
	agent  *domain.Agent
	client *domain.Client
}

func newLocalFixture(t *testing.T) *localFixture {
	t.Helper()
	conn := testutil.NewTestDB(t)
	ctx := context.Background()

	agent := testutil.NewTestAgent()
	require.NoError(t, repository.NewSQLiteAgentRepo(conn).Create(ctx, agent))
	client := testutil.NewTestClient(agent.ID)
	require.NoError(t, repository.NewSQLiteClientRepo(conn).Create(ctx, client))

	f := &localFixture{gw: NewLocalGatewayFromDB(conn), agent: agent, client: client}
	f.conn = conn
	return f
}

func (f *localFixture) seedQuotation(t *testing.T, status domain.Status) *domain.Quotation {
	t.Helper()
	q := testutil.NewTestQuotation(f.agent.ID, testutil.WithStatus(status))
	data := testutil.QuotationData(f.client.ID, f.client.ClientName)
	require.NoError(t, repository.NewSQLiteQuotationRepo(f.conn).Create(context.Background(), q, data))
	return q
}

func TestLocalGateway_FetchQuotations(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()
	f.seedQuotation(t, domain.StatusNew)
	f.seedQuotation(t, domain.StatusPending)

	page, err := f.gw.FetchQuotations(ctx, QuotationScope{AgentID: f.agent.ID, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalRecords)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, f.client.ID, page.Items[0].ClientID)

	all, err := f.gw.FetchQuotations(ctx, QuotationScope{AgentID: domain.ScopeAll, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalRecords)
}

func TestLocalGateway_UpdateStatus_NotFound(t *testing.T) {
	f := newLocalFixture(t)
	err := f.gw.UpdateQuotationStatus(context.Background(), "missing", domain.StatusPending)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalGateway_UpdateStatus_SameStatusIsNoOpSuccess(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()
	q := f.seedQuotation(t, domain.StatusPending)

	require.NoError(t, f.gw.UpdateQuotationStatus(ctx, q.ID, domain.StatusPending))

	page, err := f.gw.FetchQuotations(ctx, QuotationScope{AgentID: f.agent.ID, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, page.Items[0].Status)
}

func TestLocalGateway_CreateFinalQuotation_OnlyOnce(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()
	q := f.seedQuotation(t, domain.StatusManufacturingComplete)

	require.NoError(t, f.gw.CreateFinalQuotation(ctx, q.ID))

	err := f.gw.CreateFinalQuotation(ctx, q.ID)
	assert.ErrorIs(t, err, ErrRemoteRejected)

	page, err := f.gw.FetchQuotations(ctx, QuotationScope{AgentID: f.agent.ID, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Len(t, page.Items[0].FinalQuotations, 1)
}

func TestLocalGateway_MarkForShipping(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()
	q1 := f.seedQuotation(t, domain.StatusManufacturingComplete)
	q2 := f.seedQuotation(t, domain.StatusManufacturingComplete)

	require.NoError(t, f.gw.MarkForShipping(ctx, []string{q1.ID, q2.ID}))

	page, err := f.gw.FetchQuotations(ctx, QuotationScope{AgentID: f.agent.ID, Size: 10})
	require.NoError(t, err)
	for _, q := range page.Items {
		assert.NotEmpty(t, q.ShippingID)
	}

	// Re-marking is a no-op, not a duplicate record.
	require.NoError(t, f.gw.MarkForShipping(ctx, []string{q1.ID}))
}

func TestLocalGateway_MarkForShipping_UnknownIDFailsWholeBatch(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()
	q := f.seedQuotation(t, domain.StatusManufacturingComplete)

	err := f.gw.MarkForShipping(ctx, []string{q.ID, "missing"})
	assert.ErrorIs(t, err, ErrNotFound)

	// The transaction rolled back: no shipment record exists for q.
	page, fetchErr := f.gw.FetchQuotations(ctx, QuotationScope{AgentID: f.agent.ID, Size: 10})
	require.NoError(t, fetchErr)
	assert.Empty(t, page.Items[0].ShippingID)
}

func TestLocalGateway_ShippingPipeline(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()
	q := f.seedQuotation(t, domain.StatusManufacturingComplete)

	require.NoError(t, f.gw.MarkForShipping(ctx, []string{q.ID}))
	require.NoError(t, f.gw.UpdateQuotationStatus(ctx, q.ID, domain.StatusSentForShipping))

	page, err := f.gw.FetchQuotations(ctx, QuotationScope{AgentID: f.agent.ID, Size: 10})
	require.NoError(t, err)
	shippingID := page.Items[0].ShippingID
	require.NotEmpty(t, shippingID)

	require.NoError(t, f.gw.AssignTrackingID(ctx, shippingID, "TRACK-1"))
	require.NoError(t, f.gw.UpdateShipmentStatus(ctx, shippingID, domain.StatusShipped))

	shipment, err := repository.NewSQLiteShipmentRepo(f.conn).GetByID(ctx, shippingID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, shipment.Status)
	assert.Equal(t, "TRACK-1", shipment.TrackingID)
}

func TestLocalGateway_Ledger(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()

	_, err := f.gw.AppendLedgerTransaction(ctx, LedgerRecord{
		ClientID: f.client.ID, Amount: 1000, Type: domain.TransactionCredit, Note: "advance",
	})
	require.NoError(t, err)
	_, err = f.gw.AppendLedgerTransaction(ctx, LedgerRecord{
		ClientID: f.client.ID, Amount: 250, Type: domain.TransactionDebit, Note: "materials",
	})
	require.NoError(t, err)

	ledger, err := f.gw.FetchClientLedger(ctx, f.client.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, f.client.ClientName, ledger.Client.ClientName)
	require.Len(t, ledger.Transactions, 2)
	assert.Equal(t, 2, ledger.TotalRecords)
	assert.Equal(t, 750.0, domain.FoldTotals(ledger.Transactions).Balance)

	_, err = f.gw.AppendLedgerTransaction(ctx, LedgerRecord{
		ClientID: "missing", Amount: 10, Type: domain.TransactionCredit, Note: "x",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalGateway_Directory(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()

	agents, err := f.gw.FetchAgents(ctx)
	require.NoError(t, err)
	assert.Len(t, agents, 1)

	clients, err := f.gw.FetchClients(ctx, f.agent.ID)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, f.client.ID, clients[0].ID)

	all, err := f.gw.FetchClients(ctx, domain.ScopeAll)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
