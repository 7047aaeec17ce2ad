package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/gateway"
	"github.com/alexanderramin/gemdesk/internal/repository"
	"github.com/alexanderramin/gemdesk/internal/service"
	"github.com/alexanderramin/gemdesk/internal/session"
	"github.com/alexanderramin/gemdesk/internal/teatest"
	"github.com/alexanderramin/gemdesk/internal/testutil"
)

func newBrowseFixture(t *testing.T) (*App, *domain.Client) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	ctx := context.Background()

	agent := testutil.NewTestAgent()
	require.NoError(t, repository.NewSQLiteAgentRepo(conn).Create(ctx, agent))
	client := testutil.NewTestClient(agent.ID)
	require.NoError(t, repository.NewSQLiteClientRepo(conn).Create(ctx, client))

	quotations := repository.NewSQLiteQuotationRepo(conn)
	for i := 0; i < 2; i++ {
		q := testutil.NewTestQuotation(agent.ID, testutil.WithStatus(domain.StatusManufacturingComplete))
		require.NoError(t, quotations.Create(ctx, q, testutil.QuotationData(client.ID, client.ClientName)))
	}

	gw := gateway.NewLocalGatewayFromDB(conn)
	app := &App{
		Lifecycle: service.NewLifecycleService(gw),
		Shipments: service.NewShipmentService(gw),
		Ledger:    service.NewLedgerService(gw),
		Directory: service.NewDirectoryService(gw),
		Session:   session.New(domain.RoleAgent, agent.ID),
	}
	return app, client
}

// startBrowse keeps the concrete model alongside the harness; Update
// always returns the same pointer, so both views stay in sync.
func startBrowse(t *testing.T, app *App) (*browseModel, *teatest.Harness) {
	t.Helper()
	m := newBrowseModel(app)
	h := teatest.New(t, m)
	h.Start()
	return m, h
}

func selectionFilters(app *App, client *domain.Client, m *browseModel) {
	app.Session.SetClientFilter(client.ID)
	app.Session.SetStatusFilter(string(domain.StatusManufacturingComplete))
	m.refreshVisible()
}

func TestBrowse_LoadsAndRenders(t *testing.T) {
	app, _ := newBrowseFixture(t)
	m, h := startBrowse(t, app)

	assert.Len(t, m.visible, 2)
	assert.Contains(t, h.View(), "quotations")
	assert.NotContains(t, h.View(), "loading")
}

func TestBrowse_SelectionRequiresEligibleFilters(t *testing.T) {
	app, client := newBrowseFixture(t)
	m, h := startBrowse(t, app)

	// No filters set: space does nothing.
	h.Press(' ')
	assert.Zero(t, app.Session.SelectionCount())

	selectionFilters(app, client, m)

	h.Press(' ')
	assert.Equal(t, 1, app.Session.SelectionCount())
	assert.True(t, app.Session.Selected(m.visible[0].ID))
}

func TestBrowse_BatchShipClearsSelectionAndRefetches(t *testing.T) {
	app, client := newBrowseFixture(t)
	m, h := startBrowse(t, app)

	selectionFilters(app, client, m)
	h.Press(' ')
	shippedID := m.visible[0].ID

	// The harness resolves the whole chain: ship, clear, re-fetch.
	h.Press('S')

	assert.Zero(t, app.Session.SelectionCount())
	assert.False(t, m.loading)
	assert.NotEmpty(t, m.notice)
	for _, q := range m.visible {
		assert.NotEqual(t, shippedID, q.ID, "shipped row left the eligible list")
	}
}

func TestBrowse_SearchNarrowsAndEscRestores(t *testing.T) {
	app, _ := newBrowseFixture(t)
	m, h := startBrowse(t, app)
	require.Len(t, m.visible, 2)

	h.Press('/')
	h.Type("no such quotation")
	h.Key(tea.KeyEnter)
	assert.Empty(t, m.visible)

	h.Press('/')
	h.Key(tea.KeyEsc)
	assert.Len(t, m.visible, 2)
}

func TestBrowse_ReconcileDropsShippedRows(t *testing.T) {
	app, client := newBrowseFixture(t)
	m, h := startBrowse(t, app)

	selectionFilters(app, client, m)
	h.Press(' ')
	id := m.visible[0].ID

	// The row moves on upstream; the next fetch silently drops it from
	// the selection.
	require.NoError(t, app.Lifecycle.RequestStatusChange(context.Background(), domain.RoleAdmin,
		&domain.Quotation{ID: id, Status: domain.StatusApproved}, domain.StatusSendToManufacture))
	h.Press('r')

	assert.False(t, app.Session.Selected(id))
}

func TestBrowse_QuitKey(t *testing.T) {
	app, _ := newBrowseFixture(t)
	_, h := startBrowse(t, app)

	h.Press('q')
	assert.True(t, h.Quit)
}
