package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/gateway"
)

func TestLedger_FoldsTotalsFromRows(t *testing.T) {
	gw := newFakeGateway()
	gw.ledger = &domain.ClientLedger{
		Client: domain.Client{ID: "42", ClientName: "Acme Gems"},
		Transactions: []domain.LedgerTransaction{
			{ID: "1", Amount: 1000, Type: domain.TransactionCredit},
			{ID: "2", Amount: 250, Type: domain.TransactionDebit,
				ShippingID: "SH-1", ShipmentStatus: domain.StatusDelivered},
			{ID: "3", Amount: 100, Type: domain.TransactionDebit,
				ShippingID: "SH-2", ShipmentStatus: domain.StatusSentForShipping},
		},
	}
	svc := NewLedgerService(gw)

	view, err := svc.Ledger(context.Background(), "42", 1)

	require.NoError(t, err)
	assert.Equal(t, 1000.0, view.Totals.Credit)
	assert.Equal(t, 350.0, view.Totals.Debit)
	assert.Equal(t, 650.0, view.Totals.Balance)
	assert.Equal(t, 2, view.Stats.Total)
	assert.Equal(t, 1, view.Stats.Delivered)
	assert.Equal(t, 1, view.Stats.Pending)
	assert.Equal(t, []string{"fetchLedger 42 offset=0 size=10"}, gw.calls)
}

func TestLedger_OverlargePageClampedToLast(t *testing.T) {
	gw := newFakeGateway()
	gw.ledger = &domain.ClientLedger{
		Client:       domain.Client{ID: "42"},
		TotalRecords: 25,
	}
	svc := NewLedgerService(gw)

	view, err := svc.Ledger(context.Background(), "42", 9)

	require.NoError(t, err)
	assert.Equal(t, 3, view.Page)
	assert.Equal(t, []string{
		"fetchLedger 42 offset=80 size=10",
		"fetchLedger 42 offset=20 size=10",
	}, gw.calls)
}

func TestLedger_PageClampedToFirst(t *testing.T) {
	gw := newFakeGateway()
	svc := NewLedgerService(gw)

	_, err := svc.Ledger(context.Background(), "42", -3)

	require.NoError(t, err)
	assert.Equal(t, []string{"fetchLedger 42 offset=0 size=10"}, gw.calls)
}

func TestLedger_BlankClientRejected(t *testing.T) {
	gw := newFakeGateway()
	svc := NewLedgerService(gw)

	_, err := svc.Ledger(context.Background(), "  ", 1)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, gw.calls)
}

func TestRecord_HappyPath(t *testing.T) {
	gw := newFakeGateway()
	svc := NewLedgerService(gw)

	tx, err := svc.Record(context.Background(), domain.RoleAdmin, gateway.LedgerRecord{
		ClientID: "42", Amount: 500, Type: domain.TransactionCredit, Note: "  advance payment  ",
	})

	require.NoError(t, err)
	assert.Equal(t, 500.0, tx.Amount)
	assert.Equal(t, "advance payment", tx.Note)
	assert.Equal(t, []string{"appendLedger 42 500.00 CREDIT"}, gw.calls)
}

func TestRecord_ValidationFailsBeforeNetwork(t *testing.T) {
	gw := newFakeGateway()
	svc := NewLedgerService(gw)
	ctx := context.Background()

	tests := []struct {
		name string
		rec  gateway.LedgerRecord
	}{
		{"zero amount", gateway.LedgerRecord{ClientID: "42", Amount: 0, Type: domain.TransactionCredit, Note: "x"}},
		{"negative amount", gateway.LedgerRecord{ClientID: "42", Amount: -5, Type: domain.TransactionDebit, Note: "x"}},
		{"bad type", gateway.LedgerRecord{ClientID: "42", Amount: 5, Type: "TRANSFER", Note: "x"}},
		{"blank note", gateway.LedgerRecord{ClientID: "42", Amount: 5, Type: domain.TransactionCredit, Note: "   "}},
		{"missing client", gateway.LedgerRecord{Amount: 5, Type: domain.TransactionCredit, Note: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(ctx, domain.RoleAdmin, tt.rec)
			assert.True(t, domain.IsValidation(err))
		})
	}
	assert.Empty(t, gw.calls)
}

func TestRecord_AgentForbidden(t *testing.T) {
	gw := newFakeGateway()
	svc := NewLedgerService(gw)

	_, err := svc.Record(context.Background(), domain.RoleAgent, gateway.LedgerRecord{
		ClientID: "42", Amount: 500, Type: domain.TransactionCredit, Note: "advance",
	})

	assert.True(t, domain.IsAuthorization(err))
	assert.Empty(t, gw.calls)
}

func TestAssignTracking_Validation(t *testing.T) {
	gw := newFakeGateway()
	svc := NewLedgerService(gw)
	ctx := context.Background()

	err := svc.AssignTracking(ctx, domain.RoleAdmin, "SH-1", "   ")
	assert.True(t, domain.IsValidation(err))

	err = svc.AssignTracking(ctx, domain.RoleAdmin, "", "TRACK-1")
	assert.True(t, domain.IsValidation(err))

	assert.Empty(t, gw.calls)

	require.NoError(t, svc.AssignTracking(ctx, domain.RoleAdmin, "SH-1", " TRACK-1 "))
	assert.Equal(t, []string{"assignTracking SH-1 TRACK-1"}, gw.calls)
}

func TestUpdateShipment_GraphEnforced(t *testing.T) {
	gw := newFakeGateway()
	svc := NewLedgerService(gw)
	ctx := context.Background()

	err := svc.UpdateShipment(ctx, domain.RoleAdmin, "SH-1",
		domain.StatusDelivered, domain.StatusShipped)
	assert.True(t, domain.IsPrecondition(err))
	assert.Empty(t, gw.calls)

	require.NoError(t, svc.UpdateShipment(ctx, domain.RoleAdmin, "SH-1",
		domain.StatusShipped, domain.StatusReturned))
	assert.Equal(t, []string{"updateShipment SH-1 -> returned"}, gw.calls)
}

func TestLedgerOps_RemoteErrorsWrapped(t *testing.T) {
	gw := newFakeGateway()
	gw.failOp["fetchLedger"] = gateway.ErrTimeout
	svc := NewLedgerService(gw)

	_, err := svc.Ledger(context.Background(), "42", 1)
	assert.True(t, domain.IsRemote(err))
	assert.ErrorIs(t, err, gateway.ErrTimeout)
}
