package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldTotals_Empty(t *testing.T) {
	totals := FoldTotals(nil)
	assert.Zero(t, totals.Credit)
	assert.Zero(t, totals.Debit)
	assert.Zero(t, totals.CreditCount)
	assert.Zero(t, totals.DebitCount)
	assert.Zero(t, totals.Transactions)
}

func TestFoldTotals_MixedSequence(t *testing.T) {
	txs := []LedgerTransaction{
		{ID: "T-1", Amount: 1200.50, Type: TransactionCredit},
		{ID: "T-2", Amount: 450, Type: TransactionDebit},
		{ID: "T-3", Amount: 300, Type: TransactionCredit},
		{ID: "T-4", Amount: 100, Type: TransactionDebit},
	}
	totals := FoldTotals(txs)
	assert.InDelta(t, 1500.50, totals.Credit, 1e-9)
	assert.InDelta(t, 550.0, totals.Debit, 1e-9)
	assert.Equal(t, 2, totals.CreditCount)
	assert.Equal(t, 2, totals.DebitCount)
	assert.Equal(t, 4, totals.Transactions)
}

func TestFoldTotals_RecomputeMatchesAppend(t *testing.T) {
	// Appending a row and refolding must equal folding the longer sequence;
	// totals can never drift from the rows.
	txs := []LedgerTransaction{
		{Amount: 10, Type: TransactionCredit},
		{Amount: 20, Type: TransactionDebit},
	}
	before := FoldTotals(txs)
	txs = append(txs, LedgerTransaction{Amount: 5, Type: TransactionCredit})
	after := FoldTotals(txs)

	assert.InDelta(t, before.Credit+5, after.Credit, 1e-9)
	assert.Equal(t, before.CreditCount+1, after.CreditCount)
	assert.Equal(t, before.Transactions+1, after.Transactions)
}

func TestCountShipmentStats(t *testing.T) {
	txs := []LedgerTransaction{
		{ShippingID: "SH-1", ShipmentStatus: StatusSentForShipping},
		{ShippingID: "SH-2", ShipmentStatus: StatusShipped},
		{ShippingID: "SH-3", ShipmentStatus: StatusDelivered},
		{ShippingID: "SH-4", ShipmentStatus: StatusDelivered},
		{ShippingID: "SH-5", ShipmentStatus: StatusReturned},
		{ShippingID: "SH-6", ShipmentStatus: StatusCancelled},
		{}, // plain monetary row, no shipment linkage
	}
	stats := CountShipmentStats(txs)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Shipped)
	assert.Equal(t, 2, stats.Delivered)
	assert.Equal(t, 1, stats.Returned)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 33, stats.CompletionRate)
}

func TestCountShipmentStats_Empty(t *testing.T) {
	stats := CountShipmentStats(nil)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.CompletionRate)
}
