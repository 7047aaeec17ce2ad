package formatter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/service"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1250.50", Money(1250.5))
	assert.Equal(t, "$0.00", Money(0))
}

func TestQuotationRow(t *testing.T) {
	q := &domain.Quotation{
		ID:         "101",
		ClientName: "Acme Gems",
		Price:      1250.50,
		Status:     domain.StatusManufacturingComplete,
		UpdatedAt:  time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
	}

	row := QuotationRow(q, false, false)
	assert.Len(t, row, 6)
	assert.Equal(t, "101", row[0])
	assert.Contains(t, row[2], "1250.50")

	withBox := QuotationRow(q, true, true)
	assert.Len(t, withBox, 7)
	assert.Contains(t, withBox[0], "x")
}

func TestQuotationRow_Unattributed(t *testing.T) {
	q := &domain.Quotation{ID: "55", Status: domain.StatusNew}
	row := QuotationRow(q, false, false)
	assert.Contains(t, row[1], "unattributed")
}

func TestLedgerTable(t *testing.T) {
	out := LedgerTable([]domain.LedgerTransaction{
		{Amount: 500, Type: domain.TransactionCredit, Note: "advance",
			CreateDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: 120, Type: domain.TransactionDebit, Note: "shipping fee",
			ShippingID: "SH-9", ShipmentStatus: domain.StatusShipped,
			CreateDate: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)},
	})
	assert.Contains(t, out, "advance")
	assert.Contains(t, out, "SH-9")
	assert.Contains(t, out, "2026-08-01")
}

func TestTotalsLine(t *testing.T) {
	out := TotalsLine(domain.LedgerTotals{Credit: 1000, Debit: 250, Balance: 750})
	assert.Contains(t, out, "$1000.00")
	assert.Contains(t, out, "$750.00")
}

func TestStatsLine(t *testing.T) {
	assert.Contains(t, StatsLine(domain.ShipmentStats{}), "no shipments")

	out := StatsLine(domain.ShipmentStats{Total: 4, Delivered: 2, Pending: 1, Shipped: 1, CompletionRate: 50})
	assert.Contains(t, out, "shipments: 4")
	assert.Contains(t, out, "50% delivered")
}

func TestStatusCountsLine(t *testing.T) {
	assert.Contains(t, StatusCountsLine(nil), "no quotations")

	out := StatusCountsLine(map[domain.Status]int{
		domain.StatusNew:      2,
		domain.StatusApproved: 1,
	})
	assert.Contains(t, out, "3 quotations")
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "1")
}

func TestClientHeader(t *testing.T) {
	out := ClientHeader(domain.Client{
		ClientName: "Acme Gems",
		Email:      "ap@acmegems.test",
		EINNumber:  "12-3456789",
	})
	assert.Contains(t, out, "Acme Gems")
	assert.Contains(t, out, "ap@acmegems.test")
	assert.Contains(t, out, "EIN 12-3456789")

	bare := ClientHeader(domain.Client{ClientName: "Solo"})
	assert.Contains(t, bare, "Solo")
	assert.NotContains(t, bare, "EIN")
}

func TestBatchOutcomeReport(t *testing.T) {
	outcome := &service.BatchOutcome{
		Succeeded: []string{"1", "3"},
		Failed:    []service.BatchFailure{{QuotationID: "2", Err: errors.New("store rejected")}},
	}
	out := BatchOutcomeReport(outcome)
	assert.Contains(t, out, "2 sent for shipping")
	assert.Contains(t, out, "store rejected")
	assert.Contains(t, out, "retry them individually")
}
