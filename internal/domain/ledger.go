package domain

import "time"

// LedgerTransaction is one immutable row in a client's ledger. Rows created
// for shipment events additionally reference the shipment record.
type LedgerTransaction struct {
	ID     string
	Amount float64
	Type   TransactionType
	Note   string

	// ShippingID and ShipmentStatus are set on rows recorded for a
	// quotation that entered the shipping pipeline.
	ShippingID     string
	ShipmentStatus Status

	CreateDate time.Time
}

// ClientLedger is one page of a client's append-only transaction sequence
// together with the client details the backend returns alongside it.
// TotalRecords counts the whole sequence, not the page.
type ClientLedger struct {
	Client       Client
	Transactions []LedgerTransaction
	TotalRecords int
}

// LedgerTotals are the aggregates derived from a transaction sequence.
// They are always recomputed by FoldTotals, never incremented in place.
type LedgerTotals struct {
	Credit       float64
	Debit        float64
	Balance      float64
	CreditCount  int
	DebitCount   int
	Transactions int
}

// FoldTotals recomputes ledger aggregates as a fold over the full sequence.
func FoldTotals(txs []LedgerTransaction) LedgerTotals {
	var totals LedgerTotals
	for _, tx := range txs {
		switch tx.Type {
		case TransactionCredit:
			totals.Credit += tx.Amount
			totals.CreditCount++
		case TransactionDebit:
			totals.Debit += tx.Amount
			totals.DebitCount++
		}
		totals.Transactions++
	}
	totals.Balance = totals.Credit - totals.Debit
	return totals
}

// ShipmentStats tallies ledger rows by shipment status.
type ShipmentStats struct {
	Total          int
	Pending        int // rows still at sentforshipping
	Shipped        int
	Delivered      int
	Returned       int
	Cancelled      int
	CompletionRate int // delivered as a percentage of total, 0 when empty
}

// CountShipmentStats folds shipment-status counts over ledger rows.
// Rows with no shipment linkage are ignored.
func CountShipmentStats(txs []LedgerTransaction) ShipmentStats {
	var stats ShipmentStats
	for _, tx := range txs {
		if tx.ShippingID == "" {
			continue
		}
		stats.Total++
		switch tx.ShipmentStatus {
		case StatusSentForShipping:
			stats.Pending++
		case StatusShipped:
			stats.Shipped++
		case StatusDelivered:
			stats.Delivered++
		case StatusReturned:
			stats.Returned++
		case StatusCancelled:
			stats.Cancelled++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = stats.Delivered * 100 / stats.Total
	}
	return stats
}
