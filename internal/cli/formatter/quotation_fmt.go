package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/service"
)

// Money formats an amount for display.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// QuotationHeaders are the columns of the quotation list table.
func QuotationHeaders(withSelection bool) []string {
	headers := []string{"ID", "CLIENT", "PRICE", "STATUS", "FINAL", "UPDATED"}
	if withSelection {
		return append([]string{""}, headers...)
	}
	return headers
}

// QuotationRow renders one table row for a quotation.
func QuotationRow(q *domain.Quotation, selected, withSelection bool) []string {
	final := StyleDim.Render("-")
	if q.HasFinalQuotations() {
		final = StyleGreen.Render("yes")
	}
	client := q.ClientName
	if client == "" {
		client = StyleDim.Render("(unattributed)")
	}
	updated := ""
	if !q.UpdatedAt.IsZero() {
		updated = q.UpdatedAt.Format("2006-01-02")
	}
	row := []string{
		q.ID,
		client,
		Money(q.Price),
		StatusBadge(q.Status),
		final,
		StyleDim.Render(updated),
	}
	if withSelection {
		box := "[ ]"
		if selected {
			box = StyleGreen.Render("[x]")
		}
		return append([]string{box}, row...)
	}
	return row
}

// StatusCountsLine summarizes a quotation collection by status, in graph
// order, skipping statuses with no quotations.
func StatusCountsLine(counts map[domain.Status]int) string {
	parts := make([]string, 0, len(counts))
	total := 0
	for _, status := range domain.AllStatuses {
		n := counts[status]
		if n == 0 {
			continue
		}
		total += n
		parts = append(parts, fmt.Sprintf("%s %d", StatusBadge(status), n))
	}
	if total == 0 {
		return StyleDim.Render("no quotations")
	}
	return fmt.Sprintf("%d quotations   %s", total, strings.Join(parts, "  "))
}

// ClientHeader renders the client details returned alongside a ledger.
func ClientHeader(c domain.Client) string {
	var b strings.Builder
	b.WriteString(Header(c.ClientName))
	details := make([]string, 0, 3)
	if c.Email != "" {
		details = append(details, c.Email)
	}
	if c.ShippingAddress != "" {
		details = append(details, c.ShippingAddress)
	}
	if c.EINNumber != "" {
		details = append(details, "EIN "+c.EINNumber)
	}
	if len(details) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render(strings.Join(details, " · ")))
	}
	return b.String()
}

// LedgerTable renders a client's ledger transactions.
func LedgerTable(txs []domain.LedgerTransaction) string {
	headers := []string{"DATE", "TYPE", "AMOUNT", "NOTE", "SHIPPING", "SHIPMENT"}
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		txStyle := StyleGreen
		if tx.Type == domain.TransactionDebit {
			txStyle = StyleRed
		}
		shipping := tx.ShippingID
		shipment := ""
		if shipping == "" {
			shipping = StyleDim.Render("-")
		} else {
			shipment = StatusBadge(tx.ShipmentStatus)
		}
		rows = append(rows, []string{
			tx.CreateDate.Format("2006-01-02"),
			txStyle.Render(string(tx.Type)),
			txStyle.Render(Money(tx.Amount)),
			tx.Note,
			shipping,
			shipment,
		})
	}
	return RenderTable(headers, rows)
}

// TotalsLine renders the fold-derived ledger aggregates.
func TotalsLine(totals domain.LedgerTotals) string {
	balanceStyle := StyleGreen
	if totals.Balance < 0 {
		balanceStyle = StyleRed
	}
	return fmt.Sprintf("%s %s   %s %s   %s %s",
		StyleDim.Render("credit:"), StyleGreen.Render(Money(totals.Credit)),
		StyleDim.Render("debit:"), StyleRed.Render(Money(totals.Debit)),
		StyleDim.Render("balance:"), balanceStyle.Render(Money(totals.Balance)))
}

// StatsLine renders shipment progress for a ledger view.
func StatsLine(stats domain.ShipmentStats) string {
	if stats.Total == 0 {
		return StyleDim.Render("no shipments yet")
	}
	return fmt.Sprintf("shipments: %d  pending: %d  shipped: %d  delivered: %d  returned: %d  cancelled: %d  (%d%% delivered)",
		stats.Total, stats.Pending, stats.Shipped, stats.Delivered,
		stats.Returned, stats.Cancelled, stats.CompletionRate)
}

// BatchOutcomeReport renders the per-item result of a batch ship attempt.
func BatchOutcomeReport(outcome *service.BatchOutcome) string {
	var b strings.Builder
	if len(outcome.Succeeded) > 0 {
		b.WriteString(StyleGreen.Render(fmt.Sprintf("✓ %d sent for shipping", len(outcome.Succeeded))))
		b.WriteString(": ")
		b.WriteString(strings.Join(outcome.Succeeded, ", "))
		b.WriteString("\n")
	}
	for _, f := range outcome.Failed {
		b.WriteString(StyleRed.Render("✗ "+f.QuotationID) + ": " + f.Err.Error() + "\n")
	}
	if !outcome.AllSucceeded() {
		b.WriteString(StyleDim.Render("failed items keep their previous status; re-fetch and retry them individually\n"))
	}
	return b.String()
}
