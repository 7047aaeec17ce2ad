package domain

import "time"

// Quotation is a priced proposal tied to a client, progressing through the
// status graph. A quotation may carry final quotations (children) once
// manufacturing has completed at least once; children never nest further.
type Quotation struct {
	ID       string
	Price    float64
	Status   Status
	AgentID  string
	ImageURL string

	// Payload is the parsed data blob; ClientID and ClientName are lifted
	// out of it at ingestion so list filtering never re-parses.
	Payload    *QuotationPayload
	ClientID   string
	ClientName string

	// ShippingID is set once a shipment record exists for this quotation.
	ShippingID string

	FinalQuotations []FinalQuotation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FinalQuotation is a manufacturing-ready derivative of a quotation.
// Same shape as the parent minus children.
type FinalQuotation struct {
	ID         string
	Price      float64
	Status     Status
	Payload    *QuotationPayload
	ClientName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasFinalQuotations reports whether children have been materialized.
func (q *Quotation) HasFinalQuotations() bool {
	return len(q.FinalQuotations) > 0
}

// DeletableBy reports whether role may hard-delete this quotation.
// The admin may always delete; an agent only while the quotation is new.
func (q *Quotation) DeletableBy(role Role) bool {
	if role == RoleAdmin {
		return true
	}
	return q.Status == StatusNew
}

// IngestPayload parses the raw data blob and lifts the client fields onto
// the quotation. Called once, when the entity arrives from the remote store.
func (q *Quotation) IngestPayload(raw string) error {
	p, err := ParsePayload(raw)
	if err != nil {
		return err
	}
	q.Payload = p
	q.ClientID = p.Client.ClientID()
	q.ClientName = p.Client.ClientName
	return nil
}

// StatusCounts tallies quotations by status. Used by the stats header.
func StatusCounts(quotations []*Quotation) map[Status]int {
	counts := make(map[Status]int)
	for _, q := range quotations {
		counts[q.Status]++
	}
	return counts
}
