package domain

import "time"

// Shipment is the shipping-side record created when a quotation batch is
// marked for shipping. Status moves through the shipment graph only.
type Shipment struct {
	ID          string
	QuotationID string
	Status      Status
	TrackingID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
