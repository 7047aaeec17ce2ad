package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/gateway"
)

type shipmentService struct {
	gw gateway.Gateway
}

func NewShipmentService(gw gateway.Gateway) ShipmentService {
	return &shipmentService{gw: gw}
}

// ShipSelected runs the batch ship pipeline: one markForShipping call
// creating the shipment records, then one status transition per
// quotation, strictly in selection order and without rollback. The whole
// selection is validated before anything touches the wire: one specific
// client, every quotation eligible. The caller clears its selection and
// re-fetches afterwards no matter what comes back.
func (s *shipmentService) ShipSelected(ctx context.Context, clientID string, selection []*domain.Quotation) (*BatchOutcome, error) {
	if len(selection) == 0 {
		return nil, domain.Validationf("nothing selected for shipping")
	}
	if strings.TrimSpace(clientID) == "" || clientID == domain.ScopeAll {
		return nil, domain.Validationf("batch shipping requires a specific client scope")
	}

	quotationIDs := make([]string, 0, len(selection))
	for _, q := range selection {
		if q.ClientID != clientID {
			return nil, domain.Validationf("quotation %s belongs to another client; a batch covers exactly one client", q.ID)
		}
		if !domain.CanBatchShip(q.Status) {
			return nil, domain.Preconditionf("quotation %s is %s; only manufacturing_complete quotations ship in a batch", q.ID, q.Status)
		}
		quotationIDs = append(quotationIDs, q.ID)
	}

	// If this fails the whole batch fails: no shipment records exist, so
	// no quotation may move to sentforshipping.
	if err := s.gw.MarkForShipping(ctx, quotationIDs); err != nil {
		return nil, domain.Remotef("mark for shipping", err)
	}

	outcome := &BatchOutcome{}
	for _, id := range quotationIDs {
		if err := s.gw.UpdateQuotationStatus(ctx, id, domain.StatusSentForShipping); err != nil {
			outcome.Failed = append(outcome.Failed, BatchFailure{
				QuotationID: id,
				Err:         domain.Remotef("batch status update", err),
			})
			continue
		}
		outcome.Succeeded = append(outcome.Succeeded, id)
	}
	return outcome, nil
}
