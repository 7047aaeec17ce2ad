package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/gateway"
	"github.com/alexanderramin/gemdesk/internal/projection"
)

type lifecycleService struct {
	gw gateway.Gateway
}

func NewLifecycleService(gw gateway.Gateway) LifecycleService {
	return &lifecycleService{gw: gw}
}

// List fetches one page of quotations for the given scope. agentID may be
// domain.ScopeAll for the business admin view.
func (s *lifecycleService) List(ctx context.Context, agentID string, page int) (*gateway.QuotationPage, error) {
	if agentID == "" {
		return nil, domain.Validationf("agent scope is required")
	}
	result, err := s.gw.FetchQuotations(ctx, gateway.QuotationScope{
		AgentID: agentID,
		Offset:  projection.Offset(page, projection.DefaultPageSize),
		Size:    projection.DefaultPageSize,
	})
	if err != nil {
		return nil, domain.Remotef("fetch quotations", err)
	}
	return result, nil
}

// RequestStatusChange moves a quotation through the status graph. All
// checks run before any network call; a rejected request leaves the remote
// store untouched. The passed quotation is never patched locally either
// way; fresh state comes from the next collection fetch.
func (s *lifecycleService) RequestStatusChange(ctx context.Context, role domain.Role, q *domain.Quotation, target domain.Status) error {
	if q == nil {
		return domain.Validationf("no quotation given")
	}
	if target == q.Status {
		return domain.Validationf("quotation %s is already %s", q.ID, target)
	}
	if domain.IsTerminal(q.Status) {
		return domain.Preconditionf("quotation %s is %s; no further transitions exist", q.ID, q.Status)
	}
	if domain.IsSystemOnly(target) {
		return domain.Preconditionf("status %s is set by the shipping pipeline, not directly", target)
	}
	if !domain.CanTransition(q.Status, target, role) {
		if transitionExistsForAnyRole(q.Status, target) {
			return &domain.AuthorizationError{Role: role, From: q.Status, To: target}
		}
		return domain.Preconditionf("no transition from %s to %s", q.Status, target)
	}

	if err := s.gw.UpdateQuotationStatus(ctx, q.ID, target); err != nil {
		return domain.Remotef("update quotation status", err)
	}
	return nil
}

func transitionExistsForAnyRole(from, to domain.Status) bool {
	for _, role := range []domain.Role{domain.RoleAgent, domain.RoleAdmin} {
		if domain.CanTransition(from, to, role) {
			return true
		}
	}
	return false
}

// CreateFinalQuotation materializes the manufacturing-ready child of a
// quotation. At most one child per parent; the remote store enforces the
// same rule, but we refuse locally so the duplicate never hits the wire.
func (s *lifecycleService) CreateFinalQuotation(ctx context.Context, role domain.Role, q *domain.Quotation) error {
	if q == nil {
		return domain.Validationf("no quotation given")
	}
	if role != domain.RoleAdmin {
		return &domain.AuthorizationError{Role: role, From: q.Status, To: q.Status}
	}
	if q.Status != domain.StatusManufacturingComplete {
		return domain.Preconditionf("quotation %s is %s; final quotations require manufacturing to be complete", q.ID, q.Status)
	}
	if q.HasFinalQuotations() {
		return domain.Preconditionf("quotation %s already has a final quotation", q.ID)
	}

	if err := s.gw.CreateFinalQuotation(ctx, q.ID); err != nil {
		return domain.Remotef("create final quotation", err)
	}
	return nil
}

// DeleteQuotation hard-deletes. Deleting a parent deletes its final
// quotations with it; the remote store cascades.
func (s *lifecycleService) DeleteQuotation(ctx context.Context, role domain.Role, q *domain.Quotation) error {
	if q == nil {
		return domain.Validationf("no quotation given")
	}
	if !q.DeletableBy(role) {
		return &domain.AuthorizationError{Role: role, From: q.Status, To: q.Status}
	}
	if err := s.gw.DeleteQuotation(ctx, q.ID); err != nil {
		return domain.Remotef("delete quotation", err)
	}
	return nil
}

// MarkShipped assigns a tracking id and then flips the shipment to
// shipped, in that order. If the second call fails the tracking id has
// already been assigned; re-running MarkShipped is safe because assigning
// the same tracking id again is an idempotent overwrite upstream.
func (s *lifecycleService) MarkShipped(ctx context.Context, q *domain.Quotation, trackingID string) error {
	if q == nil {
		return domain.Validationf("no quotation given")
	}
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return domain.Validationf("tracking id is required before shipping")
	}
	if q.Status != domain.StatusSentForShipping {
		return domain.Preconditionf("quotation %s is %s; only sentforshipping quotations can be shipped", q.ID, q.Status)
	}
	if q.ShippingID == "" {
		return domain.Preconditionf("quotation %s has no shipment record", q.ID)
	}

	if err := s.gw.AssignTrackingID(ctx, q.ShippingID, trackingID); err != nil {
		return domain.Remotef("assign tracking id", err)
	}
	if err := s.gw.UpdateShipmentStatus(ctx, q.ShippingID, domain.StatusShipped); err != nil {
		return domain.Remotef("mark shipped", err)
	}
	return nil
}

// AdvanceShipment moves a shipped quotation to its delivery outcome
// (delivered, returned, cancelled) through the shipment pipeline.
func (s *lifecycleService) AdvanceShipment(ctx context.Context, q *domain.Quotation, target domain.Status) error {
	if q == nil {
		return domain.Validationf("no quotation given")
	}
	if q.ShippingID == "" {
		return domain.Preconditionf("quotation %s has no shipment record", q.ID)
	}
	if !domain.CanAdvanceShipment(q.Status, target) {
		return domain.Preconditionf("shipment cannot move from %s to %s", q.Status, target)
	}
	if err := s.gw.UpdateShipmentStatus(ctx, q.ShippingID, target); err != nil {
		return domain.Remotef("update shipment status", err)
	}
	return nil
}
