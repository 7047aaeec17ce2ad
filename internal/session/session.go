// Package session tracks the operator's view context: who they are, which
// filters are active, which page they are on, and which quotations are
// selected for batch shipping. Selection has strict invalidation rules so
// a stale id can never be handed to the shipment coordinator.
package session

import (
	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/projection"
)

// Session holds the operator context shared across views via pointer.
type Session struct {
	Role    domain.Role
	AgentID string

	// Active list filters
	StatusFilter string
	ClientFilter string
	Search       string
	Page         int
	PageSize     int

	selected map[string]bool
}

// New creates a session for an operator. Agent scope is the agent's own id
// for agents and domain.ScopeAll for the business admin.
func New(role domain.Role, agentID string) *Session {
	scope := agentID
	if role == domain.RoleAdmin {
		scope = domain.ScopeAll
	}
	return &Session{
		Role:         role,
		AgentID:      scope,
		StatusFilter: domain.ScopeAll,
		ClientFilter: domain.ScopeAll,
		Page:         1,
		PageSize:     projection.DefaultPageSize,
		selected:     make(map[string]bool),
	}
}

// Filter returns the projection filter for the current view.
func (s *Session) Filter() projection.Filter {
	return projection.Filter{
		Status:   s.StatusFilter,
		ClientID: s.ClientFilter,
		Search:   s.Search,
	}
}

// SelectionEnabled reports whether batch selection is offered at all:
// only when the view is narrowed to one specific client AND the
// manufacturing-complete status. Any broader view and a batch could mix
// clients or ineligible rows, so the checkboxes disappear entirely.
func (s *Session) SelectionEnabled() bool {
	if s.ClientFilter == "" || s.ClientFilter == domain.ScopeAll {
		return false
	}
	return s.StatusFilter == string(domain.StatusManufacturingComplete)
}

// SetStatusFilter switches the status filter, resets the page, and clears
// any selection since the eligible set may have changed.
func (s *Session) SetStatusFilter(status string) {
	if status == "" {
		status = domain.ScopeAll
	}
	s.StatusFilter = status
	s.Page = 1
	s.ClearSelection()
}

// SetClientFilter switches the client filter. Selection never survives a
// client change; a batch is always for exactly one client.
func (s *Session) SetClientFilter(clientID string) {
	if clientID == "" {
		clientID = domain.ScopeAll
	}
	if clientID != s.ClientFilter {
		s.ClearSelection()
	}
	s.ClientFilter = clientID
	s.Page = 1
}

// SetSearch updates the search query and resets the page.
func (s *Session) SetSearch(query string) {
	s.Search = query
	s.Page = 1
}

// Toggle flips the selection state of a quotation id. Ignored while
// selection is disabled.
func (s *Session) Toggle(id string) {
	if !s.SelectionEnabled() {
		return
	}
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		s.selected[id] = true
	}
}

// Selected reports whether id is currently selected.
func (s *Session) Selected(id string) bool {
	return s.selected[id]
}

// SelectedQuotations returns the selected quotations in the order they
// appear in items, so batch processing follows list order.
func (s *Session) SelectedQuotations(items []*domain.Quotation) []*domain.Quotation {
	var out []*domain.Quotation
	for _, q := range items {
		if s.selected[q.ID] {
			out = append(out, q)
		}
	}
	return out
}

// SelectionCount returns how many ids are selected.
func (s *Session) SelectionCount() int {
	return len(s.selected)
}

// ClearSelection drops every selected id. Called after any batch attempt,
// regardless of outcome, and on every filter change that could invalidate
// the eligible set.
func (s *Session) ClearSelection() {
	s.selected = make(map[string]bool)
}

// Reconcile drops selected ids that are no longer present and eligible in
// a freshly fetched list. Rows that changed status or disappeared upstream
// silently leave the selection.
func (s *Session) Reconcile(items []*domain.Quotation) {
	if len(s.selected) == 0 {
		return
	}
	eligible := make(map[string]bool, len(items))
	for _, q := range items {
		if domain.CanBatchShip(q.Status) {
			eligible[q.ID] = true
		}
	}
	for id := range s.selected {
		if !eligible[id] {
			delete(s.selected, id)
		}
	}
}
