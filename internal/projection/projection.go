// Package projection derives the visible slice of a quotation list from
// the full fetched set: status and client filters, text search, and page
// arithmetic. Everything here is pure; no remote calls, no stored state.
package projection

import (
	"strings"

	"github.com/alexanderramin/gemdesk/internal/domain"
)

// DefaultPageSize matches the remote store's list endpoints.
const DefaultPageSize = 10

// Filter narrows a quotation list. Zero values mean "no restriction";
// domain.ScopeAll is accepted as an explicit "all" for both dimensions.
type Filter struct {
	Status   string
	ClientID string
	Search   string
}

func (f Filter) wantsStatus() bool {
	return f.Status != "" && f.Status != domain.ScopeAll
}

func (f Filter) wantsClient() bool {
	return f.ClientID != "" && f.ClientID != domain.ScopeAll
}

// Apply returns the quotations matching the filter, preserving input order.
func Apply(quotations []*domain.Quotation, f Filter) []*domain.Quotation {
	var out []*domain.Quotation
	for _, q := range quotations {
		if f.wantsStatus() && string(q.Status) != f.Status {
			continue
		}
		if f.wantsClient() && q.ClientID != f.ClientID {
			continue
		}
		if !matchesSearch(q, f.Search) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// matchesSearch does a case-insensitive substring match over the fields a
// user would reach for: id, client name, and the quotation number inside
// the payload.
func matchesSearch(q *domain.Quotation, query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(q.ID), query) {
		return true
	}
	if strings.Contains(strings.ToLower(q.ClientName), query) {
		return true
	}
	if q.Payload != nil {
		if no, ok := q.Payload.QuotationDetails["quotationNo"]; ok {
			if s, ok := no.(string); ok && strings.Contains(strings.ToLower(s), query) {
				return true
			}
		}
	}
	return false
}

// PageCount returns the number of pages needed for total records. An empty
// list still has one page so the pager always has somewhere to stand.
func PageCount(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// ClampPage forces page into [1, PageCount(total, size)].
func ClampPage(page, total, size int) int {
	last := PageCount(total, size)
	if page < 1 {
		return 1
	}
	if page > last {
		return last
	}
	return page
}

// Window slices out the items for a (1-based) page.
func Window(items []*domain.Quotation, page, size int) []*domain.Quotation {
	if size <= 0 {
		size = DefaultPageSize
	}
	page = ClampPage(page, len(items), size)
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Offset converts a 1-based page to the remote store's record offset.
func Offset(page, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	return (page - 1) * size
}
