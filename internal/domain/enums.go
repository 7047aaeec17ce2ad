package domain

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusNew                   Status = "new"
	StatusPending               Status = "pending"
	StatusApproved              Status = "approved"
	StatusDeclined              Status = "declined"
	StatusSendToManufacture     Status = "send_to_manufacture"
	StatusManufacturingComplete Status = "manufacturing_complete"
	StatusSentForShipping       Status = "sentforshipping"
	StatusShipped               Status = "shipped"
	StatusDelivered             Status = "delivered"
	StatusReturned              Status = "returned"
	StatusCancelled             Status = "cancelled"
)

// AllStatuses lists every quotation status in pipeline order.
var AllStatuses = []Status{
	StatusNew,
	StatusPending,
	StatusApproved,
	StatusDeclined,
	StatusSendToManufacture,
	StatusManufacturingComplete,
	StatusSentForShipping,
	StatusShipped,
	StatusDelivered,
	StatusReturned,
	StatusCancelled,
}

// statusAliases maps legacy wire spellings to canonical statuses. The backend
// still emits "manufacturing complete" with a space on some endpoints.
var statusAliases = map[string]Status{
	"manufacturing complete": StatusManufacturingComplete,
	"sent_for_shipping":      StatusSentForShipping,
}

// ParseStatus converts a wire string into a Status, accepting known aliases.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := statusAliases[normalized]; ok {
		return alias, nil
	}
	for _, st := range AllStatuses {
		if string(st) == normalized {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown quotation status %q", s)
}

type Role string

const (
	RoleAgent Role = "agent"
	RoleAdmin Role = "business_admin"
)

// ParseRole converts a wire string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAgent:
		return RoleAgent, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type TransactionType string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
)

// ParseTransactionType converts a wire string into a TransactionType.
// Matching is case-insensitive; the canonical form is upper case.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToUpper(strings.TrimSpace(s))) {
	case TransactionCredit:
		return TransactionCredit, nil
	case TransactionDebit:
		return TransactionDebit, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// ScopeAll marks an agent or client filter that spans all entities rather
// than a single one. Only the business admin may use it.
const ScopeAll = "all"
