package domain

// allowedTargets is the full role-gated transition table. Statuses absent
// from the outer map accept no user-initiated transition at all.
//
// sentforshipping and everything after it is system-driven: the batch
// shipment coordinator owns the move into sentforshipping, and shipment
// updates own the rest. Neither role may set those directly on a quotation.
var allowedTargets = map[Status]map[Role][]Status{
	StatusNew: {
		RoleAgent: {StatusPending},
		RoleAdmin: {StatusPending, StatusApproved, StatusDeclined, StatusSendToManufacture},
	},
	StatusPending: {
		RoleAdmin: {StatusApproved, StatusDeclined},
	},
	StatusApproved: {
		RoleAdmin: {StatusSendToManufacture},
	},
	StatusSendToManufacture: {
		RoleAdmin: {StatusManufacturingComplete},
	},
}

// CanTransition reports whether role may move a quotation from current to
// target. Pure lookup, no I/O.
func CanTransition(current, target Status, role Role) bool {
	for _, t := range allowedTargets[current][role] {
		if t == target {
			return true
		}
	}
	return false
}

// AllowedTargets returns the statuses role may set from current, in table
// order. Returns nil when no transition is allowed.
func AllowedTargets(current Status, role Role) []Status {
	return allowedTargets[current][role]
}

// CanBatchShip reports whether the batch shipment coordinator may move a
// quotation into sentforshipping. This is the only path into that status.
func CanBatchShip(current Status) bool {
	return current == StatusManufacturingComplete
}

// IsTerminal reports whether no further transition exists from status.
func IsTerminal(status Status) bool {
	switch status {
	case StatusDeclined, StatusDelivered, StatusReturned, StatusCancelled:
		return true
	}
	return false
}

// IsSystemOnly reports whether status may only be reached by the shipping
// pipeline, never by a direct user-initiated quotation transition.
func IsSystemOnly(status Status) bool {
	switch status {
	case StatusSentForShipping, StatusShipped, StatusDelivered, StatusReturned, StatusCancelled:
		return true
	}
	return false
}

// shipmentTargets is the shipment-record status graph driven from the
// ledger view. shipped additionally requires a tracking id (enforced by the
// lifecycle service before any network call).
var shipmentTargets = map[Status][]Status{
	StatusSentForShipping: {StatusShipped, StatusCancelled},
	StatusShipped:         {StatusDelivered, StatusReturned, StatusCancelled},
}

// CanAdvanceShipment reports whether a shipment record may move from
// current to target.
func CanAdvanceShipment(current, target Status) bool {
	for _, t := range shipmentTargets[current] {
		if t == target {
			return true
		}
	}
	return false
}
