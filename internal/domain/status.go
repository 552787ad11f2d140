package domain

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// validTransitions is the authoritative order lifecycle graph.
// Terminal statuses (completed, cancelled) have no outgoing edges.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// statusPermissions lists the roles allowed to move an order into a status.
// Confirming and cancelling are management decisions; the cooking line moves
// orders through preparation and readiness.
var statusPermissions = map[OrderStatus][]UserRole{
	StatusConfirmed: {RoleSousChef, RoleKitchenManager, RoleGeneralManager, RoleAdmin},
	StatusPreparing: {RoleLineCook, RoleCook, RoleSousChef, RoleKitchenManager},
	StatusReady:     {RoleLineCook, RoleCook, RoleSousChef, RoleKitchenManager},
	StatusCompleted: {RoleCook, RoleSousChef, RoleKitchenManager},
	StatusCancelled: {RoleSousChef, RoleKitchenManager},
}

// CanTransition checks whether current -> next is an edge of the lifecycle graph.
func CanTransition(current, next OrderStatus) bool {
	for _, s := range validTransitions[current] {
		if s == next {
			return true
		}
	}
	return false
}

// ValidTransitions returns the statuses reachable from current in one step.
func ValidTransitions(current OrderStatus) []OrderStatus {
	next := validTransitions[current]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s OrderStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// RoleMayTransitionTo checks whether the role is permitted to move an order
// into the target status. Statuses without an entry (pending) are never a
// transition target.
func RoleMayTransitionTo(role UserRole, target OrderStatus) bool {
	for _, r := range statusPermissions[target] {
		if r == role {
			return true
		}
	}
	return false
}
