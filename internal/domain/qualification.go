package domain

// CapabilityFunc answers whether a role may work a station type. The mapping
// lives outside the engine (rostering is storage's concern); the engine only
// consumes it as a predicate.
type CapabilityFunc func(role UserRole, station StationType) bool

// defaultCapabilities is the fallback roster policy: prep and line cooks are
// restricted to their stations, cooks and above may work anywhere, and
// dishwashers work no station.
var defaultCapabilities = map[UserRole][]StationType{
	RolePrepCook: {StationPrep, StationSalad},
	RoleLineCook: {StationGrill, StationFryer, StationSalad, StationBeverage},
}

// DefaultCapabilities implements CapabilityFunc with the fallback policy.
func DefaultCapabilities(role UserRole, station StationType) bool {
	if role.AtLeast(RoleCook) {
		return true
	}
	for _, t := range defaultCapabilities[role] {
		if t == station {
			return true
		}
	}
	return false
}

// EvaluateStaffAssignment checks whether a staff member may work the order
// at the station. The checks are conjunctive; the first failure rejects.
func EvaluateStaffAssignment(staff User, station Station, order Order, canWork CapabilityFunc) Decision {
	if canWork == nil {
		canWork = DefaultCapabilities
	}

	if !staff.IsActive {
		return Reject(RejectStaffUnqualified, "%s is not an active staff member", staff.Name)
	}

	if !canWork(staff.Role, station.Type) {
		return Reject(RejectStaffUnqualified,
			"role %s may not work the %s station", staff.Role, station.Type)
	}

	complexity := Complexity(order)
	if complexity > staff.Role.ExperienceLevel() {
		return Reject(RejectStaffUnqualified,
			"order complexity %.1f exceeds %s experience level %.0f",
			complexity, staff.Role, staff.Role.ExperienceLevel())
	}

	if order.HasSpecialDietaryRequirements() && !staff.Role.AtLeast(RoleCook) {
		return Reject(RejectStaffUnqualified,
			"orders with dietary requirements need a cook or above, got %s", staff.Role)
	}

	if order.TotalAmount > 100.0 && !staff.Role.AtLeast(RoleSousChef) {
		return Reject(RejectStaffUnqualified,
			"orders over $100 need senior staff, got %s", staff.Role)
	}

	return Accept()
}

// CanStaffHandle reports whether the staff member qualifies for the
// station/order combination under the default roster policy.
func CanStaffHandle(staff User, station Station, order Order) bool {
	return EvaluateStaffAssignment(staff, station, order, nil).Accepted
}
