package domain

// CapacitySnapshot aggregates the counts the admission rules look at. It is
// derived from fresh order and staff snapshots on every evaluation.
type CapacitySnapshot struct {
	ActiveOrders   int
	ComplexOrders  int
	AvailableStaff int
	SeniorStaff    int
	MaxConcurrent  int
}

// SnapshotCapacity derives the admission-control counts from order and staff
// snapshots.
func SnapshotCapacity(orders []Order, staff []User, maxConcurrent int) CapacitySnapshot {
	snap := CapacitySnapshot{MaxConcurrent: maxConcurrent}

	for _, o := range orders {
		if !o.IsActive() {
			continue
		}
		snap.ActiveOrders++
		if o.IsComplex() {
			snap.ComplexOrders++
		}
	}

	for _, u := range staff {
		if !u.IsActive {
			continue
		}
		snap.AvailableStaff++
		if u.Role.IsSeniorKitchenRole() {
			snap.SeniorStaff++
		}
	}

	return snap
}

// EvaluateCapacity decides whether the kitchen as a whole can keep working
// at the current load. Three conjunctive rules: a ceiling on concurrent
// active orders, at least one staff member per three active orders, and at
// least one senior cook per two complex orders.
func EvaluateCapacity(orders []Order, staff []User, maxConcurrent int) Decision {
	snap := SnapshotCapacity(orders, staff, maxConcurrent)

	if snap.ActiveOrders >= maxConcurrent {
		return Reject(RejectCapacityExceeded,
			"kitchen at maximum of %d concurrent orders", maxConcurrent)
	}

	if 3*snap.AvailableStaff < snap.ActiveOrders {
		return Reject(RejectCapacityExceeded,
			"%d staff cannot cover %d active orders (1 per 3 required)",
			snap.AvailableStaff, snap.ActiveOrders)
	}

	if 2*snap.SeniorStaff < snap.ComplexOrders {
		return Reject(RejectCapacityExceeded,
			"%d senior staff cannot cover %d complex orders (1 per 2 required)",
			snap.SeniorStaff, snap.ComplexOrders)
	}

	return Accept()
}

// ValidateCapacity reports whether the kitchen can accept more load.
func ValidateCapacity(orders []Order, staff []User, maxConcurrent int) bool {
	return EvaluateCapacity(orders, staff, maxConcurrent).Accepted
}
