package domain

// EvaluateStatusChange decides whether the requesting user may move the
// order into the target status. The transition must be an edge of the
// lifecycle graph, the target's guard conditions must hold, and the user's
// role must permit the target status. The evaluation never mutates the
// order; applying an accepted transition is the caller's job.
func EvaluateStatusChange(order Order, target OrderStatus, user User) Decision {
	if !CanTransition(order.Status, target) {
		return Reject(RejectInvalidTransition,
			"cannot move order %s from %s to %s", order.Number, order.Status, target)
	}

	if d := checkTransitionGuards(order, target); !d.Accepted {
		return d
	}

	if !user.IsActive {
		return Reject(RejectUnauthorized, "%s is not an active user", user.Name)
	}

	if !RoleMayTransitionTo(user.Role, target) {
		return Reject(RejectUnauthorized,
			"role %s may not move orders to %s", user.Role, target)
	}

	return Accept()
}

// checkTransitionGuards enforces the state-dependent preconditions that sit
// alongside the transition graph.
func checkTransitionGuards(order Order, target OrderStatus) Decision {
	switch target {
	case StatusConfirmed:
		if len(order.Items) == 0 {
			return Reject(RejectGuardViolation,
				"order %s has no items to confirm", order.Number)
		}
	case StatusPreparing:
		if order.AssignedStationID == nil {
			return Reject(RejectGuardViolation,
				"order %s has no assigned station", order.Number)
		}
	case StatusReady:
		if order.Status != StatusPreparing {
			return Reject(RejectGuardViolation,
				"order %s must be preparing before it is ready", order.Number)
		}
	case StatusCompleted:
		if order.Status != StatusReady {
			return Reject(RejectGuardViolation,
				"order %s must be ready before completion", order.Number)
		}
	}
	return Accept()
}
