package domain

import "fmt"

// RejectKind classifies why the engine refused a request. Rejections are
// policy outcomes, not errors: they are returned as values and never retried.
type RejectKind string

const (
	RejectInvalidTransition   RejectKind = "invalid_transition"
	RejectGuardViolation      RejectKind = "guard_violation"
	RejectUnauthorized        RejectKind = "unauthorized"
	RejectCapacityExceeded    RejectKind = "capacity_exceeded"
	RejectStationIncompatible RejectKind = "station_incompatible"
	RejectStaffUnqualified    RejectKind = "staff_unqualified"
)

// Decision is the outcome of a single evaluation. An accepted decision has
// empty Kind and Reason.
type Decision struct {
	Accepted bool       `json:"accepted"`
	Kind     RejectKind `json:"kind,omitempty"`
	Reason   string     `json:"reason,omitempty"`
}

// Accept builds an accepting decision.
func Accept() Decision {
	return Decision{Accepted: true}
}

// Reject builds a rejecting decision with a formatted human-readable reason.
func Reject(kind RejectKind, format string, args ...any) Decision {
	return Decision{
		Accepted: false,
		Kind:     kind,
		Reason:   fmt.Sprintf(format, args...),
	}
}
