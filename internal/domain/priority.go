package domain

import "time"

// Priority is the urgency level of an order, from 1 (low) to 5 (critical).
type Priority int

const (
	PriorityLow      Priority = 1
	PriorityNormal   Priority = 2
	PriorityHigh     Priority = 3
	PriorityUrgent   Priority = 4
	PriorityCritical Priority = 5
)

// Level returns the numeric level used by the complexity scorer.
func (p Priority) Level() int {
	return int(p)
}

// IsValid reports whether the priority is within the supported range.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityCritical
}

// EscalationTimeout is how long an order may sit without progress before it
// should be escalated to a manager.
func (p Priority) EscalationTimeout() time.Duration {
	switch p {
	case PriorityLow:
		return 120 * time.Minute
	case PriorityNormal:
		return 60 * time.Minute
	case PriorityHigh:
		return 30 * time.Minute
	case PriorityUrgent:
		return 15 * time.Minute
	case PriorityCritical:
		return 5 * time.Minute
	default:
		return 60 * time.Minute
	}
}

// MaxPrepTime is the target upper bound on total preparation time.
func (p Priority) MaxPrepTime() time.Duration {
	switch p {
	case PriorityLow:
		return 90 * time.Minute
	case PriorityNormal:
		return 60 * time.Minute
	case PriorityHigh:
		return 45 * time.Minute
	case PriorityUrgent:
		return 30 * time.Minute
	case PriorityCritical:
		return 20 * time.Minute
	default:
		return 60 * time.Minute
	}
}
