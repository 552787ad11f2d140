package domain

import (
	"strings"
	"time"
)

// Order represents a customer order tracked through the kitchen workflow.
// The engine treats orders as immutable snapshots supplied by storage;
// nothing here mutates state.
type Order struct {
	ID                  int
	Number              string
	Items               []OrderItem
	Status              OrderStatus
	Priority            Priority
	SpecialInstructions string
	TotalAmount         float64
	AssignedStationID   *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// OrderItem is a single line of an order referencing the recipe being prepared.
type OrderItem struct {
	ID       int
	OrderID  int
	Recipe   Recipe
	Quantity int
}

// dietaryKeywords flag special-instruction text that requires an experienced
// cook regardless of the recipes involved.
var dietaryKeywords = []string{"allergy", "gluten", "vegan"}

// IsActive reports whether the order counts against kitchen capacity.
func (o Order) IsActive() bool {
	return o.Status == StatusConfirmed || o.Status == StatusPreparing
}

// IsComplex reports whether any line item is a hard recipe.
func (o Order) IsComplex() bool {
	for _, item := range o.Items {
		if item.Recipe.Difficulty == DifficultyHard {
			return true
		}
	}
	return false
}

// IsHighPriority reports whether the order is urgent or critical.
func (o Order) IsHighPriority() bool {
	return o.Priority >= PriorityUrgent
}

// IsOverdue reports whether the order has exceeded its priority's escalation
// timeout without reaching a terminal status.
func (o Order) IsOverdue(now time.Time) bool {
	if o.Status.IsTerminal() {
		return false
	}
	return now.Sub(o.CreatedAt) > o.Priority.EscalationTimeout()
}

// HasSpecialDietaryRequirements reports whether any item carries allergens or
// the special instructions mention a dietary keyword.
func (o Order) HasSpecialDietaryRequirements() bool {
	for _, item := range o.Items {
		if len(item.Recipe.Allergens) > 0 {
			return true
		}
	}
	instructions := strings.ToLower(o.SpecialInstructions)
	for _, kw := range dietaryKeywords {
		if strings.Contains(instructions, kw) {
			return true
		}
	}
	return false
}

// EstimatedCompletionMinutes estimates wall-clock preparation time for the
// order. Items cook in parallel on a station, so the longest item dominates;
// a 20% overhead covers coordination between items.
func (o Order) EstimatedCompletionMinutes() float64 {
	if len(o.Items) == 0 {
		return 0
	}
	longest := 0
	for _, item := range o.Items {
		if item.Recipe.EstimatedTimeMinutes > longest {
			longest = item.Recipe.EstimatedTimeMinutes
		}
	}
	return 1.2 * float64(longest)
}
