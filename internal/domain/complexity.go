package domain

// Complexity scores how demanding an order is to prepare. The score grows
// with item count, per-item difficulty, special instructions, and priority:
//
//	0.5 x items + sum(difficulty weights) + 1.5 instruction bonus + 0.5 x priority level
//
// The result feeds station eligibility and staff qualification checks; it is
// never persisted.
func Complexity(o Order) float64 {
	score := 0.5 * float64(len(o.Items))
	for _, item := range o.Items {
		score += item.Recipe.Difficulty.Weight()
	}
	if o.SpecialInstructions != "" {
		score += 1.5
	}
	score += 0.5 * float64(o.Priority.Level())
	return score
}
