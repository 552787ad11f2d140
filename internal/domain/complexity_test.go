package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplexityTwoEasyMains(t *testing.T) {
	o := orderOf(
		itemOf(CategoryMain, DifficultyEasy, 15),
		itemOf(CategoryMain, DifficultyEasy, 10),
	)

	// 0.5*2 items + 1+1 difficulty + 0 instructions + 0.5*2 priority
	assert.InDelta(t, 4.0, Complexity(o), 1e-9)
}

func TestComplexityComponents(t *testing.T) {
	base := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))

	withExtra := base
	withExtra.Items = append([]OrderItem{itemOf(CategorySide, DifficultyEasy, 5)}, base.Items...)
	assert.Greater(t, Complexity(withExtra), Complexity(base), "more items raise the score")

	harder := orderOf(itemOf(CategoryMain, DifficultyHard, 15))
	assert.InDelta(t, 2.0, Complexity(harder)-Complexity(base), 1e-9, "hard weighs 2 more than easy")

	withNote := base
	withNote.SpecialInstructions = "no onions"
	assert.InDelta(t, 1.5, Complexity(withNote)-Complexity(base), 1e-9)

	urgent := base
	urgent.Priority = PriorityUrgent
	assert.InDelta(t, 1.0, Complexity(urgent)-Complexity(base), 1e-9, "priority 4 vs 2 adds 0.5*2")
}

func TestComplexityEmptyOrder(t *testing.T) {
	o := orderOf()
	o.Priority = PriorityLow

	// Only the priority term contributes.
	assert.InDelta(t, 0.5, Complexity(o), 1e-9)
	assert.GreaterOrEqual(t, Complexity(o), 0.0)
}

func TestEstimatedCompletionMinutes(t *testing.T) {
	o := orderOf(
		itemOf(CategoryMain, DifficultyEasy, 10),
		itemOf(CategorySide, DifficultyEasy, 20),
	)

	// Longest item dominates, plus 20% coordination overhead.
	assert.InDelta(t, 24.0, o.EstimatedCompletionMinutes(), 1e-9)

	assert.Zero(t, orderOf().EstimatedCompletionMinutes())
}
