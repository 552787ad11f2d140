package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func activeOrders(n int) []Order {
	orders := make([]Order, n)
	for i := range orders {
		o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
		o.Status = StatusConfirmed
		orders[i] = o
	}
	return orders
}

func TestEvaluateCapacityAtMaximumRejectsRegardlessOfStaff(t *testing.T) {
	orders := activeOrders(10)
	staff := []User{
		staffOf(RoleCook), staffOf(RoleCook), staffOf(RoleCook),
		staffOf(RoleSousChef), staffOf(RoleKitchenManager),
	}

	d := EvaluateCapacity(orders, staff, 10)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectCapacityExceeded, d.Kind)
}

func TestEvaluateCapacityStaffingRatio(t *testing.T) {
	// Seven active orders need at least three staff (1 per 3).
	orders := activeOrders(7)

	short := []User{staffOf(RoleCook), staffOf(RoleCook)}
	d := EvaluateCapacity(orders, short, 50)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectCapacityExceeded, d.Kind)

	enough := append(short, staffOf(RoleLineCook))
	assert.True(t, ValidateCapacity(orders, enough, 50))
}

func TestEvaluateCapacitySeniorSkillMix(t *testing.T) {
	// Three complex orders need at least two senior cooks (1 per 2).
	orders := activeOrders(3)
	for i := range orders {
		orders[i].Items[0].Recipe.Difficulty = DifficultyHard
	}

	junior := []User{staffOf(RoleCook), staffOf(RoleLineCook), staffOf(RoleLineCook)}
	d := EvaluateCapacity(orders, junior, 50)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectCapacityExceeded, d.Kind)

	mixed := []User{staffOf(RoleCook), staffOf(RoleSousChef), staffOf(RoleLineCook)}
	assert.True(t, ValidateCapacity(orders, mixed, 50))
}

func TestEvaluateCapacityIgnoresInactiveOrdersAndStaff(t *testing.T) {
	done := orderOf(itemOf(CategoryMain, DifficultyHard, 15))
	done.Status = StatusCompleted
	pending := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))

	offShift := staffOf(RoleCook)
	offShift.IsActive = false

	snap := SnapshotCapacity([]Order{done, pending}, []User{offShift, staffOf(RoleCook)}, 50)
	assert.Zero(t, snap.ActiveOrders)
	assert.Zero(t, snap.ComplexOrders)
	assert.Equal(t, 1, snap.AvailableStaff)
	assert.Equal(t, 1, snap.SeniorStaff)
}

func TestEvaluateCapacityEmptyKitchenAccepts(t *testing.T) {
	assert.True(t, ValidateCapacity(nil, nil, 50))
}
