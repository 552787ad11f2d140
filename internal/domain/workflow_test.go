package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateStatusChangeHappyPath(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
	o.Status = StatusPending

	d := EvaluateStatusChange(o, StatusConfirmed, staffOf(RoleSousChef))
	assert.True(t, d.Accepted)
}

func TestEvaluateStatusChangeInvalidTransition(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
	o.Status = StatusPending

	d := EvaluateStatusChange(o, StatusReady, staffOf(RoleKitchenManager))
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectInvalidTransition, d.Kind)
}

func TestEvaluateStatusChangeTerminalOrdersFrozen(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
	o.Status = StatusCancelled

	for _, target := range allStatuses {
		d := EvaluateStatusChange(o, target, staffOf(RoleAdmin))
		assert.False(t, d.Accepted, "cancelled -> %s", target)
		assert.Equal(t, RejectInvalidTransition, d.Kind)
	}
}

func TestEvaluateStatusChangeEmptyOrderCannotConfirm(t *testing.T) {
	o := orderOf()
	o.Status = StatusPending

	d := EvaluateStatusChange(o, StatusConfirmed, staffOf(RoleKitchenManager))
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectGuardViolation, d.Kind)
}

func TestEvaluateStatusChangeNeedsStationBeforePreparing(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
	o.Status = StatusConfirmed

	d := EvaluateStatusChange(o, StatusPreparing, staffOf(RoleLineCook))
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectGuardViolation, d.Kind)

	station := "grill-1"
	o.AssignedStationID = &station
	assert.True(t, EvaluateStatusChange(o, StatusPreparing, staffOf(RoleLineCook)).Accepted)
}

func TestEvaluateStatusChangeRolePermissions(t *testing.T) {
	station := "grill-1"
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
	o.Status = StatusPreparing
	o.AssignedStationID = &station

	d := EvaluateStatusChange(o, StatusReady, staffOf(RoleDishwasher))
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectUnauthorized, d.Kind)

	assert.True(t, EvaluateStatusChange(o, StatusReady, staffOf(RoleLineCook)).Accepted)
}

func TestEvaluateStatusChangeInactiveUser(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
	o.Status = StatusPending

	offShift := staffOf(RoleKitchenManager)
	offShift.IsActive = false

	d := EvaluateStatusChange(o, StatusConfirmed, offShift)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectUnauthorized, d.Kind)
}

func TestEvaluateStatusChangeGuardBeatsPermission(t *testing.T) {
	// An empty order confirmed by an unauthorized role reports the guard
	// violation, not the permission failure.
	o := orderOf()
	o.Status = StatusPending

	d := EvaluateStatusChange(o, StatusConfirmed, staffOf(RoleDishwasher))
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectGuardViolation, d.Kind)
}

func TestEvaluateStatusChangeCancellation(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
	o.Status = StatusConfirmed

	assert.False(t, EvaluateStatusChange(o, StatusCancelled, staffOf(RoleLineCook)).Accepted)
	assert.True(t, EvaluateStatusChange(o, StatusCancelled, staffOf(RoleSousChef)).Accepted)
}
