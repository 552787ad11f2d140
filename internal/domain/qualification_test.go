package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateStaffAssignmentExpensiveOrderNeedsSeniorStaff(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
	o.TotalAmount = 150
	grill := stationOf("grill-1", StationGrill, 5)

	d := EvaluateStaffAssignment(staffOf(RoleLineCook), grill, o, nil)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectStaffUnqualified, d.Kind)

	assert.True(t, CanStaffHandle(staffOf(RoleSousChef), grill, o))
}

func TestEvaluateStaffAssignmentDietaryNeedsCook(t *testing.T) {
	o := orderOf(itemOf(CategorySide, DifficultyEasy, 10))
	o.Items[0].Recipe.Allergens = []string{"peanuts"}
	salad := stationOf("salad-1", StationSalad, 5)

	d := EvaluateStaffAssignment(staffOf(RoleLineCook), salad, o, nil)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectStaffUnqualified, d.Kind)

	assert.True(t, CanStaffHandle(staffOf(RoleCook), salad, o))
}

func TestEvaluateStaffAssignmentDietaryFromInstructions(t *testing.T) {
	o := orderOf(itemOf(CategorySide, DifficultyEasy, 10))
	o.SpecialInstructions = "Gluten free please"
	salad := stationOf("salad-1", StationSalad, 5)

	assert.True(t, o.HasSpecialDietaryRequirements())
	assert.False(t, CanStaffHandle(staffOf(RoleLineCook), salad, o))
}

func TestEvaluateStaffAssignmentExperienceCeiling(t *testing.T) {
	heavy := orderOf(
		itemOf(CategoryMain, DifficultyHard, 30),
		itemOf(CategoryMain, DifficultyHard, 25),
	)
	heavy.Priority = PriorityUrgent
	// 0.5*2 + 3 + 3 + 0 + 0.5*4 = 9, above the line cook ceiling of 5.
	grill := stationOf("grill-1", StationGrill, 5)

	d := EvaluateStaffAssignment(staffOf(RoleLineCook), grill, heavy, nil)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectStaffUnqualified, d.Kind)

	assert.True(t, CanStaffHandle(staffOf(RoleSousChef), grill, heavy))
}

func TestEvaluateStaffAssignmentInactiveStaff(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
	grill := stationOf("grill-1", StationGrill, 5)

	inactive := staffOf(RoleCook)
	inactive.IsActive = false

	d := EvaluateStaffAssignment(inactive, grill, o, nil)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectStaffUnqualified, d.Kind)
}

func TestDefaultCapabilities(t *testing.T) {
	tests := []struct {
		role    UserRole
		station StationType
		want    bool
	}{
		{RoleDishwasher, StationPrep, false},
		{RolePrepCook, StationPrep, true},
		{RolePrepCook, StationGrill, false},
		{RoleLineCook, StationGrill, true},
		{RoleLineCook, StationDessert, false},
		{RoleCook, StationDessert, true},
		{RoleKitchenManager, StationBeverage, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultCapabilities(tt.role, tt.station),
			"%s at %s", tt.role, tt.station)
	}
}

func TestEvaluateStaffAssignmentCustomCapability(t *testing.T) {
	o := orderOf(itemOf(CategoryDessert, DifficultyEasy, 10))
	dessert := stationOf("dessert-1", StationDessert, 5)

	// A roster that cross-trains line cooks on dessert overrides the default.
	crossTrained := func(role UserRole, station StationType) bool {
		return role == RoleLineCook && station == StationDessert
	}

	d := EvaluateStaffAssignment(staffOf(RoleLineCook), dessert, o, crossTrained)
	assert.True(t, d.Accepted)
}
