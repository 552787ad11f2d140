package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAssignmentGrillTakesMains(t *testing.T) {
	o := orderOf(
		itemOf(CategoryMain, DifficultyEasy, 15),
		itemOf(CategoryMain, DifficultyEasy, 10),
	)
	grill := stationOf("grill-1", StationGrill, 5)

	d := EvaluateAssignment(o, grill, nil)
	assert.True(t, d.Accepted)
	assert.Empty(t, d.Kind)
}

func TestEvaluateAssignmentBeverageRejectsMains(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
	bar := stationOf("bar-1", StationBeverage, 5)

	d := EvaluateAssignment(o, bar, nil)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectStationIncompatible, d.Kind)
}

func TestEvaluateAssignmentPrepTakesAnything(t *testing.T) {
	o := orderOf(
		itemOf(CategoryMain, DifficultyEasy, 10),
		itemOf(CategoryDessert, DifficultyEasy, 5),
		itemOf(CategoryBeverage, DifficultyEasy, 2),
	)
	prep := stationOf("prep-1", StationPrep, 5)

	assert.True(t, CanAssign(o, prep, nil))
}

func TestEvaluateAssignmentUnavailableStation(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
	grill := stationOf("grill-1", StationGrill, 5)
	grill.Status = StationMaintenance

	d := EvaluateAssignment(o, grill, nil)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectStationIncompatible, d.Kind)
}

func TestEvaluateAssignmentStationFull(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))
	grill := stationOf("grill-1", StationGrill, 2)

	busy := []Order{
		orderOf(itemOf(CategoryMain, DifficultyEasy, 10)),
		orderOf(itemOf(CategoryMain, DifficultyEasy, 10)),
	}

	d := EvaluateAssignment(o, grill, busy)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectStationIncompatible, d.Kind)
}

func TestEvaluateAssignmentComplexityCeiling(t *testing.T) {
	heavy := orderOf(
		itemOf(CategoryBeverage, DifficultyHard, 5),
		itemOf(CategoryBeverage, DifficultyHard, 5),
	)
	heavy.SpecialInstructions = "layered pour"
	// 0.5*2 + 3 + 3 + 1.5 + 0.5*2 = 9.5, over the beverage ceiling of 4.
	bar := stationOf("bar-1", StationBeverage, 5)

	d := EvaluateAssignment(heavy, bar, nil)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectStationIncompatible, d.Kind)
}

func TestEvaluateAssignmentWorkloadCeiling(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 60))
	grill := stationOf("grill-1", StationGrill, 10)

	// Six in-flight hour-long orders put the grill at 6*72 = 432 minutes;
	// one more would cross its 450-minute ceiling.
	var busy []Order
	for i := 0; i < 6; i++ {
		busy = append(busy, orderOf(itemOf(CategoryMain, DifficultyEasy, 60)))
	}

	d := EvaluateAssignment(o, grill, busy)
	assert.False(t, d.Accepted)
	assert.Equal(t, RejectStationIncompatible, d.Kind)
}

func TestStationWorkloadSkipsCompleted(t *testing.T) {
	done := orderOf(itemOf(CategoryMain, DifficultyEasy, 60))
	done.Status = StatusCompleted
	active := orderOf(itemOf(CategoryMain, DifficultyEasy, 10))

	assert.InDelta(t, 12.0, StationWorkload([]Order{done, active}), 1e-9)
}

func TestScoreStationPrefersIdleStation(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))

	idle := stationOf("grill-1", StationGrill, 5)
	loaded := stationOf("grill-2", StationGrill, 5)
	loaded.CurrentWorkload = 4

	busy := []Order{orderOf(itemOf(CategoryMain, DifficultyEasy, 60))}

	assert.Greater(t, ScoreStation(o, idle, nil), ScoreStation(o, loaded, busy))
}

func TestScoreStationSpecializationBonus(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))

	grill := stationOf("grill-1", StationGrill, 5)
	prep := stationOf("prep-1", StationPrep, 5)

	// Both are idle and eligible; the grill is specialized for mains.
	assert.Greater(t, ScoreStation(o, grill, nil), ScoreStation(o, prep, nil))
}

func TestFindOptimalStationSkipsIneligible(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))

	stations := []Station{
		stationOf("bar-1", StationBeverage, 5),
		stationOf("dessert-1", StationDessert, 5),
		stationOf("grill-1", StationGrill, 5),
	}

	best := FindOptimalStation(o, stations, nil)
	require.NotNil(t, best)
	assert.Equal(t, "grill-1", best.ID)
	assert.True(t, CanAssign(o, *best, nil))
}

func TestFindOptimalStationNoEligibleStation(t *testing.T) {
	o := orderOf(itemOf(CategoryDessert, DifficultyEasy, 15))

	stations := []Station{
		stationOf("grill-1", StationGrill, 5),
		stationOf("bar-1", StationBeverage, 5),
	}

	assert.Nil(t, FindOptimalStation(o, stations, nil))
}

func TestFindOptimalStationDeterministic(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))

	stations := []Station{
		stationOf("grill-1", StationGrill, 5),
		stationOf("fryer-1", StationFryer, 5),
		stationOf("grill-2", StationGrill, 5),
	}
	loads := map[string][]Order{
		"grill-1": {orderOf(itemOf(CategoryMain, DifficultyEasy, 60))},
	}

	first := FindOptimalStation(o, stations, loads)
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		again := FindOptimalStation(o, stations, loads)
		require.NotNil(t, again)
		assert.Equal(t, first.ID, again.ID)
	}
}

func TestFindOptimalStationTieKeepsInputOrder(t *testing.T) {
	o := orderOf(itemOf(CategoryMain, DifficultyEasy, 15))

	// Two identical idle grills score the same; the earlier one wins.
	stations := []Station{
		stationOf("grill-a", StationGrill, 5),
		stationOf("grill-b", StationGrill, 5),
	}

	best := FindOptimalStation(o, stations, nil)
	require.NotNil(t, best)
	assert.Equal(t, "grill-a", best.ID)
}
