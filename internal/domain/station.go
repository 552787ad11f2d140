package domain

type StationType string

const (
	StationGrill    StationType = "grill"
	StationPrep     StationType = "prep"
	StationFryer    StationType = "fryer"
	StationSalad    StationType = "salad"
	StationDessert  StationType = "dessert"
	StationBeverage StationType = "beverage"
)

type StationStatus string

const (
	StationAvailable   StationStatus = "available"
	StationBusy        StationStatus = "busy"
	StationMaintenance StationStatus = "maintenance"
	StationOffline     StationStatus = "offline"
)

// Station is a physical kitchen work area. CurrentWorkload tracks how many
// orders the station is nominally carrying; keeping it at or under Capacity
// is the assignment engine's job, not a stored invariant.
type Station struct {
	ID              string
	Name            string
	Type            StationType
	Status          StationStatus
	Capacity        int
	CurrentWorkload int
}

// stationMaxComplexity caps the complexity score of an order a station type
// can take on.
var stationMaxComplexity = map[StationType]float64{
	StationPrep:     5,
	StationSalad:    6,
	StationBeverage: 4,
	StationFryer:    7,
	StationGrill:    8,
	StationDessert:  9,
}

// stationMaxWorkload caps the total estimated minutes of in-flight orders
// per station type.
var stationMaxWorkload = map[StationType]float64{
	StationPrep:     480,
	StationSalad:    360,
	StationBeverage: 300,
	StationFryer:    420,
	StationGrill:    450,
	StationDessert:  400,
}

// stationCategories maps a station type to the recipe categories it can
// prepare. Prep has no entry: it handles every category.
var stationCategories = map[StationType][]RecipeCategory{
	StationGrill:    {CategoryMain},
	StationFryer:    {CategoryMain, CategoryAppetizer, CategorySide},
	StationSalad:    {CategoryAppetizer, CategorySide},
	StationDessert:  {CategoryDessert},
	StationBeverage: {CategoryBeverage},
}

// stationSpecialties is the subset of compatible categories a station is
// considered purpose-built for; matching the first item of an order earns a
// scoring bonus. Prep is a generalist and has no specialty.
var stationSpecialties = map[StationType][]RecipeCategory{
	StationGrill:    {CategoryMain},
	StationSalad:    {CategoryAppetizer, CategorySide},
	StationDessert:  {CategoryDessert},
	StationBeverage: {CategoryBeverage},
	StationFryer:    {CategoryMain, CategoryAppetizer},
}

// MaxComplexity returns the complexity ceiling for the station type.
func (t StationType) MaxComplexity() float64 {
	return stationMaxComplexity[t]
}

// MaxWorkloadMinutes returns the workload ceiling in minutes for the station type.
func (t StationType) MaxWorkloadMinutes() float64 {
	return stationMaxWorkload[t]
}

// CanPrepare reports whether the station type can prepare recipes of the
// given category.
func (t StationType) CanPrepare(category RecipeCategory) bool {
	if t == StationPrep {
		return true
	}
	for _, c := range stationCategories[t] {
		if c == category {
			return true
		}
	}
	return false
}

// IsSpecializedFor reports whether the station type is purpose-built for the
// given category.
func (t StationType) IsSpecializedFor(category RecipeCategory) bool {
	for _, c := range stationSpecialties[t] {
		if c == category {
			return true
		}
	}
	return false
}
