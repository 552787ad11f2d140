package domain

type RecipeCategory string

const (
	CategoryAppetizer RecipeCategory = "appetizer"
	CategoryMain      RecipeCategory = "main"
	CategorySide      RecipeCategory = "side"
	CategoryDessert   RecipeCategory = "dessert"
	CategoryBeverage  RecipeCategory = "beverage"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Weight returns the contribution of the difficulty to an order's
// complexity score. Unknown values weigh as easy.
func (d Difficulty) Weight() float64 {
	switch d {
	case DifficultyEasy:
		return 1.0
	case DifficultyMedium:
		return 2.0
	case DifficultyHard:
		return 3.0
	default:
		return 1.0
	}
}

// Recipe describes a dish as the kitchen needs to see it: what kind of dish
// it is, how hard it is to make, and how long it is expected to take.
type Recipe struct {
	ID                   string
	Name                 string
	Category             RecipeCategory
	Difficulty           Difficulty
	Allergens            []string
	EstimatedTimeMinutes int
}
