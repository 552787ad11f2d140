package domain

// Test fixtures shared across the domain tests. Builders return plain values
// so individual tests can tweak fields without touching each other.

func itemOf(category RecipeCategory, difficulty Difficulty, minutes int) OrderItem {
	return OrderItem{
		Recipe: Recipe{
			ID:                   "r-" + string(category),
			Name:                 string(category) + " dish",
			Category:             category,
			Difficulty:           difficulty,
			EstimatedTimeMinutes: minutes,
		},
		Quantity: 1,
	}
}

func orderOf(items ...OrderItem) Order {
	return Order{
		ID:       1,
		Number:   "ORD-100",
		Items:    items,
		Status:   StatusPending,
		Priority: PriorityNormal,
	}
}

func stationOf(id string, t StationType, capacity int) Station {
	return Station{
		ID:       id,
		Name:     id,
		Type:     t,
		Status:   StationAvailable,
		Capacity: capacity,
	}
}

func staffOf(role UserRole) User {
	return User{
		ID:       "u-" + string(role),
		Name:     string(role),
		Role:     role,
		IsActive: true,
	}
}
