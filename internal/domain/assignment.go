package domain

// StationWorkload sums the estimated completion minutes of every order the
// station is still working on. Completed orders no longer occupy the station.
func StationWorkload(current []Order) float64 {
	total := 0.0
	for _, o := range current {
		if o.Status == StatusCompleted {
			continue
		}
		total += o.EstimatedCompletionMinutes()
	}
	return total
}

// EvaluateAssignment checks whether a station can take an order given its
// current workload. All five rules must hold; the first violated rule names
// the rejection.
func EvaluateAssignment(order Order, station Station, current []Order) Decision {
	if station.Status != StationAvailable {
		return Reject(RejectStationIncompatible,
			"station %s is %s", station.Name, station.Status)
	}

	if len(current) >= station.Capacity {
		return Reject(RejectStationIncompatible,
			"station %s is at capacity (%d orders)", station.Name, station.Capacity)
	}

	for _, item := range order.Items {
		if !station.Type.CanPrepare(item.Recipe.Category) {
			return Reject(RejectStationIncompatible,
				"station %s cannot prepare %s recipes", station.Name, item.Recipe.Category)
		}
	}

	complexity := Complexity(order)
	if complexity > station.Type.MaxComplexity() {
		return Reject(RejectStationIncompatible,
			"order complexity %.1f exceeds station %s limit %.1f",
			complexity, station.Name, station.Type.MaxComplexity())
	}

	projected := StationWorkload(current) + order.EstimatedCompletionMinutes()
	if projected > station.Type.MaxWorkloadMinutes() {
		return Reject(RejectStationIncompatible,
			"projected workload %.0f min exceeds station %s limit %.0f min",
			projected, station.Name, station.Type.MaxWorkloadMinutes())
	}

	return Accept()
}

// CanAssign reports whether the station is eligible for the order.
func CanAssign(order Order, station Station, current []Order) bool {
	return EvaluateAssignment(order, station, current).Accepted
}

// ScoreStation rates an eligible station for an order. Higher is better.
// Lightly loaded stations win; a station specialized for the order's first
// item gets a bonus; a station close to its complexity ceiling is penalized.
func ScoreStation(order Order, station Station, current []Order) float64 {
	score := 100.0

	maxWorkload := station.Type.MaxWorkloadMinutes()
	if maxWorkload > 0 {
		score -= 30 * (StationWorkload(current) / maxWorkload)
	}

	if station.Capacity > 0 {
		score += 20 * (1 - float64(station.CurrentWorkload)/float64(station.Capacity))
	}

	if len(order.Items) > 0 && station.Type.IsSpecializedFor(order.Items[0].Recipe.Category) {
		score += 20
	}

	if Complexity(order) > 0.8*station.Type.MaxComplexity() {
		score -= 15
	}

	return score
}

// FindOptimalStation picks the best eligible station for the order, or nil
// when no station qualifies. Ties keep the earliest station in input order,
// so identical inputs always produce identical picks.
func FindOptimalStation(order Order, stations []Station, ordersByStation map[string][]Order) *Station {
	var best *Station
	bestScore := 0.0

	for i := range stations {
		station := stations[i]
		current := ordersByStation[station.ID]

		if !CanAssign(order, station, current) {
			continue
		}

		score := ScoreStation(order, station, current)
		if best == nil || score > bestScore {
			best = &stations[i]
			bestScore = score
		}
	}

	return best
}
