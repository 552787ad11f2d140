package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DecisionsTotal counts evaluation outcomes per operation and reject kind.
	// Accepted decisions carry an empty kind label.
	DecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brigade_decisions_total",
		Help: "The total number of workflow evaluation decisions",
	}, []string{"operation", "outcome", "kind"})

	// StationScore observes the score of the station picked for each order.
	StationScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "brigade_best_station_score",
		Help:    "Score of the station selected for an order",
		Buckets: prometheus.LinearBuckets(40, 10, 10),
	})

	// ActiveOrders tracks the active-order count seen at the last capacity check.
	ActiveOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "brigade_active_orders",
		Help: "Active (confirmed or preparing) orders at the last capacity evaluation",
	})
)

// ObserveDecision records an evaluation outcome.
func ObserveDecision(operation string, accepted bool, kind string) {
	outcome := "accepted"
	if !accepted {
		outcome = "rejected"
	}
	DecisionsTotal.WithLabelValues(operation, outcome, kind).Inc()
}
