// Package metrics declares the Prometheus instruments for the planner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlanSolvesTotal counts solve attempts by terminal outcome
	// (solved, infeasible, unbounded, error).
	PlanSolvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dietplan_solves_total",
		Help: "Total number of meal-plan solve attempts by outcome",
	}, []string{"outcome"})

	// SolveDuration observes wall-clock time of the full formulate-and-solve
	// path.
	SolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dietplan_solve_duration_seconds",
		Help:    "Duration of meal-plan formulation and solving",
		Buckets: prometheus.DefBuckets,
	})
)
