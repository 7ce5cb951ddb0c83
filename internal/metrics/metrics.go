package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProjectionRuns counts completed schedule projections by serving surface
	ProjectionRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "projection_runs_total",
			Help: "Completed payment schedule projections",
		},
		[]string{"source"},
	)

	// ProjectionDuration observes how long a full projection takes
	ProjectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "projection_duration_seconds",
			Help:    "Duration of payment schedule projections",
			Buckets: prometheus.DefBuckets,
		},
	)

	// BalloonSolves counts balloon-payment solves by regime and outcome
	BalloonSolves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "balloon_solves_total",
			Help: "Balloon payment solves",
		},
		[]string{"regime", "feasible"},
	)

	// StreamMessages counts recompute requests served over the websocket stream
	StreamMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "projection_stream_messages_total",
			Help: "Projection recompute messages served over websocket",
		},
	)
)
