package cascade

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodesTouched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docuvault_cascade_nodes_total",
		Help: "Folders and files whose trash state was written by a cascade.",
	}, []string{"operation", "kind"})

	cascadeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "docuvault_cascade_duration_seconds",
		Help:    "Time spent applying a cascade, by operation and outcome.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "outcome"})
)
