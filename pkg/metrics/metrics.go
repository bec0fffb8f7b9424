package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuditRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leak_finder",
		Name:      "audit_runs_total",
		Help:      "Audit runs by outcome.",
	}, []string{"status"})

	AuditDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "leak_finder",
		Name:      "audit_duration_seconds",
		Help:      "Wall time of a full audit run, provider call included.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
	})

	LeaksDetected = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "leak_finder",
		Name:      "leaks_detected",
		Help:      "Leak count reported by the most recent audit.",
	})

	PotentialSavings = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "leak_finder",
		Name:      "potential_savings_dollars",
		Help:      "Total monthly savings reported by the most recent audit.",
	})
)
