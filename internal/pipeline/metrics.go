package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mattin",
		Subsystem: "pipeline",
		Name:      "documents_processed_total",
		Help:      "Documents processed by terminal status.",
	}, []string{"status"})

	stageFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mattin",
		Subsystem: "pipeline",
		Name:      "stage_soft_failures_total",
		Help:      "Recovered per-stage failures.",
	}, []string{"stage"})
)
