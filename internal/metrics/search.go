package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search outcome labels.
const (
	SearchOutcomeStrict        = "strict"
	SearchOutcomeFallbackFuzzy = "fallback_fuzzy"
	SearchOutcomeFallbackBroad = "fallback_broad"
	SearchOutcomeEmpty         = "empty"
	SearchOutcomeError         = "error"
)

var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradepost",
			Name:      "searches_total",
			Help:      "Total searches by outcome path",
		},
		[]string{"outcome"},
	)

	searchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tradepost",
			Name:      "search_duration_seconds",
			Help:      "End-to-end search duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	storeErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tradepost",
			Name:      "store_errors_total",
			Help:      "Listing store failures absorbed by the search path",
		},
	)
)

var registerSearchOnce sync.Once

// RegisterSearchMetrics registers search subsystem metrics explicitly (no init).
func RegisterSearchMetrics() {
	registerSearchOnce.Do(func() {
		prometheus.MustRegister(searchesTotal)
		prometheus.MustRegister(searchDuration)
		prometheus.MustRegister(storeErrorsTotal)
	})
}

// ObserveSearch records one search with its outcome path and duration.
func ObserveSearch(outcome string, d time.Duration) {
	searchesTotal.WithLabelValues(outcome).Inc()
	searchDuration.Observe(d.Seconds())
}

// IncStoreError counts an absorbed listing store failure.
func IncStoreError() {
	storeErrorsTotal.Inc()
}
