package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Mehrdad93/baybe/internal/lookup"
)

// Lookup Prometheus metrics.
var (
	LookupRowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "baybe",
			Name:      "lookup_rows_total",
			Help:      "Total number of resolved query rows by outcome",
		},
		[]string{"outcome"}, // exact, ambiguous, imputed, computed, fake
	)

	LookupFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "baybe",
			Name:      "lookup_failures_total",
			Help:      "Total number of failed batch resolutions",
		},
		[]string{"reason"}, // configuration, invariant, miss, other
	)

	LookupBatchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "baybe",
			Name:      "lookup_batches_total",
			Help:      "Total number of batch resolutions attempted",
		},
	)
)

var lookupMetricsRegistered bool

// RegisterLookupMetrics registers Prometheus lookup metrics. Must be called once from main.
func RegisterLookupMetrics() {
	if lookupMetricsRegistered {
		return
	}
	prometheus.MustRegister(LookupRowsTotal)
	prometheus.MustRegister(LookupFailuresTotal)
	prometheus.MustRegister(LookupBatchesTotal)
	lookupMetricsRegistered = true
}

// ObserveSummary records the per-outcome row counts of a resolved batch.
func ObserveSummary(sum lookup.Summary) {
	LookupBatchesTotal.Inc()
	LookupRowsTotal.WithLabelValues("exact").Add(float64(sum.Exact))
	LookupRowsTotal.WithLabelValues("ambiguous").Add(float64(sum.Ambiguous))
	LookupRowsTotal.WithLabelValues("imputed").Add(float64(sum.Imputed))
	LookupRowsTotal.WithLabelValues("computed").Add(float64(sum.Computed))
	LookupRowsTotal.WithLabelValues("fake").Add(float64(sum.Fake))
}
