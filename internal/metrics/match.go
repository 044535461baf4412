package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Match engine Prometheus metrics.
var (
	matchDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fuzzle",
			Name:      "match_decisions_total",
			Help:      "Total number of match decisions",
		},
		[]string{"op", "matched"},
	)

	clausesBuiltTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fuzzle",
			Name:      "clauses_built_total",
			Help:      "Total number of SQL clauses compiled",
		},
		[]string{"op"},
	)

	recordSearchScanned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fuzzle",
			Name:      "record_search_scanned",
			Help:      "Records scanned per search request",
			Buckets:   []float64{1, 10, 50, 100, 500, 1000, 5000},
		},
	)

	recordSearchMatched = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fuzzle",
			Name:      "record_search_matched",
			Help:      "Records matched per search request",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
		},
	)
)

var matchMetricsRegistered bool

// RegisterMatchMetrics registers Prometheus match metrics. Must be called once from main.
func RegisterMatchMetrics() {
	if matchMetricsRegistered {
		return
	}
	prometheus.MustRegister(matchDecisionsTotal)
	prometheus.MustRegister(clausesBuiltTotal)
	prometheus.MustRegister(recordSearchScanned)
	prometheus.MustRegister(recordSearchMatched)
	matchMetricsRegistered = true
}

// ObserveMatchDecision counts a match evaluation outcome.
func ObserveMatchDecision(op string, matched bool) {
	matchDecisionsTotal.WithLabelValues(op, strconv.FormatBool(matched)).Inc()
}

// ObserveClauseBuilt counts a compiled clause.
func ObserveClauseBuilt(op string) {
	clausesBuiltTotal.WithLabelValues(op).Inc()
}

// ObserveRecordSearch records per-request scan and match volumes.
func ObserveRecordSearch(scanned, matched int) {
	recordSearchScanned.Observe(float64(scanned))
	recordSearchMatched.Observe(float64(matched))
}
