// Package metrics provides the centralized Prometheus metrics registry for
// the match odds service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	AnalysesComputedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "match_odds",
		Name:      "analyses_computed_total",
		Help:      "Total number of match analyses computed",
	})
	AnalysisErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "match_odds",
		Name:      "analysis_errors_total",
		Help:      "Total number of rejected or failed analyses",
	}, []string{"reason"})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "match_odds",
		Name:      "cache_hits_total",
		Help:      "Total number of analyses served from the response cache",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "match_odds",
		Name:      "cache_misses_total",
		Help:      "Total number of analyses computed on a cache miss",
	})
	RateLimitedRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "match_odds",
		Name:      "rate_limited_requests_total",
		Help:      "Total number of requests rejected by the rate limiter",
	})
)

// Gauge metrics
var (
	LastTotalExpectedGoals = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "match_odds",
		Name:      "last_total_expected_goals",
		Help:      "Total expected goals of the most recent analysis",
	})
)

// Histogram metrics
var (
	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "match_odds",
		Name:      "analysis_duration_seconds",
		Help:      "Duration of a full match analysis in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(AnalysesComputedTotal)
		registry.MustRegister(AnalysisErrorsTotal)
		registry.MustRegister(CacheHitsTotal)
		registry.MustRegister(CacheMissesTotal)
		registry.MustRegister(RateLimitedRequestsTotal)

		registry.MustRegister(LastTotalExpectedGoals)

		registry.MustRegister(AnalysisDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordAnalysis records a completed analysis with its duration and totals.
func RecordAnalysis(durationSeconds, totalExpectedGoals float64) {
	AnalysesComputedTotal.Inc()
	AnalysisDuration.Observe(durationSeconds)
	LastTotalExpectedGoals.Set(totalExpectedGoals)
}

// RecordAnalysisError records a rejected or failed analysis.
func RecordAnalysisError(reason string) {
	AnalysisErrorsTotal.WithLabelValues(reason).Inc()
}

// RecordCacheHit records an analysis served from the response cache.
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records an analysis computed on a cache miss.
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// RecordRateLimited records a request rejected by the rate limiter.
func RecordRateLimited() {
	RateLimitedRequestsTotal.Inc()
}
