// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailhead_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trailhead_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trailhead_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailhead_recommend_requests_total",
			Help: "Total number of recommendation passes",
		},
		[]string{"status"}, // "success", "error"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trailhead_recommend_duration_seconds",
			Help:    "Time spent gathering inputs and ranking trails",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trailhead_recommend_results",
			Help:    "Number of trails returned per recommendation pass",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	RecommendReasons = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailhead_recommend_reasons_total",
			Help: "Reasons attached to returned recommendations",
		},
		[]string{"reason"},
	)

	// Weather Metrics
	WeatherFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailhead_weather_fetches_total",
			Help: "Weather provider fetch attempts by outcome",
		},
		[]string{"outcome"}, // "success", "error", "circuit_open", "rate_limited"
	)

	WeatherFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trailhead_weather_fetch_duration_seconds",
			Help:    "Weather provider request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	WeatherLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trailhead_weather_last_success_timestamp",
			Help: "Unix timestamp of the last successful weather fetch",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trailhead_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailhead_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Catalog Metrics
	CatalogTrails = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trailhead_catalog_trails",
			Help: "Number of trails in the loaded catalog",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailhead_catalog_reloads_total",
			Help: "Catalog reload attempts by outcome",
		},
		[]string{"outcome"},
	)

	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trailhead_store_operation_duration_seconds",
			Help:    "Duration of user store operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"operation"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailhead_store_errors_total",
			Help: "User store operation errors",
		},
		[]string{"operation"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation pass and the reasons
// carried by its results.
func RecordRecommendation(duration time.Duration, results int, reasons []string, err error) {
	RecommendDuration.Observe(duration.Seconds())
	if err != nil {
		RecommendRequests.WithLabelValues("error").Inc()
		return
	}
	RecommendRequests.WithLabelValues("success").Inc()
	RecommendResults.Observe(float64(results))
	for _, r := range reasons {
		RecommendReasons.WithLabelValues(r).Inc()
	}
}

// RecordWeatherFetch records a weather provider call.
func RecordWeatherFetch(outcome string, duration time.Duration) {
	WeatherFetches.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		WeatherFetchDuration.Observe(duration.Seconds())
		WeatherLastSuccess.Set(float64(time.Now().Unix()))
	}
}

// RecordCircuitBreakerTransition updates the state gauge and transition counter.
// state is 0 for closed, 1 for half-open and 2 for open.
func RecordCircuitBreakerTransition(name, from, to string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordCatalogLoad records a catalog (re)load.
func RecordCatalogLoad(trails int, err error) {
	if err != nil {
		CatalogReloads.WithLabelValues("error").Inc()
		return
	}
	CatalogReloads.WithLabelValues("success").Inc()
	CatalogTrails.Set(float64(trails))
}

// RecordStoreOperation records a user store operation.
func RecordStoreOperation(operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		StoreErrors.WithLabelValues(operation).Inc()
	}
}
