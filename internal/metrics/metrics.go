// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Mining Metrics
	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fpgrowth_build_duration_seconds",
			Help:    "Duration of FP-tree construction in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	HeaderItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fpgrowth_header_items",
			Help: "Number of frequent items in the most recently built header table",
		},
	)

	TreeNodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fpgrowth_tree_nodes",
			Help: "Number of non-root nodes in the most recently built FP-tree",
		},
	)

	ItemSetsEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fpgrowth_itemsets_emitted_total",
			Help: "Total number of frequent item sets returned by enumeration",
		},
	)

	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpgrowth_runs_total",
			Help: "Total number of mining runs",
		},
		[]string{"result"}, // "success", "invalid", "error"
	)

	EngineCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fpgrowth_engine_cache_hits_total",
			Help: "Total number of mining runs served by an already built engine",
		},
	)

	EngineCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fpgrowth_engine_cache_misses_total",
			Help: "Total number of mining runs that built a new engine",
		},
	)

	// Dataset and Store Metrics
	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fpgrowth_dataset_load_duration_seconds",
			Help:    "Duration of item-set loading in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"}, // "json", "text", "duckdb"
	)

	RunStoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpgrowth_run_store_operations_total",
			Help: "Total number of run store operations",
		},
		[]string{"operation", "result"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)
)

// RecordBuild records the outcome of one FP-tree construction.
func RecordBuild(duration time.Duration, headerItems, nodes int) {
	BuildDuration.Observe(duration.Seconds())
	HeaderItems.Set(float64(headerItems))
	TreeNodes.Set(float64(nodes))
}

// RecordRun records a finished mining run.
func RecordRun(result string, itemSets int) {
	RunsTotal.WithLabelValues(result).Inc()
	if itemSets > 0 {
		ItemSetsEmitted.Add(float64(itemSets))
	}
}

// RecordEngineCache records an engine cache lookup.
func RecordEngineCache(hit bool) {
	if hit {
		EngineCacheHits.Inc()
	} else {
		EngineCacheMisses.Inc()
	}
}

// RecordDatasetLoad records how long a loader took.
func RecordDatasetLoad(source string, duration time.Duration) {
	DatasetLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordStoreOperation records a run store operation.
func RecordStoreOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	RunStoreOperations.WithLabelValues(operation, result).Inc()
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
