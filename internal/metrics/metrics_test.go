// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// histogramSnapshot reads the sample count and sum of one histogram series.
func histogramSnapshot(t *testing.T, vec *prometheus.HistogramVec, label string) (uint64, float64) {
	t.Helper()
	obs, err := vec.GetMetricWithLabelValues(label)
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues(%q) error = %v", label, err)
	}
	var m io_prometheus_client.Metric
	if err := obs.(prometheus.Histogram).Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum()
}

func TestRecordDatasetLoad(t *testing.T) {
	const source = "histogram-test"

	RecordDatasetLoad(source, 250*time.Millisecond)
	RecordDatasetLoad(source, 750*time.Millisecond)

	count, sum := histogramSnapshot(t, DatasetLoadDuration, source)
	if count != 2 {
		t.Errorf("sample count = %d, want 2", count)
	}
	if sum < 0.99 || sum > 1.01 {
		t.Errorf("sample sum = %v, want 1.0", sum)
	}
}

func TestRecordBuild(t *testing.T) {
	RecordBuild(2*time.Millisecond, 6, 7)

	if got := testutil.ToFloat64(HeaderItems); got != 6 {
		t.Errorf("HeaderItems = %v, want 6", got)
	}
	if got := testutil.ToFloat64(TreeNodes); got != 7 {
		t.Errorf("TreeNodes = %v, want 7", got)
	}
	if got := testutil.CollectAndCount(BuildDuration); got != 1 {
		t.Errorf("BuildDuration series = %d, want 1", got)
	}
}

func TestRecordRun(t *testing.T) {
	tests := []struct {
		name     string
		result   string
		itemSets int
	}{
		{"success with item sets", "success", 19},
		{"success without item sets", "success", 0},
		{"invalid request", "invalid", 0},
		{"engine failure", "error", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runsBefore := testutil.ToFloat64(RunsTotal.WithLabelValues(tt.result))
			emittedBefore := testutil.ToFloat64(ItemSetsEmitted)

			RecordRun(tt.result, tt.itemSets)

			if got := testutil.ToFloat64(RunsTotal.WithLabelValues(tt.result)) - runsBefore; got != 1 {
				t.Errorf("runs delta = %v, want 1", got)
			}
			if got := testutil.ToFloat64(ItemSetsEmitted) - emittedBefore; got != float64(tt.itemSets) {
				t.Errorf("emitted delta = %v, want %d", got, tt.itemSets)
			}
		})
	}
}

func TestRecordEngineCache(t *testing.T) {
	hits := testutil.ToFloat64(EngineCacheHits)
	misses := testutil.ToFloat64(EngineCacheMisses)

	RecordEngineCache(true)
	RecordEngineCache(false)
	RecordEngineCache(false)

	if got := testutil.ToFloat64(EngineCacheHits) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(EngineCacheMisses) - misses; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestRecordStoreOperation(t *testing.T) {
	ok := testutil.ToFloat64(RunStoreOperations.WithLabelValues("save", "success"))
	failed := testutil.ToFloat64(RunStoreOperations.WithLabelValues("save", "error"))

	RecordStoreOperation("save", nil)
	RecordStoreOperation("save", errors.New("disk full"))

	if got := testutil.ToFloat64(RunStoreOperations.WithLabelValues("save", "success")) - ok; got != 1 {
		t.Errorf("success delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(RunStoreOperations.WithLabelValues("save", "error")) - failed; got != 1 {
		t.Errorf("error delta = %v, want 1", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/mine", "200"))

	RecordAPIRequest("POST", "/api/v1/mine", "200", 15*time.Millisecond)
	RecordDatasetLoad("json", time.Millisecond)

	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/mine", "200")) - before; got != 1 {
		t.Errorf("requests delta = %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("active delta = %v, want 2", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active = %v, want %v", got, before)
	}
}
