// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

/*
Package metrics registers the Prometheus collectors exported by fpgrowth.

Collectors are created with promauto on the default registry and are served
by the API at /metrics:

	curl http://localhost:8480/metrics

Mining:
  - fpgrowth_build_duration_seconds: FP-tree construction time (histogram)
  - fpgrowth_header_items: frequent items in the last built header table (gauge)
  - fpgrowth_tree_nodes: nodes in the last built tree, root excluded (gauge)
  - fpgrowth_itemsets_emitted_total: item sets returned by enumeration (counter)
  - fpgrowth_runs_total: mining runs by result (counter, label: result)
  - fpgrowth_engine_cache_hits_total / fpgrowth_engine_cache_misses_total

Datasets and storage:
  - fpgrowth_dataset_load_duration_seconds: loader time (histogram, label: source)
  - fpgrowth_run_store_operations_total: Badger operations (counter, labels: operation, result)

HTTP:
  - api_requests_total (labels: method, endpoint, status)
  - api_request_duration_seconds (labels: method, endpoint)
  - api_active_requests
*/
package metrics
