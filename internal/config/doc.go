// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

/*
Package config loads fpgrowth settings from layered sources using Koanf v2.

Sources, lowest priority first:

 1. Built-in defaults (defaultConfig)
 2. YAML file: $CONFIG_PATH, else the first of DefaultConfigPaths that exists
 3. Environment variables listed in envMappings

Example config.yaml:

	mining:
	  min_support: 3
	  min_item_count: 2
	dataset:
	  path: ./baskets.txt
	  format: text
	store:
	  enabled: true
	  path: /data/runs
	server:
	  port: 8480
	  cors_origins: ["https://example.com"]
	logging:
	  level: debug

Environment variables (selection):

	MIN_SUPPORT, MIN_ITEM_COUNT, ENGINE_CACHE_SIZE, ENGINE_CACHE_TTL
	DATASET_PATH, DATASET_FORMAT, DUCKDB_DSN, DUCKDB_QUERY
	STORE_ENABLED, STORE_PATH, STORE_SYNC_WRITES, STORE_GC_INTERVAL
	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT
	CORS_ORIGINS (comma separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Validate is called by Load; constraints are declared as validator struct tags.
*/
package config
