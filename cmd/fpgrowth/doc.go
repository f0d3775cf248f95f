// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

/*
Command fpgrowth mines frequent item sets from transaction data.

It has two subcommands.

mine builds an FP-tree from a dataset and prints the item header table,
the conditional pattern bases and the frequent item sets:

	fpgrowth mine -input orders.csv -min-support 3 -min-item-count 2
	fpgrowth mine -input baskets.json -output json
	fpgrowth mine -duckdb-dsn analytics.db \
	    -duckdb-query "SELECT order_id, sku FROM order_lines"
	fpgrowth mine -tree          # built-in ten-transaction sample

Without -input or a DuckDB source (flag or config), the built-in sample
dataset is mined.

serve runs the HTTP API under a supervisor tree until SIGINT or SIGTERM:

	fpgrowth serve
	fpgrowth serve -addr 127.0.0.1:9000

Endpoints:

	GET    /api/v1/health
	POST   /api/v1/mine
	GET    /api/v1/runs?limit=N
	GET    /api/v1/runs/{id}
	DELETE /api/v1/runs/{id}
	GET    /metrics

Both subcommands read defaults from config.yaml (or CONFIG_PATH) and
environment variables. See package config for the full list. Flags
override both.

Exit codes: 0 on success, 1 on runtime errors, 2 on usage errors.
*/
package main
