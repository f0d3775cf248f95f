// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

/*
Package api exposes the mining service over HTTP using the chi router.

Endpoints:

	POST   /api/v1/mine        mine a request body {item_sets, min_support, min_item_count}
	GET    /api/v1/runs        list persisted runs, newest first (?limit=N, default 20, max 500)
	GET    /api/v1/runs/{id}   fetch one persisted run
	DELETE /api/v1/runs/{id}   delete one persisted run
	GET    /api/v1/health      liveness and build information
	GET    /metrics            Prometheus exposition

Every JSON response uses models.APIResponse. Errors carry a code:
VALIDATION_ERROR (400), NOT_FOUND (404), SERVICE_UNAVAILABLE (503) when run
persistence is disabled, and INTERNAL_ERROR (500).

Middleware, outermost first: request id with logging correlation, real IP,
panic recovery, CORS (go-chi/cors), per-IP rate limiting (go-chi/httprate),
security headers and Prometheus request metrics.
*/
package api
