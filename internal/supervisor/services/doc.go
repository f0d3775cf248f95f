// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

/*
Package services adapts fpgrowth components to the suture.Service
interface so they can run under the supervisor tree.

  - HTTPServerService wraps *http.Server. Shutdown is graceful and bounded
    by a timeout.
  - PeriodicService calls a function on a fixed interval. The serve
    command uses it for BadgerDB value log GC and for pruning expired
    engines from the mining cache.

Every service returns ctx.Err() when its context is canceled, and a
wrapped error when the component it manages fails. Suture restarts
failed services with backoff.
*/
package services
