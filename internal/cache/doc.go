// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry time-to-live.
//
// The mining service keeps built FP-growth engines in an LRU keyed by a
// fingerprint of the input, so repeated requests over the same transactions
// skip tree construction:
//
//	engines := cache.NewLRU[string, *fpgrowth.Engine[string]](32, 10*time.Minute)
//	if eng, ok := engines.Get(key); ok {
//	    return eng
//	}
//	engines.Add(key, built)
package cache
