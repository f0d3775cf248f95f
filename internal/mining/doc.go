// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

/*
Package mining runs FP-growth over string items on behalf of the CLI and the
HTTP API.

A Service validates a Request, obtains a built fpgrowth.Engine and turns the
engine's header table, conditional pattern bases and enumerated item sets
into a models.Run. Built engines are kept in an LRU keyed by a SHA-256
fingerprint of the item sets and min_support, so asking the same data for a
different min_item_count reuses the tree instead of rebuilding it. When a
RunStore is configured, every run is persisted and can be listed later.

	svc := mining.NewService(mining.Config{EngineCacheSize: 32}, runStore)
	run, err := svc.Mine(ctx, mining.Request{
	    ItemSets:     sets,
	    MinSupport:   3,
	    MinItemCount: 2,
	})

Item sets in a run are produced by the combinatorial enumeration of
fpgrowth.Engine.FindFrequentItemSets and are not re-counted against the input.
*/
package mining
