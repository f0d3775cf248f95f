// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

// Package fpgrowth mines frequent item co-occurrence patterns with an FP-tree.
//
// # Pipeline
//
// Building an engine runs three stages over the input item sets:
//
//  1. Header table: items are counted once per item set, items below the
//     minimum support are dropped, and survivors are ranked by descending
//     frequency.
//  2. FP-tree: every item set is filtered to ranked items, sorted by rank and
//     inserted into a prefix tree whose nodes carry path support counts.
//     New nodes are registered with their item header.
//  3. Conditional pattern bases: for every ranked item, least frequent first,
//     ancestor supports are accumulated over all of its tree nodes and
//     filtered against the minimum support a second time.
//
// Frequent item sets are then enumerated by combining each item with every
// size-eligible subset of its conditional pattern base.
//
// # Enumeration Semantics
//
// Membership in a conditional pattern base is treated as sufficient evidence
// of co-occurrence. Joint support of a specific combination is not verified,
// so the result is a superset of the strictly frequent item sets.
//
// # Usage
//
//	engine, err := fpgrowth.New[string](3)
//	if err != nil {
//	    return err
//	}
//	if err := engine.Build(itemSets); err != nil {
//	    return err
//	}
//	sets, err := engine.FindFrequentItemSets(2)
//
// # Determinism
//
// Items of equal frequency are ranked by their first appearance in the input.
// Node pointers are kept in registration order and conditional pattern base
// keys in accumulation order, so identical inputs produce identical output.
//
// # Thread Safety
//
// Build must complete before any other call. Afterwards the engine is
// read-only and FindFrequentItemSets may be called concurrently.
package fpgrowth
