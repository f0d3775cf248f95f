// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

// Package store persists mining runs in an embedded BadgerDB database.
//
// Runs are stored as JSON under the key "run:" + run ID. Run IDs are UUIDv7,
// so key order is creation order and ListRuns walks the keyspace in reverse
// to return the newest runs first.
//
//	s, err := store.Open(store.Config{Path: "/data/fpgrowth/runs"})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	err = s.SaveRun(ctx, run)
//	recent, err := s.ListRuns(ctx, 20)
package store
