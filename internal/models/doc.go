// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

/*
Package models defines the data structures shared by the mining service, the
run store and the HTTP API.

  - Run: the persisted record of one mining request and its results
  - HeaderEntry, PatternBase: JSON views of the header table and the
    conditional pattern bases
  - APIResponse, Metadata, APIError: the response envelope used by every
    endpoint

Models carry JSON tags only; behavior lives in the packages that use them.
*/
package models
