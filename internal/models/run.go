// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package models

import "time"

// Run is the outcome of one mining request.
//
// Example:
//
//	{
//	  "id": "01927c3e-5b7a-7d1e-9a41-6f0c2e8b1d55",
//	  "created_at": "2026-10-18T09:12:44Z",
//	  "min_support": 3,
//	  "min_item_count": 2,
//	  "transactions": 10,
//	  "header": [{"item": "2", "frequency": 10}, {"item": "1", "frequency": 5}],
//	  "bases": [{"item": "7", "items": ["2"]}],
//	  "item_sets": [["7", "2"]],
//	  "node_count": 7,
//	  "duration_ms": 0.42
//	}
type Run struct {
	ID           string        `json:"id"`
	CreatedAt    time.Time     `json:"created_at"`
	MinSupport   int           `json:"min_support"`
	MinItemCount int           `json:"min_item_count"`
	Transactions int           `json:"transactions"`
	Header       []HeaderEntry `json:"header"`
	Bases        []PatternBase `json:"bases"`
	ItemSets     [][]string    `json:"item_sets"`
	NodeCount    int           `json:"node_count"`
	DurationMS   float64       `json:"duration_ms"`
	Cached       bool          `json:"cached,omitempty"`
}

// HeaderEntry is one row of the item header table.
type HeaderEntry struct {
	Item      string `json:"item"`
	Frequency int    `json:"frequency"`
}

// PatternBase lists the items that co-occur with Item at least min_support
// times along its prefix paths.
type PatternBase struct {
	Item  string   `json:"item"`
	Items []string `json:"items"`
}

// RunSummary is the list view of a Run without the result payload.
type RunSummary struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	MinSupport   int       `json:"min_support"`
	MinItemCount int       `json:"min_item_count"`
	Transactions int       `json:"transactions"`
	ItemSetCount int       `json:"item_set_count"`
}

// Summary returns the list view of r.
func (r *Run) Summary() RunSummary {
	return RunSummary{
		ID:           r.ID,
		CreatedAt:    r.CreatedAt,
		MinSupport:   r.MinSupport,
		MinItemCount: r.MinItemCount,
		Transactions: r.Transactions,
		ItemSetCount: len(r.ItemSets),
	}
}
