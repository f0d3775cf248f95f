// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package dataset

// Reference returns ten item sets over items 1..8. With min_support 3 the
// frequent items are 2 (10), 1 (5), 3 (5), 4 (3), 5 (3) and 7 (3).
func Reference() [][]string {
	return [][]string{
		{"1", "2", "3", "4", "5"},
		{"5", "4", "3", "2", "1"},
		{"1", "2", "3", "4", "6"},
		{"1", "2", "3", "5"},
		{"1", "2", "3"},
		{"2"},
		{"2", "7"},
		{"2", "7"},
		{"2", "7"},
		{"2", "8"},
	}
}
