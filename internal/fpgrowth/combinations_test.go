// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package fpgrowth

import (
	"reflect"
	"testing"
)

func collectCombinations(items []int, k int) [][]int {
	var out [][]int
	combinations(items, k, func(c []int) {
		out = append(out, append([]int(nil), c...))
	})
	return out
}

func TestCombinations(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		k     int
		want  [][]int
	}{
		{"k zero", []int{1, 2}, 0, nil},
		{"k larger than n", []int{1, 2}, 3, nil},
		{"k equals n", []int{1, 2, 3}, 3, [][]int{{1, 2, 3}}},
		{"singletons", []int{4, 5, 6}, 1, [][]int{{4}, {5}, {6}}},
		{"pairs in positional order", []int{3, 1, 2}, 2, [][]int{{3, 1}, {3, 2}, {1, 2}}},
		{
			name:  "four choose two",
			items: []int{1, 2, 3, 4},
			k:     2,
			want:  [][]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectCombinations(tt.items, tt.k)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("combinations(%v, %d) = %v, want %v", tt.items, tt.k, got, tt.want)
			}
		})
	}
}

func TestCombinationsCount(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	want := []int{1, 7, 21, 35, 35, 21, 7, 1}
	for k := 1; k <= len(items); k++ {
		if got := len(collectCombinations(items, k)); got != want[k] {
			t.Errorf("C(7,%d) = %d, want %d", k, got, want[k])
		}
	}
}

func TestExpandBase(t *testing.T) {
	base := ConditionalPatternBase[int]{Item: 5, Items: []int{3, 1, 2}}

	tests := []struct {
		name         string
		minItemCount int
		want         [][]int
	}{
		{
			name:         "min item count 1 keeps every size",
			minItemCount: 1,
			want:         [][]int{{5, 3}, {5, 1}, {5, 2}, {5, 3, 1}, {5, 3, 2}, {5, 1, 2}, {5, 3, 1, 2}},
		},
		{
			name:         "min item count 3 drops pairs",
			minItemCount: 3,
			want:         [][]int{{5, 3, 1}, {5, 3, 2}, {5, 1, 2}, {5, 3, 1, 2}},
		},
		{
			name:         "min item count 4 keeps the full set",
			minItemCount: 4,
			want:         [][]int{{5, 3, 1, 2}},
		},
		{
			name:         "min item count above base size",
			minItemCount: 5,
			want:         nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandBase(base, tt.minItemCount)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expandBase(min=%d) = %v, want %v", tt.minItemCount, got, tt.want)
			}
		})
	}
}
