// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package fpgrowth

// combinations calls fn with every size-k combination of items, in
// lexicographic order of positions. The slice passed to fn is reused between
// calls and must be copied if retained.
func combinations[T any](items []T, k int, fn func([]T)) {
	n := len(items)
	if k <= 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	combo := make([]T, k)

	for {
		for i, j := range idx {
			combo[i] = items[j]
		}
		fn(combo)

		// Find the rightmost position that can still advance.
		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// expandBase emits [item] + c for every combination c of base whose size is
// at least minItemCount-1.
func expandBase[T comparable](base ConditionalPatternBase[T], minItemCount int) [][]T {
	var out [][]T
	for size := 1; size <= len(base.Items); size++ {
		if size < minItemCount-1 {
			continue
		}
		combinations(base.Items, size, func(combo []T) {
			set := make([]T, 0, size+1)
			set = append(set, base.Item)
			set = append(set, combo...)
			out = append(out, set)
		})
	}
	return out
}
