// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package fpgrowth

// ConditionalPatternBase lists the ancestor items that co-occur with Item on
// tree paths often enough to pass the minimum support.
type ConditionalPatternBase[T comparable] struct {
	Item  T
	Items []T
}

// prefixCounts accumulates ancestor supports for one header.
// keys preserves the order in which ancestors were first seen.
type prefixCounts[T comparable] struct {
	keys   []T
	counts map[T]int
}

// collectPrefixCounts walks from every node of header up to the root and adds
// the node's own frequency to each ancestor item encountered.
func collectPrefixCounts[T comparable](tree *Tree[T], header ItemHeader[T]) prefixCounts[T] {
	acc := prefixCounts[T]{counts: make(map[T]int)}

	for _, pointer := range header.Pointers {
		support := tree.Frequency(pointer)
		for tail, ok := tree.Parent(pointer); ok; tail, ok = tree.Parent(tail) {
			item, hasItem := tree.Item(tail)
			if !hasItem {
				break
			}
			if _, seen := acc.counts[item]; !seen {
				acc.keys = append(acc.keys, item)
			}
			acc.counts[item] += support
		}
	}

	return acc
}

// frequent returns the accumulated keys whose count reaches minSupport.
func (p prefixCounts[T]) frequent(minSupport int) []T {
	var out []T
	for _, item := range p.keys {
		if p.counts[item] >= minSupport {
			out = append(out, item)
		}
	}
	return out
}

// buildConditionalPatternBases derives a base for every header, least
// frequent header first. Headers without surviving ancestors are omitted.
func buildConditionalPatternBases[T comparable](tree *Tree[T], table *ItemHeaderTable[T], minSupport int) []ConditionalPatternBase[T] {
	entries := table.Entries()
	bases := make([]ConditionalPatternBase[T], 0, len(entries))

	for i := len(entries) - 1; i >= 0; i-- {
		items := collectPrefixCounts(tree, entries[i]).frequent(minSupport)
		if len(items) == 0 {
			continue
		}
		bases = append(bases, ConditionalPatternBase[T]{
			Item:  entries[i].Item,
			Items: items,
		})
	}

	return bases
}
