// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package fpgrowth

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Engine builds an FP-tree from item sets and enumerates frequent item sets.
type Engine[T comparable] struct {
	minSupport int
	logger     zerolog.Logger

	table *ItemHeaderTable[T]
	tree  *Tree[T]
	bases []ConditionalPatternBase[T]
	built bool
	stats Stats
}

// Stats summarizes a built engine.
type Stats struct {
	// ItemSets is the number of input item sets.
	ItemSets int `json:"item_sets"`

	// DistinctItems is the number of distinct items before support filtering.
	DistinctItems int `json:"distinct_items"`

	// FrequentItems is the number of items in the header table.
	FrequentItems int `json:"frequent_items"`

	// Nodes is the number of tree nodes, excluding the root.
	Nodes int `json:"nodes"`

	// PatternBases is the number of non-empty conditional pattern bases.
	PatternBases int `json:"pattern_bases"`

	// BuildDuration is the wall time spent in Build.
	BuildDuration time.Duration `json:"build_duration"`
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used for the build summary.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates an engine with an empty header table and a root-only tree.
// minSupport is the minimum number of occurrences an item, and later an
// ancestor in a conditional pattern base, needs to be retained.
func New[T comparable](minSupport int, opts ...Option) (*Engine[T], error) {
	if minSupport < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMinSupport, minSupport)
	}

	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine[T]{
		minSupport: minSupport,
		logger:     o.logger.With().Str("component", "fpgrowth").Logger(),
		table:      NewItemHeaderTable[T](),
		tree:       NewTree[T](),
	}, nil
}

// MinSupport returns the configured minimum support.
func (e *Engine[T]) MinSupport() int {
	return e.minSupport
}

// Build constructs the header table, the FP-tree and the conditional pattern
// bases. It must be called exactly once; later calls return ErrAlreadyBuilt.
func (e *Engine[T]) Build(itemSets [][]T) error {
	if e.built {
		return ErrAlreadyBuilt
	}
	start := time.Now()

	deduped := make([][]T, len(itemSets))
	for i, itemSet := range itemSets {
		deduped[i] = dedupe(itemSet)
	}

	distinct := e.buildHeaderTable(deduped)

	for _, itemSet := range deduped {
		if err := e.insert(e.table.FilterAndSort(itemSet)); err != nil {
			return err
		}
	}

	e.bases = buildConditionalPatternBases(e.tree, e.table, e.minSupport)
	e.built = true

	e.stats = Stats{
		ItemSets:      len(itemSets),
		DistinctItems: distinct,
		FrequentItems: e.table.Len(),
		Nodes:         e.tree.Len() - 1,
		PatternBases:  len(e.bases),
		BuildDuration: time.Since(start),
	}

	e.logger.Debug().
		Int("min_support", e.minSupport).
		Int("item_sets", e.stats.ItemSets).
		Int("distinct_items", e.stats.DistinctItems).
		Int("frequent_items", e.stats.FrequentItems).
		Int("nodes", e.stats.Nodes).
		Int("pattern_bases", e.stats.PatternBases).
		Dur("duration", e.stats.BuildDuration).
		Msg("FP-tree built")

	return nil
}

// buildHeaderTable counts items, drops those below the minimum support and
// adds the rest by descending frequency. Ties keep first-appearance order.
// It returns the number of distinct items seen.
func (e *Engine[T]) buildHeaderTable(itemSets [][]T) int {
	counts := make(map[T]int)
	var order []T

	for _, itemSet := range itemSets {
		for _, item := range itemSet {
			if _, ok := counts[item]; !ok {
				order = append(order, item)
			}
			counts[item]++
		}
	}

	survivors := make([]T, 0, len(order))
	for _, item := range order {
		if counts[item] >= e.minSupport {
			survivors = append(survivors, item)
		}
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return counts[survivors[i]] > counts[survivors[j]]
	})

	for _, item := range survivors {
		e.table.Add(item, counts[item])
	}

	return len(order)
}

// insert adds one sorted item set to the tree and registers the new nodes.
func (e *Engine[T]) insert(itemSet []T) error {
	for _, id := range e.tree.Insert(itemSet) {
		item, _ := e.tree.Item(id)
		if err := e.table.AddPointer(item, id); err != nil {
			return err
		}
	}
	return nil
}

// FindFrequentItemSets combines every item with each subset of its
// conditional pattern base that has at least minItemCount-1 members.
//
// Joint support of a combination is not verified; see the package
// documentation. The call only reads engine state and may be repeated with
// different minItemCount values.
func (e *Engine[T]) FindFrequentItemSets(minItemCount int) ([][]T, error) {
	if minItemCount < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMinItemCount, minItemCount)
	}
	if !e.built {
		return nil, ErrNotBuilt
	}

	result := make([][]T, 0)
	for _, base := range e.bases {
		result = append(result, expandBase(base, minItemCount)...)
	}
	return result, nil
}

// HeaderTable returns the item header table.
func (e *Engine[T]) HeaderTable() *ItemHeaderTable[T] {
	return e.table
}

// Tree returns the FP-tree.
func (e *Engine[T]) Tree() *Tree[T] {
	return e.tree
}

// ConditionalPatternBases returns copies of the bases, least frequent item
// first.
func (e *Engine[T]) ConditionalPatternBases() []ConditionalPatternBase[T] {
	out := make([]ConditionalPatternBase[T], len(e.bases))
	for i, base := range e.bases {
		items := make([]T, len(base.Items))
		copy(items, base.Items)
		out[i] = ConditionalPatternBase[T]{Item: base.Item, Items: items}
	}
	return out
}

// ConditionalPatternBase returns the base for item, if it has one.
func (e *Engine[T]) ConditionalPatternBase(item T) ([]T, bool) {
	for _, base := range e.bases {
		if base.Item == item {
			items := make([]T, len(base.Items))
			copy(items, base.Items)
			return items, true
		}
	}
	return nil, false
}

// IsBuilt reports whether Build has completed.
func (e *Engine[T]) IsBuilt() bool {
	return e.built
}

// Stats returns the build summary. It is zero before Build.
func (e *Engine[T]) Stats() Stats {
	return e.stats
}

// dedupe collapses repeated items, keeping the first occurrence of each.
func dedupe[T comparable](itemSet []T) []T {
	seen := make(map[T]struct{}, len(itemSet))
	out := make([]T, 0, len(itemSet))
	for _, item := range itemSet {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
