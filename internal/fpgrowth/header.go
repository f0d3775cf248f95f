// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package fpgrowth

import (
	"fmt"
	"sort"
)

// ItemHeader holds the global support of an item and the tree nodes that
// carry it.
type ItemHeader[T comparable] struct {
	// Item is the item this header describes.
	Item T

	// Frequency is the number of item sets containing Item.
	// It is fixed before tree construction.
	Frequency int

	// Pointers lists every tree node created for Item, in registration order.
	Pointers []NodeID
}

// String renders the header the way the diagnostic dump prints it.
func (h ItemHeader[T]) String() string {
	return fmt.Sprintf("ItemHeader[%v, %d]", h.Item, h.Frequency)
}

// ItemHeaderTable maps items to their headers and keeps the headers in the
// order they were added, which is descending frequency when populated by the
// engine.
type ItemHeaderTable[T comparable] struct {
	headers []*ItemHeader[T]
	index   map[T]int
}

// NewItemHeaderTable creates an empty header table.
func NewItemHeaderTable[T comparable]() *ItemHeaderTable[T] {
	return &ItemHeaderTable[T]{
		index: make(map[T]int),
	}
}

// Add inserts a header for item, or overwrites an existing one in place.
// Either way the header starts with no pointers.
func (h *ItemHeaderTable[T]) Add(item T, frequency int) {
	header := &ItemHeader[T]{Item: item, Frequency: frequency}
	if pos, ok := h.index[item]; ok {
		h.headers[pos] = header
		return
	}
	h.index[item] = len(h.headers)
	h.headers = append(h.headers, header)
}

// AddPointer registers a tree node with the header of item.
// It returns ErrItemNotInTable if item has no header.
func (h *ItemHeaderTable[T]) AddPointer(item T, id NodeID) error {
	pos, ok := h.index[item]
	if !ok {
		return fmt.Errorf("%w: %v (node %d)", ErrItemNotInTable, item, id)
	}
	h.headers[pos].Pointers = append(h.headers[pos].Pointers, id)
	return nil
}

// Contains reports whether item has a header.
func (h *ItemHeaderTable[T]) Contains(item T) bool {
	_, ok := h.index[item]
	return ok
}

// Get returns a copy of the header for item.
func (h *ItemHeaderTable[T]) Get(item T) (ItemHeader[T], bool) {
	pos, ok := h.index[item]
	if !ok {
		return ItemHeader[T]{}, false
	}
	return h.headers[pos].clone(), true
}

// Len returns the number of headers.
func (h *ItemHeaderTable[T]) Len() int {
	return len(h.headers)
}

// Entries returns copies of all headers in table order.
func (h *ItemHeaderTable[T]) Entries() []ItemHeader[T] {
	out := make([]ItemHeader[T], len(h.headers))
	for i, header := range h.headers {
		out[i] = header.clone()
	}
	return out
}

// FilterAndSort returns the items of itemSet that have a header, ordered by
// descending header frequency. Items of equal frequency keep table order, so
// every item set is linearized by the same global order.
func (h *ItemHeaderTable[T]) FilterAndSort(itemSet []T) []T {
	out := make([]T, 0, len(itemSet))
	for _, item := range itemSet {
		if h.Contains(item) {
			out = append(out, item)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := h.index[out[i]], h.index[out[j]]
		fa, fb := h.headers[a].Frequency, h.headers[b].Frequency
		if fa != fb {
			return fa > fb
		}
		return a < b
	})

	return out
}

func (h *ItemHeader[T]) clone() ItemHeader[T] {
	pointers := make([]NodeID, len(h.Pointers))
	copy(pointers, h.Pointers)
	return ItemHeader[T]{
		Item:      h.Item,
		Frequency: h.Frequency,
		Pointers:  pointers,
	}
}
