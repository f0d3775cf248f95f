// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package fpgrowth

import "errors"

var (
	// ErrInvalidMinSupport indicates a minimum support below 1.
	ErrInvalidMinSupport = errors.New("min support must be at least 1")

	// ErrInvalidMinItemCount indicates a minimum item count below 1.
	ErrInvalidMinItemCount = errors.New("min item count must be at least 1")

	// ErrItemNotInTable indicates a tree node was registered for an item the
	// header table does not know. Reaching it means an item set bypassed
	// FilterAndSort before insertion.
	ErrItemNotInTable = errors.New("item header table can not find the item")

	// ErrAlreadyBuilt is returned when Build is called on a built engine.
	ErrAlreadyBuilt = errors.New("engine already built")

	// ErrNotBuilt is returned when results are requested before Build.
	ErrNotBuilt = errors.New("engine not built")
)
