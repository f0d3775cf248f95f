// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package fpgrowth

import (
	"fmt"
	"io"
	"strings"
)

const rule = "--------------------"

// WriteHeaderTable writes one ItemHeader line per header, in table order.
// The output is for diagnostics only.
func (e *Engine[T]) WriteHeaderTable(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s item header table begin %s\n", rule, rule)
	for _, header := range e.table.Entries() {
		b.WriteString(header.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%s item header table end %s\n", rule, rule)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTree writes the FP-tree depth-first, one [item, frequency] line per
// node indented by depth. The root prints as [None, 0].
func (e *Engine[T]) WriteTree(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s fp tree begin %s\n", rule, rule)
	e.tree.Walk(func(id NodeID, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		if item, ok := e.tree.Item(id); ok {
			fmt.Fprintf(&b, "[%v, %d]\n", item, e.tree.Frequency(id))
		} else {
			fmt.Fprintf(&b, "[None, %d]\n", e.tree.Frequency(id))
		}
		return true
	})
	fmt.Fprintf(&b, "%s fp tree end %s\n", rule, rule)

	_, err := io.WriteString(w, b.String())
	return err
}
