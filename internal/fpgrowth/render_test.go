// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package fpgrowth

import (
	"strings"
	"testing"
)

func TestEngine_WriteHeaderTable(t *testing.T) {
	engine := buildReference(t)

	var b strings.Builder
	if err := engine.WriteHeaderTable(&b); err != nil {
		t.Fatalf("WriteHeaderTable() error = %v", err)
	}

	want := strings.Join([]string{
		"-------------------- item header table begin --------------------",
		"ItemHeader[2, 10]",
		"ItemHeader[1, 5]",
		"ItemHeader[3, 5]",
		"ItemHeader[4, 3]",
		"ItemHeader[5, 3]",
		"ItemHeader[7, 3]",
		"-------------------- item header table end --------------------",
		"",
	}, "\n")
	if got := b.String(); got != want {
		t.Errorf("WriteHeaderTable() =\n%s\nwant\n%s", got, want)
	}
}

func TestEngine_WriteTree(t *testing.T) {
	engine := buildReference(t)

	var b strings.Builder
	if err := engine.WriteTree(&b); err != nil {
		t.Fatalf("WriteTree() error = %v", err)
	}

	want := strings.Join([]string{
		"-------------------- fp tree begin --------------------",
		"[None, 0]",
		"  [2, 10]",
		"    [1, 5]",
		"      [3, 5]",
		"        [4, 3]",
		"          [5, 2]",
		"        [5, 1]",
		"    [7, 3]",
		"-------------------- fp tree end --------------------",
		"",
	}, "\n")
	if got := b.String(); got != want {
		t.Errorf("WriteTree() =\n%s\nwant\n%s", got, want)
	}
}
