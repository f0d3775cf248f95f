// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// maxLineSize bounds a single transaction line.
const maxLineSize = 1 << 20

// LoadText reads one transaction per line.
func LoadText(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var sets [][]string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || unicode.IsSpace(r)
		})
		if len(items) == 0 {
			continue
		}
		sets = append(sets, items)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read item sets: %w", err)
	}
	return sets, nil
}
