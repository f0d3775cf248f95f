// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// LoadJSON decodes an array of item sets. Each item must be a string or a
// number; numbers are rendered in their shortest form.
func LoadJSON(r io.Reader) ([][]string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw [][]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode item sets: %w", err)
	}

	sets := make([][]string, len(raw))
	for i, rawSet := range raw {
		set := make([]string, len(rawSet))
		for j, v := range rawSet {
			item, err := normalizeItem(v)
			if err != nil {
				return nil, fmt.Errorf("item set %d, position %d: %w", i, j, err)
			}
			set[j] = item
		}
		sets[i] = set
	}
	return sets, nil
}

func normalizeItem(v interface{}) (string, error) {
	switch item := v.(type) {
	case string:
		return item, nil
	case json.Number:
		return normalizeNumber(item.String())
	default:
		return "", fmt.Errorf("%w: %v (%T)", ErrInvalidItem, v, v)
	}
}

// normalizeNumber keeps integer literals verbatim so large IDs stay distinct.
// Only fractional or exponent forms go through float64.
func normalizeNumber(s string) (string, error) {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return s, nil
	}
	if _, err := strconv.ParseUint(s, 10, 64); err == nil {
		return s, nil
	}
	if !strings.ContainsAny(s, ".eE") {
		// Integer beyond 64 bits. JSON already rejected anything malformed.
		return s, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidItem, s)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}
