// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/fpgrowth/internal/logging"
	"github.com/tomtom215/fpgrowth/internal/metrics"
)

// Formats accepted by LoadFile.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatCSV  = "csv"
)

var (
	// ErrUnknownFormat is returned when a file format cannot be determined.
	ErrUnknownFormat = errors.New("unknown dataset format")

	// ErrInvalidItem is returned for JSON items that are neither strings nor numbers.
	ErrInvalidItem = errors.New("invalid item")
)

// DetectFormat returns the format for path from its extension.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".txt", ".csv", ".tsv":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format of %q", ErrUnknownFormat, path)
	}
}

// LoadFile reads item sets from path. An empty format is inferred from the
// file extension. "csv" is read with the text loader: one transaction per
// line, no header row, no quoting. Comment a header out with #.
func LoadFile(path, format string) ([][]string, error) {
	if format == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	start := time.Now()
	var sets [][]string
	switch format {
	case FormatJSON:
		sets, err = LoadJSON(f)
	case FormatText, FormatCSV:
		format = FormatText
		sets, err = LoadText(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	metrics.RecordDatasetLoad(format, time.Since(start))

	logging.Debug().
		Str("component", "dataset").
		Str("path", path).
		Str("format", format).
		Int("item_sets", len(sets)).
		Msg("Dataset loaded")

	return sets, nil
}
