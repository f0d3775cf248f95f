// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/fpgrowth/internal/logging"
	"github.com/tomtom215/fpgrowth/internal/metrics"
)

// ErrNullTransaction is returned when a row has a NULL transaction id.
var ErrNullTransaction = errors.New("null transaction id")

// LoadDuckDB runs query against the DuckDB database at dsn (":memory:" for
// an in-memory database) and groups the resulting (transaction_id, item)
// rows into item sets. Item sets appear in the order their transaction id is
// first seen; items keep row order. Rows with a NULL item are skipped.
func LoadDuckDB(ctx context.Context, dsn, query string) ([][]string, error) {
	start := time.Now()

	conn, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query item sets: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int)
	var sets [][]string
	for rows.Next() {
		var txID, item sql.NullString
		if err := rows.Scan(&txID, &item); err != nil {
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		if !txID.Valid {
			return nil, ErrNullTransaction
		}

		pos, ok := index[txID.String]
		if !ok {
			pos = len(sets)
			index[txID.String] = pos
			sets = append(sets, []string{})
		}
		if item.Valid {
			sets[pos] = append(sets[pos], item.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item rows: %w", err)
	}

	metrics.RecordDatasetLoad("duckdb", time.Since(start))
	logging.Debug().
		Str("component", "dataset").
		Int("item_sets", len(sets)).
		Dur("duration", time.Since(start)).
		Msg("DuckDB item sets loaded")

	return sets, nil
}
