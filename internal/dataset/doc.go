// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

/*
Package dataset loads item sets (transactions) for mining.

Supported sources:

  - JSON: an array of arrays whose elements are strings or numbers
    ([[1, 2, 3], ["milk", "bread"]]). Integer literals are kept verbatim,
    so IDs beyond 2^53 stay distinct. Fractional and exponent forms are
    normalized to their shortest decimal form, so 1.0 and 1e0 become "1".
  - Text: one transaction per line, items separated by commas, semicolons
    and/or whitespace. Blank lines and lines starting with # are skipped.
  - CSV (format "csv", extensions .csv and .tsv): read by the text loader,
    so it means comma-delimited lines WITHOUT a header row and without
    quoting. A header line must be commented out with #, otherwise it is
    mined as a transaction. Use DuckDB's read_csv_auto for real CSV files
    with headers, quoted fields or (transaction, item) row layout.
  - DuckDB: any SQL query returning (transaction_id, item) rows. Rows are
    grouped into item sets in the order transactions are first seen, which
    makes CSV and Parquet files readable through DuckDB table functions:

	sets, err := dataset.LoadDuckDB(ctx, ":memory:",
	    "SELECT order_id, product FROM read_csv_auto('orders.csv')")

Reference returns the ten item sets over items 1..8 used throughout the
tests and as the default input of the mine command.
*/
package dataset
