// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/fpgrowth/internal/dataset"
	"github.com/tomtom215/fpgrowth/internal/fpgrowth"
	"github.com/tomtom215/fpgrowth/internal/logging"
	"github.com/tomtom215/fpgrowth/internal/mining"
	"github.com/tomtom215/fpgrowth/internal/models"
)

type mineOptions struct {
	input        string
	format       string
	duckDSN      string
	duckQuery    string
	minSupport   int
	minItemCount int
	output       string
	tree         bool
}

func runMine(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(stderr)
	if err != nil {
		return err
	}

	opts := mineOptions{
		input:        cfg.Dataset.Path,
		format:       cfg.Dataset.Format,
		duckDSN:      cfg.Dataset.DuckDBDSN,
		duckQuery:    cfg.Dataset.DuckDBQuery,
		minSupport:   cfg.Mining.MinSupport,
		minItemCount: cfg.Mining.MinItemCount,
		output:       "text",
	}

	fs := flag.NewFlagSet("mine", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "input", opts.input, "dataset file (.json, .txt, .csv, .tsv)")
	fs.StringVar(&opts.format, "format", opts.format, "dataset format: json, text or csv (default: from extension)")
	fs.StringVar(&opts.duckDSN, "duckdb-dsn", opts.duckDSN, "DuckDB database to read transactions from")
	fs.StringVar(&opts.duckQuery, "duckdb-query", opts.duckQuery, "query returning (transaction_id, item) rows")
	fs.IntVar(&opts.minSupport, "min-support", opts.minSupport, "minimum number of transactions an item must appear in")
	fs.IntVar(&opts.minItemCount, "min-item-count", opts.minItemCount, "minimum size of an emitted item set")
	fs.StringVar(&opts.output, "output", opts.output, "output format: text or json")
	fs.BoolVar(&opts.tree, "tree", false, "also print the raw header table and FP-tree (text output only)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("%w: -output must be text or json, got %q", errUsage, opts.output)
	}

	itemSets, source, err := loadItemSets(ctx, opts)
	if err != nil {
		return err
	}
	logging.Debug().Str("source", source).Int("transactions", len(itemSets)).Msg("Dataset loaded")

	svc := mining.NewService(mining.Config{}, nil)
	run, err := svc.Mine(ctx, mining.Request{
		ItemSets:     itemSets,
		MinSupport:   opts.minSupport,
		MinItemCount: opts.minItemCount,
	})
	if err != nil {
		return err
	}

	if opts.output == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	}

	if err := writeRun(stdout, source, run); err != nil {
		return err
	}
	if opts.tree {
		return writeTree(stdout, itemSets, opts.minSupport)
	}
	return nil
}

// loadItemSets picks the dataset source: DuckDB, then a file, then the
// built-in sample. The returned slice is never nil.
func loadItemSets(ctx context.Context, opts mineOptions) ([][]string, string, error) {
	var (
		itemSets [][]string
		source   string
		err      error
	)
	switch {
	case opts.duckDSN != "":
		if opts.duckQuery == "" {
			return nil, "", fmt.Errorf("%w: -duckdb-query is required with -duckdb-dsn", errUsage)
		}
		source = "duckdb:" + opts.duckDSN
		itemSets, err = dataset.LoadDuckDB(ctx, opts.duckDSN, opts.duckQuery)
	case opts.input != "":
		source = opts.input
		itemSets, err = dataset.LoadFile(opts.input, opts.format)
	default:
		source = "built-in sample"
		itemSets = dataset.Reference()
	}
	if err != nil {
		return nil, "", err
	}
	if itemSets == nil {
		itemSets = [][]string{}
	}
	return itemSets, source, nil
}

func writeRun(w io.Writer, source string, run *models.Run) error {
	var b strings.Builder

	fmt.Fprintf(&b, "source: %s (%d transactions, min support %d, min item count %d)\n\n",
		source, run.Transactions, run.MinSupport, run.MinItemCount)

	b.WriteString("item header table:\n")
	for _, h := range run.Header {
		fmt.Fprintf(&b, "  %s: %d\n", h.Item, h.Frequency)
	}

	b.WriteString("\nconditional pattern bases:\n")
	for _, base := range run.Bases {
		fmt.Fprintf(&b, "  %s: [%s]\n", base.Item, strings.Join(base.Items, " "))
	}

	fmt.Fprintf(&b, "\nfrequent item sets (%d):\n", len(run.ItemSets))
	for _, set := range run.ItemSets {
		fmt.Fprintf(&b, "  {%s}\n", strings.Join(set, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTree(w io.Writer, itemSets [][]string, minSupport int) error {
	engine, err := fpgrowth.New[string](minSupport, fpgrowth.WithLogger(logging.WithComponent("fpgrowth")))
	if err != nil {
		return err
	}
	if err := engine.Build(itemSets); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := engine.WriteHeaderTable(w); err != nil {
		return err
	}
	return engine.WriteTree(w)
}
