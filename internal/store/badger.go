// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/goccy/go-json"

	"github.com/tomtom215/fpgrowth/internal/logging"
	"github.com/tomtom215/fpgrowth/internal/metrics"
	"github.com/tomtom215/fpgrowth/internal/models"
)

const runPrefix = "run:"

var (
	// ErrRunNotFound is returned when no run exists for an ID.
	ErrRunNotFound = errors.New("run not found")

	// ErrClosed is returned for operations on a closed store.
	ErrClosed = errors.New("run store is closed")

	// ErrEmptyRunID is returned when saving a run without an ID.
	ErrEmptyRunID = errors.New("run id is empty")
)

// Config configures the Badger store.
type Config struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	// SyncWrites fsyncs every write.
	SyncWrites bool

	// InMemory keeps all data in memory. Used by tests and throwaway servers.
	InMemory bool
}

// BadgerStore is a run store backed by BadgerDB. It is safe for concurrent use.
type BadgerStore struct {
	db *badger.DB

	mu     sync.RWMutex
	closed bool
}

// Open opens or creates the store described by cfg.
func Open(cfg Config) (*BadgerStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("store path is required")
		}
		opts = badger.DefaultOptions(cfg.Path)
		opts.SyncWrites = cfg.SyncWrites
	}
	opts.Compression = options.Snappy
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().
		Str("component", "store").
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Msg("Run store opened")

	return &BadgerStore{db: db}, nil
}

// Close closes the database. Further calls are no-ops.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	return nil
}

// SaveRun writes run, replacing any run with the same ID.
func (s *BadgerStore) SaveRun(ctx context.Context, run *models.Run) (err error) {
	defer func() { metrics.RecordStoreOperation("save", err) }()

	if run == nil || run.ID == "" {
		return ErrEmptyRunID
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(runKey(run.ID), data)
	})
}

// GetRun returns the run with the given ID or ErrRunNotFound.
func (s *BadgerStore) GetRun(ctx context.Context, id string) (run *models.Run, err error) {
	defer func() {
		if !errors.Is(err, ErrRunNotFound) {
			metrics.RecordStoreOperation("get", err)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(runKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrRunNotFound
		}
		if err != nil {
			return fmt.Errorf("get run: %w", err)
		}
		return item.Value(func(val []byte) error {
			run = &models.Run{}
			return json.Unmarshal(val, run)
		})
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns up to limit run summaries, newest first.
// A limit of zero or less returns every run.
func (s *BadgerStore) ListRuns(ctx context.Context, limit int) (summaries []models.RunSummary, err error) {
	defer func() { metrics.RecordStoreOperation("list", err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	summaries = []models.RunSummary{}
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(runPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// In reverse mode Seek lands on the largest key <= the seek key.
		seek := append([]byte(runPrefix), 0xFF)
		for it.Seek(seek); it.ValidForPrefix([]byte(runPrefix)); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := it.Item()
			var run models.Run
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &run)
			}); err != nil {
				logging.Warn().Err(err).Str("key", string(item.Key())).Msg("Skipping unreadable run")
				continue
			}

			summaries = append(summaries, run.Summary())
			if limit > 0 && len(summaries) >= limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return summaries, nil
}

// DeleteRun removes a run. Deleting a missing run returns ErrRunNotFound.
func (s *BadgerStore) DeleteRun(ctx context.Context, id string) (err error) {
	defer func() {
		if !errors.Is(err, ErrRunNotFound) {
			metrics.RecordStoreOperation("delete", err)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := runKey(id)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrRunNotFound
			}
			return fmt.Errorf("get run: %w", err)
		}
		return txn.Delete(key)
	})
}

// RunGC reclaims value log space until Badger reports nothing to rewrite.
func (s *BadgerStore) RunGC() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	for {
		err := s.db.RunValueLogGC(0.5)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

func runKey(id string) []byte {
	return []byte(runPrefix + id)
}
