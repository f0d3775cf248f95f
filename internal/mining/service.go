// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package mining

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/fpgrowth/internal/cache"
	"github.com/tomtom215/fpgrowth/internal/fpgrowth"
	"github.com/tomtom215/fpgrowth/internal/logging"
	"github.com/tomtom215/fpgrowth/internal/metrics"
	"github.com/tomtom215/fpgrowth/internal/models"
	"github.com/tomtom215/fpgrowth/internal/store"
	"github.com/tomtom215/fpgrowth/internal/validation"
)

var (
	// ErrNoStore is returned by run lookups when persistence is disabled.
	ErrNoStore = errors.New("run persistence is disabled")

	// ErrRunNotFound is returned when a run ID is unknown.
	ErrRunNotFound = store.ErrRunNotFound
)

// RunStore persists mining runs. *store.BadgerStore implements it.
type RunStore interface {
	SaveRun(ctx context.Context, run *models.Run) error
	GetRun(ctx context.Context, id string) (*models.Run, error)
	ListRuns(ctx context.Context, limit int) ([]models.RunSummary, error)
	DeleteRun(ctx context.Context, id string) error
}

// Request describes one mining job.
type Request struct {
	ItemSets     [][]string `json:"item_sets" validate:"required"`
	MinSupport   int        `json:"min_support" validate:"min=1"`
	MinItemCount int        `json:"min_item_count" validate:"min=1"`
}

// Config configures a Service.
type Config struct {
	// EngineCacheSize is the number of built engines kept for reuse.
	// Zero disables reuse.
	EngineCacheSize int

	// EngineCacheTTL expires cached engines. Zero keeps them until evicted.
	EngineCacheTTL time.Duration
}

// Service executes mining requests. It is safe for concurrent use.
type Service struct {
	engines *cache.LRU[string, *fpgrowth.Engine[string]]
	store   RunStore
	logger  zerolog.Logger
}

// NewService creates a service. runStore may be nil to disable persistence.
func NewService(cfg Config, runStore RunStore) *Service {
	s := &Service{
		store:  runStore,
		logger: logging.WithComponent("mining"),
	}
	if cfg.EngineCacheSize > 0 {
		s.engines = cache.NewLRU[string, *fpgrowth.Engine[string]](cfg.EngineCacheSize, cfg.EngineCacheTTL)
	}
	return s
}

// StoreEnabled reports whether runs are persisted.
func (s *Service) StoreEnabled() bool {
	return s.store != nil
}

// Mine builds (or reuses) an engine for req and enumerates its frequent
// item sets.
func (s *Service) Mine(ctx context.Context, req Request) (*models.Run, error) {
	start := time.Now()

	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordRun("invalid", 0)
		return nil, verr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	engine, cached, err := s.engine(req)
	if err != nil {
		metrics.RecordRun("error", 0)
		return nil, err
	}

	itemSets, err := engine.FindFrequentItemSets(req.MinItemCount)
	if err != nil {
		metrics.RecordRun("error", 0)
		return nil, fmt.Errorf("enumerate item sets: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		metrics.RecordRun("error", 0)
		return nil, fmt.Errorf("generate run id: %w", err)
	}

	run := &models.Run{
		ID:           id.String(),
		CreatedAt:    start.UTC(),
		MinSupport:   req.MinSupport,
		MinItemCount: req.MinItemCount,
		Transactions: len(req.ItemSets),
		Header:       headerEntries(engine),
		Bases:        patternBases(engine),
		ItemSets:     itemSets,
		NodeCount:    engine.Stats().Nodes,
		Cached:       cached,
	}
	run.DurationMS = float64(time.Since(start).Microseconds()) / 1000

	if s.store != nil {
		if err := s.store.SaveRun(ctx, run); err != nil {
			metrics.RecordRun("error", 0)
			return nil, fmt.Errorf("persist run: %w", err)
		}
	}

	metrics.RecordRun("success", len(itemSets))
	logging.Ctx(ctx).Info().
		Str("component", "mining").
		Str("run_id", run.ID).
		Int("transactions", run.Transactions).
		Int("min_support", run.MinSupport).
		Int("min_item_count", run.MinItemCount).
		Int("item_sets", len(itemSets)).
		Bool("cached", cached).
		Float64("duration_ms", run.DurationMS).
		Msg("Mining run completed")

	return run, nil
}

// engine returns a built engine for req and whether it came from the cache.
func (s *Service) engine(req Request) (*fpgrowth.Engine[string], bool, error) {
	var key string
	if s.engines != nil {
		var err error
		key, err = fingerprint(req.ItemSets, req.MinSupport)
		if err != nil {
			return nil, false, err
		}
		if engine, ok := s.engines.Get(key); ok {
			metrics.RecordEngineCache(true)
			return engine, true, nil
		}
		metrics.RecordEngineCache(false)
	}

	engine, err := fpgrowth.New[string](req.MinSupport, fpgrowth.WithLogger(s.logger))
	if err != nil {
		return nil, false, fmt.Errorf("create engine: %w", err)
	}
	if err := engine.Build(req.ItemSets); err != nil {
		return nil, false, fmt.Errorf("build engine: %w", err)
	}

	stats := engine.Stats()
	metrics.RecordBuild(stats.BuildDuration, stats.FrequentItems, stats.Nodes)

	if s.engines != nil {
		s.engines.Add(key, engine)
	}
	return engine, false, nil
}

// PruneEngines drops expired engines from the cache and returns how many
// were removed.
func (s *Service) PruneEngines() int {
	if s.engines == nil {
		return 0
	}
	return s.engines.CleanupExpired()
}

// GetRun returns a persisted run.
func (s *Service) GetRun(ctx context.Context, id string) (*models.Run, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	return s.store.GetRun(ctx, id)
}

// ListRuns returns summaries of persisted runs, newest first.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]models.RunSummary, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	return s.store.ListRuns(ctx, limit)
}

// DeleteRun removes a persisted run.
func (s *Service) DeleteRun(ctx context.Context, id string) error {
	if s.store == nil {
		return ErrNoStore
	}
	if err := s.store.DeleteRun(ctx, id); err != nil {
		return err
	}
	logging.Ctx(ctx).Info().Str("component", "mining").Str("run_id", id).Msg("Run deleted")
	return nil
}

// fingerprint hashes the inputs that determine a built engine.
func fingerprint(itemSets [][]string, minSupport int) (string, error) {
	data, err := json.Marshal(struct {
		MinSupport int        `json:"s"`
		ItemSets   [][]string `json:"i"`
	}{minSupport, itemSets})
	if err != nil {
		return "", fmt.Errorf("fingerprint item sets: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func headerEntries(engine *fpgrowth.Engine[string]) []models.HeaderEntry {
	entries := engine.HeaderTable().Entries()
	out := make([]models.HeaderEntry, len(entries))
	for i, h := range entries {
		out[i] = models.HeaderEntry{Item: h.Item, Frequency: h.Frequency}
	}
	return out
}

func patternBases(engine *fpgrowth.Engine[string]) []models.PatternBase {
	bases := engine.ConditionalPatternBases()
	out := make([]models.PatternBase, len(bases))
	for i, b := range bases {
		out[i] = models.PatternBase{Item: b.Item, Items: b.Items}
	}
	return out
}
