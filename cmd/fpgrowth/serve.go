// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tomtom215/fpgrowth/internal/api"
	"github.com/tomtom215/fpgrowth/internal/config"
	"github.com/tomtom215/fpgrowth/internal/logging"
	"github.com/tomtom215/fpgrowth/internal/mining"
	"github.com/tomtom215/fpgrowth/internal/store"
	"github.com/tomtom215/fpgrowth/internal/supervisor"
	"github.com/tomtom215/fpgrowth/internal/supervisor/services"
)

func runServe(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := loadConfig(stderr)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", cfg.Server.Addr(), "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	logging.Info().Str("version", version).Msg("Starting fpgrowth server")

	var (
		runStore mining.RunStore
		badger   *store.BadgerStore
	)
	if cfg.Store.Enabled {
		badger, err = store.Open(store.Config{Path: cfg.Store.Path, SyncWrites: cfg.Store.SyncWrites})
		if err != nil {
			return fmt.Errorf("open run store: %w", err)
		}
		defer func() {
			if err := badger.Close(); err != nil {
				logging.Err(err).Msg("Error closing run store")
			}
		}()
		runStore = badger
	} else {
		logging.Info().Msg("Run persistence disabled (STORE_ENABLED=false)")
	}

	svc := mining.NewService(mining.Config{
		EngineCacheSize: cfg.Mining.EngineCacheSize,
		EngineCacheTTL:  cfg.Mining.EngineCacheTTL,
	}, runStore)

	handler := api.NewRouter(api.NewHandler(svc, version), api.NewMiddleware(middlewareConfig(cfg)))
	server := &http.Server{
		Addr:              *addr,
		Handler:           http.TimeoutHandler(handler, cfg.Server.Timeout, `{"status":"error","error":{"code":"TIMEOUT","message":"Request timed out"}}`),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	addMaintenance(tree, cfg, svc, badger)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, stopping services")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, u := range unstopped {
			logging.Warn().Str("service", u.Name).Msg("Service failed to stop within timeout")
		}
	}

	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return serveErr
	}
	logging.Info().Msg("Server stopped gracefully")
	return nil
}

func middlewareConfig(cfg *config.Config) api.MiddlewareConfig {
	mw := api.DefaultMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Server.CORSOrigins
	mw.RateLimitRequests = cfg.Server.RateLimitReqs
	mw.RateLimitWindow = cfg.Server.RateLimitWindow
	return mw
}

// addMaintenance registers the background housekeeping services.
// badger may be nil when persistence is disabled.
func addMaintenance(tree *supervisor.SupervisorTree, cfg *config.Config, svc *mining.Service, badger *store.BadgerStore) {
	if cfg.Mining.EngineCacheSize > 0 && cfg.Mining.EngineCacheTTL > 0 {
		tree.AddMaintenanceService(services.NewPeriodicService("engine-cache-prune", cfg.Mining.EngineCacheTTL, func() error {
			if n := svc.PruneEngines(); n > 0 {
				logging.Debug().Int("pruned", n).Msg("Expired engines removed from cache")
			}
			return nil
		}))
	}
	if badger != nil && cfg.Store.GCInterval > 0 {
		tree.AddMaintenanceService(services.NewPeriodicService("run-store-gc", cfg.Store.GCInterval, badger.RunGC).FailFast())
	}
}
