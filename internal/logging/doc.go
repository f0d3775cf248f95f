// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

// Package logging provides centralized zerolog-based structured logging for fpgrowth.
//
// # Quick Start
//
//	import "github.com/tomtom215/fpgrowth/internal/logging"
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logging.Info().Int("item_sets", n).Msg("Dataset loaded")
//	logging.Error().Err(err).Msg("Mining failed")
//
//	// With context (correlation ID)
//	logging.Ctx(ctx).Info().Str("run_id", id).Msg("Run stored")
//
// # Configuration
//
// Environment Variables:
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// The config package reads these and passes them to Init.
//
// # slog Integration
//
// Suture reports supervisor events through log/slog. NewSlogLogger returns an
// slog.Logger that writes through the global zerolog logger:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
