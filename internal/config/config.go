// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/fpgrowth/internal/validation"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete application configuration.
type Config struct {
	Mining  MiningConfig  `koanf:"mining"`
	Dataset DatasetConfig `koanf:"dataset"`
	Store   StoreConfig   `koanf:"store"`
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
}

// MiningConfig holds the default thresholds and engine reuse settings.
type MiningConfig struct {
	MinSupport   int `koanf:"min_support" validate:"min=1"`
	MinItemCount int `koanf:"min_item_count" validate:"min=1"`

	// EngineCacheSize bounds the number of built engines kept for reuse.
	// Zero disables reuse.
	EngineCacheSize int           `koanf:"engine_cache_size" validate:"gte=0"`
	EngineCacheTTL  time.Duration `koanf:"engine_cache_ttl" validate:"gte=0"`
}

// DatasetConfig selects the default item-set source for the mine command.
type DatasetConfig struct {
	Path   string `koanf:"path"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text csv"`

	DuckDBDSN   string `koanf:"duckdb_dsn"`
	DuckDBQuery string `koanf:"duckdb_query" validate:"required_with=DuckDBDSN"`
}

// StoreConfig controls run persistence in BadgerDB.
type StoreConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Path       string        `koanf:"path" validate:"required_if=Enabled true"`
	SyncWrites bool          `koanf:"sync_writes"`
	GCInterval time.Duration `koanf:"gc_interval" validate:"gte=0"` // 0 disables value log GC
}

// ServerConfig holds HTTP server settings for the serve command.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs" validate:"gte=0"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window" validate:"gte=0"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig mirrors logging.Config for the configurable fields.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Validate checks every section against its struct constraints.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, verr.Error())
	}
	return nil
}
