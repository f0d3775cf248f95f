// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate clears the process environment and moves into an empty directory
// so no stray config.yaml or variable leaks into the test.
func isolate(t *testing.T) {
	t.Helper()
	saved := os.Environ()
	os.Clearenv()
	t.Cleanup(func() {
		os.Clearenv()
		for _, kv := range saved {
			if k, v, ok := strings.Cut(kv, "="); ok {
				os.Setenv(k, v)
			}
		}
	})
	t.Chdir(t.TempDir())
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Mining.MinSupport != 3 {
		t.Errorf("Mining.MinSupport = %d, want 3", cfg.Mining.MinSupport)
	}
	if cfg.Mining.MinItemCount != 2 {
		t.Errorf("Mining.MinItemCount = %d, want 2", cfg.Mining.MinItemCount)
	}
	if cfg.Mining.EngineCacheTTL != 10*time.Minute {
		t.Errorf("Mining.EngineCacheTTL = %v, want 10m", cfg.Mining.EngineCacheTTL)
	}
	if cfg.Store.Enabled {
		t.Error("Store.Enabled should be false by default")
	}
	if cfg.Store.GCInterval != 10*time.Minute {
		t.Errorf("Store.GCInterval = %v, want 10m", cfg.Store.GCInterval)
	}
	if cfg.Server.Port != 8480 {
		t.Errorf("Server.Port = %d, want 8480", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"MIN_SUPPORT", "mining.min_support"},
		{"DUCKDB_QUERY", "dataset.duckdb_query"},
		{"STORE_PATH", "store.path"},
		{"HTTP_PORT", "server.port"},
		{"RATE_LIMIT_REQUESTS", "server.rate_limit_reqs"},
		{"LOG_FORMAT", "logging.format"},
		{"HOME", ""},
		{"PATH", ""},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	isolate(t)

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}

	if err := os.WriteFile("config.yaml", []byte("mining: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(); got != "config.yaml" {
		t.Errorf("findConfigFile() = %q, want config.yaml", got)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(custom, []byte("mining: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, custom)
	if got := findConfigFile(); got != custom {
		t.Errorf("findConfigFile() = %q, want %q", got, custom)
	}

	t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
	if got := findConfigFile(); got != "config.yaml" {
		t.Errorf("missing CONFIG_PATH should fall back, got %q", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mining.MinSupport != 3 || cfg.Server.Port != 8480 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.Server.CORSOrigins)
	}
}

func TestLoad_EnvVars(t *testing.T) {
	isolate(t)
	t.Setenv("MIN_SUPPORT", "5")
	t.Setenv("ENGINE_CACHE_TTL", "90s")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mining.MinSupport != 5 {
		t.Errorf("MinSupport = %d, want 5", cfg.Mining.MinSupport)
	}
	if cfg.Mining.EngineCacheTTL != 90*time.Second {
		t.Errorf("EngineCacheTTL = %v, want 90s", cfg.Mining.EngineCacheTTL)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[0] != want[0] || cfg.Server.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Server.CORSOrigins, want)
	}
}

func TestLoad_FileAndEnvPrecedence(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "fpgrowth.yaml")
	content := `mining:
  min_support: 4
  min_item_count: 3
store:
  enabled: true
  path: /tmp/runs
server:
  port: 7000
logging:
  level: warn
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mining.MinSupport != 4 || cfg.Mining.MinItemCount != 3 {
		t.Errorf("mining from file = %+v", cfg.Mining)
	}
	if !cfg.Store.Enabled || cfg.Store.Path != "/tmp/runs" {
		t.Errorf("store from file = %+v", cfg.Store)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("env should override file: port = %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("unset values keep defaults: timeout = %v", cfg.Server.Timeout)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"zero min support", map[string]string{"MIN_SUPPORT": "0"}},
		{"zero min item count", map[string]string{"MIN_ITEM_COUNT": "0"}},
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}},
		{"bad dataset format", map[string]string{"DATASET_FORMAT": "parquet"}},
		{"dsn without query", map[string]string{"DUCKDB_DSN": ":memory:"}},
		{"store without path", map[string]string{"STORE_ENABLED": "true", "STORE_PATH": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8480}
	if got := s.Addr(); got != "127.0.0.1:8480" {
		t.Errorf("Addr() = %q", got)
	}
}
