package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/weekly/internal/compose"
	"github.com/JaimeStill/weekly/internal/config"
)

const baseConfig = `
shutdown_timeout = "20s"
version = "1.2.3"

[server]
host = "127.0.0.1"
port = 8080
read_timeout = "10s"

[database]
driver = "sqlite"
path = "weekly.db"

[api]
base_path = "/api"
max_body_size = "64KB"

[api.pagination]
default_page_size = 25
max_page_size = 50

[composer]
fragment_mode = "pinned"

[logging]
level = "debug"
`

const overlayConfig = `
[server]
port = 9090

[composer]
fragment_mode = "rotated"
symmetric_fragments = true

[logging]
format = "json"
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	if cfg.Server.Port != 8080 || cfg.API.BasePath != "/api" {
		t.Errorf("defaults: server=%+v api=%+v", cfg.Server, cfg.API)
	}
	if cfg.Database.Enabled() {
		t.Error("database should default to disabled")
	}
	if got := cfg.API.MaxBodySizeBytes(); got != 1024*1024 {
		t.Errorf("max body size: got %d, want 1MB", got)
	}
	if opts := cfg.Composer.Options(); opts.Mode != compose.Pinned || opts.SymmetricFragments {
		t.Errorf("composer options: got %+v", opts)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("logging defaults: got %+v", cfg.Logging)
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("shutdown timeout: got %v", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Env() != "local" {
		t.Errorf("env: got %s", cfg.Env())
	}
}

func TestLoadBaseAndOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", baseConfig)
	writeFile(t, dir, "config.prod.toml", overlayConfig)
	t.Setenv("WEEKLY_ENV", "prod")

	cfg, err := config.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	if cfg.Server.Port != 9090 || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server: got %+v", cfg.Server)
	}
	if cfg.Server.ReadTimeoutDuration() != 10*time.Second {
		t.Errorf("read timeout: got %v", cfg.Server.ReadTimeoutDuration())
	}
	if cfg.Database.Driver != "sqlite" || !cfg.Database.Enabled() {
		t.Errorf("database: got %+v", cfg.Database)
	}
	if got := cfg.API.MaxBodySizeBytes(); got != 64*1024 {
		t.Errorf("max body size: got %d", got)
	}
	if cfg.API.Pagination.DefaultPageSize != 25 || cfg.API.Pagination.MaxPageSize != 50 {
		t.Errorf("pagination: got %+v", cfg.API.Pagination)
	}
	if opts := cfg.Composer.Options(); opts.Mode != compose.Rotated || !opts.SymmetricFragments {
		t.Errorf("composer: got %+v", opts)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging: got %+v", cfg.Logging)
	}
	if cfg.Version != "1.2.3" || cfg.ShutdownTimeout != "20s" {
		t.Errorf("root: version=%s shutdown=%s", cfg.Version, cfg.ShutdownTimeout)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", baseConfig)

	t.Setenv("WEEKLY_SERVER_PORT", "7070")
	t.Setenv("WEEKLY_DB_DRIVER", "none")
	t.Setenv("WEEKLY_API_BASE_PATH", "/v1")
	t.Setenv("WEEKLY_COMPOSER_SYMMETRIC_FRAGMENTS", "true")
	t.Setenv("WEEKLY_LOG_LEVEL", "WARN")
	t.Setenv("WEEKLY_OPENAPI_TITLE", "Env API")

	cfg, err := config.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("port: got %d", cfg.Server.Port)
	}
	if cfg.Database.Enabled() {
		t.Error("env should disable the database")
	}
	if cfg.API.BasePath != "/v1" || cfg.API.OpenAPI.Title != "Env API" {
		t.Errorf("api: got %+v", cfg.API)
	}
	if !cfg.Composer.SymmetricFragments {
		t.Error("symmetric fragments should be enabled by env")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level: got %s", cfg.Logging.Level)
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad shutdown", `shutdown_timeout = "soon"`, "shutdown_timeout"},
		{"bad port", "[server]\nport = 70000", "invalid port"},
		{"bad body size", "[api]\nmax_body_size = \"lots\"", "max_body_size"},
		{"bad mode", "[composer]\nfragment_mode = \"random\"", "invalid fragment mode"},
		{"bad log format", "[logging]\nformat = \"xml\"", "invalid format"},
		{"bad driver", "[database]\ndriver = \"oracle\"", "unsupported driver"},
		{"malformed toml", "[server", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "config.toml", tt.content)

			_, err := config.LoadDir(dir)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadDir: got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var sb strings.Builder
	cfg := config.LoggingConfig{Format: "json", Level: "warn"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	logger := cfg.NewLogger(&sb)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := sb.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("expected JSON record, got %q", out)
	}
}
