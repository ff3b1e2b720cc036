package database_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/weekly/pkg/database"
	"github.com/JaimeStill/weekly/pkg/lifecycle"
)

func TestFinalizeDefaults(t *testing.T) {
	cfg := database.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Enabled() {
		t.Error("database should be disabled by default")
	}
	if cfg.Port != 5432 || cfg.SSLMode != "disable" || cfg.ConnTimeout != "5s" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestFinalizeValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     database.Config
		wantErr string
	}{
		{"postgres missing name", database.Config{Driver: "postgres", User: "u"}, "name required"},
		{"postgres missing user", database.Config{Driver: "postgres", Name: "n"}, "user required"},
		{"unknown driver", database.Config{Driver: "oracle"}, "unsupported driver"},
		{"bad timeout", database.Config{Driver: "sqlite", ConnTimeout: "soon"}, "conn_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_DB_DRIVER", "postgres")
	t.Setenv("TEST_DB_HOST", "remotehost")
	t.Setenv("TEST_DB_PORT", "5433")
	t.Setenv("TEST_DB_NAME", "envdb")
	t.Setenv("TEST_DB_USER", "envuser")

	cfg := database.Config{}
	env := &database.Env{
		Driver: "TEST_DB_DRIVER",
		Host:   "TEST_DB_HOST",
		Port:   "TEST_DB_PORT",
		Name:   "TEST_DB_NAME",
		User:   "TEST_DB_USER",
	}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Driver != "postgres" || cfg.Host != "remotehost" || cfg.Port != 5433 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if got := cfg.DriverName(); got != "pgx" {
		t.Errorf("driver name: got %s, want pgx", got)
	}
	if !strings.Contains(cfg.Dsn(), "dbname=envdb") {
		t.Errorf("dsn: got %s", cfg.Dsn())
	}
	if got := cfg.MigrateURL(); !strings.HasPrefix(got, "postgres://envuser:@remotehost:5433/envdb") {
		t.Errorf("migrate url: got %s", got)
	}
}

func TestMerge(t *testing.T) {
	base := database.Config{Driver: "postgres", Host: "localhost", Port: 5432}
	base.Merge(&database.Config{Host: "prodhost"})

	if base.Host != "prodhost" || base.Port != 5432 || base.Driver != "postgres" {
		t.Errorf("merge: got %+v", base)
	}
}

func TestSQLiteStartAndShutdown(t *testing.T) {
	cfg := database.Config{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "weekly.db"),
	}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	sys, err := database.New(&cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("start: %v", err)
	}
	lc.WaitForStartup()

	if err := sys.Connection().Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestNewDisabled(t *testing.T) {
	cfg := database.Config{Driver: "none"}
	if _, err := database.New(&cfg, slog.Default()); err == nil {
		t.Error("expected error for disabled driver")
	}
}
