// Package config loads service configuration from config.toml, an optional
// config.<env>.toml overlay, and WEEKLY_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/weekly/pkg/database"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvWeeklyEnv             = "WEEKLY_ENV"
	EnvWeeklyShutdownTimeout = "WEEKLY_SHUTDOWN_TIMEOUT"
	EnvWeeklyVersion         = "WEEKLY_VERSION"
)

var databaseEnv = &database.Env{
	Driver:          "WEEKLY_DB_DRIVER",
	Host:            "WEEKLY_DB_HOST",
	Port:            "WEEKLY_DB_PORT",
	Name:            "WEEKLY_DB_NAME",
	User:            "WEEKLY_DB_USER",
	Password:        "WEEKLY_DB_PASSWORD",
	SSLMode:         "WEEKLY_DB_SSL_MODE",
	Path:            "WEEKLY_DB_PATH",
	MaxOpenConns:    "WEEKLY_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "WEEKLY_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "WEEKLY_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "WEEKLY_DB_CONN_TIMEOUT",
}

// Config is the root configuration for the weekly service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	API             APIConfig       `toml:"api"`
	Composer        ComposerConfig  `toml:"composer"`
	Logging         LoggingConfig   `toml:"logging"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the WEEKLY_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvWeeklyEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads config.toml from the working directory (if present), applies
// any environment overlay, and finalizes all values.
func Load() (*Config, error) {
	return LoadDir(".")
}

// LoadDir is Load against the config files in dir.
func LoadDir(dir string) (*Config, error) {
	cfg := &Config{}

	base := dir + string(os.PathSeparator) + BaseConfigFile
	if _, err := os.Stat(base); err == nil {
		loaded, err := load(base)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(dir); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.API.Merge(&overlay.API)
	c.Composer.Merge(&overlay.Composer)
	c.Logging.Merge(&overlay.Logging)
}

// Finalize applies defaults, environment overrides, and validation to the
// root and every sub-config.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Composer.Finalize(); err != nil {
		return fmt.Errorf("composer: %w", err)
	}
	if err := c.Logging.Finalize(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvWeeklyShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvWeeklyVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(dir string) string {
	if env := os.Getenv(EnvWeeklyEnv); env != "" {
		path := dir + string(os.PathSeparator) + fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
