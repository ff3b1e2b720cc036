package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/weekly/pkg/formatting"
	"github.com/JaimeStill/weekly/pkg/middleware"
	"github.com/JaimeStill/weekly/pkg/openapi"
	"github.com/JaimeStill/weekly/pkg/pagination"
)

const (
	EnvAPIBasePath         = "WEEKLY_API_BASE_PATH"
	EnvAPIMaxBodySize      = "WEEKLY_API_MAX_BODY_SIZE"
	EnvAPIBatchConcurrency = "WEEKLY_API_BATCH_CONCURRENCY"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "WEEKLY_CORS_ENABLED",
	Origins:          "WEEKLY_CORS_ORIGINS",
	AllowedMethods:   "WEEKLY_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "WEEKLY_CORS_ALLOWED_HEADERS",
	AllowCredentials: "WEEKLY_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "WEEKLY_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "WEEKLY_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "WEEKLY_PAGINATION_MAX_PAGE_SIZE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "WEEKLY_OPENAPI_TITLE",
	Description: "WEEKLY_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, limits, CORS, pagination, and OpenAPI settings.
type APIConfig struct {
	BasePath         string                `toml:"base_path"`
	MaxBodySize      string                `toml:"max_body_size"`
	BatchConcurrency int                   `toml:"batch_concurrency"`
	CORS             middleware.CORSConfig `toml:"cors"`
	Pagination       pagination.Config     `toml:"pagination"`
	OpenAPI          openapi.Config        `toml:"openapi"`
}

// MaxBodySizeBytes returns MaxBodySize in bytes. Finalize guarantees it parses.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, _ := formatting.ParseBytes(c.MaxBodySize)
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
	if overlay.BatchConcurrency != 0 {
		c.BatchConcurrency = overlay.BatchConcurrency
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
	if c.BatchConcurrency == 0 {
		c.BatchConcurrency = 4
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
	if v := os.Getenv(EnvAPIBatchConcurrency); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.BatchConcurrency = n
		}
	}
}

func (c *APIConfig) validate() error {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_body_size must be positive")
	}
	if c.BatchConcurrency < 1 {
		return fmt.Errorf("batch_concurrency must be at least 1")
	}
	return nil
}
