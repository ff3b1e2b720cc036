package api

import (
	"github.com/JaimeStill/weekly/internal/config"
	"github.com/JaimeStill/weekly/internal/infrastructure"
	"github.com/JaimeStill/weekly/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Catalog:   infra.Catalog,
			Database:  infra.Database,
		},
		Pagination: cfg.API.Pagination,
	}
}
