// Package infrastructure assembles the shared systems every module needs:
// lifecycle coordination, logging, the content catalog, and the optional
// generation-log database.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/JaimeStill/weekly/internal/catalog"
	"github.com/JaimeStill/weekly/internal/config"
	"github.com/JaimeStill/weekly/pkg/database"
	"github.com/JaimeStill/weekly/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// Database is nil when no driver is configured.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Catalog   *catalog.Catalog
	Database  database.System
}

// New creates an Infrastructure from cfg, logging to w. Systems are created
// but not started; call Start separately.
func New(cfg *config.Config, w io.Writer) (*Infrastructure, error) {
	logger := cfg.Logging.NewLogger(w)

	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Catalog:   catalog.Default(),
	}

	if cfg.Database.Enabled() {
		db, err := database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
	}

	return infra, nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Database == nil {
		i.Logger.Info("generation log disabled", "reason", "no database driver configured")
		return nil
	}
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
