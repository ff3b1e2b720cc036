package api

import (
	"github.com/JaimeStill/weekly/internal/config"
	"github.com/JaimeStill/weekly/internal/generations"
	"github.com/JaimeStill/weekly/internal/updates"
)

// Domain holds all domain systems that comprise the API. Generations is nil
// when the generation log is disabled.
type Domain struct {
	Updates     updates.System
	Generations generations.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime, cfg *config.Config) *Domain {
	domain := &Domain{}

	var recorder updates.Recorder
	if runtime.Database != nil {
		domain.Generations = generations.New(
			runtime.Database.Connection(),
			runtime.Logger,
			runtime.Pagination,
		)
		recorder = domain.Generations
	}

	domain.Updates = updates.New(
		runtime.Catalog,
		cfg.Composer.Options(),
		recorder,
		runtime.Logger,
	)

	return domain
}
