package api

import (
	"net/http"

	"github.com/JaimeStill/weekly/internal/config"
	"github.com/JaimeStill/weekly/internal/generations"
	"github.com/JaimeStill/weekly/internal/updates"
	"github.com/JaimeStill/weekly/pkg/openapi"
	"github.com/JaimeStill/weekly/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain, cfg *config.Config) error {
	groups := []routes.Group{
		domain.Updates.Handler(cfg.API.MaxBodySizeBytes(), cfg.API.BatchConcurrency).Routes(),
	}
	if domain.Generations != nil {
		groups = append(groups, domain.Generations.Handler().Routes())
	}
	routes.Register(mux, groups...)

	specBytes, err := openapi.MarshalJSON(BuildSpec(cfg, domain.Generations != nil))
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	return nil
}

// BuildSpec assembles the OpenAPI document for the API. The generation log
// paths are included only when withGenerations is set.
func BuildSpec(cfg *config.Config, withGenerations bool) *openapi.Spec {
	spec := openapi.NewSpec(&cfg.API.OpenAPI, cfg.Version)
	spec.AddServer(cfg.API.BasePath)

	spec.AddPaths("", updates.Paths)
	spec.AddSchemas(updates.Schemas)

	if withGenerations {
		spec.AddPaths("", generations.Paths)
		spec.AddSchemas(generations.Schemas)
	}

	return spec
}
