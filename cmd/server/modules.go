package main

import (
	"net/http"

	"github.com/JaimeStill/weekly/internal/api"
	"github.com/JaimeStill/weekly/internal/config"
	"github.com/JaimeStill/weekly/internal/infrastructure"
	"github.com/JaimeStill/weekly/pkg/handlers"
	"github.com/JaimeStill/weekly/pkg/module"
	"github.com/JaimeStill/weekly/web/app"
)

const appPrefix = "/app"

// Modules holds the mounted HTTP modules.
type Modules struct {
	API *module.Module
	App *module.Module
}

// NewModules builds every module from the shared infrastructure. The API and
// the composer UI share one domain, so form compositions are recorded too.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	runtime := api.NewRuntime(cfg, infra)
	domain := api.NewDomain(runtime, cfg)

	apiModule, err := api.NewModule(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(appPrefix, domain.Updates, infra.Logger, cfg.API.MaxBodySizeBytes())
	if err != nil {
		return nil, err
	}

	return &Modules{API: apiModule, App: appModule}, nil
}

// Mount attaches each module to router.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, appPrefix, http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	return router
}
