// Package api assembles the DiscVault JSON API module: domain systems,
// HTTP handlers, the generated OpenAPI document and module middleware.
package api

import (
	"net/http"

	"github.com/JaimeStill/discvault/internal/config"
	"github.com/JaimeStill/discvault/internal/infrastructure"
	"github.com/JaimeStill/discvault/internal/metrics"
	"github.com/JaimeStill/discvault/pkg/middleware"
	"github.com/JaimeStill/discvault/pkg/module"
	"github.com/JaimeStill/discvault/pkg/openapi"
)

// NewModule creates the API module mounted at cfg.API.BasePath.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain, err := NewDomain(cfg, runtime)
	if err != nil {
		return nil, err
	}

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	if cfg.Domain != "" {
		spec.AddServer(cfg.Domain)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.Metrics(metrics.HTTP, nil))

	return m, nil
}
