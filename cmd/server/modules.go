package main

import (
	"net/http"

	"github.com/JaimeStill/discvault/internal/api"
	"github.com/JaimeStill/discvault/internal/config"
	"github.com/JaimeStill/discvault/internal/infrastructure"
	"github.com/JaimeStill/discvault/internal/metrics"
	"github.com/JaimeStill/discvault/pkg/middleware"
	"github.com/JaimeStill/discvault/pkg/module"
	"github.com/JaimeStill/discvault/pkg/theme"
	"github.com/JaimeStill/discvault/web/app"
	"github.com/JaimeStill/discvault/web/scalar"
)

type Modules struct {
	API    *module.Module
	App    *module.Module
	Scalar *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	th, err := loadTheme(&cfg.App)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(cfg.App.BasePath, app.Routes, th)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))
	appModule.Use(middleware.Metrics(metrics.HTTP, nil))

	scalarModule, err := scalar.NewModule("/scalar", cfg.API.BasePath+"/openapi.json")
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:    apiModule,
		App:    appModule,
		Scalar: scalarModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
	router.Mount(m.Scalar)
}

func loadTheme(cfg *config.AppConfig) (*theme.Theme, error) {
	if cfg.ThemeFile == "" {
		return theme.Default(), nil
	}
	return theme.Load(cfg.ThemeFile)
}

func buildRouter(infra *infrastructure.Infrastructure, appPath string) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	router.HandleNative("GET /metrics", metrics.Handler().ServeHTTP)

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, appPath, http.StatusFound)
	})

	return router
}
