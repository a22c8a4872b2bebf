// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, storage, cache) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/JaimeStill/discvault/internal/config"
	"github.com/JaimeStill/discvault/pkg/cache"
	"github.com/JaimeStill/discvault/pkg/database"
	"github.com/JaimeStill/discvault/pkg/lifecycle"
	"github.com/JaimeStill/discvault/pkg/logging"
	"github.com/JaimeStill/discvault/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, database access, cover storage and the response cache.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Cache     cache.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	c, err := cache.New(&cfg.Cache, clockwork.NewRealClock(), logger)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		Cache:     c,
	}, nil
}

// Start initializes all infrastructure systems and registers them with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	i.startCache()
	return nil
}

func (i *Infrastructure) startCache() {
	logger := i.Logger.With("system", "cache")

	i.Lifecycle.OnStartup(func() {
		if err := i.Cache.Ping(i.Lifecycle.Context()); err != nil {
			logger.Warn("cache ping failed", "error", err)
			return
		}
		logger.Info("cache ready")
	})

	i.Lifecycle.OnShutdown(func() {
		<-i.Lifecycle.Context().Done()
		if err := i.Cache.Close(); err != nil {
			logger.Error("cache close failed", "error", err)
		}
	})
}
