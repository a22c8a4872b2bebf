//go:build integration

package database_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/JaimeStill/discvault/pkg/database"
	"github.com/JaimeStill/discvault/pkg/lifecycle"
)

func TestMigrator_UpDown(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:17-alpine",
		postgres.WithDatabase("discvault"),
		postgres.WithUsername("vault"),
		postgres.WithPassword("vault"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := &database.Config{URL: url}
	require.NoError(t, cfg.Finalize(nil))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m, err := database.NewMigrator(cfg, logger)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Up())
	require.NoError(t, m.Up(), "second Up should be a no-op")

	version, dirty, err := m.Version()
	require.NoError(t, err)
	require.False(t, dirty)
	require.EqualValues(t, 1, version)

	db, err := database.New(cfg, logger)
	require.NoError(t, err)

	lc := lifecycle.New()
	require.NoError(t, db.Start(lc))
	lc.WaitForStartup()
	require.NoError(t, db.Ping(ctx))

	var count int
	require.NoError(t, db.Connection().QueryRowContext(ctx, "SELECT COUNT(*) FROM albums").Scan(&count))
	require.Zero(t, count)

	require.NoError(t, m.Down(1))
	version, _, err = m.Version()
	require.NoError(t, err)
	require.EqualValues(t, 0, version)

	require.NoError(t, lc.Shutdown(5*time.Second))
}
