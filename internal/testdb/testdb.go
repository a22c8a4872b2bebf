//go:build integration

// Package testdb runs a disposable PostgreSQL container with the DiscVault
// schema applied, for repository integration tests.
package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/JaimeStill/discvault/pkg/database"
)

// Tables lists every application table in truncation order.
var Tables = []string{
	"tracks",
	"album_tags",
	"album_artists",
	"albums",
	"artists",
	"tags",
	"genres",
	"locations",
}

// DB is a migrated connection to a containerized PostgreSQL instance.
type DB struct {
	*sql.DB
	container *postgres.PostgresContainer
}

// Start launches the container, applies the embedded migrations and opens a
// pgx-backed connection.
func Start(ctx context.Context) (*DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("discvault"),
		postgres.WithUsername("discvault"),
		postgres.WithPassword("discvault"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("connection string: %w", err)
	}

	cfg := &database.Config{URL: dsn}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m, err := database.NewMigrator(cfg, logger)
	if err != nil {
		container.Terminate(ctx)
		return nil, err
	}
	err = m.Up()
	m.Close()
	if err != nil {
		container.Terminate(ctx)
		return nil, err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &DB{DB: db, container: container}, nil
}

// Close closes the connection and terminates the container.
func (d *DB) Close(ctx context.Context) error {
	d.DB.Close()
	return d.container.Terminate(ctx)
}

// Reset truncates every table and restarts identity sequences once t finishes.
func (d *DB) Reset(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		_, err := d.ExecContext(context.Background(), "TRUNCATE "+strings.Join(Tables, ", ")+" RESTART IDENTITY CASCADE")
		if err != nil {
			t.Logf("truncate tables: %v", err)
		}
	})
}

