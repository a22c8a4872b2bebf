//go:build integration

package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/JaimeStill/discvault/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedis_Integration(t *testing.T) {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sys, err := cache.New(&cache.Config{
		Backend: cache.BackendRedis,
		URL:     "redis://" + endpoint,
		Prefix:  "test:",
	}, nil, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sys.Close() })

	require.NoError(t, sys.Ping(ctx))

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, sys.Set(ctx, "album", []byte("abbey road"), time.Minute))

		got, err := sys.Get(ctx, "album")
		require.NoError(t, err)
		assert.Equal(t, "abbey road", string(got))
	})

	t.Run("miss", func(t *testing.T) {
		_, err := sys.Get(ctx, "absent")
		assert.ErrorIs(t, err, cache.ErrMiss)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, sys.Set(ctx, "gone", []byte("x"), 0))
		require.NoError(t, sys.Delete(ctx, "gone"))

		_, err := sys.Get(ctx, "gone")
		assert.ErrorIs(t, err, cache.ErrMiss)
	})

	t.Run("expiry", func(t *testing.T) {
		require.NoError(t, sys.Set(ctx, "brief", []byte("x"), time.Second))

		assert.Eventually(t, func() bool {
			_, err := sys.Get(ctx, "brief")
			return err == cache.ErrMiss
		}, 5*time.Second, 100*time.Millisecond)
	})
}
