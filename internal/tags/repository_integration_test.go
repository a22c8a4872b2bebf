//go:build integration

package tags_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/discvault/internal/tags"
	"github.com/JaimeStill/discvault/internal/testdb"
	"github.com/JaimeStill/discvault/pkg/pagination"
)

var db *testdb.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	db, err = testdb.Start(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start test database: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := db.Close(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "stop test database: %v\n", err)
	}
	os.Exit(code)
}

func newSystem(t *testing.T) tags.System {
	t.Helper()
	db.Reset(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return tags.New(db.DB, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func TestCreate_DefaultColor(t *testing.T) {
	sys := newSystem(t)

	tag, err := sys.Create(context.Background(), tags.CreateCommand{Name: "Live"})
	require.NoError(t, err)
	assert.Equal(t, tags.DefaultColor, tag.Color)
}

func TestCreate_DuplicateName(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	_, err := sys.Create(ctx, tags.CreateCommand{Name: "Live"})
	require.NoError(t, err)

	_, err = sys.Create(ctx, tags.CreateCommand{Name: "Live", Color: "#123456"})
	assert.ErrorIs(t, err, tags.ErrDuplicate)

	other, err := sys.Create(ctx, tags.CreateCommand{Name: "Bootleg"})
	require.NoError(t, err)
	_, err = sys.Update(ctx, other.ID, tags.UpdateCommand{Name: "Live"})
	assert.ErrorIs(t, err, tags.ErrDuplicate)
}

func TestFindOrCreate_Concurrent(t *testing.T) {
	db.Reset(t)
	ctx := context.Background()

	const n = 8
	ids := make([]int64, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i], errs[i] = tags.FindOrCreate(ctx, db.DB, "Jazz")
		}()
	}
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}
}
