package lookup_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/discvault/internal/lookup"
	"github.com/JaimeStill/discvault/pkg/cache"
)

const searchBody = `{
  "releases": [{
    "id": "4c2a4b3c-0000-4000-8000-000000000001",
    "title": "Kind of Blue",
    "date": "1959-08-17",
    "artist-credit": [{"name": "Miles Davis", "artist": {"name": "Miles Davis"}}],
    "label-info": [{"catalog-number": "CK 64935"}]
  }]
}`

const detailBody = `{
  "id": "4c2a4b3c-0000-4000-8000-000000000001",
  "tags": [
    {"name": "modal jazz", "count": 3},
    {"name": "jazz", "count": 9},
    {"name": "hard bop", "count": 1}
  ],
  "media": [
    {"format": "CD", "tracks": [
      {"number": "1", "position": 1, "title": "So What", "length": 562000, "recording": {"title": "So What"}},
      {"number": "2", "position": 2, "title": "Freddie Freeloader", "length": null, "recording": {"title": ""}}
    ]},
    {"format": "", "tracks": [
      {"number": "A1", "position": 1, "title": "Bonus", "length": 61000, "recording": {"title": "Bonus Take"}}
    ]}
  ]
}`

type fakeMusicBrainz struct {
	searches atomic.Int32
	details  atomic.Int32

	searchStatus int
	search       string
	detailStatus int
	detail       string
	userAgent    atomic.Value
}

func (f *fakeMusicBrainz) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.userAgent.Store(r.UserAgent())
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/ws/2/release/":
		f.searches.Add(1)
		if r.URL.Query().Get("fmt") != "json" || !strings.HasPrefix(r.URL.Query().Get("query"), "barcode:") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(f.searchStatus)
		io.WriteString(w, f.search)
	case strings.HasPrefix(r.URL.Path, "/ws/2/release/"):
		f.details.Add(1)
		w.WriteHeader(f.detailStatus)
		io.WriteString(w, f.detail)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newFake() *fakeMusicBrainz {
	return &fakeMusicBrainz{
		searchStatus: http.StatusOK,
		search:       searchBody,
		detailStatus: http.StatusOK,
		detail:       detailBody,
	}
}

func newSystem(t *testing.T, fake *fakeMusicBrainz, failures uint32) lookup.System {
	t.Helper()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg := &lookup.Config{
		BaseURL:         srv.URL + "/ws/2",
		Rate:            1000,
		Burst:           100,
		BreakerFailures: failures,
	}
	require.NoError(t, cfg.Finalize(nil))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sys, err := lookup.New(cfg, cache.NewMemory(clockwork.NewFakeClock()), logger)
	require.NoError(t, err)
	return sys
}

func TestLookupBarcode_MapsRelease(t *testing.T) {
	fake := newFake()
	sys := newSystem(t, fake, 5)

	r, err := sys.LookupBarcode(context.Background(), " 074646493521 ")
	require.NoError(t, err)

	assert.Equal(t, "Kind of Blue", r.Title)
	require.NotNil(t, r.Year)
	assert.Equal(t, 1959, *r.Year)
	assert.Equal(t, []string{"Miles Davis"}, r.Artists)
	assert.Equal(t, "074646493521", r.Barcode)
	assert.Equal(t, "4c2a4b3c-0000-4000-8000-000000000001", r.MBID)
	require.NotNil(t, r.CatalogNo)
	assert.Equal(t, "CK 64935", *r.CatalogNo)
	require.NotNil(t, r.CoverURL)
	assert.Equal(t, "https://coverartarchive.org/release/4c2a4b3c-0000-4000-8000-000000000001/front-250", *r.CoverURL)
	assert.Equal(t, []string{"Jazz", "Modal Jazz", "Hard Bop"}, r.Genres)

	require.Len(t, r.Tracks, 3)
	assert.Equal(t, lookup.Track{TrackNo: 1, Title: "So What", Duration: strPtr("9:22"), DiscNo: 1, DiscName: "CD"}, r.Tracks[0])
	assert.Equal(t, "Freddie Freeloader", r.Tracks[1].Title)
	assert.Nil(t, r.Tracks[1].Duration)
	assert.Equal(t, lookup.Track{TrackNo: 1, Title: "Bonus Take", Duration: strPtr("1:01"), DiscNo: 2, DiscName: "Disc 2"}, r.Tracks[2])

	assert.Contains(t, fake.userAgent.Load().(string), "DiscVault/")
}

func TestLookupBarcode_Cached(t *testing.T) {
	fake := newFake()
	sys := newSystem(t, fake, 5)
	ctx := context.Background()

	_, err := sys.LookupBarcode(ctx, "074646493521")
	require.NoError(t, err)
	r, err := sys.LookupBarcode(ctx, "074646493521")
	require.NoError(t, err)

	assert.Equal(t, "Kind of Blue", r.Title)
	assert.Equal(t, int32(1), fake.searches.Load())
	assert.Equal(t, int32(1), fake.details.Load())
}

func TestLookupBarcode_NotFound(t *testing.T) {
	fake := newFake()
	fake.search = `{"releases": []}`
	sys := newSystem(t, fake, 5)

	_, err := sys.LookupBarcode(context.Background(), "00000000")
	assert.ErrorIs(t, err, lookup.ErrNotFound)
	assert.Equal(t, int32(0), fake.details.Load())
}

func TestLookupBarcode_InvalidBarcode(t *testing.T) {
	fake := newFake()
	sys := newSystem(t, fake, 5)

	for _, code := range []string{"", "1234567", "123456789012345", "12345abc"} {
		_, err := sys.LookupBarcode(context.Background(), code)
		assert.ErrorIs(t, err, lookup.ErrInvalidBarcode, code)
	}
	assert.Equal(t, int32(0), fake.searches.Load())
}

func TestLookupBarcode_DetailFailureDegrades(t *testing.T) {
	fake := newFake()
	fake.detailStatus = http.StatusInternalServerError
	fake.detail = `{}`
	sys := newSystem(t, fake, 5)

	r, err := sys.LookupBarcode(context.Background(), "074646493521")
	require.NoError(t, err)

	assert.Equal(t, "Kind of Blue", r.Title)
	assert.Empty(t, r.Tracks)
	assert.Empty(t, r.Genres)
	assert.NotNil(t, r.Tracks)
}

func TestLookupBarcode_ReleaseGroupTags(t *testing.T) {
	fake := newFake()
	fake.detail = `{"tags": [], "release-group": {"tags": [{"name": "cool jazz", "count": 2}]}, "media": []}`
	sys := newSystem(t, fake, 5)

	r, err := sys.LookupBarcode(context.Background(), "074646493521")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cool Jazz"}, r.Genres)
}

func TestLookupBarcode_UpstreamFailureOpensBreaker(t *testing.T) {
	fake := newFake()
	fake.searchStatus = http.StatusServiceUnavailable
	fake.search = `{}`
	sys := newSystem(t, fake, 2)
	ctx := context.Background()

	for range 2 {
		_, err := sys.LookupBarcode(ctx, "074646493521")
		assert.ErrorIs(t, err, lookup.ErrUnavailable)
	}
	require.Equal(t, int32(2), fake.searches.Load())

	_, err := sys.LookupBarcode(ctx, "074646493521")
	assert.ErrorIs(t, err, lookup.ErrUnavailable)
	assert.Equal(t, int32(2), fake.searches.Load(), "open breaker must not reach upstream")
}

func TestMapHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, lookup.MapHTTPStatus(lookup.ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, lookup.MapHTTPStatus(lookup.ErrInvalidBarcode))
	assert.Equal(t, http.StatusBadGateway, lookup.MapHTTPStatus(lookup.ErrUnavailable))
	assert.Equal(t, http.StatusInternalServerError, lookup.MapHTTPStatus(assert.AnError))
}

func strPtr(s string) *string { return &s }
