package scan_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/discvault/internal/albums"
	"github.com/JaimeStill/discvault/internal/lookup"
	"github.com/JaimeStill/discvault/internal/scan"
	"github.com/JaimeStill/discvault/pkg/openapi"
	"github.com/JaimeStill/discvault/pkg/routes"
)

type stubLookup struct {
	release *lookup.Release
	err     error
}

func (s stubLookup) LookupBarcode(context.Context, string) (*lookup.Release, error) {
	return s.release, s.err
}

type stubAlbums struct {
	albums.System
	imported  *albums.ImportCommand
	importErr error
	fetched   int64
	fetchErr  error
}

func (s *stubAlbums) Import(_ context.Context, cmd albums.ImportCommand) (*albums.Detail, error) {
	if s.importErr != nil {
		return nil, s.importErr
	}
	s.imported = &cmd
	return &albums.Detail{Album: albums.Album{ID: 11, Title: cmd.Album.Title, CoverURL: cmd.Album.CoverURL}}, nil
}

func (s *stubAlbums) FetchCover(_ context.Context, id int64) (*albums.Album, error) {
	s.fetched = id
	return &albums.Album{ID: id, HasCover: s.fetchErr == nil}, s.fetchErr
}

func str(s string) *string { return &s }

func kindOfBlue() *lookup.Release {
	year := 1959
	return &lookup.Release{
		Title:     "Kind of Blue",
		Year:      &year,
		Artists:   []string{"Miles Davis"},
		Genres:    []string{"Jazz", "Modal Jazz"},
		Barcode:   "074646493521",
		CatalogNo: str("CK 64935"),
		CoverURL:  str("https://coverartarchive.org/release/x/front-250"),
		Tracks: []lookup.Track{
			{TrackNo: 1, Title: "So What", Duration: str("9:22"), DiscNo: 1, DiscName: "CD"},
			{TrackNo: 1, Title: "Bonus", DiscNo: 2},
		},
	}
}

func logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestImportCommand(t *testing.T) {
	loc := int64(4)
	cmd := scan.ImportCommand(kindOfBlue(), scan.Options{LocationID: &loc, MediaType: "SACD"})

	assert.Equal(t, "Kind of Blue", cmd.Album.Title)
	require.NotNil(t, cmd.Album.UPCEAN)
	assert.Equal(t, "074646493521", *cmd.Album.UPCEAN)
	assert.Equal(t, "SACD", cmd.Album.MediaType)
	assert.Equal(t, &loc, cmd.Album.LocationID)
	assert.Equal(t, []string{"Miles Davis"}, cmd.Artists)
	assert.Equal(t, []string{"Jazz", "Modal Jazz"}, cmd.Tags)

	require.Len(t, cmd.Tracks, 2)
	require.NotNil(t, cmd.Tracks[0].DiscName)
	assert.Equal(t, "CD", *cmd.Tracks[0].DiscName)
	assert.Nil(t, cmd.Tracks[1].DiscName)
	assert.Equal(t, 2, cmd.Tracks[1].DiscNo)
}

func TestScan_FetchesCover(t *testing.T) {
	catalog := &stubAlbums{}
	sys := scan.New(stubLookup{release: kindOfBlue()}, catalog, logger())

	d, err := sys.Scan(context.Background(), "074646493521", scan.Options{FetchCover: true})
	require.NoError(t, err)

	assert.Equal(t, int64(11), d.ID)
	assert.Equal(t, int64(11), catalog.fetched)
	assert.True(t, d.HasCover)
}

func TestScan_CoverFailureDoesNotFail(t *testing.T) {
	catalog := &stubAlbums{fetchErr: albums.ErrCoverFetch}
	sys := scan.New(stubLookup{release: kindOfBlue()}, catalog, logger())

	d, err := sys.Scan(context.Background(), "074646493521", scan.Options{FetchCover: true})
	require.NoError(t, err)
	assert.False(t, d.HasCover)
}

func TestScan_LookupErrorSkipsImport(t *testing.T) {
	catalog := &stubAlbums{}
	sys := scan.New(stubLookup{err: lookup.ErrNotFound}, catalog, logger())

	_, err := sys.Scan(context.Background(), "074646493521", scan.Options{})
	assert.ErrorIs(t, err, lookup.ErrNotFound)
	assert.Nil(t, catalog.imported)
}

func TestHandler_Scan(t *testing.T) {
	tests := []struct {
		name      string
		lookup    stubLookup
		importErr error
		target    string
		want      int
	}{
		{"created", stubLookup{release: kindOfBlue()}, nil, "/scan/074646493521?location_id=2", http.StatusCreated},
		{"not found", stubLookup{err: lookup.ErrNotFound}, nil, "/scan/074646493521", http.StatusNotFound},
		{"invalid barcode", stubLookup{err: lookup.ErrInvalidBarcode}, nil, "/scan/12", http.StatusBadRequest},
		{"upstream down", stubLookup{err: lookup.ErrUnavailable}, nil, "/scan/074646493521", http.StatusBadGateway},
		{"duplicate", stubLookup{release: kindOfBlue()}, albums.ErrDuplicateBarcode, "/scan/074646493521", http.StatusConflict},
		{"bad location", stubLookup{release: kindOfBlue()}, nil, "/scan/074646493521?location_id=x", http.StatusBadRequest},
		{"unexpected", stubLookup{release: kindOfBlue()}, errors.New("boom"), "/scan/074646493521", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := scan.New(tt.lookup, &stubAlbums{importErr: tt.importErr}, logger())
			h := scan.NewHandler(sys, logger())
			mux := http.NewServeMux()
			routes.Register(mux, "/api", openapi.NewSpec("test", "0.0.0"), h.Routes())

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.target, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
