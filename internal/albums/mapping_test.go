package albums_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/discvault/internal/albums"
	"github.com/JaimeStill/discvault/internal/tracks"
	"github.com/JaimeStill/discvault/pkg/query"
)

func albumProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "albums", "a").
		Project("id", "ID").
		Project("title", "Title").
		Project("year", "Year").
		Project("media_type", "MediaType").
		Project("genre_id", "GenreID").
		Project("archived_at", "ArchivedAt")
}

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{
		"title":       {"blue"},
		"year":        {"1959"},
		"media_type":  {"SACD"},
		"location_id": {"7"},
		"genre_id":    {"x"},
		"archived":    {"all"},
	}

	f := albums.FiltersFromQuery(values)

	if f.Title == nil || *f.Title != "blue" {
		t.Errorf("Title = %v, want blue", f.Title)
	}
	if f.Year == nil || *f.Year != 1959 {
		t.Errorf("Year = %v, want 1959", f.Year)
	}
	if f.MediaType == nil || *f.MediaType != "SACD" {
		t.Errorf("MediaType = %v, want SACD", f.MediaType)
	}
	if f.LocationID == nil || *f.LocationID != 7 {
		t.Errorf("LocationID = %v, want 7", f.LocationID)
	}
	if f.GenreID != nil {
		t.Errorf("GenreID = %v, want nil for malformed value", *f.GenreID)
	}
	if f.Archived != albums.ArchivedInclude {
		t.Errorf("Archived = %q, want %q", f.Archived, albums.ArchivedInclude)
	}
}

func TestFilters_Apply_Archived(t *testing.T) {
	tests := []struct {
		name     string
		archived albums.Archived
		want     string
		absent   string
	}{
		{"default excludes archived", albums.ArchivedExclude, "a.archived_at IS NULL", ""},
		{"only archived", albums.ArchivedOnly, "a.archived_at IS NOT NULL", ""},
		{"include all", albums.ArchivedInclude, "", "archived_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qb := query.NewBuilder(albumProjection())
			albums.Filters{Archived: tt.archived}.Apply(qb)

			sql, _ := qb.BuildCount()
			if tt.want != "" && !strings.Contains(sql, tt.want) {
				t.Errorf("sql %q missing %q", sql, tt.want)
			}
			if tt.absent != "" && strings.Contains(sql, tt.absent) {
				t.Errorf("sql %q must not contain %q", sql, tt.absent)
			}
		})
	}
}

func TestFilters_Apply_Conditions(t *testing.T) {
	title := "blue"
	year := 1959
	genre := int64(3)
	tag := int64(9)

	qb := query.NewBuilder(albumProjection())
	albums.Filters{Title: &title, Year: &year, GenreID: &genre, TagID: &tag}.Apply(qb)

	sql, args := qb.BuildCount()

	checks := []string{
		"a.title ILIKE $1",
		"a.year = $2",
		"a.genre_id = $3",
		"atg.tag_id = $4",
		"a.archived_at IS NULL",
	}
	for _, c := range checks {
		if !strings.Contains(sql, c) {
			t.Errorf("sql %q missing %q", sql, c)
		}
	}

	if len(args) != 4 {
		t.Fatalf("args = %v, want 4", args)
	}
	if args[0] != "%blue%" || args[1] != 1959 || args[2] != int64(3) || args[3] != int64(9) {
		t.Errorf("args = %v", args)
	}
}

func TestCommand_Validate(t *testing.T) {
	str := func(s string) *string { return &s }
	year := func(y int) *int { return &y }

	t.Run("defaults and trimming", func(t *testing.T) {
		cmd, err := albums.Command{
			Title:     "  Kind of Blue ",
			SPARSCode: str("add"),
			Notes:     str("   "),
		}.Validate()
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if cmd.Title != "Kind of Blue" {
			t.Errorf("Title = %q", cmd.Title)
		}
		if cmd.MediaType != albums.DefaultMediaType {
			t.Errorf("MediaType = %q, want %q", cmd.MediaType, albums.DefaultMediaType)
		}
		if cmd.SPARSCode == nil || *cmd.SPARSCode != "ADD" {
			t.Errorf("SPARSCode = %v, want ADD", cmd.SPARSCode)
		}
		if cmd.Notes != nil {
			t.Errorf("Notes = %q, want nil", *cmd.Notes)
		}
	})

	invalid := []struct {
		name string
		cmd  albums.Command
	}{
		{"missing title", albums.Command{Title: " "}},
		{"year too small", albums.Command{Title: "x", Year: year(99)}},
		{"bad spars", albums.Command{Title: "x", SPARSCode: str("ABC")}},
		{"relative cover url", albums.Command{Title: "x", CoverURL: str("/covers/1.jpg")}},
		{"ftp cover url", albums.Command{Title: "x", CoverURL: str("ftp://example.com/a.jpg")}},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cmd.Validate()
			if !errors.Is(err, albums.ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestCoverType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

	tests := []struct {
		name    string
		data    []byte
		wantCT  string
		wantExt string
		wantErr bool
	}{
		{"png", png, "image/png", "png", false},
		{"jpeg", jpeg, "image/jpeg", "jpg", false},
		{"gif", []byte("GIF89a......"), "image/gif", "gif", false},
		{"text", []byte("hello"), "", "", true},
		{"pdf", bytes.Repeat([]byte("%PDF-"), 2), "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, ext, err := albums.CoverType(tt.data)
			if tt.wantErr {
				if !errors.Is(err, albums.ErrInvalidCover) {
					t.Errorf("CoverType() error = %v, want ErrInvalidCover", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CoverType() error = %v", err)
			}
			if ct != tt.wantCT || ext != tt.wantExt {
				t.Errorf("CoverType() = %q, %q; want %q, %q", ct, ext, tt.wantCT, tt.wantExt)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{albums.ErrNotFound, http.StatusNotFound},
		{albums.ErrArtistNotFound, http.StatusNotFound},
		{albums.ErrLinkNotFound, http.StatusNotFound},
		{albums.ErrNoCover, http.StatusNotFound},
		{albums.ErrDuplicateBarcode, http.StatusConflict},
		{albums.ErrCoverTooLarge, http.StatusRequestEntityTooLarge},
		{albums.ErrCoverFetch, http.StatusBadGateway},
		{albums.ErrInvalidReference, http.StatusBadRequest},
		{albums.ErrNoCoverURL, http.StatusBadRequest},
		{tracks.ErrInvalidTrack, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := albums.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
