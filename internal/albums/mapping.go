package albums

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/JaimeStill/discvault/pkg/query"
	"github.com/JaimeStill/discvault/pkg/repository"
)

var projection = query.NewProjectionMap("public", "albums", "a").
	Project("id", "ID").
	Project("title", "Title").
	Project("year", "Year").
	Project("upc_ean", "UPCEAN").
	Project("catalog_no", "CatalogNo").
	Project("spars_code", "SPARSCode").
	Project("cover_url", "CoverURL").
	Project("cover_key", "CoverKey").
	Project("cover_type", "CoverType").
	Project("media_type", "MediaType").
	Project("notes", "Notes").
	Project("genre_id", "GenreID").
	Project("location_id", "LocationID").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt").
	Project("archived_at", "ArchivedAt")

var defaultSort = query.SortField{Field: "Title"}

const returning = `RETURNING id, title, year, upc_ean, catalog_no, spars_code, cover_url, cover_key, cover_type,
		media_type, notes, genre_id, location_id, created_at, updated_at, archived_at`

var sparsCode = regexp.MustCompile(`^[AD]{3}$`)

func scanAlbum(s repository.Scanner) (Album, error) {
	var a Album
	err := s.Scan(
		&a.ID, &a.Title, &a.Year, &a.UPCEAN, &a.CatalogNo, &a.SPARSCode, &a.CoverURL, &a.CoverKey, &a.CoverType,
		&a.MediaType, &a.Notes, &a.GenreID, &a.LocationID, &a.CreatedAt, &a.UpdatedAt, &a.ArchivedAt,
	)
	a.HasCover = a.CoverKey != nil
	return a, err
}

func scanCredit(s repository.Scanner) (Credit, error) {
	var c Credit
	err := s.Scan(&c.ID, &c.Name, &c.Role)
	return c, err
}

// Archived selects albums by archive state.
type Archived string

const (
	ArchivedExclude Archived = ""
	ArchivedOnly    Archived = "true"
	ArchivedInclude Archived = "all"
)

// Filters contains optional filtering criteria for album queries.
type Filters struct {
	Title      *string
	Artist     *string
	Year       *int
	MediaType  *string
	UPCEAN     *string
	LocationID *int64
	GenreID    *int64
	ArtistID   *int64
	TagID      *int64
	Archived   Archived
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Malformed numeric values are ignored.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("title"); v != "" {
		f.Title = &v
	}
	if v := values.Get("artist"); v != "" {
		f.Artist = &v
	}
	if v := values.Get("media_type"); v != "" {
		f.MediaType = &v
	}
	if v := values.Get("upc_ean"); v != "" {
		f.UPCEAN = &v
	}
	if v, err := strconv.Atoi(values.Get("year")); err == nil {
		f.Year = &v
	}
	f.LocationID = int64Param(values, "location_id")
	f.GenreID = int64Param(values, "genre_id")
	f.ArtistID = int64Param(values, "artist_id")
	f.TagID = int64Param(values, "tag_id")

	switch strings.ToLower(values.Get("archived")) {
	case "true", "1", "only":
		f.Archived = ArchivedOnly
	case "all":
		f.Archived = ArchivedInclude
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Title", f.Title)

	if f.Artist != nil {
		b.WhereExists(
			"SELECT 1 FROM album_artists aa JOIN artists ar ON ar.id = aa.artist_id WHERE aa.album_id = a.id AND ar.name ILIKE $%d",
			"%"+*f.Artist+"%",
		)
	}
	if f.Year != nil {
		b.WhereEquals("Year", *f.Year)
	}
	if f.MediaType != nil {
		b.WhereEquals("MediaType", *f.MediaType)
	}
	if f.UPCEAN != nil {
		b.WhereEquals("UPCEAN", *f.UPCEAN)
	}
	if f.LocationID != nil {
		b.WhereEquals("LocationID", *f.LocationID)
	}
	if f.GenreID != nil {
		b.WhereEquals("GenreID", *f.GenreID)
	}
	if f.ArtistID != nil {
		b.WhereExists("SELECT 1 FROM album_artists aa WHERE aa.album_id = a.id AND aa.artist_id = $%d", *f.ArtistID)
	}
	if f.TagID != nil {
		b.WhereExists("SELECT 1 FROM album_tags atg WHERE atg.album_id = a.id AND atg.tag_id = $%d", *f.TagID)
	}

	switch f.Archived {
	case ArchivedOnly:
		b.WhereNull("ArchivedAt", false)
	case ArchivedInclude:
	default:
		b.WhereNull("ArchivedAt", true)
	}

	return b
}

func int64Param(values url.Values, name string) *int64 {
	v, err := strconv.ParseInt(values.Get(name), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Validate trims the command, applies defaults and checks field formats.
func (c Command) Validate() (Command, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return c, fmt.Errorf("%w: title is required", ErrInvalid)
	}

	if c.Year != nil && (*c.Year < 1000 || *c.Year > 9999) {
		return c, fmt.Errorf("%w: year %d out of range", ErrInvalid, *c.Year)
	}

	c.MediaType = strings.TrimSpace(c.MediaType)
	if c.MediaType == "" {
		c.MediaType = DefaultMediaType
	}

	c.UPCEAN = optional(c.UPCEAN)
	c.CatalogNo = optional(c.CatalogNo)
	c.CoverURL = optional(c.CoverURL)
	c.Notes = optional(c.Notes)

	c.SPARSCode = optional(c.SPARSCode)
	if c.SPARSCode != nil {
		code := strings.ToUpper(*c.SPARSCode)
		if !sparsCode.MatchString(code) {
			return c, fmt.Errorf("%w: spars_code %q must be three of A or D", ErrInvalid, *c.SPARSCode)
		}
		c.SPARSCode = &code
	}

	if c.CoverURL != nil {
		u, err := url.Parse(*c.CoverURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return c, fmt.Errorf("%w: cover_url must be an http(s) url", ErrInvalid)
		}
	}

	return c, nil
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// distinctNames trims names and drops blanks and case-insensitive repeats.
func distinctNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := strings.ToLower(n)
		if n == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}
