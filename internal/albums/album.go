package albums

import (
	"time"

	"github.com/JaimeStill/discvault/internal/genres"
	"github.com/JaimeStill/discvault/internal/locations"
	"github.com/JaimeStill/discvault/internal/tags"
	"github.com/JaimeStill/discvault/internal/tracks"
)

// Default values applied to new albums.
const (
	DefaultMediaType = "CD"
	DefaultRole      = "Main"
)

// Album is a physical release in the collection.
type Album struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Year       *int       `json:"year"`
	UPCEAN     *string    `json:"upc_ean"`
	CatalogNo  *string    `json:"catalog_no"`
	SPARSCode  *string    `json:"spars_code"`
	CoverURL   *string    `json:"cover_url"`
	HasCover   bool       `json:"has_cover"`
	MediaType  string     `json:"media_type"`
	Notes      *string    `json:"notes"`
	GenreID    *int64     `json:"genre_id"`
	LocationID *int64     `json:"location_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ArchivedAt *time.Time `json:"archived_at"`

	CoverKey  *string `json:"-"`
	CoverType *string `json:"-"`
}

// Credit is an artist credited on an album together with their role.
type Credit struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Detail is the album read model returned for a single album.
type Detail struct {
	Album
	Genre    *genres.Genre       `json:"genre"`
	Location *locations.Location `json:"location"`
	Artists  []Credit            `json:"artists"`
	Tags     []tags.Tag          `json:"tags"`
	Tracks   []tracks.Track      `json:"tracks"`
}

// Command contains the writable fields of an album, used for both create and update.
type Command struct {
	Title      string  `json:"title"`
	Year       *int    `json:"year,omitempty"`
	UPCEAN     *string `json:"upc_ean,omitempty"`
	CatalogNo  *string `json:"catalog_no,omitempty"`
	SPARSCode  *string `json:"spars_code,omitempty"`
	CoverURL   *string `json:"cover_url,omitempty"`
	MediaType  string  `json:"media_type,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	GenreID    *int64  `json:"genre_id,omitempty"`
	LocationID *int64  `json:"location_id,omitempty"`
}

// ImportCommand creates an album together with its credits, tags and tracklist.
// Artists and tags are matched by name and created when missing.
type ImportCommand struct {
	Album   Command        `json:"album"`
	Artists []string       `json:"artists"`
	Tags    []string       `json:"tags"`
	Tracks  []tracks.Input `json:"tracks"`
}

// Cover is a stored cover image.
type Cover struct {
	ContentType string
	Data        []byte
}
