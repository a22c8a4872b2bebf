package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/discvault/internal/albums"
	"github.com/JaimeStill/discvault/internal/artists"
	"github.com/JaimeStill/discvault/internal/config"
	"github.com/JaimeStill/discvault/internal/genres"
	"github.com/JaimeStill/discvault/internal/locations"
	"github.com/JaimeStill/discvault/internal/lookup"
	"github.com/JaimeStill/discvault/internal/scan"
	"github.com/JaimeStill/discvault/internal/stats"
	"github.com/JaimeStill/discvault/internal/tags"
	"github.com/JaimeStill/discvault/internal/tracks"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Artists   artists.System
	Tags      tags.System
	Genres    genres.System
	Locations locations.System
	Tracks    tracks.System
	Albums    albums.System
	Stats     stats.System
	Lookup    lookup.System
	Scan      scan.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) (*Domain, error) {
	db := runtime.Database.Connection()

	lookupSys, err := lookup.New(&cfg.MusicBrainz, runtime.Cache, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("lookup init failed: %w", err)
	}

	tracksSys := tracks.New(db, runtime.Logger)

	albumsSys := albums.New(
		db,
		tracksSys,
		runtime.Storage,
		&http.Client{Timeout: cfg.MusicBrainz.TimeoutDuration()},
		runtime.Logger,
		runtime.Pagination,
		cfg.Storage.MaxUploadSizeBytes(),
	)

	return &Domain{
		Artists:   artists.New(db, runtime.Logger, runtime.Pagination),
		Tags:      tags.New(db, runtime.Logger, runtime.Pagination),
		Genres:    genres.New(db, runtime.Logger, runtime.Pagination),
		Locations: locations.New(db, runtime.Logger, runtime.Pagination),
		Tracks:    tracksSys,
		Albums:    albumsSys,
		Stats:     stats.New(db, runtime.Logger),
		Lookup:    lookupSys,
		Scan:      scan.New(lookupSys, albumsSys, runtime.Logger),
	}, nil
}
