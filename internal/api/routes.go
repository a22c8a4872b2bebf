package api

import (
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
	"github.com/JaimeStill/discvault/pkg/openapi"
	"github.com/JaimeStill/discvault/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	albumsHandler := albums.NewHandler(domain.Albums, runtime.Logger, runtime.Pagination, cfg.Storage.MaxUploadSizeBytes())
	artistsHandler := artists.NewHandler(domain.Artists, runtime.Logger, runtime.Pagination)
	tagsHandler := tags.NewHandler(domain.Tags, runtime.Logger, runtime.Pagination)
	genresHandler := genres.NewHandler(domain.Genres, runtime.Logger, runtime.Pagination)
	locationsHandler := locations.NewHandler(domain.Locations, runtime.Logger, runtime.Pagination)
	tracksHandler := tracks.NewHandler(runtime.Logger)
	statsHandler := stats.NewHandler(domain.Stats, runtime.Logger)
	lookupHandler := lookup.NewHandler(domain.Lookup, runtime.Logger)
	scanHandler := scan.NewHandler(domain.Scan, runtime.Logger)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		albumsHandler.Routes(),
		artistsHandler.Routes(),
		tagsHandler.Routes(),
		genresHandler.Routes(),
		locationsHandler.Routes(),
		tracksHandler.Routes(),
		statsHandler.Routes(),
		lookupHandler.Routes(),
		scanHandler.Routes(),
	)
}
