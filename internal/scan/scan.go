// Package scan turns a scanned barcode into a catalogued album by resolving
// the release through lookup and importing it through albums.
package scan

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/discvault/internal/albums"
	"github.com/JaimeStill/discvault/internal/lookup"
	"github.com/JaimeStill/discvault/internal/tracks"
)

// Options adjust the album created from a scan.
type Options struct {
	LocationID *int64
	MediaType  string
	// FetchCover downloads the release cover into storage after import.
	FetchCover bool
}

// System catalogues albums from barcodes.
type System interface {
	Scan(ctx context.Context, barcode string, opts Options) (*albums.Detail, error)
}

type service struct {
	releases lookup.System
	catalog  albums.System
	logger   *slog.Logger
}

// New creates the scan system.
func New(releases lookup.System, catalog albums.System, logger *slog.Logger) System {
	return &service{
		releases: releases,
		catalog:  catalog,
		logger:   logger.With("system", "scan"),
	}
}

func (s *service) Scan(ctx context.Context, barcode string, opts Options) (*albums.Detail, error) {
	release, err := s.releases.LookupBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	detail, err := s.catalog.Import(ctx, ImportCommand(release, opts))
	if err != nil {
		return nil, err
	}

	s.logger.Info("barcode scanned", "barcode", release.Barcode, "album_id", detail.ID, "mbid", release.MBID)

	if opts.FetchCover && detail.CoverURL != nil {
		if _, err := s.catalog.FetchCover(ctx, detail.ID); err != nil {
			s.logger.Warn("cover fetch after scan failed", "album_id", detail.ID, "error", err)
		} else {
			detail.HasCover = true
		}
	}

	return detail, nil
}

// ImportCommand maps a release onto an album import.
func ImportCommand(release *lookup.Release, opts Options) albums.ImportCommand {
	barcode := release.Barcode

	cmd := albums.ImportCommand{
		Album: albums.Command{
			Title:      release.Title,
			Year:       release.Year,
			UPCEAN:     &barcode,
			CatalogNo:  release.CatalogNo,
			CoverURL:   release.CoverURL,
			MediaType:  opts.MediaType,
			LocationID: opts.LocationID,
		},
		Artists: release.Artists,
		Tags:    release.Genres,
		Tracks:  make([]tracks.Input, len(release.Tracks)),
	}

	for i, t := range release.Tracks {
		var discName *string
		if t.DiscName != "" {
			name := t.DiscName
			discName = &name
		}
		cmd.Tracks[i] = tracks.Input{
			DiscNo:   t.DiscNo,
			DiscName: discName,
			TrackNo:  t.TrackNo,
			Title:    t.Title,
			Duration: t.Duration,
		}
	}

	return cmd
}

// MapHTTPStatus maps lookup and import errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if status := lookup.MapHTTPStatus(err); status != http.StatusInternalServerError {
		return status
	}
	return albums.MapHTTPStatus(err)
}
