// Package tracks manages album tracklists and parses pasted CSV tracklists.
package tracks

import "context"

// System defines tracklist persistence for albums.
type System interface {
	// ByAlbum returns the tracks of an album ordered by disc and track number.
	ByAlbum(ctx context.Context, albumID int64) ([]Track, error)

	// Replace discards the album's tracklist and stores tracks in its place.
	// Returns ErrAlbumNotFound if the album does not exist.
	Replace(ctx context.Context, albumID int64, tracks []Input) ([]Track, error)
}
