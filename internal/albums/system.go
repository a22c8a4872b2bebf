// Package albums manages the physical releases in the collection together with
// their artist credits, tags, tracklists and cover images.
package albums

import (
	"context"

	"github.com/JaimeStill/discvault/internal/tracks"
	"github.com/JaimeStill/discvault/pkg/pagination"
)

// System manages albums and the links that hang off them.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Album], error)
	Find(ctx context.Context, id int64) (*Detail, error)
	Create(ctx context.Context, cmd Command) (*Album, error)
	Update(ctx context.Context, id int64, cmd Command) (*Album, error)
	Delete(ctx context.Context, id int64) error

	// Archive hides an album from default listings without deleting it.
	Archive(ctx context.Context, id int64) (*Album, error)
	Restore(ctx context.Context, id int64) (*Album, error)

	AddArtist(ctx context.Context, id, artistID int64, role string) error
	RemoveArtist(ctx context.Context, id, artistID int64) error
	AddTag(ctx context.Context, id, tagID int64) error
	RemoveTag(ctx context.Context, id, tagID int64) error

	ReplaceTracks(ctx context.Context, id int64, inputs []tracks.Input) ([]tracks.Track, error)

	SetCover(ctx context.Context, id int64, data []byte) (*Album, error)
	Cover(ctx context.Context, id int64) (*Cover, error)
	// FetchCover downloads the album's cover_url into storage.
	FetchCover(ctx context.Context, id int64) (*Album, error)

	// Import creates an album with its credits, tags and tracks in one transaction.
	Import(ctx context.Context, cmd ImportCommand) (*Detail, error)
}
