// Package artists manages the performers credited on albums.
package artists

import (
	"context"

	"github.com/JaimeStill/discvault/pkg/pagination"
)

// System defines artist persistence.
type System interface {
	// List returns a paginated list of artists matching the filter criteria.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Artist], error)

	// Find retrieves an artist by ID.
	// Returns ErrNotFound if the artist does not exist.
	Find(ctx context.Context, id int64) (*Artist, error)

	// Create stores a new artist.
	// Returns ErrDuplicate if an artist with the same name (ignoring case) exists.
	Create(ctx context.Context, cmd CreateCommand) (*Artist, error)

	// Update renames an artist.
	Update(ctx context.Context, id int64, cmd UpdateCommand) (*Artist, error)

	// Delete removes an artist and its album credits.
	Delete(ctx context.Context, id int64) error
}
