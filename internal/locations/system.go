// Package locations manages the physical storage places of the collection.
package locations

import (
	"context"

	"github.com/JaimeStill/discvault/pkg/pagination"
)

// System defines location persistence.
type System interface {
	// List returns a paginated list of locations matching the filter criteria.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Location], error)

	// Find retrieves a location by ID.
	// Returns ErrNotFound if the location does not exist.
	Find(ctx context.Context, id int64) (*Location, error)

	// Create validates and stores a new location.
	// Returns ErrInvalid when name or storage_type are missing.
	Create(ctx context.Context, cmd Command) (*Location, error)

	// Update replaces the writable fields of a location.
	Update(ctx context.Context, id int64, cmd Command) (*Location, error)

	// Delete removes a location. Albums stored there are left without a location.
	Delete(ctx context.Context, id int64) error
}
