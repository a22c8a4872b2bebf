// Package tags manages colored labels that can be attached to albums.
package tags

import (
	"context"

	"github.com/JaimeStill/discvault/pkg/pagination"
)

// System defines tag persistence.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Tag], error)

	// Find returns ErrNotFound if the tag does not exist.
	Find(ctx context.Context, id int64) (*Tag, error)

	// Create returns ErrDuplicate if the name is taken.
	Create(ctx context.Context, cmd CreateCommand) (*Tag, error)

	Update(ctx context.Context, id int64, cmd UpdateCommand) (*Tag, error)
	Delete(ctx context.Context, id int64) error
}
