// Package genres manages the genre catalogue albums are filed under.
package genres

import (
	"context"

	"github.com/JaimeStill/discvault/pkg/pagination"
)

type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Genre], error)
	Find(ctx context.Context, id int64) (*Genre, error)
	Create(ctx context.Context, cmd CreateCommand) (*Genre, error)
	Update(ctx context.Context, id int64, cmd UpdateCommand) (*Genre, error)

	// Delete removes the genre. Albums filed under it keep no genre.
	Delete(ctx context.Context, id int64) error
}
