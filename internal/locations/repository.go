package locations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/discvault/pkg/pagination"
	"github.com/JaimeStill/discvault/pkg/query"
	"github.com/JaimeStill/discvault/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the locations repository implementing System.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "location"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Location], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "StorageType", "Section", "Shelf")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count locations: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	locations, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanLocation)
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}

	result := pagination.NewPageResult(locations, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Location, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	l, err := repository.QueryOne(ctx, r.db, q, args, scanLocation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrInvalid)
	}
	return &l, nil
}

func (r *repo) Create(ctx context.Context, cmd Command) (*Location, error) {
	cmd, err := cmd.Validate()
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO locations (name, storage_type, section, shelf, position)
		VALUES ($1, $2, $3, $4, $5) ` + returning

	l, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Location, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Name, cmd.StorageType, cmd.Section, cmd.Shelf, cmd.Position}, scanLocation)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrInvalid)
	}

	r.logger.Info("location created", "id", l.ID, "name", l.Name)
	return &l, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd Command) (*Location, error) {
	cmd, err := cmd.Validate()
	if err != nil {
		return nil, err
	}

	q := `
		UPDATE locations
		SET name = $1, storage_type = $2, section = $3, shelf = $4, position = $5, updated_at = NOW()
		WHERE id = $6 ` + returning

	l, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Location, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Name, cmd.StorageType, cmd.Section, cmd.Shelf, cmd.Position, id}, scanLocation)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrInvalid)
	}

	r.logger.Info("location updated", "id", l.ID, "name", l.Name)
	return &l, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, "DELETE FROM locations WHERE id = $1", id)
		return struct{}{}, err
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrInvalid)
	}

	r.logger.Info("location deleted", "id", id)
	return nil
}
