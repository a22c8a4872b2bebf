package genres

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

func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "genre"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Genre], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count genres: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	genres, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanGenre)
	if err != nil {
		return nil, fmt.Errorf("query genres: %w", err)
	}

	result := pagination.NewPageResult(genres, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Genre, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	g, err := repository.QueryOne(ctx, r.db, q, args, scanGenre)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &g, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Genre, error) {
	name, description, err := validate(cmd.Name, cmd.Description)
	if err != nil {
		return nil, err
	}

	q := "INSERT INTO genres (name, description) VALUES ($1, $2) " + returning

	g, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Genre, error) {
		return repository.QueryOne(ctx, tx, q, []any{name, description}, scanGenre)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("genre created", "id", g.ID, "name", g.Name)
	return &g, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd UpdateCommand) (*Genre, error) {
	name, description, err := validate(cmd.Name, cmd.Description)
	if err != nil {
		return nil, err
	}

	q := `
		UPDATE genres
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3 ` + returning

	g, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Genre, error) {
		return repository.QueryOne(ctx, tx, q, []any{name, description, id}, scanGenre)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("genre updated", "id", g.ID, "name", g.Name)
	return &g, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, "DELETE FROM genres WHERE id = $1", id)
		return struct{}{}, err
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("genre deleted", "id", id)
	return nil
}
