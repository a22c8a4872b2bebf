package artists

import (
	"context"
	"database/sql"
	"errors"
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

// New creates the artists repository implementing System.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "artist"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Artist], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count artists: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	artists, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanArtist)
	if err != nil {
		return nil, fmt.Errorf("query artists: %w", err)
	}

	result := pagination.NewPageResult(artists, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Artist, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanArtist)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Artist, error) {
	name, err := validName(cmd.Name)
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO artists (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at`

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Artist, error) {
		return repository.QueryOne(ctx, tx, q, []any{name}, scanArtist)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("artist created", "id", a.ID, "name", a.Name)
	return &a, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd UpdateCommand) (*Artist, error) {
	name, err := validName(cmd.Name)
	if err != nil {
		return nil, err
	}

	q := `
		UPDATE artists
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, created_at, updated_at`

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Artist, error) {
		return repository.QueryOne(ctx, tx, q, []any{name, id}, scanArtist)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("artist updated", "id", a.ID, "name", a.Name)
	return &a, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, "DELETE FROM artists WHERE id = $1", id)
		return struct{}{}, err
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("artist deleted", "id", id)
	return nil
}

// FindOrCreate returns the id of the artist named name, creating it when absent.
// Names compare case-insensitively.
func FindOrCreate(ctx context.Context, q repository.Querier, name string) (int64, error) {
	name, err := validName(name)
	if err != nil {
		return 0, err
	}

	const find = "SELECT id FROM artists WHERE lower(name) = lower($1)"

	var id int64
	err = q.QueryRowContext(ctx, find, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("find artist: %w", err)
	}

	// A concurrent insert of the same name leaves no returned row; read theirs.
	err = q.QueryRowContext(ctx, "INSERT INTO artists (name) VALUES ($1) ON CONFLICT DO NOTHING RETURNING id", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		err = q.QueryRowContext(ctx, find, name).Scan(&id)
	}
	if err != nil {
		return 0, fmt.Errorf("insert artist: %w", err)
	}
	return id, nil
}
