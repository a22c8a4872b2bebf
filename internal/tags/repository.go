package tags

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

func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "tag"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Tag], error) {
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
		return nil, fmt.Errorf("count tags: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	tags, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTag)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}

	result := pagination.NewPageResult(tags, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Tag, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTag)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Tag, error) {
	name, color, err := Validate(cmd.Name, cmd.Color)
	if err != nil {
		return nil, err
	}
	if color == "" {
		color = DefaultColor
	}

	q := `
		INSERT INTO tags (name, color)
		VALUES ($1, $2)
		RETURNING id, name, color, created_at, updated_at`

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Tag, error) {
		return repository.QueryOne(ctx, tx, q, []any{name, color}, scanTag)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("tag created", "id", t.ID, "name", t.Name)
	return &t, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd UpdateCommand) (*Tag, error) {
	name, color, err := Validate(cmd.Name, cmd.Color)
	if err != nil {
		return nil, err
	}

	q := `
		UPDATE tags
		SET name = $1, color = COALESCE(NULLIF($2, ''), color), updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, color, created_at, updated_at`

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Tag, error) {
		return repository.QueryOne(ctx, tx, q, []any{name, color, id}, scanTag)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("tag updated", "id", t.ID, "name", t.Name)
	return &t, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, "DELETE FROM tags WHERE id = $1", id)
		return struct{}{}, err
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("tag deleted", "id", id)
	return nil
}

// FindOrCreate returns the id of the tag named name, creating it with
// DefaultColor when absent.
func FindOrCreate(ctx context.Context, q repository.Querier, name string) (int64, error) {
	name, _, err := Validate(name, "")
	if err != nil {
		return 0, err
	}

	const find = "SELECT id FROM tags WHERE name = $1"

	var id int64
	err = q.QueryRowContext(ctx, find, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("find tag: %w", err)
	}

	// A concurrent insert of the same name leaves no returned row; read theirs.
	err = q.QueryRowContext(ctx, "INSERT INTO tags (name, color) VALUES ($1, $2) ON CONFLICT DO NOTHING RETURNING id", name, DefaultColor).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		err = q.QueryRowContext(ctx, find, name).Scan(&id)
	}
	if err != nil {
		return 0, fmt.Errorf("insert tag: %w", err)
	}
	return id, nil
}
