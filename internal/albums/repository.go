package albums

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/discvault/internal/artists"
	"github.com/JaimeStill/discvault/internal/genres"
	"github.com/JaimeStill/discvault/internal/locations"
	"github.com/JaimeStill/discvault/internal/tags"
	"github.com/JaimeStill/discvault/internal/tracks"
	"github.com/JaimeStill/discvault/pkg/pagination"
	"github.com/JaimeStill/discvault/pkg/query"
	"github.com/JaimeStill/discvault/pkg/repository"
	"github.com/JaimeStill/discvault/pkg/storage"
)

type repo struct {
	db         *sql.DB
	tracks     tracks.System
	storage    storage.System
	client     *http.Client
	logger     *slog.Logger
	pagination pagination.Config
	maxCover   int64
}

// New creates the albums repository implementing System. Tracklist edits go
// through trackSys. Covers are kept in store and limited to maxCover bytes;
// client downloads remote cover URLs.
func New(
	db *sql.DB,
	trackSys tracks.System,
	store storage.System,
	client *http.Client,
	logger *slog.Logger,
	pagination pagination.Config,
	maxCover int64,
) System {
	if client == nil {
		client = http.DefaultClient
	}
	return &repo{
		db:         db,
		tracks:     trackSys,
		storage:    store,
		client:     client,
		logger:     logger.With("system", "album"),
		pagination: pagination,
		maxCover:   maxCover,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Album], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "CatalogNo", "UPCEAN", "Notes")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count albums: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	albums, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAlbum)
	if err != nil {
		return nil, fmt.Errorf("query albums: %w", err)
	}

	result := pagination.NewPageResult(albums, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Detail, error) {
	a, err := r.album(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return r.detail(ctx, r.db, a)
}

func (r *repo) Create(ctx context.Context, cmd Command) (*Album, error) {
	cmd, err := cmd.Validate()
	if err != nil {
		return nil, err
	}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Album, error) {
		return insertAlbum(ctx, tx, cmd)
	})
	if err != nil {
		return nil, mapWriteError(err)
	}

	r.logger.Info("album created", "id", a.ID, "title", a.Title)
	return &a, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd Command) (*Album, error) {
	cmd, err := cmd.Validate()
	if err != nil {
		return nil, err
	}

	q := `
		UPDATE albums
		SET title = $1, year = $2, upc_ean = $3, catalog_no = $4, spars_code = $5, cover_url = $6,
			media_type = $7, notes = $8, genre_id = $9, location_id = $10, updated_at = NOW()
		WHERE id = $11
		` + returning

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Album, error) {
		return repository.QueryOne(ctx, tx, q, append(commandArgs(cmd), id), scanAlbum)
	})
	if err != nil {
		return nil, mapWriteError(err)
	}

	r.logger.Info("album updated", "id", a.ID, "title", a.Title)
	return &a, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	coverKey, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (*string, error) {
		var key *string
		err := tx.QueryRowContext(ctx, "DELETE FROM albums WHERE id = $1 RETURNING cover_key", id).Scan(&key)
		return key, err
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrInvalid)
	}

	if coverKey != nil {
		if err := r.storage.Delete(ctx, *coverKey); err != nil {
			r.logger.Error("cover cleanup failed after delete", "id", id, "cover_key", *coverKey, "error", err)
		}
	}

	r.logger.Info("album deleted", "id", id)
	return nil
}

func (r *repo) Archive(ctx context.Context, id int64) (*Album, error) {
	return r.setArchived(ctx, id, "COALESCE(archived_at, NOW())", "album archived")
}

func (r *repo) Restore(ctx context.Context, id int64) (*Album, error) {
	return r.setArchived(ctx, id, "NULL", "album restored")
}

func (r *repo) setArchived(ctx context.Context, id int64, value, msg string) (*Album, error) {
	q := `
		UPDATE albums
		SET archived_at = ` + value + `, updated_at = NOW()
		WHERE id = $1
		` + returning

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Album, error) {
		return repository.QueryOne(ctx, tx, q, []any{id}, scanAlbum)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrInvalid)
	}

	r.logger.Info(msg, "id", a.ID)
	return &a, nil
}

func (r *repo) AddArtist(ctx context.Context, id, artistID int64, role string) error {
	if role == "" {
		role = DefaultRole
	}

	q := `
		INSERT INTO album_artists (album_id, artist_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (album_id, artist_id) DO UPDATE SET role = EXCLUDED.role`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := touch(ctx, tx, id); err != nil {
			return struct{}{}, err
		}
		_, err := tx.ExecContext(ctx, q, id, artistID, role)
		return struct{}{}, err
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return ErrArtistNotFound
		}
		return err
	}

	r.logger.Info("artist linked", "id", id, "artist_id", artistID, "role", role)
	return nil
}

func (r *repo) RemoveArtist(ctx context.Context, id, artistID int64) error {
	err := r.unlink(ctx, "DELETE FROM album_artists WHERE album_id = $1 AND artist_id = $2", id, artistID)
	if err != nil {
		return err
	}

	r.logger.Info("artist unlinked", "id", id, "artist_id", artistID)
	return nil
}

func (r *repo) AddTag(ctx context.Context, id, tagID int64) error {
	q := `
		INSERT INTO album_tags (album_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := touch(ctx, tx, id); err != nil {
			return struct{}{}, err
		}
		_, err := tx.ExecContext(ctx, q, id, tagID)
		return struct{}{}, err
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return ErrTagNotFound
		}
		return err
	}

	r.logger.Info("tag linked", "id", id, "tag_id", tagID)
	return nil
}

func (r *repo) RemoveTag(ctx context.Context, id, tagID int64) error {
	err := r.unlink(ctx, "DELETE FROM album_tags WHERE album_id = $1 AND tag_id = $2", id, tagID)
	if err != nil {
		return err
	}

	r.logger.Info("tag unlinked", "id", id, "tag_id", tagID)
	return nil
}

func (r *repo) unlink(ctx context.Context, q string, id, otherID int64) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := touch(ctx, tx, id); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id, otherID)
	})
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return ErrLinkNotFound
	}
	return err
}

func (r *repo) ReplaceTracks(ctx context.Context, id int64, inputs []tracks.Input) ([]tracks.Track, error) {
	result, err := r.tracks.Replace(ctx, id, inputs)
	if errors.Is(err, tracks.ErrAlbumNotFound) {
		return nil, ErrNotFound
	}
	return result, err
}

func (r *repo) Import(ctx context.Context, cmd ImportCommand) (*Detail, error) {
	album, err := cmd.Album.Validate()
	if err != nil {
		return nil, err
	}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Album, error) {
		return importTx(ctx, tx, album, cmd)
	})
	if err != nil {
		return nil, mapWriteError(err)
	}

	r.logger.Info("album imported",
		"id", a.ID,
		"title", a.Title,
		"artists", len(cmd.Artists),
		"tags", len(cmd.Tags),
		"tracks", len(cmd.Tracks),
	)
	return r.Find(ctx, a.ID)
}

func importTx(ctx context.Context, tx *sql.Tx, album Command, cmd ImportCommand) (Album, error) {
	if album.UPCEAN != nil {
		// Serializes imports of the same barcode until this transaction ends.
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", *album.UPCEAN); err != nil {
			return Album{}, fmt.Errorf("lock barcode: %w", err)
		}

		var exists bool
		err := tx.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM albums WHERE upc_ean = $1)", *album.UPCEAN).Scan(&exists)
		if err != nil {
			return Album{}, fmt.Errorf("check barcode: %w", err)
		}
		if exists {
			return Album{}, ErrDuplicateBarcode
		}
	}

	a, err := insertAlbum(ctx, tx, album)
	if err != nil {
		return Album{}, err
	}

	for _, name := range distinctNames(cmd.Artists) {
		artistID, err := artists.FindOrCreate(ctx, tx, name)
		if err != nil {
			return Album{}, err
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO album_artists (album_id, artist_id, role) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING",
			a.ID, artistID, DefaultRole,
		)
		if err != nil {
			return Album{}, fmt.Errorf("link artist: %w", err)
		}
	}

	for _, name := range distinctNames(cmd.Tags) {
		tagID, err := tags.FindOrCreate(ctx, tx, name)
		if err != nil {
			return Album{}, err
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO album_tags (album_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			a.ID, tagID,
		)
		if err != nil {
			return Album{}, fmt.Errorf("link tag: %w", err)
		}
	}

	if len(cmd.Tracks) > 0 {
		if _, err := tracks.ReplaceTx(ctx, tx, a.ID, cmd.Tracks); err != nil {
			return Album{}, err
		}
	}

	return a, nil
}

func (r *repo) album(ctx context.Context, q repository.Querier, id int64) (Album, error) {
	sql, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, q, sql, args, scanAlbum)
	if err != nil {
		return Album{}, repository.MapError(err, ErrNotFound, ErrInvalid)
	}
	return a, nil
}

func (r *repo) detail(ctx context.Context, q repository.Querier, a Album) (*Detail, error) {
	d := &Detail{Album: a}
	var err error

	if a.GenreID != nil {
		g, err := repository.QueryOne(ctx, q,
			"SELECT id, name, description, created_at, updated_at FROM genres WHERE id = $1",
			[]any{*a.GenreID},
			func(s repository.Scanner) (genres.Genre, error) {
				var g genres.Genre
				err := s.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt)
				return g, err
			},
		)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("query genre: %w", err)
		}
		if err == nil {
			d.Genre = &g
		}
	}

	if a.LocationID != nil {
		l, err := repository.QueryOne(ctx, q,
			"SELECT id, name, storage_type, section, shelf, position, created_at, updated_at FROM locations WHERE id = $1",
			[]any{*a.LocationID},
			func(s repository.Scanner) (locations.Location, error) {
				var l locations.Location
				err := s.Scan(&l.ID, &l.Name, &l.StorageType, &l.Section, &l.Shelf, &l.Position, &l.CreatedAt, &l.UpdatedAt)
				return l, err
			},
		)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("query location: %w", err)
		}
		if err == nil {
			d.Location = &l
		}
	}

	d.Artists, err = repository.QueryMany(ctx, q, `
		SELECT ar.id, ar.name, aa.role
		FROM album_artists aa
		JOIN artists ar ON ar.id = aa.artist_id
		WHERE aa.album_id = $1
		ORDER BY ar.name`,
		[]any{a.ID}, scanCredit,
	)
	if err != nil {
		return nil, fmt.Errorf("query credits: %w", err)
	}

	d.Tags, err = repository.QueryMany(ctx, q, `
		SELECT t.id, t.name, t.color, t.created_at, t.updated_at
		FROM album_tags atg
		JOIN tags t ON t.id = atg.tag_id
		WHERE atg.album_id = $1
		ORDER BY t.name`,
		[]any{a.ID},
		func(s repository.Scanner) (tags.Tag, error) {
			var t tags.Tag
			err := s.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt)
			return t, err
		},
	)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}

	d.Tracks, err = r.tracks.ByAlbum(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func insertAlbum(ctx context.Context, q repository.Querier, cmd Command) (Album, error) {
	sql := `
		INSERT INTO albums (title, year, upc_ean, catalog_no, spars_code, cover_url, media_type, notes, genre_id, location_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		` + returning

	return repository.QueryOne(ctx, q, sql, commandArgs(cmd), scanAlbum)
}

func commandArgs(cmd Command) []any {
	return []any{
		cmd.Title, cmd.Year, cmd.UPCEAN, cmd.CatalogNo, cmd.SPARSCode, cmd.CoverURL,
		cmd.MediaType, cmd.Notes, cmd.GenreID, cmd.LocationID,
	}
}

// touch bumps updated_at and reports ErrNotFound for unknown albums.
func touch(ctx context.Context, q repository.Querier, id int64) error {
	err := repository.ExecExpectOne(ctx, q, "UPDATE albums SET updated_at = NOW() WHERE id = $1", id)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return ErrNotFound
	}
	return err
}

func mapWriteError(err error) error {
	if repository.IsForeignKeyViolation(err) {
		return ErrInvalidReference
	}
	if errors.Is(err, tracks.ErrAlbumNotFound) || errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
