package tracks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/discvault/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates the tracks system.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "tracks"),
	}
}

func (r *repo) ByAlbum(ctx context.Context, albumID int64) ([]Track, error) {
	return ByAlbum(ctx, r.db, albumID)
}

func (r *repo) Replace(ctx context.Context, albumID int64, inputs []Input) ([]Track, error) {
	result, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]Track, error) {
		return ReplaceTx(ctx, tx, albumID, inputs)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("tracklist replaced", "album_id", albumID, "tracks", len(result))
	return result, nil
}

// ByAlbum lists the tracks of albumID using q.
func ByAlbum(ctx context.Context, q repository.Querier, albumID int64) ([]Track, error) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE t.album_id = $1 ORDER BY t.disc_no, t.track_no, t.id",
		projection.Columns(), projection.Table(),
	)

	tracks, err := repository.QueryMany(ctx, q, sql, []any{albumID}, scanTrack)
	if err != nil {
		return nil, fmt.Errorf("query tracks: %w", err)
	}
	return tracks, nil
}

// ReplaceTx replaces the tracklist of albumID inside an existing transaction.
// The album's updated_at is touched so that the album reflects the change.
func ReplaceTx(ctx context.Context, tx repository.Querier, albumID int64, inputs []Input) ([]Track, error) {
	inputs, err := normalize(inputs)
	if err != nil {
		return nil, err
	}

	err = repository.ExecExpectOne(ctx, tx, "UPDATE albums SET updated_at = NOW() WHERE id = $1", albumID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return nil, ErrAlbumNotFound
		}
		return nil, fmt.Errorf("touch album: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM tracks WHERE album_id = $1", albumID); err != nil {
		return nil, fmt.Errorf("delete tracks: %w", err)
	}

	q := `
		INSERT INTO tracks (album_id, disc_no, disc_name, track_no, title, duration)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, album_id, disc_no, disc_name, track_no, title, duration`

	tracks := make([]Track, 0, len(inputs))
	for _, in := range inputs {
		t, err := repository.QueryOne(
			ctx, tx, q,
			[]any{albumID, in.DiscNo, in.DiscName, in.TrackNo, in.Title, in.Duration},
			scanTrack,
		)
		if err != nil {
			return nil, fmt.Errorf("insert track: %w", err)
		}
		tracks = append(tracks, t)
	}

	return tracks, nil
}
