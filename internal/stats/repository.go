package stats

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/discvault/pkg/repository"
)

const countsQuery = `
	SELECT
		(SELECT COUNT(*) FROM albums WHERE archived_at IS NULL),
		(SELECT COUNT(*) FROM albums WHERE archived_at IS NOT NULL),
		(SELECT COUNT(*) FROM artists),
		(SELECT COUNT(*) FROM genres),
		(SELECT COUNT(*) FROM tags),
		(SELECT COUNT(*) FROM locations),
		(SELECT COUNT(*) FROM tracks t JOIN albums a ON a.id = t.album_id WHERE a.archived_at IS NULL),
		(SELECT COUNT(*) FROM albums WHERE archived_at IS NULL AND cover_key IS NOT NULL)`

const mediaTypesQuery = `
	SELECT media_type, COUNT(*)
	FROM albums
	WHERE archived_at IS NULL
	GROUP BY media_type
	ORDER BY COUNT(*) DESC, media_type`

const decadesQuery = `
	SELECT (year / 10 * 10)::text || 's', COUNT(*)
	FROM albums
	WHERE archived_at IS NULL AND year IS NOT NULL
	GROUP BY 1
	ORDER BY 1`

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates the stats system.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "stats"),
	}
}

func (r *repo) Summary(ctx context.Context) (*Stats, error) {
	var s Stats
	err := r.db.QueryRowContext(ctx, countsQuery).Scan(
		&s.Albums, &s.Archived, &s.Artists, &s.Genres, &s.Tags, &s.Locations, &s.Tracks, &s.Covers,
	)
	if err != nil {
		return nil, fmt.Errorf("count collection: %w", err)
	}

	s.MediaTypes, err = repository.QueryMany(ctx, r.db, mediaTypesQuery, nil, scanBucket)
	if err != nil {
		return nil, fmt.Errorf("count media types: %w", err)
	}

	s.Decades, err = repository.QueryMany(ctx, r.db, decadesQuery, nil, scanBucket)
	if err != nil {
		return nil, fmt.Errorf("count decades: %w", err)
	}

	return &s, nil
}

func scanBucket(s repository.Scanner) (Bucket, error) {
	var b Bucket
	err := s.Scan(&b.Key, &b.Count)
	return b, err
}
