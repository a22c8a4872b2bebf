package albums

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/JaimeStill/discvault/pkg/repository"
	"github.com/JaimeStill/discvault/pkg/storage"
)

var coverExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// CoverType sniffs data and returns its content type and file extension.
// Only jpeg, png, gif and webp images are accepted.
func CoverType(data []byte) (string, string, error) {
	ct := http.DetectContentType(data)
	ext, ok := coverExtensions[ct]
	if !ok {
		return "", "", fmt.Errorf("%w: got %s", ErrInvalidCover, ct)
	}
	return ct, ext, nil
}

func coverKey(id int64, ext string) string {
	return fmt.Sprintf("covers/%d.%s", id, ext)
}

func (r *repo) SetCover(ctx context.Context, id int64, data []byte) (*Album, error) {
	if r.maxCover > 0 && int64(len(data)) > r.maxCover {
		return nil, ErrCoverTooLarge
	}

	contentType, ext, err := CoverType(data)
	if err != nil {
		return nil, err
	}

	current, err := r.album(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	key := coverKey(id, ext)
	if err := r.storage.Store(ctx, key, data); err != nil {
		return nil, fmt.Errorf("store cover: %w", err)
	}

	q := `
		UPDATE albums
		SET cover_key = $1, cover_type = $2, updated_at = NOW()
		WHERE id = $3
		` + returning

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Album, error) {
		return repository.QueryOne(ctx, tx, q, []any{key, contentType, id}, scanAlbum)
	})
	if err != nil {
		if current.CoverKey == nil || *current.CoverKey != key {
			if delErr := r.storage.Delete(ctx, key); delErr != nil {
				r.logger.Error("cleanup failed after db error", "cover_key", key, "error", delErr)
			}
		}
		return nil, repository.MapError(err, ErrNotFound, ErrInvalid)
	}

	if current.CoverKey != nil && *current.CoverKey != key {
		if err := r.storage.Delete(ctx, *current.CoverKey); err != nil {
			r.logger.Warn("previous cover cleanup failed", "cover_key", *current.CoverKey, "error", err)
		}
	}

	r.logger.Info("cover stored", "id", id, "cover_key", key, "content_type", contentType, "size", len(data))
	return &a, nil
}

func (r *repo) Cover(ctx context.Context, id int64) (*Cover, error) {
	a, err := r.album(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	if a.CoverKey == nil {
		return nil, ErrNoCover
	}

	data, err := r.storage.Retrieve(ctx, *a.CoverKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoCover
		}
		return nil, fmt.Errorf("retrieve cover: %w", err)
	}

	contentType := http.DetectContentType(data)
	if a.CoverType != nil {
		contentType = *a.CoverType
	}

	return &Cover{ContentType: contentType, Data: data}, nil
}

func (r *repo) FetchCover(ctx context.Context, id int64) (*Album, error) {
	a, err := r.album(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	if a.CoverURL == nil {
		return nil, ErrNoCoverURL
	}

	data, err := r.download(ctx, *a.CoverURL)
	if err != nil {
		r.logger.Warn("cover download failed", "id", id, "url", *a.CoverURL, "error", err)
		return nil, err
	}

	return r.SetCover(ctx, id, data)
}

func (r *repo) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCoverFetch, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCoverFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrCoverFetch, resp.StatusCode)
	}

	body := io.Reader(resp.Body)
	if r.maxCover > 0 {
		body = io.LimitReader(resp.Body, r.maxCover+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCoverFetch, err)
	}
	if r.maxCover > 0 && int64(len(data)) > r.maxCover {
		return nil, ErrCoverTooLarge
	}
	return data, nil
}
