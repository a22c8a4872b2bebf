package albums

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/discvault/internal/tracks"
)

// Domain errors for album operations.
var (
	ErrNotFound         = errors.New("album not found")
	ErrInvalid          = errors.New("invalid album")
	ErrInvalidReference = errors.New("referenced genre or location does not exist")
	ErrDuplicateBarcode = errors.New("an album with this barcode already exists")
	ErrArtistNotFound   = errors.New("artist not found")
	ErrTagNotFound      = errors.New("tag not found")
	ErrLinkNotFound     = errors.New("album link not found")
	ErrNoCover          = errors.New("album has no cover")
	ErrNoCoverURL       = errors.New("album has no cover url")
	ErrInvalidCover     = errors.New("cover must be a jpeg, png, gif or webp image")
	ErrCoverTooLarge    = errors.New("cover exceeds maximum upload size")
	ErrCoverFetch       = errors.New("cover download failed")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrArtistNotFound),
		errors.Is(err, ErrTagNotFound),
		errors.Is(err, ErrLinkNotFound),
		errors.Is(err, ErrNoCover):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateBarcode):
		return http.StatusConflict
	case errors.Is(err, ErrCoverTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrCoverFetch):
		return http.StatusBadGateway
	case errors.Is(err, ErrInvalid),
		errors.Is(err, ErrInvalidReference),
		errors.Is(err, ErrNoCoverURL),
		errors.Is(err, ErrInvalidCover):
		return http.StatusBadRequest
	}
	if status := tracks.MapHTTPStatus(err); status != http.StatusInternalServerError {
		return status
	}
	return http.StatusInternalServerError
}
