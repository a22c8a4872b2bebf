package tracks

import (
	"errors"
	"net/http"
)

var (
	ErrAlbumNotFound = errors.New("album not found")
	ErrInvalidTrack  = errors.New("invalid track")
	ErrInvalidCSV    = errors.New("invalid tracklist csv")
)

// MapHTTPStatus maps tracks errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAlbumNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidTrack),
		errors.Is(err, ErrInvalidCSV):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
