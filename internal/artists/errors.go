package artists

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("artist not found")
	ErrDuplicate = errors.New("artist name already exists")
	ErrInvalid   = errors.New("invalid artist")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
