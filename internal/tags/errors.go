package tags

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("tag not found")
	ErrDuplicate = errors.New("tag name already exists")
	ErrInvalid   = errors.New("invalid tag")
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
