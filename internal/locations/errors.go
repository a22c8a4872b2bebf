package locations

import (
	"errors"
	"net/http"
)

// Domain errors for location operations.
var (
	ErrNotFound = errors.New("location not found")
	ErrInvalid  = errors.New("invalid location")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
