package genres

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("genre not found")
	ErrDuplicate = errors.New("genre name already exists")
	ErrInvalid   = errors.New("invalid genre")
)

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
