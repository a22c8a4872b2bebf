package lookup

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound indicates MusicBrainz has no release for the barcode.
	ErrNotFound = errors.New("no release found for barcode")

	// ErrInvalidBarcode indicates the barcode is not 8 to 14 digits.
	ErrInvalidBarcode = errors.New("invalid barcode")

	// ErrUnavailable indicates MusicBrainz could not be reached or the circuit is open.
	ErrUnavailable = errors.New("musicbrainz unavailable")
)

// MapHTTPStatus maps lookup errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidBarcode):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
