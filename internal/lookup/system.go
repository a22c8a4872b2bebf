// Package lookup resolves disc barcodes against the MusicBrainz web service.
// Requests are rate limited, guarded by a circuit breaker and cached.
package lookup

import "context"

// System resolves barcodes to releases.
type System interface {
	// LookupBarcode returns the first release matching barcode.
	// Returns ErrInvalidBarcode for malformed input, ErrNotFound when no
	// release matches and ErrUnavailable when MusicBrainz cannot be used.
	LookupBarcode(ctx context.Context, barcode string) (*Release, error)
}
