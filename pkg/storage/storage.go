// Package storage provides blob storage for binary assets such as album cover
// images. The filesystem implementation maps keys onto relative file paths
// under a base directory.
package storage

import (
	"context"
	"errors"

	"github.com/JaimeStill/discvault/pkg/lifecycle"
)

// Storage errors returned by System implementations.
var (
	ErrNotFound         = errors.New("storage: key not found")
	ErrPermissionDenied = errors.New("storage: permission denied")
	// ErrInvalidKey covers empty keys and path traversal attempts.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// System stores and retrieves binary blobs by key.
type System interface {
	// Store writes data at key, replacing existing content.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns ErrNotFound when key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete is idempotent.
	Delete(ctx context.Context, key string) error

	// Validate reports whether key exists.
	Validate(ctx context.Context, key string) (bool, error)

	// Path returns the absolute location of key.
	Path(ctx context.Context, key string) (string, error)

	// Start registers lifecycle hooks with the coordinator.
	Start(lc *lifecycle.Coordinator) error
}
