package menu

import (
	"context"
	"errors"
)

// ErrMenuNotFound is returned when no document is stored under a key.
var ErrMenuNotFound = errors.New("no menu available")

// Repository is the document store the published menu lives in.
// Service depends ONLY on this interface.
type Repository interface {
	// Get returns the document stored under key, or ErrMenuNotFound.
	Get(ctx context.Context, key string) (*Document, error)

	// Upsert replaces (or creates) the document stored under key.
	Upsert(ctx context.Context, key string, doc *Document) error
}
