package auth

import (
	"context"
	"errors"
)

var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the data-access contract.
// Service depends ONLY on this interface.
type AdminRepository interface {
	Save(ctx context.Context, admin *Admin) error
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	// AnyExists reports whether at least one admin has been registered.
	AnyExists(ctx context.Context) (bool, error)
}
