// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bankauth/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by the username carried in tokens.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByEmail reports whether a user with this email is registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByPhone reports whether a user with this phone number is registered.
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// Create persists a new user entity to the storage and fills in generated fields.
	Create(ctx context.Context, user *entity.User) error
}
