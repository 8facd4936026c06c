// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"bankauth/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when no refresh token matches a lookup.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists refresh tokens, keyed by token string and
// queryable by owner. Every write is atomic with respect to the same key.
type RefreshTokenRepository interface {
	// Save inserts the token, or replaces the stored record with the same token string.
	Save(ctx context.Context, token *entity.RefreshToken) error

	// FindByToken returns the record with exactly this token string, or ErrRefreshTokenNotFound.
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// FindByUsername returns a record owned by username, or ErrRefreshTokenNotFound.
	// If several exist, the one expiring last is returned.
	FindByUsername(ctx context.Context, username string) (*entity.RefreshToken, error)

	// DeleteByUsername removes every record owned by username. Removing nothing is not an error.
	DeleteByUsername(ctx context.Context, username string) error

	// Delete removes the given record. Removing an already absent record is not an error.
	Delete(ctx context.Context, token *entity.RefreshToken) error

	// DeleteExpired removes all records whose expiry is at or before now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
