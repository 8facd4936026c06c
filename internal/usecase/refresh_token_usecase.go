package usecase

import (
	"context"

	"bankauth/internal/domain/entity"
)

// RefreshTokenUsecase manages the lifecycle of refresh token records.
type RefreshTokenUsecase interface {
	// CreateRefreshToken issues and stores a new token for username and returns the token string.
	// Existing tokens of the same user are left untouched.
	CreateRefreshToken(ctx context.Context, username string) (string, error)

	// FindByToken returns the stored record or repository.ErrRefreshTokenNotFound.
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// VerifyExpiration returns token unchanged while it is live. Once expired the
	// record is deleted and ErrRefreshTokenExpired is returned.
	VerifyExpiration(ctx context.Context, token *entity.RefreshToken) (*entity.RefreshToken, error)

	// DeleteByUsername removes every token owned by username.
	DeleteByUsername(ctx context.Context, username string) error

	// CleanupExpired removes all expired tokens and reports how many were removed.
	CleanupExpired(ctx context.Context) (int64, error)
}
