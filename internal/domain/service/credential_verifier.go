package service

import (
	"context"

	"bankauth/internal/domain/entity"
)

// CredentialVerifier checks an identifier/password pair against stored credentials.
type CredentialVerifier interface {
	// Authenticate returns the authenticated principal, or an error wrapping
	// ErrInvalidCredentials. The error never reveals which of the two values was wrong.
	Authenticate(ctx context.Context, identifier, password string) (*entity.Principal, error)
}
