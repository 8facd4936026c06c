package auth

import (
	"context"
	"sync"

	"bankauth/internal/domain/entity"
	domainerrors "bankauth/internal/domain/errors"
	"bankauth/internal/domain/repository"
	"bankauth/internal/domain/service"
	"bankauth/internal/errors"

	"go.uber.org/fx"
)

// CredentialVerifierParams holds dependencies for the credential verifier, injected by Fx.
type CredentialVerifierParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
}

type credentialVerifier struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher

	// dummyHash is compared against when there is no stored hash, so unknown
	// emails cost as much as wrong passwords.
	dummyOnce sync.Once
	dummyHash string
}

// NewCredentialVerifier authenticates email/password pairs against the user store.
func NewCredentialVerifier(params CredentialVerifierParams) service.CredentialVerifier {
	return &credentialVerifier{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
	}
}

// Authenticate looks the user up by email and checks the password hash.
// An unknown email and a wrong password produce the same error.
func (v *credentialVerifier) Authenticate(ctx context.Context, identifier, password string) (*entity.Principal, error) {
	user, err := v.userRepo.FindByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			v.hasher.Check(password, v.fallbackHash())

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to load user for authentication")
	}

	if user.PasswordHash == "" {
		v.hasher.Check(password, v.fallbackHash())

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if !v.hasher.Check(password, user.PasswordHash) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	var roles entity.Roles
	if user.Role.IsValid() {
		roles = entity.Roles{user.Role}
	}

	return &entity.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    roles,
	}, nil
}

// fallbackHash lazily hashes a fixed secret with the configured cost.
func (v *credentialVerifier) fallbackHash() string {
	v.dummyOnce.Do(func() {
		hash, err := v.hasher.Hash("bankauth-unknown-user")
		if err == nil {
			v.dummyHash = hash
		}
	})

	return v.dummyHash
}
