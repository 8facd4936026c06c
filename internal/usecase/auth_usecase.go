// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	// Username is optional and defaults to Email.
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the opaque refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token whose owner is being signed out.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput is the result of a successful authentication exchange.
// RefreshToken is empty after registration.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the authentication exchanges exposed to the delivery layer.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*AuthOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
