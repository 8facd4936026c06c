package service

import (
	"bankauth/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeAccess is the "type" claim of every signed access token.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the signed access tokens.
type Claims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles,omitempty"`
	Type     string   `json:"type"`
	jwt.RegisteredClaims
}

// TokenService signs and validates access tokens.
// Refresh tokens are opaque and never pass through here.
type TokenService interface {
	// GenerateAccessToken signs an access token carrying the user's username and roles.
	GenerateAccessToken(user *entity.User) (string, error)

	// GenerateRefreshAccessToken signs an access token for a refresh-token exchange.
	// It carries the same claims GenerateAccessToken would for the same user.
	GenerateRefreshAccessToken(user *entity.User) (string, error)

	// ValidateAccessToken parses and verifies a signed access token.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
