// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a bank customer account. Email and Phone are each unique across all users.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Primary login identifier.
	Phone        string    // Contact phone number.
	Username     string    // Name carried in token claims; defaults to Email.
	FirstName    string
	LastName     string
	PasswordHash string // bcrypt hash of the user's password.
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated identity produced by credential verification.
// It is returned to the caller instead of being stored in a process-wide context.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Roles    Roles
}
