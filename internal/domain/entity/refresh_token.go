package entity

import (
	"time"
)

// RefreshToken is a session-renewal credential. It can be exchanged for a new
// access token until ExpiryDate, without presenting the password again.
type RefreshToken struct {
	Token      string    // Opaque, unguessable identifier (canonical UUID text). Unique across the store.
	Username   string    // Owner of the session. Not unique: a user may hold several tokens.
	ExpiryDate time.Time // The token is valid only while the current time is strictly before this value.
}

// IsExpired reports whether the token is no longer valid at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiryDate)
}
