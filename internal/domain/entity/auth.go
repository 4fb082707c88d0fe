package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication represents a single method of logging in (a credential).
// Only email/password credentials exist today; the Provider column leaves the
// door open for social logins later.
type Authentication struct {
	ID           uuid.UUID // The unique ID for this specific authentication record.
	UserID       uuid.UUID // Links this authentication method to the User it belongs to.
	Provider     string    // The authentication provider, currently always "email".
	PasswordHash string    // The bcrypt-hashed password.
	CreatedAt    time.Time // Timestamp of when this credential was created.
}

// ProviderTypeEmail is the provider value for password credentials.
const ProviderTypeEmail = "email"

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token; the raw value is never stored.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time // When this session was created (i.e., when the user logged in).
}
