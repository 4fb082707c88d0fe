package repository

import (
	"context"
	"errors"

	"veggiemarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Refresh-token sentinel errors.
var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
)

// RefreshTokenRepository defines the operations for session persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a token record by its stored hash.
	// Returns ErrRefreshTokenExpired for tokens past their expiry.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshToken removes a single session.
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error

	// DeleteUserRefreshTokens removes every session belonging to a user.
	DeleteUserRefreshTokens(ctx context.Context, userID uuid.UUID) error

	// CountActiveSessions returns the number of unexpired sessions for a user.
	CountActiveSessions(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteOldestSession removes the user's oldest session. Used to enforce
	// the configured concurrent-session limit.
	DeleteOldestSession(ctx context.Context, userID uuid.UUID) error
}
