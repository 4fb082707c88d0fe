package repository

import (
	"context"
	"errors"

	"veggiemarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when no credential exists for the given lookup.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves a credential by provider and user ID.
	FindAuthentication(ctx context.Context, provider string, userID uuid.UUID) (*entity.Authentication, error)

	// FindAuthenticationByEmail retrieves the email/password credential for an email.
	FindAuthenticationByEmail(ctx context.Context, email string) (*entity.Authentication, error)

	// CreateAuthentication persists a new credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
