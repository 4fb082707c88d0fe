package usecase

import (
	"context"

	"veggiemarket/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RefreshTokenInput carries the raw refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string `validate:"required"`
}

// LogoutInput carries the raw refresh token of the session to revoke.
type LogoutInput struct {
	RefreshToken string `validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the re-issued access token. The refresh token
// itself is not rotated.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new customer account with an email credential.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials, issues tokens, stores the session, and
	// publishes the new shopping identity.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RefreshToken issues a new access token against a valid session.
	RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout revokes the session and publishes the guest identity.
	Logout(ctx context.Context, input LogoutInput) error
}
