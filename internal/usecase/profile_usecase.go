package usecase

import (
	"context"

	"veggiemarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile and account management.
type ProfileUsecase interface {
	// GetProfile fetches a user with their shipping profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile modifies the user's display name and shipping details.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// ListUsers returns every registered account. Admin only.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}

// UpdateProfileInput defines the data required to update an account profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`
	Country *string `json:"country,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}
