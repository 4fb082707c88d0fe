package impl

import (
	"context"
	"log/slog"

	deliverycontext "veggiemarket/internal/delivery/context"
	"veggiemarket/internal/domain/entity"
	domainerrors "veggiemarket/internal/domain/errors"
	"veggiemarket/internal/domain/repository"
	"veggiemarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile fetches a user together with their shipping profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// UpdateProfile patches the user's display name and shipping details. Nil
// input fields keep their stored values; the profile row is created on the
// first update that touches it.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile update failed")
			}

			return errors.Wrap(err, "failed to load user for update")
		}

		if input.Name != nil {
			user.Name = *input.Name
		}

		if touchesProfile(input) {
			if user.Profile == nil {
				user.Profile = &entity.Profile{UserID: user.ID}
			}
			applyProfilePatch(user.Profile, input)
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

// ListUsers returns every registered account for the back office.
func (srv *profileService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func touchesProfile(input *usecase.UpdateProfileInput) bool {
	return input.Address != nil || input.City != nil || input.State != nil ||
		input.ZipCode != nil || input.Country != nil || input.Phone != nil
}

func applyProfilePatch(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if input.State != nil {
		profile.State = *input.State
	}
	if input.ZipCode != nil {
		profile.ZipCode = *input.ZipCode
	}
	if input.Country != nil {
		profile.Country = *input.Country
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
}
