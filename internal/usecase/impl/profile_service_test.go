package impl

import (
	"context"
	"testing"

	"veggiemarket/internal/domain/entity"
	domainerrors "veggiemarket/internal/domain/errors"
	"veggiemarket/internal/domain/repository"
	mockRepo "veggiemarket/internal/mocks/repository"
	"veggiemarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileFixtures struct {
	service   usecase.ProfileUsecase
	userRepo  *mockRepo.MockUserRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	svc := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return profileFixtures{
		service:   svc,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fixtures := createTestProfileService(t)
	ctx := context.Background()

	fixtures.userRepo.On("FindByID", ctx, mock.Anything).
		Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.GetProfile(ctx, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile_PatchesOnlyProvidedFields(t *testing.T) {
	fixtures := createTestProfileService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{
		ID:   userID,
		Name: "Old Name",
		Profile: &entity.Profile{
			UserID:  userID,
			Address: "1 Old Street",
			City:    "Pune",
			Phone:   "+91 9000000000",
		},
	}

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.On("UserRepo").Return(userRepo)
			userRepo.On("FindByID", ctx, userID).Return(user, nil)
			userRepo.On("Update", ctx, mock.Anything).Return(nil)

			return fn(factory)
		})

	updated, err := fixtures.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Name:    strPtr("New Name"),
		Address: strPtr("2 New Street"),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "2 New Street", updated.Profile.Address)

	// Untouched fields keep their stored values.
	assert.Equal(t, "Pune", updated.Profile.City)
	assert.Equal(t, "+91 9000000000", updated.Profile.Phone)
}

func TestProfileService_UpdateProfile_CreatesProfileOnFirstUpdate(t *testing.T) {
	fixtures := createTestProfileService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Shopper"}

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.On("UserRepo").Return(userRepo)
			userRepo.On("FindByID", ctx, userID).Return(user, nil)
			userRepo.On("Update", ctx, mock.Anything).Return(nil)

			return fn(factory)
		})

	updated, err := fixtures.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Address: strPtr("12 Market Lane"),
		City:    strPtr("Pune"),
	})

	require.NoError(t, err)
	require.NotNil(t, updated.Profile)
	assert.Equal(t, userID, updated.Profile.UserID)
	assert.Equal(t, "12 Market Lane", updated.Profile.Address)
}

func TestProfileService_UpdateProfile_NameOnlyLeavesProfileNil(t *testing.T) {
	fixtures := createTestProfileService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Shopper"}

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.On("UserRepo").Return(userRepo)
			userRepo.On("FindByID", ctx, userID).Return(user, nil)
			userRepo.On("Update", ctx, mock.Anything).Return(nil)

			return fn(factory)
		})

	updated, err := fixtures.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Name: strPtr("Renamed"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Nil(t, updated.Profile)
}

func TestProfileService_ListUsers(t *testing.T) {
	fixtures := createTestProfileService(t)
	ctx := context.Background()

	fixtures.userRepo.On("ListAll", ctx).
		Return([]*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	users, err := fixtures.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Len(t, users, 2)
}
