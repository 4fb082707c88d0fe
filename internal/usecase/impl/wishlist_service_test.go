package impl

import (
	"context"
	"testing"

	"veggiemarket/internal/domain/constants"
	"veggiemarket/internal/domain/entity"
	"veggiemarket/internal/domain/repository"
	"veggiemarket/internal/domain/service"
	"veggiemarket/internal/infra/auth"
	"veggiemarket/internal/infra/storage"
	mockRepo "veggiemarket/internal/mocks/repository"
	"veggiemarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wishlistFixtures struct {
	service     usecase.WishlistUsecase
	blobs       repository.BlobStore
	session     service.SessionPublisher
	productRepo *mockRepo.MockProductRepository
}

func createTestWishlistService(t *testing.T) wishlistFixtures {
	logger := newDiscardLogger()
	blobs := storage.NewMemoryStore()
	store := storage.NewScopedStore[entity.Product](constants.WishlistNamespace, blobs, logger)
	session := auth.NewSessionHub()
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewWishlistService(WishlistServiceParams{
		Store:       store,
		ProductRepo: productRepo,
		Session:     session,
		Logger:      logger,
	})

	return wishlistFixtures{
		service:     svc,
		blobs:       blobs,
		session:     session,
		productRepo: productRepo,
	}
}

func TestWishlistService_AddAndContains(t *testing.T) {
	fixtures := createTestWishlistService(t)
	ctx := context.Background()

	kale := testProduct("prod8", "Purple Kale", 3.49)
	fixtures.productRepo.On("FindByID", mock.Anything, kale.ID).Return(kale, nil)

	added, err := fixtures.service.Add(ctx, "prod8")
	require.NoError(t, err)
	assert.True(t, added)

	present, err := fixtures.service.Contains(ctx, "prod8")
	require.NoError(t, err)
	assert.True(t, present)

	absent, err := fixtures.service.Contains(ctx, "prod9")
	require.NoError(t, err)
	assert.False(t, absent)
}

func TestWishlistService_AddDuplicateIsNotAnError(t *testing.T) {
	fixtures := createTestWishlistService(t)
	ctx := context.Background()

	kale := testProduct("prod8", "Purple Kale", 3.49)
	fixtures.productRepo.On("FindByID", mock.Anything, kale.ID).Return(kale, nil).Once()

	added, err := fixtures.service.Add(ctx, "prod8")
	require.NoError(t, err)
	assert.True(t, added)

	// The duplicate is detected before any product lookup.
	added, err = fixtures.service.Add(ctx, kale.ID.String())
	require.NoError(t, err)
	assert.False(t, added)

	list, err := fixtures.service.GetWishlist(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestWishlistService_AdminMayUseWishlist(t *testing.T) {
	fixtures := createTestWishlistService(t)
	ctx := context.Background()

	fixtures.session.Publish(entity.Identity{UserID: "6df1c2b0-0000-4000-8000-000000000003", IsAdmin: true})

	kale := testProduct("prod8", "Purple Kale", 3.49)
	fixtures.productRepo.On("FindByID", mock.Anything, kale.ID).Return(kale, nil)

	added, err := fixtures.service.Add(ctx, "prod8")
	require.NoError(t, err)
	assert.True(t, added)
}

func TestWishlistService_RemoveUnknownIDIsNoOp(t *testing.T) {
	fixtures := createTestWishlistService(t)
	ctx := context.Background()

	kale := testProduct("prod8", "Purple Kale", 3.49)
	fixtures.productRepo.On("FindByID", mock.Anything, kale.ID).Return(kale, nil)

	added, err := fixtures.service.Add(ctx, "prod8")
	require.NoError(t, err)
	require.True(t, added)

	require.NoError(t, fixtures.service.Remove(ctx, "prod9"))

	list, err := fixtures.service.GetWishlist(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestWishlistService_RemoveLastItemDeletesStorageEntry(t *testing.T) {
	fixtures := createTestWishlistService(t)
	ctx := context.Background()

	kale := testProduct("prod8", "Purple Kale", 3.49)
	fixtures.productRepo.On("FindByID", mock.Anything, kale.ID).Return(kale, nil)

	added, err := fixtures.service.Add(ctx, "prod8")
	require.NoError(t, err)
	require.True(t, added)

	require.NoError(t, fixtures.service.Remove(ctx, "prod8"))

	_, err = fixtures.blobs.Get(ctx, "wishlist_"+constants.GuestScopeKey)
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}

func TestWishlistService_IdentitySwitchIsolatesScopes(t *testing.T) {
	fixtures := createTestWishlistService(t)
	ctx := context.Background()

	kale := testProduct("prod8", "Purple Kale", 3.49)
	fixtures.productRepo.On("FindByID", mock.Anything, kale.ID).Return(kale, nil)

	added, err := fixtures.service.Add(ctx, "prod8")
	require.NoError(t, err)
	require.True(t, added)

	shopper := entity.Identity{UserID: "6df1c2b0-0000-4000-8000-000000000004"}
	fixtures.session.Publish(shopper)

	list, err := fixtures.service.GetWishlist(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	fixtures.session.Publish(entity.Guest())

	list, err = fixtures.service.GetWishlist(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, kale.ID, list.Items[0].ID)
}
