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

// cartFixtures wires a cart service against a real in-memory store and a
// real session hub, so identity-switch behavior is exercised end to end.
type cartFixtures struct {
	service     usecase.CartUsecase
	store       *storage.ScopedStore[entity.CartItem]
	blobs       repository.BlobStore
	session     service.SessionPublisher
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartFixtures {
	logger := newDiscardLogger()
	blobs := storage.NewMemoryStore()
	store := storage.NewScopedStore[entity.CartItem](constants.CartNamespace, blobs, logger)
	session := auth.NewSessionHub()
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewCartService(CartServiceParams{
		Store:       store,
		ProductRepo: productRepo,
		Session:     session,
		Logger:      logger,
	})

	return cartFixtures{
		service:     svc,
		store:       store,
		blobs:       blobs,
		session:     session,
		productRepo: productRepo,
	}
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	fixtures := createTestCartService(t)
	ctx := context.Background()

	spinach := testProduct("prod1", "Organic Spinach", 3.99)
	fixtures.productRepo.On("FindByID", mock.Anything, spinach.ID).Return(spinach, nil)

	require.NoError(t, fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: "prod1", Quantity: 2}))
	require.NoError(t, fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: "prod1", Quantity: 3}))

	cart, err := fixtures.service.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems)
	assert.InDelta(t, 5*3.99, cart.Subtotal, 0.001)
}

func TestCartService_AddItem_CanonicalAndSlugIDsShareALine(t *testing.T) {
	fixtures := createTestCartService(t)
	ctx := context.Background()

	carrot := testProduct("prod4", "Rainbow Carrots", 2.99)
	fixtures.productRepo.On("FindByID", mock.Anything, carrot.ID).Return(carrot, nil)

	require.NoError(t, fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: "prod4", Quantity: 1}))
	require.NoError(t, fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: carrot.ID.String(), Quantity: 1}))

	cart, err := fixtures.service.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartService_AddItem_NonPositiveQuantityDefaultsToOne(t *testing.T) {
	fixtures := createTestCartService(t)
	ctx := context.Background()

	tomato := testProduct("prod3", "Heirloom Tomatoes", 4.99)
	fixtures.productRepo.On("FindByID", mock.Anything, tomato.ID).Return(tomato, nil)

	require.NoError(t, fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: "prod3", Quantity: 0}))

	cart, err := fixtures.service.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fixtures := createTestCartService(t)
	ctx := context.Background()

	missing := entity.CanonicalProductID("no-such-product")
	fixtures.productRepo.On("FindByID", mock.Anything, missing).Return(nil, repository.ErrProductNotFound)

	err := fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: "no-such-product", Quantity: 1})

	require.Error(t, err)

	cart, err := fixtures.service.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_AddItem_AdminIsSilentNoOp(t *testing.T) {
	fixtures := createTestCartService(t)
	ctx := context.Background()

	fixtures.session.Publish(entity.Identity{UserID: "6df1c2b0-0000-4000-8000-000000000001", IsAdmin: true})

	// No FindByID expectation: the product must never be looked up.
	err := fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: "prod1", Quantity: 1})

	require.NoError(t, err)

	cart, err := fixtures.service.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	fixtures := createTestCartService(t)
	ctx := context.Background()

	spinach := testProduct("prod1", "Organic Spinach", 3.99)
	fixtures.productRepo.On("FindByID", mock.Anything, spinach.ID).Return(spinach, nil)

	require.NoError(t, fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: "prod1", Quantity: 2}))
	require.NoError(t, fixtures.service.UpdateQuantity(ctx, usecase.UpdateCartQuantityInput{ProductID: "prod1", Quantity: 0}))

	cart, err := fixtures.service.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// The storage entry is gone too, not just the in-memory line.
	_, err = fixtures.blobs.Get(ctx, "cart_"+constants.GuestScopeKey)
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}

func TestCartService_RemoveItem_UnknownIDIsNoOp(t *testing.T) {
	fixtures := createTestCartService(t)
	ctx := context.Background()

	spinach := testProduct("prod1", "Organic Spinach", 3.99)
	fixtures.productRepo.On("FindByID", mock.Anything, spinach.ID).Return(spinach, nil)

	require.NoError(t, fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: "prod1", Quantity: 1}))
	require.NoError(t, fixtures.service.RemoveItem(ctx, "prod2"))

	cart, err := fixtures.service.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_IdentitySwitchIsolatesScopes(t *testing.T) {
	fixtures := createTestCartService(t)
	ctx := context.Background()

	spinach := testProduct("prod1", "Organic Spinach", 3.99)
	avocado := testProduct("prod6", "Avocados", 5.99)
	fixtures.productRepo.On("FindByID", mock.Anything, spinach.ID).Return(spinach, nil)
	fixtures.productRepo.On("FindByID", mock.Anything, avocado.ID).Return(avocado, nil)

	// Guest fills their cart.
	require.NoError(t, fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: "prod1", Quantity: 2}))

	// Logging in swaps to the user's empty scope.
	shopper := entity.Identity{UserID: "6df1c2b0-0000-4000-8000-000000000002"}
	fixtures.session.Publish(shopper)

	cart, err := fixtures.service.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	require.NoError(t, fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: "prod6", Quantity: 1}))

	// Logging out restores the guest cart untouched.
	fixtures.session.Publish(entity.Guest())

	cart, err = fixtures.service.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, spinach.ID, cart.Items[0].Product.ID)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	// Logging back in reloads the user's persisted cart.
	fixtures.session.Publish(shopper)

	cart, err = fixtures.service.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, avocado.ID, cart.Items[0].Product.ID)
}

func TestCartService_SurvivesRestart(t *testing.T) {
	fixtures := createTestCartService(t)
	ctx := context.Background()

	spinach := testProduct("prod1", "Organic Spinach", 3.99)
	fixtures.productRepo.On("FindByID", mock.Anything, spinach.ID).Return(spinach, nil)

	require.NoError(t, fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: "prod1", Quantity: 2}))

	// A fresh service over the same store sees the persisted cart.
	restarted := NewCartService(CartServiceParams{
		Store:       fixtures.store,
		ProductRepo: fixtures.productRepo,
		Session:     fixtures.session,
		Logger:      newDiscardLogger(),
	})

	cart, err := restarted.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartService_ClearRemovesStorageEntry(t *testing.T) {
	fixtures := createTestCartService(t)
	ctx := context.Background()

	spinach := testProduct("prod1", "Organic Spinach", 3.99)
	fixtures.productRepo.On("FindByID", mock.Anything, spinach.ID).Return(spinach, nil)

	require.NoError(t, fixtures.service.AddItem(ctx, usecase.AddCartItemInput{ProductID: "prod1", Quantity: 1}))
	require.NoError(t, fixtures.service.Clear(ctx))

	cart, err := fixtures.service.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = fixtures.blobs.Get(ctx, "cart_"+constants.GuestScopeKey)
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}
