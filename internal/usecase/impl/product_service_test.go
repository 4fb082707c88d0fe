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

type productFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	txManager   *mockRepo.MockTransactionManager
}

func createTestProductService(t *testing.T) productFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	svc := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		TxManager:   txManager,
		Logger:      newDiscardLogger(),
	})

	return productFixtures{
		service:     svc,
		productRepo: productRepo,
		txManager:   txManager,
	}
}

func TestProductService_ListProducts_MapsFilters(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	organic := true
	maxPrice := 5.0
	expected := entity.SearchFilters{
		Query:    "spinach",
		Category: "greens",
		MaxPrice: &maxPrice,
		Organic:  &organic,
	}

	fixtures.productRepo.On("List", ctx, expected).
		Return([]*entity.Product{testProduct("prod1", "Organic Spinach", 3.99)}, nil)

	products, err := fixtures.service.ListProducts(ctx, usecase.ListProductsInput{
		Query:    "spinach",
		Category: "greens",
		MaxPrice: &maxPrice,
		Organic:  &organic,
	})

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_GetProduct_ResolvesSlug(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	spinach := testProduct("prod1", "Organic Spinach", 3.99)
	fixtures.productRepo.On("FindByID", ctx, spinach.ID).Return(spinach, nil)

	found, err := fixtures.service.GetProduct(ctx, "prod1")

	require.NoError(t, err)
	assert.Equal(t, spinach.ID, found.ID)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	fixtures.productRepo.On("FindByID", ctx, mock.Anything).
		Return(nil, repository.ErrProductNotFound)

	_, err := fixtures.service.GetProduct(ctx, "prod404")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_CreateProduct_GeneratesIDWhenEmpty(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	fixtures.productRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID != uuid.Nil && p.Name == "Baby Potatoes"
	})).Return(nil)

	product, err := fixtures.service.CreateProduct(ctx, usecase.CreateProductInput{
		Name:     "Baby Potatoes",
		Price:    2.49,
		Stock:    80,
		Category: "vegetables",
		Unit:     "kg",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestProductService_CreateProduct_CanonicalizesSlugID(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	wantID := entity.CanonicalProductID("baby-potatoes")
	fixtures.productRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == wantID
	})).Return(nil)

	product, err := fixtures.service.CreateProduct(ctx, usecase.CreateProductInput{
		ID:    "baby-potatoes",
		Name:  "Baby Potatoes",
		Price: 2.49,
	})

	require.NoError(t, err)
	assert.Equal(t, wantID, product.ID)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	fixtures.productRepo.On("Update", ctx, mock.Anything).
		Return(repository.ErrProductNotFound)

	_, err := fixtures.service.UpdateProduct(ctx, usecase.UpdateProductInput{
		ID:    "prod404",
		Name:  "Gone",
		Price: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_SeedDefaults_SkipsExisting(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	existingID := entity.CanonicalProductID("prod1")

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			productRepo := mockRepo.NewMockProductRepository(t)

			factory.On("ProductRepo").Return(productRepo)

			productRepo.On("FindByID", ctx, existingID).
				Return(testProduct("prod1", "Organic Spinach", 3.99), nil)
			productRepo.On("FindByID", ctx, mock.Anything).
				Return(nil, repository.ErrProductNotFound)
			productRepo.On("Create", ctx, mock.Anything).Return(nil)

			return fn(factory)
		})

	inserted, err := fixtures.service.SeedDefaults(ctx)

	require.NoError(t, err)
	assert.Equal(t, len(defaultCatalog())-1, inserted)
}

func TestProductService_SeedDefaults_IsIdempotent(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			productRepo := mockRepo.NewMockProductRepository(t)

			factory.On("ProductRepo").Return(productRepo)
			productRepo.On("FindByID", ctx, mock.Anything).
				Return(testProduct("prod1", "Organic Spinach", 3.99), nil)

			return fn(factory)
		})

	inserted, err := fixtures.service.SeedDefaults(ctx)

	require.NoError(t, err)
	assert.Zero(t, inserted)
}
