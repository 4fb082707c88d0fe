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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	TxManager   repository.TransactionManager
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		txManager:   params.TxManager,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns catalog products matching the filters, newest first.
func (srv *productService) ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, entity.SearchFilters{
		Query:    input.Query,
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Organic:  input.Organic,
		Featured: input.Featured,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct fetches one product by UUID or legacy slug.
func (srv *productService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, entity.CanonicalProductID(id))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct adds a product to the catalog.
func (srv *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	id := uuid.New()
	if input.ID != "" {
		id = entity.CanonicalProductID(input.ID)
	}

	product := &entity.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Image:       input.Image,
		Category:    input.Category,
		Organic:     input.Organic,
		Unit:        input.Unit,
		Discount:    input.Discount,
		Featured:    input.Featured,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product",
			slog.String("name", input.Name),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.Any("productID", product.ID),
		slog.String("name", product.Name),
	)

	return product, nil
}

// UpdateProduct modifies a product.
func (srv *productService) UpdateProduct(ctx context.Context, input usecase.UpdateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:          entity.CanonicalProductID(input.ID),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Image:       input.Image,
		Category:    input.Category,
		Organic:     input.Organic,
		Unit:        input.Unit,
		Discount:    input.Discount,
		Featured:    input.Featured,
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product update failed")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (srv *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := srv.productRepo.Delete(ctx, entity.CanonicalProductID(id)); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product delete failed")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id))

	return nil
}

// SeedDefaults inserts the starter catalog inside one transaction, skipping
// products that already exist. Returns the number of products inserted.
func (srv *productService) SeedDefaults(ctx context.Context) (int, error) {
	inserted := 0

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		for _, seed := range defaultCatalog() {
			_, err := productRepo.FindByID(ctx, seed.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(err, "failed to check existing product")
			}

			if err := productRepo.Create(ctx, seed); err != nil {
				return errors.Wrapf(err, "failed to seed product %s", seed.Name)
			}
			inserted++
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to execute seed transaction")
	}

	srv.log(ctx).Info("Catalog seeded", slog.Int("inserted", inserted))

	return inserted, nil
}
