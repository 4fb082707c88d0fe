package impl

import (
	"context"
	"log/slog"
	"sync"

	"veggiemarket/internal/domain/entity"
	"veggiemarket/internal/domain/repository"
	"veggiemarket/internal/domain/service"
	"veggiemarket/internal/infra/storage"
	"veggiemarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface. It shares the
// cart container's lifecycle (reset then load on identity change) but has no
// admin suppression: back-office accounts may keep wishlists.
type wishlistService struct {
	mu       sync.Mutex
	items    entity.Wishlist
	identity entity.Identity

	store       *storage.ScopedStore[entity.Product]
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	Store       *storage.ScopedStore[entity.Product]
	ProductRepo repository.ProductRepository
	Session     service.SessionEvents
	Logger      *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	srv := &wishlistService{
		store:       params.Store,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}

	srv.switchScope(context.Background(), params.Session.Current())
	params.Session.Subscribe(func(identity entity.Identity) {
		srv.switchScope(context.Background(), identity)
	})

	return srv
}

func (srv *wishlistService) switchScope(ctx context.Context, identity entity.Identity) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.items = nil
	srv.identity = identity

	loaded, err := srv.store.Load(ctx, identity.ScopeKey())
	if err != nil {
		srv.logger.Error("Failed to load wishlist for scope",
			slog.String("scope", identity.ScopeKey()),
			slog.Any("error", err),
		)

		return
	}

	srv.items = loaded
}

// GetWishlist returns the active identity's wishlist.
func (srv *wishlistService) GetWishlist(_ context.Context) (*usecase.WishlistOutput, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	items := make(entity.Wishlist, len(srv.items))
	copy(items, srv.items)

	return &usecase.WishlistOutput{Items: items}, nil
}

// Add puts a product on the wishlist. Duplicates are not an error; the bool
// reports whether the product was actually added.
func (srv *wishlistService) Add(ctx context.Context, productID string) (bool, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	id := entity.CanonicalProductID(productID)
	if srv.items.Contains(id) {
		return false, nil
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to resolve product for wishlist add")
	}

	srv.items = append(srv.items, *product)

	return true, srv.persist(ctx)
}

// Remove takes a product off the wishlist. Unknown IDs are a no-op.
func (srv *wishlistService) Remove(ctx context.Context, productID string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	id := entity.CanonicalProductID(productID)
	filtered := srv.items[:0]
	for _, product := range srv.items {
		if product.ID != id {
			filtered = append(filtered, product)
		}
	}
	srv.items = filtered

	return srv.persist(ctx)
}

// Contains reports whether a product is on the wishlist.
func (srv *wishlistService) Contains(_ context.Context, productID string) (bool, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.items.Contains(entity.CanonicalProductID(productID)), nil
}

// Clear empties the wishlist and removes its storage entry.
func (srv *wishlistService) Clear(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.items = nil

	return errors.Wrap(srv.store.Clear(ctx, srv.identity.ScopeKey()), "failed to clear wishlist")
}

func (srv *wishlistService) persist(ctx context.Context) error {
	if err := srv.store.Save(ctx, srv.identity.ScopeKey(), srv.items); err != nil {
		return errors.Wrap(err, "failed to persist wishlist")
	}

	return nil
}
