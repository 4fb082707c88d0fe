// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "veggiemarket/internal/delivery/context"
	"veggiemarket/internal/domain/entity"
	"veggiemarket/internal/domain/repository"
	"veggiemarket/internal/domain/service"
	"veggiemarket/internal/infra/storage"
	"veggiemarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. It keeps the active
// scope's cart in memory and writes through to the scoped store on every
// mutation, so a restart or identity switch always reloads a consistent view.
type cartService struct {
	mu       sync.Mutex
	items    entity.CartItems
	identity entity.Identity

	store       *storage.ScopedStore[entity.CartItem]
	productRepo repository.ProductRepository
	session     service.SessionEvents
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Store       *storage.ScopedStore[entity.CartItem]
	ProductRepo repository.ProductRepository
	Session     service.SessionEvents
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService. It loads the current
// identity's cart and subscribes to identity changes so a login, logout or
// account switch resets the container before loading the new scope.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	srv := &cartService{
		store:       params.Store,
		productRepo: params.ProductRepo,
		session:     params.Session,
		logger:      params.Logger,
	}

	srv.switchScope(context.Background(), params.Session.Current())
	params.Session.Subscribe(func(identity entity.Identity) {
		srv.switchScope(context.Background(), identity)
	})

	return srv
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// switchScope runs the reset-then-load transition. The container is emptied
// before the new scope's payload is read so the previous identity's items
// never remain visible, even if the load fails.
func (srv *cartService) switchScope(ctx context.Context, identity entity.Identity) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.items = nil
	srv.identity = identity

	loaded, err := srv.store.Load(ctx, identity.ScopeKey())
	if err != nil {
		srv.logger.Error("Failed to load cart for scope",
			slog.String("scope", identity.ScopeKey()),
			slog.Any("error", err),
		)

		return
	}

	srv.items = loaded
}

// GetCart returns the active identity's cart with derived totals.
func (srv *cartService) GetCart(_ context.Context) (*usecase.CartOutput, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	items := make(entity.CartItems, len(srv.items))
	copy(items, srv.items)

	return &usecase.CartOutput{
		Items:      items,
		TotalItems: items.TotalItems(),
		Subtotal:   items.Subtotal(),
	}, nil
}

// AddItem puts quantity units of a product into the cart. For admin
// identities this is a silent no-op: no error, no persistence, no state
// change, mirroring the storefront rule that back-office accounts don't shop.
func (srv *cartService) AddItem(ctx context.Context, input usecase.AddCartItemInput) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.identity.IsAdmin {
		srv.log(ctx).Debug("Ignoring cart add for admin identity",
			slog.String("productID", input.ProductID),
		)

		return nil
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	productID := entity.CanonicalProductID(input.ProductID)
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve product for cart add")
	}

	merged := false
	for i := range srv.items {
		if srv.items[i].Product.ID == productID {
			srv.items[i].Quantity += quantity
			merged = true

			break
		}
	}
	if !merged {
		srv.items = append(srv.items, entity.CartItem{Product: *product, Quantity: quantity})
	}

	return srv.persist(ctx)
}

// UpdateQuantity sets the absolute quantity of a line. A quantity of zero or
// less removes the line entirely.
func (srv *cartService) UpdateQuantity(ctx context.Context, input usecase.UpdateCartQuantityInput) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	productID := entity.CanonicalProductID(input.ProductID)

	if input.Quantity <= 0 {
		srv.removeLocked(productID)

		return srv.persist(ctx)
	}

	for i := range srv.items {
		if srv.items[i].Product.ID == productID {
			srv.items[i].Quantity = input.Quantity

			break
		}
	}

	return srv.persist(ctx)
}

// RemoveItem deletes a line from the cart. Unknown IDs are a no-op.
func (srv *cartService) RemoveItem(ctx context.Context, productID string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.removeLocked(entity.CanonicalProductID(productID))

	return srv.persist(ctx)
}

// Clear empties the cart and removes its storage entry.
func (srv *cartService) Clear(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.items = nil

	return errors.Wrap(srv.store.Clear(ctx, srv.identity.ScopeKey()), "failed to clear cart")
}

func (srv *cartService) removeLocked(productID uuid.UUID) {
	filtered := srv.items[:0]
	for _, item := range srv.items {
		if item.Product.ID != productID {
			filtered = append(filtered, item)
		}
	}
	srv.items = filtered
}

// persist writes the current items through to storage. Caller holds the lock.
func (srv *cartService) persist(ctx context.Context) error {
	if err := srv.store.Save(ctx, srv.identity.ScopeKey(), srv.items); err != nil {
		return errors.Wrap(err, "failed to persist cart")
	}

	return nil
}
