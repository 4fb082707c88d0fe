package main

import (
	"context"
	"log/slog"
	"os"

	"veggiemarket/config"
	"veggiemarket/internal/delivery"
	"veggiemarket/internal/delivery/http"
	"veggiemarket/internal/delivery/http/middleware"
	"veggiemarket/internal/delivery/http/router/handler"
	"veggiemarket/internal/domain/constants"
	"veggiemarket/internal/domain/entity"
	"veggiemarket/internal/domain/repository"
	"veggiemarket/internal/domain/service"
	"veggiemarket/internal/infra/auth"
	logs "veggiemarket/internal/infra/log"
	"veggiemarket/internal/infra/persistence/postgres"
	"veggiemarket/internal/infra/pubsub"
	"veggiemarket/internal/infra/qrcode"
	"veggiemarket/internal/infra/storage"
	"veggiemarket/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.NewBlobStore,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewSessionHub,
			newSessionEvents,
			newQRCodeService,
			newCartStore,
			newWishlistStore,
		),
	)
}

// newSessionEvents exposes the read side of the session hub
func newSessionEvents(hub service.SessionPublisher) service.SessionEvents {
	return hub
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newCartStore scopes the blob store to per-identity cart payloads
func newCartStore(blobs repository.BlobStore, logger *slog.Logger) *storage.ScopedStore[entity.CartItem] {
	return storage.NewScopedStore[entity.CartItem](constants.CartNamespace, blobs, logger)
}

// newWishlistStore scopes the blob store to per-identity wishlist payloads
func newWishlistStore(blobs repository.BlobStore, logger *slog.Logger) *storage.ScopedStore[entity.Product] {
	return storage.NewScopedStore[entity.Product](constants.WishlistNamespace, blobs, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewProductService,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewWishlistHandler,
			handler.NewOrderHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
