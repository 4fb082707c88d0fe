package impl

import (
	"context"
	"log/slog"
	"time"

	"veggiemarket/config"
	deliverycontext "veggiemarket/internal/delivery/context"
	"veggiemarket/internal/domain/constants"
	"veggiemarket/internal/domain/entity"
	domainerrors "veggiemarket/internal/domain/errors"
	"veggiemarket/internal/domain/repository"
	"veggiemarket/internal/domain/service"
	"veggiemarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	cart           usecase.CartUsecase
	session        service.SessionEvents
	eventPublisher service.EventPublisher
	qrService      service.QRCodeService
	checkout       *config.CheckoutConfig
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	Cart           usecase.CartUsecase
	Session        service.SessionEvents
	EventPublisher service.EventPublisher
	QRService      service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		cart:           params.Cart,
		session:        params.Session,
		eventPublisher: params.EventPublisher,
		qrService:      params.QRService,
		checkout:       params.Config.Checkout,
		logger:         params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout prices the active identity's cart and turns it into a pending
// cash-on-delivery order. Order row, item snapshots, and stock decrements
// happen in one transaction; the cart is cleared only after commit.
func (srv *orderService) Checkout(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	identity := srv.session.Current()
	if identity.UserID == "" {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "checkout requires an authenticated user")
	}
	if identity.IsAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "admin accounts cannot place orders")
	}

	userID, err := uuid.Parse(identity.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user id in shopping identity")
	}

	cartOut, err := srv.cart.GetCart(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart for checkout")
	}
	if len(cartOut.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrEmptyCart, "checkout failed")
	}

	subtotal := cartOut.Subtotal
	tax := subtotal * srv.checkout.TaxRate
	shipping := srv.checkout.ShippingFee
	if subtotal >= srv.checkout.FreeShippingThreshold {
		shipping = 0
	}

	order := &entity.Order{
		UserID:       userID,
		Status:       entity.OrderStatusPending,
		Subtotal:     subtotal,
		Tax:          tax,
		ShippingCost: shipping,
		Total:        subtotal + tax + shipping,
		Address: entity.ShippingAddress{
			Street:  input.Street,
			City:    input.City,
			State:   input.State,
			ZipCode: input.ZipCode,
			Country: input.Country,
		},
		PaymentMethod: entity.PaymentMethodCOD,
	}
	for _, item := range cartOut.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		productRepo := repoFactory.ProductRepo()
		for _, item := range order.Items {
			if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return errors.Wrapf(err, "failed to decrement stock for %s", item.Name)
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Checkout transaction failed",
			slog.Any("userID", userID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	if err := srv.cart.Clear(ctx); err != nil {
		// The order is already committed; a stale cart is recoverable.
		srv.log(ctx).Warn("Failed to clear cart after checkout", slog.Any("error", err))
	}

	srv.publishEvent(ctx, constants.OrderEventPlaced, order)

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("userID", userID),
		slog.Float64("total", order.Total),
	)

	return &usecase.CheckoutOutput{Order: order}, nil
}

// GetOrder fetches one order, enforcing ownership for non-admin requesters.
func (srv *orderService) GetOrder(ctx context.Context, requester entity.Identity, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.loadOrderFor(ctx, requester, orderID)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns the requester's orders, or every order for admins.
func (srv *orderService) ListOrders(ctx context.Context, requester entity.Identity) ([]*entity.Order, error) {
	if requester.IsAdmin {
		orders, err := srv.orderRepo.ListAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list orders")
		}

		return orders, nil
	}

	userID, err := uuid.Parse(requester.UserID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order listing requires an authenticated user")
	}

	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// UpdateStatus transitions an order's status, rejecting moves the lifecycle
// does not allow.
func (srv *orderService) UpdateStatus(ctx context.Context, input usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderStatus, "unknown order status")
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "status update failed")
			}

			return errors.Wrap(err, "failed to load order for status update")
		}

		if !order.Status.CanTransitionTo(input.Status) {
			return errors.Wrapf(domainerrors.ErrInvalidOrderStatus,
				"cannot move order from %s to %s", order.Status, input.Status)
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, input.Status); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		order.Status = input.Status
		updated = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute status update transaction")
	}

	srv.publishEvent(ctx, constants.OrderEventStatusChanged, updated)

	return updated, nil
}

// CancelOrder cancels an order. Customers may cancel their own pending
// orders; admins may cancel anything the lifecycle still allows.
func (srv *orderService) CancelOrder(ctx context.Context, requester entity.Identity, orderID uuid.UUID) (*entity.Order, error) {
	var cancelled *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "cancel failed")
			}

			return errors.Wrap(err, "failed to load order for cancel")
		}

		if !requester.IsAdmin {
			if order.UserID.String() != requester.UserID {
				return errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "cancel failed")
			}
			if order.Status != entity.OrderStatusPending {
				return errors.Wrap(domainerrors.ErrInvalidOrderStatus,
					"customers may only cancel pending orders")
			}
		}

		if !order.Status.CanTransitionTo(entity.OrderStatusCancelled) {
			return errors.Wrapf(domainerrors.ErrInvalidOrderStatus,
				"cannot cancel order in status %s", order.Status)
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled); err != nil {
			return errors.Wrap(err, "failed to cancel order")
		}

		order.Status = entity.OrderStatusCancelled
		cancelled = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute cancel transaction")
	}

	srv.publishEvent(ctx, constants.OrderEventStatusChanged, cancelled)

	return cancelled, nil
}

// ReceiptQR renders the PNG QR code for an order receipt.
func (srv *orderService) ReceiptQR(ctx context.Context, requester entity.Identity, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.loadOrderFor(ctx, requester, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt QR")
	}

	return png, nil
}

// loadOrderFor loads an order and enforces the ownership rule shared by
// GetOrder and ReceiptQR.
func (srv *orderService) loadOrderFor(ctx context.Context, requester entity.Identity, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if !requester.IsAdmin && order.UserID.String() != requester.UserID {
		return nil, errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order lookup failed")
	}

	return order, nil
}

// publishEvent emits an order event. Publishing is best effort: a transport
// failure is logged, never surfaced to the shopper.
func (srv *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	if order == nil {
		return
	}

	event := &service.OrderEvent{
		EventType:  eventType,
		OrderID:    order.ID.String(),
		UserID:     order.UserID.String(),
		Status:     order.Status.String(),
		Total:      order.Total,
		OccurredAt: time.Now().UTC(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("event_type", eventType),
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)
	}
}
