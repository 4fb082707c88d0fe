package impl

import (
	"context"
	"testing"

	"veggiemarket/internal/domain/entity"
	domainerrors "veggiemarket/internal/domain/errors"
	"veggiemarket/internal/domain/repository"
	"veggiemarket/internal/domain/service"
	"veggiemarket/internal/infra/auth"
	mockRepo "veggiemarket/internal/mocks/repository"
	mockSvc "veggiemarket/internal/mocks/service"
	mockUsecase "veggiemarket/internal/mocks/usecase"
	"veggiemarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixtures struct {
	service        usecase.OrderUsecase
	txManager      *mockRepo.MockTransactionManager
	orderRepo      *mockRepo.MockOrderRepository
	cart           *mockUsecase.MockCartUsecase
	session        service.SessionPublisher
	eventPublisher *mockSvc.MockEventPublisher
	qrService      *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cart := mockUsecase.NewMockCartUsecase(t)
	session := auth.NewSessionHub()
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager:      txManager,
		OrderRepo:      orderRepo,
		Cart:           cart,
		Session:        session,
		EventPublisher: eventPublisher,
		QRService:      qrService,
		Config:         newTestConfig(5),
		Logger:         newDiscardLogger(),
	})

	return orderFixtures{
		service:        svc,
		txManager:      txManager,
		orderRepo:      orderRepo,
		cart:           cart,
		session:        session,
		eventPublisher: eventPublisher,
		qrService:      qrService,
	}
}

func shippingAddressInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		Street:  "12 Market Lane",
		City:    "Pune",
		State:   "Maharashtra",
		ZipCode: "411001",
		Country: "India",
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fixtures := createTestOrderService(t)
	ctx := context.Background()

	shopperID := uuid.New()
	fixtures.session.Publish(entity.Identity{UserID: shopperID.String()})

	spinach := testProduct("prod1", "Organic Spinach", 100)
	fixtures.cart.On("GetCart", ctx).Return(&usecase.CartOutput{
		Items:      entity.CartItems{{Product: *spinach, Quantity: 5}},
		TotalItems: 5,
		Subtotal:   500,
	}, nil)
	fixtures.cart.On("Clear", ctx).Return(nil)

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)

			factory.On("OrderRepo").Return(orderRepo)
			factory.On("ProductRepo").Return(productRepo)

			orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(args mock.Arguments) {
					args.Get(1).(*entity.Order).ID = uuid.New()
				}).
				Return(nil)
			productRepo.On("DecrementStock", ctx, spinach.ID, 5).Return(nil)

			return fn(factory)
		})

	fixtures.eventPublisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*service.OrderEvent)
			assert.Equal(t, "order.placed", event.EventType)
			assert.Equal(t, shopperID.String(), event.UserID)
		}).
		Return(nil)

	output, err := fixtures.service.Checkout(ctx, shippingAddressInput())

	require.NoError(t, err)
	require.NotNil(t, output)

	order := output.Order
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentMethodCOD, order.PaymentMethod)
	assert.InDelta(t, 500.0, order.Subtotal, 0.001)
	assert.InDelta(t, 90.0, order.Tax, 0.001)
	assert.InDelta(t, 99.0, order.ShippingCost, 0.001)
	assert.InDelta(t, 689.0, order.Total, 0.001)
	require.Len(t, order.Items, 1)
	assert.Equal(t, spinach.ID, order.Items[0].ProductID)
	assert.InDelta(t, 100.0, order.Items[0].Price, 0.001)
}

func TestOrderService_Checkout_FreeShippingAtThreshold(t *testing.T) {
	fixtures := createTestOrderService(t)
	ctx := context.Background()

	fixtures.session.Publish(entity.Identity{UserID: uuid.New().String()})

	spinach := testProduct("prod1", "Organic Spinach", 100)
	fixtures.cart.On("GetCart", ctx).Return(&usecase.CartOutput{
		Items:      entity.CartItems{{Product: *spinach, Quantity: 10}},
		TotalItems: 10,
		Subtotal:   1000,
	}, nil)
	fixtures.cart.On("Clear", ctx).Return(nil)

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)

			factory.On("OrderRepo").Return(orderRepo)
			factory.On("ProductRepo").Return(productRepo)
			orderRepo.On("Create", ctx, mock.Anything).Return(nil)
			productRepo.On("DecrementStock", ctx, spinach.ID, 10).Return(nil)

			return fn(factory)
		})
	fixtures.eventPublisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil)

	output, err := fixtures.service.Checkout(ctx, shippingAddressInput())

	require.NoError(t, err)
	assert.InDelta(t, 0.0, output.Order.ShippingCost, 0.001)
	assert.InDelta(t, 1180.0, output.Order.Total, 0.001)
}

func TestOrderService_Checkout_GuestRejected(t *testing.T) {
	fixtures := createTestOrderService(t)

	_, err := fixtures.service.Checkout(context.Background(), shippingAddressInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Checkout_AdminRejected(t *testing.T) {
	fixtures := createTestOrderService(t)

	fixtures.session.Publish(entity.Identity{UserID: uuid.New().String(), IsAdmin: true})

	_, err := fixtures.service.Checkout(context.Background(), shippingAddressInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fixtures := createTestOrderService(t)
	ctx := context.Background()

	fixtures.session.Publish(entity.Identity{UserID: uuid.New().String()})
	fixtures.cart.On("GetCart", ctx).Return(&usecase.CartOutput{}, nil)

	_, err := fixtures.service.Checkout(ctx, shippingAddressInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_GetOrder_OwnershipEnforced(t *testing.T) {
	fixtures := createTestOrderService(t)
	ctx := context.Background()

	ownerID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: ownerID, Status: entity.OrderStatusPending}
	fixtures.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

	// The owner sees their order.
	found, err := fixtures.service.GetOrder(ctx, entity.Identity{UserID: ownerID.String()}, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	// A different customer does not.
	_, err = fixtures.service.GetOrder(ctx, entity.Identity{UserID: uuid.New().String()}, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)

	// Admins bypass the ownership check.
	found, err = fixtures.service.GetOrder(ctx, entity.Identity{UserID: uuid.New().String(), IsAdmin: true}, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	fixtures := createTestOrderService(t)
	ctx := context.Background()

	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusPending}

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.On("OrderRepo").Return(orderRepo)
			orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

			return fn(factory)
		})

	_, err := fixtures.service.UpdateStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		Status:  entity.OrderStatusDelivered,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateStatus_PublishesEvent(t *testing.T) {
	fixtures := createTestOrderService(t)
	ctx := context.Background()

	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusPending}

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.On("OrderRepo").Return(orderRepo)
			orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
			orderRepo.On("UpdateStatus", ctx, order.ID, entity.OrderStatusProcessing).Return(nil)

			return fn(factory)
		})

	fixtures.eventPublisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*service.OrderEvent)
			assert.Equal(t, "order.status_changed", event.EventType)
			assert.Equal(t, "processing", event.Status)
		}).
		Return(nil)

	updated, err := fixtures.service.UpdateStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		Status:  entity.OrderStatusProcessing,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, updated.Status)
}

func TestOrderService_CancelOrder_CustomerRules(t *testing.T) {
	fixtures := createTestOrderService(t)
	ctx := context.Background()

	ownerID := uuid.New()
	owner := entity.Identity{UserID: ownerID.String()}

	newExecute := func(order *entity.Order, expectCancel bool) {
		fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				orderRepo := mockRepo.NewMockOrderRepository(t)

				factory.On("OrderRepo").Return(orderRepo)
				orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
				if expectCancel {
					orderRepo.On("UpdateStatus", ctx, order.ID, entity.OrderStatusCancelled).Return(nil)
				}

				return fn(factory)
			}).Once()
	}

	// A customer may cancel their own pending order.
	pending := &entity.Order{ID: uuid.New(), UserID: ownerID, Status: entity.OrderStatusPending}
	newExecute(pending, true)
	fixtures.eventPublisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

	cancelled, err := fixtures.service.CancelOrder(ctx, owner, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)

	// But not once it is processing.
	processing := &entity.Order{ID: uuid.New(), UserID: ownerID, Status: entity.OrderStatusProcessing}
	newExecute(processing, false)

	_, err = fixtures.service.CancelOrder(ctx, owner, processing.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)

	// And never someone else's.
	theirs := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusPending}
	newExecute(theirs, false)

	_, err = fixtures.service.CancelOrder(ctx, owner, theirs.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
}

func TestOrderService_CancelOrder_AdminCannotCancelShipped(t *testing.T) {
	fixtures := createTestOrderService(t)
	ctx := context.Background()

	shipped := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusShipped}

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.On("OrderRepo").Return(orderRepo)
			orderRepo.On("FindByID", ctx, shipped.ID).Return(shipped, nil)

			return fn(factory)
		})

	_, err := fixtures.service.CancelOrder(ctx, entity.Identity{UserID: uuid.New().String(), IsAdmin: true}, shipped.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_ListOrders(t *testing.T) {
	fixtures := createTestOrderService(t)
	ctx := context.Background()

	shopperID := uuid.New()
	mine := []*entity.Order{{ID: uuid.New(), UserID: shopperID}}
	everything := []*entity.Order{mine[0], {ID: uuid.New(), UserID: uuid.New()}}

	fixtures.orderRepo.On("ListByUser", ctx, shopperID).Return(mine, nil)
	fixtures.orderRepo.On("ListAll", ctx).Return(everything, nil)

	orders, err := fixtures.service.ListOrders(ctx, entity.Identity{UserID: shopperID.String()})
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = fixtures.service.ListOrders(ctx, entity.Identity{UserID: uuid.New().String(), IsAdmin: true})
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderService_ReceiptQR(t *testing.T) {
	fixtures := createTestOrderService(t)
	ctx := context.Background()

	ownerID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: ownerID, Status: entity.OrderStatusDelivered}
	fixtures.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	fixtures.qrService.On("GenerateOrderQR", order.ID).Return([]byte("png-bytes"), nil)

	png, err := fixtures.service.ReceiptQR(ctx, entity.Identity{UserID: ownerID.String()}, order.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}
