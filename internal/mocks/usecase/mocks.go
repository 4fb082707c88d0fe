// Package usecase provides hand-written testify mocks for the application
// use case interfaces.
package usecase

import (
	"context"
	"testing"

	"veggiemarket/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockCartUsecase mocks usecase.CartUsecase.
type MockCartUsecase struct {
	mock.Mock
}

func NewMockCartUsecase(t *testing.T) *MockCartUsecase {
	m := &MockCartUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartUsecase) GetCart(ctx context.Context) (*usecase.CartOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CartOutput), args.Error(1)
}

func (m *MockCartUsecase) AddItem(ctx context.Context, input usecase.AddCartItemInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockCartUsecase) UpdateQuantity(ctx context.Context, input usecase.UpdateCartQuantityInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockCartUsecase) RemoveItem(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *MockCartUsecase) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
