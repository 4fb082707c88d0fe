package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestCartItems_Totals(t *testing.T) {
	items := CartItems{
		{Product: Product{Price: 28.0}, Quantity: 2},
		{Product: Product{Price: 45.5}, Quantity: 1},
	}

	assert.Equal(t, 3, items.TotalItems())
	assert.InDelta(t, 101.5, items.Subtotal(), 1e-9)
}

func TestCartItems_TotalsEmpty(t *testing.T) {
	var items CartItems

	assert.Zero(t, items.TotalItems())
	assert.Zero(t, items.Subtotal())
}
