package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 34.97, RoundCents(12.99*2+8.99))
	assert.Equal(t, 0.1, RoundCents(0.1+0.000000001))
	assert.Equal(t, 2.68, RoundCents(2.675000001))
	assert.Equal(t, 0.0, RoundCents(0))
}

func TestOrderStatusRank(t *testing.T) {
	assert.Equal(t, 0, OrderStatusRank(OrderStatusPending))
	assert.Equal(t, 5, OrderStatusRank(OrderStatusDelivered))
	assert.Equal(t, -1, OrderStatusRank(OrderStatusCancelled))
	assert.Equal(t, -1, OrderStatusRank("shipped"))

	assert.Less(t, OrderStatusRank(OrderStatusPaid), OrderStatusRank(OrderStatusConfirmed))
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range OrderStatusFlow {
		assert.True(t, IsValidOrderStatus(status), status)
	}
	assert.True(t, IsValidOrderStatus(OrderStatusCancelled))
	assert.False(t, IsValidOrderStatus("shipped"))
	assert.False(t, IsValidOrderStatus(""))
}
