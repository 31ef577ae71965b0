package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstall/internal/client/models"
)

func TestNextStatus_Ladder(t *testing.T) {
	assert.Equal(t, models.OrderShipped, NextStatus(models.OrderPending))
	assert.Equal(t, models.OrderDelivered, NextStatus(models.OrderShipped))
	assert.Equal(t, models.OrderStatus(""), NextStatus(models.OrderDelivered))
}

func TestCanTransition_OnlySingleForwardSteps(t *testing.T) {
	assert.True(t, CanTransition(models.OrderPending, models.OrderShipped))
	assert.True(t, CanTransition(models.OrderShipped, models.OrderDelivered))

	// No skips, no regressions, no self-loops.
	assert.False(t, CanTransition(models.OrderPending, models.OrderDelivered))
	assert.False(t, CanTransition(models.OrderShipped, models.OrderPending))
	assert.False(t, CanTransition(models.OrderDelivered, models.OrderShipped))
	assert.False(t, CanTransition(models.OrderPending, models.OrderPending))
}

func TestUpdateStatus_ValidStep(t *testing.T) {
	stub := &stubClient{order: &models.Order{ID: 5, Status: models.OrderShipped}}
	svc := NewOrderService(stub)

	order, err := svc.UpdateStatus(context.Background(), 5, models.OrderPending, models.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, order.Status)
	assert.Equal(t, models.OrderShipped, stub.lastStatus)
}

func TestUpdateStatus_InvalidStepNeverHitsBackend(t *testing.T) {
	stub := &stubClient{}
	svc := NewOrderService(stub)

	_, err := svc.UpdateStatus(context.Background(), 5, models.OrderDelivered, models.OrderShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, stub.lastStatus)
}

func TestSummarize(t *testing.T) {
	orders := []models.Order{
		{Total: 30, Status: models.OrderPending, Items: []models.OrderItem{{Quantity: 2}, {Quantity: 1}}},
		{Total: 15.5, Status: models.OrderDelivered, Items: []models.OrderItem{{Quantity: 1}}},
		{Total: 9, Status: models.OrderDelivered, Items: []models.OrderItem{{Quantity: 3}}},
	}

	s := Summarize(orders)
	assert.InDelta(t, 54.5, s.Revenue, 1e-9)
	assert.Equal(t, 7, s.UnitsSold)
	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, 1, s.ByStatus[models.OrderPending])
	assert.Equal(t, 2, s.ByStatus[models.OrderDelivered])
	assert.Zero(t, s.ByStatus[models.OrderShipped])
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Revenue)
	assert.Zero(t, s.TotalOrders)
	assert.NotNil(t, s.ByStatus)
}

func TestDashboard_AggregatesSellerOrders(t *testing.T) {
	stub := &stubClient{orders: []models.Order{
		{Total: 20, Status: models.OrderPending, Items: []models.OrderItem{{Quantity: 2}}},
	}}
	svc := NewOrderService(stub)

	s, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 20, s.Revenue, 1e-9)
	assert.Equal(t, 2, s.UnitsSold)
}
