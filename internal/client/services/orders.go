package services

import (
	"context"
	"fmt"

	"bookstall/internal/client/api"
	"bookstall/internal/client/models"
)

// OrderService covers both sides of an order: the buyer's history and the
// seller's inbox, fulfilment updates, and the sales dashboard numbers.
type OrderService struct {
	api api.Client
}

func NewOrderService(client api.Client) *OrderService {
	return &OrderService{api: client}
}

func (s *OrderService) BuyerHistory(ctx context.Context) ([]models.Order, error) {
	return s.api.BuyerOrders(ctx)
}

func (s *OrderService) SellerInbox(ctx context.Context) ([]models.Order, error) {
	return s.api.SellerOrders(ctx)
}

// NextStatus returns the next step on the fulfilment ladder, or "" when the
// order is already terminal.
func NextStatus(current models.OrderStatus) models.OrderStatus {
	switch current {
	case models.OrderPending:
		return models.OrderShipped
	case models.OrderShipped:
		return models.OrderDelivered
	default:
		return ""
	}
}

// CanTransition reports whether from -> to is a legal single step forward.
// Orders never skip a step and never move backwards.
func CanTransition(from, to models.OrderStatus) bool {
	return to != "" && NextStatus(from) == to
}

// UpdateStatus moves an order one step along the ladder after validating
// the transition locally.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, from, to models.OrderStatus) (*models.Order, error) {
	if !CanTransition(from, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return s.api.UpdateOrderStatus(ctx, orderID, to)
}

// SalesSummary is the seller dashboard aggregate.
type SalesSummary struct {
	Revenue     float64
	UnitsSold   int
	TotalOrders int
	ByStatus    map[models.OrderStatus]int
}

// Summarize folds a seller's orders into dashboard numbers.
func Summarize(orders []models.Order) SalesSummary {
	summary := SalesSummary{
		TotalOrders: len(orders),
		ByStatus:    make(map[models.OrderStatus]int),
	}
	for _, o := range orders {
		summary.Revenue += o.Total
		summary.ByStatus[o.Status]++
		for _, item := range o.Items {
			summary.UnitsSold += item.Quantity
		}
	}
	return summary
}

// Dashboard fetches the seller's orders and aggregates them.
func (s *OrderService) Dashboard(ctx context.Context) (SalesSummary, error) {
	orders, err := s.api.SellerOrders(ctx)
	if err != nil {
		return SalesSummary{}, err
	}
	return Summarize(orders), nil
}
