package cli

import (
	"context"
	"fmt"

	"bookstall/internal/client/models"
	"bookstall/internal/client/services"
)

// Orders prints the buyer's purchase history, newest first as returned by
// the backend.
func (a *App) Orders(ctx context.Context) error {
	orders, err := a.orders.BuyerHistory(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(orders) == 0 {
		printlnFn("No orders yet")
		return nil
	}
	for _, o := range orders {
		printlnFn(formatOrderLine(o))
		for _, item := range o.Items {
			printlnFn(fmt.Sprintf("    %s x %d", item.Title, item.Quantity))
		}
	}
	return nil
}

// Inbox prints the incoming orders for the seller's listings.
func (a *App) Inbox(ctx context.Context) error {
	orders, err := a.orders.SellerInbox(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(orders) == 0 {
		printlnFn("No incoming orders")
		return nil
	}
	for _, o := range orders {
		printlnFn(formatOrderLine(o))
	}
	return nil
}

// Ship advances an order one step along the fulfilment ladder:
// Pending becomes Shipped, Shipped becomes Delivered. Usage: ship <id>.
func (a *App) Ship(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter order id")
	if err != nil {
		return a.report(ctx, err)
	}

	orders, err := a.orders.SellerInbox(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	for _, o := range orders {
		if o.ID != id {
			continue
		}
		next := services.NextStatus(o.Status)
		if next == "" {
			printlnFn(fmt.Sprintf("Order #%d is already %s", o.ID, o.Status))
			return nil
		}
		updated, err := a.orders.UpdateStatus(ctx, o.ID, o.Status, next)
		if err != nil {
			return a.report(ctx, err)
		}
		printlnFn(fmt.Sprintf("Order #%d is now %s", updated.ID, updated.Status))
		return nil
	}

	printlnFn(fmt.Sprintf("No order #%d in your inbox", id))
	return nil
}

// Dashboard prints the seller's sales summary.
func (a *App) Dashboard(ctx context.Context) error {
	summary, err := a.orders.Dashboard(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn(fmt.Sprintf("Revenue:     $%.2f", summary.Revenue))
	printlnFn(fmt.Sprintf("Units sold:  %d", summary.UnitsSold))
	printlnFn(fmt.Sprintf("Orders:      %d", summary.TotalOrders))
	for _, status := range []models.OrderStatus{models.OrderPending, models.OrderShipped, models.OrderDelivered} {
		if n := summary.ByStatus[status]; n > 0 {
			printlnFn(fmt.Sprintf("  %-10s %d", status, n))
		}
	}
	return nil
}
