package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// ShowCart prints the current cart with a running total.
func (a *App) ShowCart(ctx context.Context) error {
	cart, err := a.cart.View(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(cart.Items) == 0 {
		printlnFn("Cart is empty")
		return nil
	}
	for _, line := range formatCart(cart) {
		printlnFn(line)
	}
	return nil
}

// AddToCart adds a book to the cart. Usage: add <id> [qty], quantity
// defaults to 1.
func (a *App) AddToCart(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter book id")
	if err != nil {
		return a.report(ctx, err)
	}
	quantity := 1
	if len(args) > 1 {
		quantity, err = strconv.Atoi(args[1])
		if err != nil {
			return a.report(ctx, fmt.Errorf("not a quantity: %q", args[1]))
		}
	}
	cart, err := a.cart.Add(ctx, id, quantity)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn(fmt.Sprintf("Added, cart now holds %d item(s)", cart.Size()))
	return nil
}

// SetQuantity changes the quantity of a cart line. Usage: qty <id> <n>.
// Setting the quantity to zero removes the line.
func (a *App) SetQuantity(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter book id")
	if err != nil {
		return a.report(ctx, err)
	}
	var quantity int
	if len(args) > 1 {
		quantity, err = strconv.Atoi(args[1])
		if err != nil {
			err = fmt.Errorf("not a quantity: %q", args[1])
		}
	} else {
		quantity, err = GetInt(a.reader, "Enter quantity", os.Stdout)
	}
	if err != nil {
		return a.report(ctx, err)
	}
	cart, err := a.cart.SetQuantity(ctx, id, quantity)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn(fmt.Sprintf("Cart now holds %d item(s)", cart.Size()))
	return nil
}

// RemoveFromCart drops a line from the cart. Usage: remove <id>.
func (a *App) RemoveFromCart(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter book id")
	if err != nil {
		return a.report(ctx, err)
	}
	cart, err := a.cart.Remove(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn(fmt.Sprintf("Removed, cart now holds %d item(s)", cart.Size()))
	return nil
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	if err := a.cart.Clear(ctx); err != nil {
		return a.report(ctx, err)
	}
	printlnFn("Cart cleared")
	return nil
}

// Checkout turns the cart into an order.
func (a *App) Checkout(ctx context.Context) error {
	order, err := a.cart.Checkout(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn(fmt.Sprintf("Order #%d placed, total $%.2f", order.ID, order.Total))
	return nil
}
