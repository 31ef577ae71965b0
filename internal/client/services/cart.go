package services

import (
	"context"
	"fmt"

	"bookstall/internal/client/api"
	"bookstall/internal/client/models"
)

// CartService wraps the server-side cart with client-side quantity
// validation and checkout.
type CartService struct {
	api api.Client
}

func NewCartService(client api.Client) *CartService {
	return &CartService{api: client}
}

func (s *CartService) View(ctx context.Context) (*models.Cart, error) {
	return s.api.GetCart(ctx)
}

// Add puts quantity units of a book into the cart. The stock ceiling is
// enforced by the backend, which knows the authoritative stock; the client
// only rejects quantities that can never be valid.
func (s *CartService) Add(ctx context.Context, bookID int64, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	return s.api.AddToCart(ctx, bookID, quantity)
}

// SetQuantity changes the quantity of an existing line. A quantity of zero
// removes the line, mirroring what the storefront UI offers.
func (s *CartService) SetQuantity(ctx context.Context, bookID int64, quantity int) (*models.Cart, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if quantity == 0 {
		return s.api.RemoveFromCart(ctx, bookID)
	}
	return s.api.UpdateCartItem(ctx, bookID, quantity)
}

func (s *CartService) Remove(ctx context.Context, bookID int64) (*models.Cart, error) {
	return s.api.RemoveFromCart(ctx, bookID)
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.api.ClearCart(ctx)
}

// Checkout turns the current cart into an order. An empty cart is rejected
// locally before bothering the backend.
func (s *CartService) Checkout(ctx context.Context) (*models.Order, error) {
	cart, err := s.api.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}
	return s.api.CreateOrder(ctx)
}
