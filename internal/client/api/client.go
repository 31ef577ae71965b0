package api

import (
	"context"

	"bookstall/internal/client/models"
)

// TokenSource supplies the current bearer token for outbound requests.
// An empty string means "not authenticated" and no Authorization header
// is attached.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to the TokenSource interface.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client is the API contract against the bookstore backend.
type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error

	// Catalog.
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (*models.Book, error)

	// Seller listings.
	SellerBooks(ctx context.Context) ([]models.Book, error)
	AddBook(ctx context.Context, req models.BookRequest) (*models.Book, error)
	UpdateBook(ctx context.Context, id int64, req models.BookRequest) (*models.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	// Cart.
	GetCart(ctx context.Context) (*models.Cart, error)
	AddToCart(ctx context.Context, bookID int64, quantity int) (*models.Cart, error)
	UpdateCartItem(ctx context.Context, bookID int64, quantity int) (*models.Cart, error)
	RemoveFromCart(ctx context.Context, bookID int64) (*models.Cart, error)
	ClearCart(ctx context.Context) error

	// Orders.
	CreateOrder(ctx context.Context) (*models.Order, error)
	BuyerOrders(ctx context.Context) ([]models.Order, error)
	SellerOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) (*models.Order, error)
}
