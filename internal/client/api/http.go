package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"bookstall/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the bookstore backend.
type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client rooted at baseURL (e.g.
// "https://bookstore.example.com/api"). tokens may not be nil; use a source
// returning "" while unauthenticated.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		tokens:  tokens,
		http:    &http.Client{Timeout: timeout},
	}
}

// do performs one round-trip: marshals body (if any), attaches headers and
// the bearer token, maps failures to sentinel errors, and decodes the
// response into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// mapError converts a non-2xx response into a sentinel or *APIError.
// The backend reports failures as {"message": "..."}.
func (c *HTTPClient) mapError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if payload.Message != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, payload.Message)
		}
		return ErrUnauthorized
	case http.StatusNotFound:
		if payload.Message != "" {
			return fmt.Errorf("%w: %s", ErrNotFound, payload.Message)
		}
		return ErrNotFound
	default:
		return &APIError{Status: resp.StatusCode, Message: payload.Message}
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout asks the backend to invalidate the current token. Callers treat
// this as best-effort; a failure never blocks the local session clear.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *HTTPClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := c.do(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *HTTPClient) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	var book models.Book
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/books/%d", id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *HTTPClient) SellerBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := c.do(ctx, http.MethodGet, "/books/seller/my-books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *HTTPClient) AddBook(ctx context.Context, req models.BookRequest) (*models.Book, error) {
	var book models.Book
	if err := c.do(ctx, http.MethodPost, "/books", req, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *HTTPClient) UpdateBook(ctx context.Context, id int64, req models.BookRequest) (*models.Book, error) {
	var book models.Book
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/books/%d", id), req, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *HTTPClient) DeleteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), nil, nil)
}

func (c *HTTPClient) GetCart(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *HTTPClient) AddToCart(ctx context.Context, bookID int64, quantity int) (*models.Cart, error) {
	body := map[string]any{"book_id": bookID, "quantity": quantity}
	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, "/cart", body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *HTTPClient) UpdateCartItem(ctx context.Context, bookID int64, quantity int) (*models.Cart, error) {
	body := map[string]any{"quantity": quantity}
	var cart models.Cart
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cart/%d", bookID), body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *HTTPClient) RemoveFromCart(ctx context.Context, bookID int64) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", bookID), nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *HTTPClient) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil)
}

func (c *HTTPClient) CreateOrder(ctx context.Context) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *HTTPClient) BuyerOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/buyer", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *HTTPClient) SellerOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/seller", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) (*models.Order, error) {
	body := map[string]any{"status": status}
	var order models.Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/status", orderID), body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
