package services

import (
	"context"

	"bookstall/internal/client/models"
)

// stubClient implements api.Client for unit tests. Unused methods return
// their zero values; tests script the fields they need.
type stubClient struct {
	books      []models.Book
	booksErr   error
	book       *models.Book
	bookErr    error
	cart       *models.Cart
	cartErr    error
	order      *models.Order
	orderErr   error
	orders     []models.Order
	ordersErr  error
	deleteErr  error
	logoutErr  error
	clearErr   error
	authResp   *models.AuthResponse
	authErr    error
	registered *models.User

	lastBookID   int64
	lastQuantity int
	lastStatus   models.OrderStatus
	lastRequest  models.BookRequest

	createOrderCalls int
	removeCalls      int
	updateCalls      int
}

func (s *stubClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	return s.authResp, s.authErr
}

func (s *stubClient) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return s.registered, s.authErr
}

func (s *stubClient) Logout(ctx context.Context) error { return s.logoutErr }

func (s *stubClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	return s.books, s.booksErr
}

func (s *stubClient) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	s.lastBookID = id
	return s.book, s.bookErr
}

func (s *stubClient) SellerBooks(ctx context.Context) ([]models.Book, error) {
	return s.books, s.booksErr
}

func (s *stubClient) AddBook(ctx context.Context, req models.BookRequest) (*models.Book, error) {
	s.lastRequest = req
	return s.book, s.bookErr
}

func (s *stubClient) UpdateBook(ctx context.Context, id int64, req models.BookRequest) (*models.Book, error) {
	s.lastBookID = id
	s.lastRequest = req
	return s.book, s.bookErr
}

func (s *stubClient) DeleteBook(ctx context.Context, id int64) error {
	s.lastBookID = id
	return s.deleteErr
}

func (s *stubClient) GetCart(ctx context.Context) (*models.Cart, error) {
	return s.cart, s.cartErr
}

func (s *stubClient) AddToCart(ctx context.Context, bookID int64, quantity int) (*models.Cart, error) {
	s.lastBookID = bookID
	s.lastQuantity = quantity
	return s.cart, s.cartErr
}

func (s *stubClient) UpdateCartItem(ctx context.Context, bookID int64, quantity int) (*models.Cart, error) {
	s.updateCalls++
	s.lastBookID = bookID
	s.lastQuantity = quantity
	return s.cart, s.cartErr
}

func (s *stubClient) RemoveFromCart(ctx context.Context, bookID int64) (*models.Cart, error) {
	s.removeCalls++
	s.lastBookID = bookID
	return s.cart, s.cartErr
}

func (s *stubClient) ClearCart(ctx context.Context) error { return s.clearErr }

func (s *stubClient) CreateOrder(ctx context.Context) (*models.Order, error) {
	s.createOrderCalls++
	return s.order, s.orderErr
}

func (s *stubClient) BuyerOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders, s.ordersErr
}

func (s *stubClient) SellerOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders, s.ordersErr
}

func (s *stubClient) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) (*models.Order, error) {
	s.lastBookID = orderID
	s.lastStatus = status
	return s.order, s.orderErr
}
