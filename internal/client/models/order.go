package models

import "time"

// OrderStatus is the fulfilment state of an order. The backend only ever
// moves an order forward: Pending -> Shipped -> Delivered.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
)

// OrderItem is one purchased line of an order.
type OrderItem struct {
	BookID   int64   `json:"book_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order as returned by the order endpoints. BuyerName is only populated on
// the seller views.
type Order struct {
	ID        int64       `json:"id"`
	Status    OrderStatus `json:"status"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	BuyerName string      `json:"buyer_name,omitempty"`
	Items     []OrderItem `json:"items"`
}
