package models

// CartItem is one line of the server-side cart.
type CartItem struct {
	BookID   int64   `json:"book_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Stock    int     `json:"stock"`
}

// LineTotal is the price of the line (unit price times quantity).
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart is the buyer's server-side cart.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Total sums all line totals.
func (c Cart) Total() float64 {
	var total float64
	for _, i := range c.Items {
		total += i.LineTotal()
	}
	return total
}

// Size is the number of units across all lines.
func (c Cart) Size() int {
	var n int
	for _, i := range c.Items {
		n += i.Quantity
	}
	return n
}
