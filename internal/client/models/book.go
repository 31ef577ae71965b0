package models

// Book is a catalog listing. SellerID/SellerName identify the listing owner
// in the multi-seller catalog.
type Book struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url"`
	SellerID    int64   `json:"seller_id"`
	SellerName  string  `json:"seller_name"`
}

// BookRequest is the body for creating or updating a listing.
// Image upload is handled by the backend separately; the client only
// passes an already-hosted URL through.
type BookRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url,omitempty"`
}
