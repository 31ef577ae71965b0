package services

import "errors"

var (
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidListing    = errors.New("invalid listing")
	ErrInvalidTransition = errors.New("invalid order status transition")
)
