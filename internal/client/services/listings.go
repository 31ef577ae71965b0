package services

import (
	"context"
	"fmt"
	"strings"

	"bookstall/internal/client/api"
	"bookstall/internal/client/models"
)

// ListingService manages a seller's own catalog entries.
type ListingService struct {
	api api.Client
}

func NewListingService(client api.Client) *ListingService {
	return &ListingService{api: client}
}

func (s *ListingService) MyBooks(ctx context.Context) ([]models.Book, error) {
	return s.api.SellerBooks(ctx)
}

func (s *ListingService) Add(ctx context.Context, req models.BookRequest) (*models.Book, error) {
	if err := validateListing(req); err != nil {
		return nil, err
	}
	return s.api.AddBook(ctx, req)
}

func (s *ListingService) Update(ctx context.Context, id int64, req models.BookRequest) (*models.Book, error) {
	if err := validateListing(req); err != nil {
		return nil, err
	}
	return s.api.UpdateBook(ctx, id, req)
}

func (s *ListingService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteBook(ctx, id)
}

// validateListing mirrors the storefront form rules so a seller gets
// feedback before a round-trip.
func validateListing(req models.BookRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidListing)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidListing)
	}
	if req.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrInvalidListing)
	}
	return nil
}
