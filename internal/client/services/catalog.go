package services

import (
	"context"
	"strings"

	"bookstall/internal/client/api"
	"bookstall/internal/client/models"
)

// CatalogService is the buyer-facing storefront: full catalog, search, and
// book detail. Search is a client-side filter over the fetched catalog,
// matching case-insensitively on title and author.
type CatalogService struct {
	api api.Client
}

func NewCatalogService(client api.Client) *CatalogService {
	return &CatalogService{api: client}
}

// Browse returns the catalog, filtered by query when it is non-empty.
func (s *CatalogService) Browse(ctx context.Context, query string) ([]models.Book, error) {
	books, err := s.api.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	return FilterBooks(books, query), nil
}

// BookDetail fetches a single listing.
func (s *CatalogService) BookDetail(ctx context.Context, id int64) (*models.Book, error) {
	return s.api.GetBook(ctx, id)
}

// FilterBooks keeps books whose title or author contains query,
// case-insensitively. An empty or blank query keeps everything.
func FilterBooks(books []models.Book, query string) []models.Book {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return books
	}

	matched := make([]models.Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), query) ||
			strings.Contains(strings.ToLower(b.Author), query) {
			matched = append(matched, b)
		}
	}
	return matched
}
