package cli

import (
	"context"
	"fmt"
)

// Browse lists the catalog, optionally narrowed by a title/author query.
func (a *App) Browse(ctx context.Context, query string) error {
	books, err := a.catalog.Browse(ctx, query)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(books) == 0 {
		printlnFn("No books found")
		return nil
	}
	for _, b := range books {
		printlnFn(formatBookLine(b))
	}
	return nil
}

// ShowBook prints the full detail of a single listing.
func (a *App) ShowBook(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter book id")
	if err != nil {
		return a.report(ctx, err)
	}
	b, err := a.catalog.BookDetail(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn(fmt.Sprintf("%s by %s", b.Title, b.Author))
	printlnFn(fmt.Sprintf("Price: $%.2f  Stock: %d  Seller: %s", b.Price, b.Stock, b.SellerName))
	if b.Description != "" {
		printlnFn(b.Description)
	}
	return nil
}
