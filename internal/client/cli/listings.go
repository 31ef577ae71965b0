package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"bookstall/internal/client/models"
)

// MyBooks lists the seller's own listings.
func (a *App) MyBooks(ctx context.Context) error {
	books, err := a.listings.MyBooks(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(books) == 0 {
		printlnFn("No listings yet, use 'addbook' to create one")
		return nil
	}
	for _, b := range books {
		printlnFn(formatBookLine(b))
	}
	return nil
}

// AddBook interactively collects a new listing and publishes it.
func (a *App) AddBook(ctx context.Context) error {
	req, err := a.inputListing(models.BookRequest{})
	if err != nil {
		return a.report(ctx, err)
	}
	b, err := a.listings.Add(ctx, req)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn(fmt.Sprintf("Listing #%d published", b.ID))
	return nil
}

// EditBook updates an existing listing. Current values are offered as
// defaults; pressing Enter keeps them. Usage: editbook <id>.
func (a *App) EditBook(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter book id")
	if err != nil {
		return a.report(ctx, err)
	}

	books, err := a.listings.MyBooks(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	var current *models.Book
	for i := range books {
		if books[i].ID == id {
			current = &books[i]
			break
		}
	}
	if current == nil {
		printlnFn(fmt.Sprintf("No listing #%d among your books", id))
		return nil
	}

	req, err := a.inputListing(models.BookRequest{
		Title:       current.Title,
		Author:      current.Author,
		Description: current.Description,
		Price:       current.Price,
		Stock:       current.Stock,
		ImageURL:    current.ImageURL,
	})
	if err != nil {
		return a.report(ctx, err)
	}
	b, err := a.listings.Update(ctx, id, req)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn(fmt.Sprintf("Listing #%d updated", b.ID))
	return nil
}

// DeleteBook removes a listing after confirmation. Usage: delbook <id>.
func (a *App) DeleteBook(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter book id")
	if err != nil {
		return a.report(ctx, err)
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete listing #%d? (y/n)", id), os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "yes" {
		printlnFn("Cancelled")
		return nil
	}
	if err := a.listings.Delete(ctx, id); err != nil {
		return a.report(ctx, err)
	}
	printlnFn(fmt.Sprintf("Listing #%d deleted", id))
	return nil
}

// inputListing prompts for the listing fields. Non-empty values in def are
// shown as defaults and kept when the user enters nothing.
func (a *App) inputListing(def models.BookRequest) (models.BookRequest, error) {
	req := def

	title, err := getSimpleText(a.reader, withDefault("Enter title", def.Title), os.Stdout)
	if err != nil {
		return req, err
	}
	if title != "" {
		req.Title = title
	}

	author, err := getSimpleText(a.reader, withDefault("Enter author", def.Author), os.Stdout)
	if err != nil {
		return req, err
	}
	if author != "" {
		req.Author = author
	}

	description, err := getSimpleText(a.reader, withDefault("Enter description", def.Description), os.Stdout)
	if err != nil {
		return req, err
	}
	if description != "" {
		req.Description = description
	}

	price, err := getSimpleText(a.reader, withDefault("Enter price", fmt.Sprintf("%.2f", def.Price)), os.Stdout)
	if err != nil {
		return req, err
	}
	if price != "" {
		p, err := strconv.ParseFloat(price, 64)
		if err != nil {
			return req, fmt.Errorf("not a price: %q", price)
		}
		req.Price = p
	}

	stock, err := getSimpleText(a.reader, withDefault("Enter stock", strconv.Itoa(def.Stock)), os.Stdout)
	if err != nil {
		return req, err
	}
	if stock != "" {
		n, err := strconv.Atoi(stock)
		if err != nil {
			return req, fmt.Errorf("not a stock count: %q", stock)
		}
		req.Stock = n
	}

	imageURL, err := getSimpleText(a.reader, withDefault("Enter image URL (optional)", def.ImageURL), os.Stdout)
	if err != nil {
		return req, err
	}
	if imageURL != "" {
		req.ImageURL = imageURL
	}

	return req, nil
}

func withDefault(prompt, def string) string {
	if def == "" || def == "0.00" || def == "0" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, def)
}
