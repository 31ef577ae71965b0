package cli

import (
	"fmt"
	"os"
	"strconv"

	"bookstall/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// argOrPrompt returns the first command argument if one was given,
// otherwise it prompts the user interactively.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, os.Stdout)
}

// idArg resolves a numeric identifier from the command arguments, prompting
// when none was given.
func (a *App) idArg(args []string, prompt string) (int64, error) {
	text, err := a.argOrPrompt(args, prompt)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid id: %q", text)
	}
	return id, nil
}

func formatBookLine(b models.Book) string {
	return fmt.Sprintf("#%d  %-30s  %-20s  $%.2f  stock: %d", b.ID, b.Title, b.Author, b.Price, b.Stock)
}

func formatOrderLine(o models.Order) string {
	s := fmt.Sprintf("#%d  %s  %s  $%.2f  %d item(s)",
		o.ID, o.CreatedAt.Format("2006-01-02"), o.Status, o.Total, len(o.Items))
	if o.BuyerName != "" {
		s += "  buyer: " + o.BuyerName
	}
	return s
}

func formatCart(c *models.Cart) []string {
	lines := make([]string, 0, len(c.Items)+1)
	for _, item := range c.Items {
		lines = append(lines, fmt.Sprintf("#%d  %-30s  $%.2f x %d = $%.2f",
			item.BookID, item.Title, item.Price, item.Quantity, item.LineTotal()))
	}
	lines = append(lines, fmt.Sprintf("Total: $%.2f (%d item(s))", c.Total(), c.Size()))
	return lines
}
