package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"bookstall/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	screen() session.Screen

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	SwitchRole(ctx context.Context) error
	Profile(ctx context.Context) error

	Browse(ctx context.Context, query string) error
	ShowBook(ctx context.Context, args []string) error
	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context, args []string) error
	SetQuantity(ctx context.Context, args []string) error
	RemoveFromCart(ctx context.Context, args []string) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error

	MyBooks(ctx context.Context) error
	AddBook(ctx context.Context) error
	EditBook(ctx context.Context, args []string) error
	DeleteBook(ctx context.Context, args []string) error
	Inbox(ctx context.Context) error
	Ship(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
}

func helpText(s session.Screen) string {
	switch s {
	case session.ScreenWelcome:
		return "Available commands: register, login, exit"
	case session.ScreenBuyer:
		return "Available commands: (b)rowse [query], show <id>, cart, add <id> [qty], qty <id> <n>, remove <id>, clear, checkout, orders, profile, switch, logout, exit"
	case session.ScreenSeller:
		return "Available commands: mybooks, addbook, editbook <id>, delbook <id>, inbox, ship <id>, dashboard, profile, switch, logout, exit"
	default:
		return "Loading session..."
	}
}

// runREPL starts a read-eval-print loop for the bookstall CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The accepted command set
// depends on the active screen, which is re-resolved on every iteration so
// that a login, logout, role switch or session expiry takes effect at the
// next prompt. Unknown commands are reported back to the user. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bookstall %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			printlnFn(helpText(a.screen()))
			continue
		}

		switch a.screen() {
		case session.ScreenWelcome:
			switch cmd {
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}

		case session.ScreenBuyer:
			switch cmd {
			case "b", "browse":
				_ = a.Browse(ctx, strings.Join(args, " "))
			case "show":
				_ = a.ShowBook(ctx, args)
			case "cart":
				_ = a.ShowCart(ctx)
			case "add":
				_ = a.AddToCart(ctx, args)
			case "qty":
				_ = a.SetQuantity(ctx, args)
			case "remove":
				_ = a.RemoveFromCart(ctx, args)
			case "clear":
				_ = a.ClearCart(ctx)
			case "checkout":
				_ = a.Checkout(ctx)
			case "orders":
				_ = a.Orders(ctx)
			case "profile":
				_ = a.Profile(ctx)
			case "switch":
				_ = a.SwitchRole(ctx)
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}

		case session.ScreenSeller:
			switch cmd {
			case "mybooks":
				_ = a.MyBooks(ctx)
			case "addbook":
				_ = a.AddBook(ctx)
			case "editbook":
				_ = a.EditBook(ctx, args)
			case "delbook":
				_ = a.DeleteBook(ctx, args)
			case "inbox":
				_ = a.Inbox(ctx)
			case "ship":
				_ = a.Ship(ctx, args)
			case "dashboard":
				_ = a.Dashboard(ctx)
			case "profile":
				_ = a.Profile(ctx)
			case "switch":
				_ = a.SwitchRole(ctx)
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}

		default:
			printlnFn("Still loading, try again in a moment")
		}
	}
}
