package cli

import (
	"context"
	"fmt"
	"os"

	"bookstall/internal/client/models"
	"bookstall/internal/client/session"
	"bookstall/internal/common"
)

// Register prompts for the new account's details and creates it via the
// backend. Registration does not log the user in; on success the user is
// told to log in with the new credentials.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	roleText, err := getSimpleText(a.reader, "Enter role (buyer/seller)", os.Stdout)
	if err != nil {
		return err
	}
	role, err := session.ParseRole(roleText)
	if err != nil {
		return a.report(ctx, err)
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.RegisterRequest{Name: name, Email: email, Password: string(password), Role: string(role)}
	if _, err := a.accounts.Register(ctx, req); err != nil {
		return a.report(ctx, err)
	}

	printlnFn("Account created, you can log in now")
	return nil
}

// Login prompts for credentials and authenticates against the backend.
// On success the session is already persisted by the controller; the
// prompt and command set reflect the new role immediately.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	st, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		return a.report(ctx, err)
	}

	printlnFn(fmt.Sprintf("Logged in as %s", st.Role))
	return nil
}

// Logout ends the session. The local session is always cleared, even when
// the backend cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return a.report(ctx, err)
	}
	printlnFn("Logged out")
	return nil
}

// SwitchRole toggles between buying and selling without re-authenticating.
func (a *App) SwitchRole(ctx context.Context) error {
	next := session.RoleSeller
	if a.session.State().Role == session.RoleSeller {
		next = session.RoleBuyer
	}
	if err := a.session.SwitchRole(ctx, next); err != nil {
		return a.report(ctx, err)
	}
	printlnFn(fmt.Sprintf("Switched to %s mode", next))
	return nil
}

// Profile prints the cached account details and the active role.
func (a *App) Profile(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("No profile cached")
		return nil
	}
	printlnFn(fmt.Sprintf("Name:  %s", u.Name))
	printlnFn(fmt.Sprintf("Email: %s", u.Email))
	printlnFn(fmt.Sprintf("Role:  %s", a.session.State().Role))
	return nil
}
