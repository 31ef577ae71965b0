// Package cli implements the interactive terminal frontend of the
// bookstall client.
//
// The REPL derives its command set from the session screen: the welcome
// screen offers register/login, the buyer screen the catalog and cart
// commands, and the seller screen the listing and fulfilment commands.
// The mapping from session state to screen lives in the session package;
// the CLI never inspects tokens or roles directly.
//
// Command handlers report errors to the user and keep the loop running.
// A request rejected with an authentication error expires the local
// session, which drops the user back to the welcome screen on the next
// prompt.
package cli
