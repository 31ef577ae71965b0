// Package services contains application services for the bookstall client:
// catalog browsing and search, cart operations and checkout, order history
// and fulfilment, and seller listing management. Services sit between the
// view layer and the api.Client, adding the client-side validation and
// aggregation the backend does not do for us.
package services
