// Package delivery defines the contract every inbound adapter (HTTP server,
// batch runner) fulfills so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running or one-shot entry point of the application.
type Delivery interface {
	// Serve runs the delivery until it finishes or the context is cancelled.
	Serve(ctx context.Context) error
}
