// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP today). Servers are
// collected into the "deliveries" Fx group and started together.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
