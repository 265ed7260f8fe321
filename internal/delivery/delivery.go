// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) managed by
// the application lifecycle.
type Delivery interface {
	// Serve blocks and serves until the delivery is shut down.
	Serve(ctx context.Context) error
}
