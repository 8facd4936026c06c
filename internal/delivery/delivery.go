// Package delivery holds the transports that expose the auth usecases.
package delivery

import "context"

// Delivery is a long-running transport started by the application lifecycle.
// Serve blocks until the transport stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
