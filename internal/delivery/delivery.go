// Package delivery defines how the application is exposed to the outside
// world.
package delivery

import "context"

// Delivery is the contract every transport entry point implements. Serve
// blocks until the transport stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
