// Package delivery holds the inbound transports of the marketplace.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
