// Package delivery defines the transport abstraction served by main.
package delivery

import "context"

// Delivery is a transport endpoint (HTTP server today). Serve blocks until
// the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
