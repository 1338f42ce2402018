// Package delivery defines the contract every transport entrypoint
// (HTTP server, future gRPC, workers) fulfills.
package delivery

import "context"

// Delivery is a servable transport endpoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
