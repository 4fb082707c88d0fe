// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP API, worker) started at boot.
// Implementations register an fx OnStop hook for shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
