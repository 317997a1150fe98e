// Package delivery defines what the entrypoint starts: anything that serves
// until its fx lifecycle stops it.
package delivery

import "context"

// Delivery is a long-running server or worker started by cmd/gatekeeper.
type Delivery interface {
	Serve(ctx context.Context) error
}
