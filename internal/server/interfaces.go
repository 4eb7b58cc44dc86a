package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a stop signal
	// arrives, then shuts down gracefully. It returns a listener failure, if
	// any.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server within the configured timeout.
	Shutdown(ctx context.Context) error
}
