package server

import "context"

// Server defines the lifecycle of a transport server managed by this
// package.
type Server interface {
	// Run serves requests and blocks until ctx is cancelled, then shuts the
	// server down.
	Run(ctx context.Context)

	// Shutdown gracefully stops the server.
	Shutdown()
}
