package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until a stop signal arrives or the listener fails.
// Shutdown stops accepting requests and waits for in-flight ones.
type Server interface {
	RunServer()
	Shutdown()
}

// Worker is a background job started alongside the HTTP server. Run blocks
// until ctx is cancelled.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
