package server

import "context"

// Server defines the lifecycle contract of the replica process.
//
// [Server.RunServer] blocks until a stop signal arrives or a transport
// fails. [Server.Shutdown] stops every transport that is still running.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// transport is a single listener managed by the server.
type transport interface {
	// listen binds the configured address.
	listen() error
	// serve accepts connections until shutdown is called.
	serve(ctx context.Context) error
	shutdown(ctx context.Context)
	// close releases a bound listener that never reached serve.
	close() error
}
