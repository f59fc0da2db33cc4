// Package server wires and runs the replica's transport servers.
//
// It owns the lifecycle of the HTTP interface, the gRPC health service and
// the background workers: startup, signal handling and graceful shutdown.
// The first transport or worker to fail stops the rest.
package server
