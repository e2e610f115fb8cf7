// Package server wires and runs the application's transport servers.
//
// It binds the HTTP and gRPC listeners enabled by configuration, starts the
// background workers and, on SIGTERM, SIGINT or SIGQUIT, stops the workers
// and drains both servers.
package server
