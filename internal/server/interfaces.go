// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the whole process: the HTTP and gRPC listeners
// plus the background workers.
type Server interface {
	// RunServer blocks until a termination signal arrives, then shuts down.
	RunServer()

	// Shutdown stops the workers and drains both servers. Calling it more
	// than once is safe.
	Shutdown()
}
