// Package workers runs the server's background jobs.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] starts
// every configured worker and waits for all of them to return.
package workers

import "context"

// Worker is a background job.
//
// Run must return promptly once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// HealthReporter receives the result of each database health check.
type HealthReporter interface {
	SetServing(serving bool)
}
