// Package workers runs batches of independent jobs on a bounded number of
// goroutines.
package workers

import "context"

// Worker is one unit of work. Implementations should return promptly once
// ctx is cancelled.
//
// Example implementation:
//
//	type ping struct{ url string }
//
//	func (p ping) Run(ctx context.Context) {
//	    // send one request
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context)

func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
