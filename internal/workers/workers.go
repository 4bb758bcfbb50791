package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
	limit   int
}

// New returns a pool that runs at most limit workers at once. A limit below
// one means one.
func New(limit int, workers ...Worker) *Workers {
	if limit < 1 {
		limit = 1
	}
	return &Workers{workers: workers, limit: limit}
}

// Run blocks until every worker has returned. Workers not yet started when
// ctx is cancelled are skipped.
func (w *Workers) Run(ctx context.Context) {
	jobs := make(chan Worker)

	var wg sync.WaitGroup
	for range min(w.limit, len(w.workers)) {
		wg.Go(func() {
			for worker := range jobs {
				worker.Run(ctx)
			}
		})
	}

	defer wg.Wait()
	defer close(jobs)

	for _, worker := range w.workers {
		if ctx.Err() != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case jobs <- worker:
		}
	}
}
