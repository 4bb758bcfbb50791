// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// countingWorker tracks how many times Run was called and the peak number
// of concurrent runs across all workers sharing peak and active.
type countingWorker struct {
	runs   *atomic.Int32
	active *atomic.Int32
	peak   *atomic.Int32
}

func (c countingWorker) Run(context.Context) {
	c.runs.Add(1)
	n := c.active.Add(1)
	for {
		p := c.peak.Load()
		if n <= p || c.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	c.active.Add(-1)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	var runs, active, peak atomic.Int32
	ws := make([]Worker, 10)
	for i := range ws {
		ws[i] = countingWorker{runs: &runs, active: &active, peak: &peak}
	}

	New(3, ws...).Run(context.Background())

	assert.Equal(t, int32(10), runs.Load())
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestWorkers_Run_LimitBelowOneRunsSequentially(t *testing.T) {
	var runs, active, peak atomic.Int32
	w := countingWorker{runs: &runs, active: &active, peak: &peak}

	New(0, w, w, w).Run(context.Background())

	assert.Equal(t, int32(3), runs.Load())
	assert.Equal(t, int32(1), peak.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NotPanics(t, func() {
		New(4).Run(context.Background())
	})
}

func TestWorkers_Run_CancelledContextSkipsPending(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int32

	first := WorkerFunc(func(context.Context) {
		runs.Add(1)
		cancel()
	})
	rest := WorkerFunc(func(context.Context) {
		runs.Add(1)
	})

	New(1, first, rest, rest, rest).Run(ctx)

	// the job already handed over before cancellation may still run
	assert.LessOrEqual(t, runs.Load(), int32(2))
	assert.GreaterOrEqual(t, runs.Load(), int32(1))
}

func TestWorkerFunc_Run(t *testing.T) {
	called := false
	WorkerFunc(func(context.Context) { called = true }).Run(context.Background())
	assert.True(t, called)
}
