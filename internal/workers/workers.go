package workers

import (
	"context"
	"time"

	"github.com/airdash/airdash/internal/logger"
)

// Workers aggregates the client's background jobs so the application can
// start and stop them as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers assembles the standard client worker set: one flush worker over
// all engines and one connectivity probe.
func NewWorkers(engines []Drainer, remote Pinger, sink ConnectivitySink, flushInterval, probeInterval time.Duration, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewProbeWorker(remote, sink, probeInterval, logger),
			NewFlushWorker(engines, flushInterval, logger),
		},
	}
}

// Start launches every worker.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order and blocks until all loops
// have exited.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
