package workers

import (
	"context"
	"sync"
	"time"

	"github.com/airdash/airdash/internal/logger"
)

const defaultProbeInterval = 15 * time.Second

type probeWorker struct {
	remote   Pinger
	sink     ConnectivitySink
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProbeWorker creates a worker that pings the record server on a ticker
// and reports the result to the sink. A non-positive interval falls back to
// 15 seconds.
func NewProbeWorker(remote Pinger, sink ConnectivitySink, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &probeWorker{remote: remote, sink: sink, interval: interval, logger: logger}
}

// Start implements [Worker]. The first probe fires immediately so the
// dashboard does not sit in the offline state for a whole interval after
// startup.
func (w *probeWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.probe(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.probe(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker].
func (w *probeWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *probeWorker) probe(ctx context.Context) {
	err := w.remote.Ping(ctx)
	if err != nil && ctx.Err() != nil {
		// shutdown, not an outage
		return
	}

	if err != nil {
		w.logger.Debug().Err(err).Msg("connectivity probe failed")
	}
	w.sink.SetConnectivity(err == nil)
}
