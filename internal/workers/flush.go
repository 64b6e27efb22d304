package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/service"
)

const defaultFlushInterval = 30 * time.Second

type flushWorker struct {
	engines  []Drainer
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFlushWorker creates a worker that drains every engine's outbound queue
// on a ticker. The worker is idle until Start is called. A non-positive
// interval falls back to 30 seconds.
func NewFlushWorker(engines []Drainer, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultFlushInterval
	}
	return &flushWorker{engines: engines, interval: interval, logger: logger}
}

// Start implements [Worker]. It stops any previously running loop, then
// launches a goroutine that flushes every engine each interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (w *flushWorker) Start(ctx context.Context) {
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

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.flushAll(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker].
func (w *flushWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// flushAll drains the engines one by one. ErrNotSyncable is the normal idle
// case while offline or signed out, not a failure.
func (w *flushWorker) flushAll(ctx context.Context) {
	for _, engine := range w.engines {
		report, err := engine.Drain(ctx)
		if err != nil {
			if !errors.Is(err, service.ErrNotSyncable) {
				w.logger.Warn().
					Err(err).
					Str("collection", engine.Collection()).
					Msg("periodic flush failed")
			}
			continue
		}

		if report.Attempted > 0 {
			w.logger.Debug().
				Str("collection", engine.Collection()).
				Int("succeeded", report.Succeeded).
				Int("remaining", report.Remaining).
				Msg("periodic flush")
		}
	}
}
