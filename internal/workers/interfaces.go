// Package workers runs the client's periodic background jobs: the flush
// worker that replays outbound queues and the probe worker that feeds
// connectivity into the sync monitor.
package workers

import (
	"context"

	"github.com/airdash/airdash/models"
)

// Worker is a background job with a ticker loop. Start is idempotent in the
// sense that it restarts the loop; Stop blocks until the loop has exited and
// is safe to call on a worker that never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Drainer is the slice of the sync engine the flush worker needs.
type Drainer interface {
	Drain(ctx context.Context) (models.DrainReport, error)
	Collection() string
}

// Pinger is the slice of the remote adapter the probe worker needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConnectivitySink receives probe results. Implemented by the sync monitor.
type ConnectivitySink interface {
	SetConnectivity(online bool)
}
