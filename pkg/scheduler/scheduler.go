// Package scheduler hands uploads off to the asynchronous pipeline worker.
package scheduler

import "context"

// Scheduler defines the interface for enqueueing an upload for processing.
// Ingestion returns to the caller as soon as the upload row exists; the
// actual pipeline run happens on the consumer side of the queue.
type Scheduler interface {
	// ScheduleProcessing enqueues an upload ID for pipeline processing.
	ScheduleProcessing(ctx context.Context, uploadID string) error
}
