// Package dispatch carries finish submissions from the request path to the
// background recognition workers. Acceptance is acknowledged at enqueue time;
// nothing ever flows back to the submitter.
package dispatch

import (
	"errors"
	"sync"
	"time"

	"regatta-tracker/internal/metrics"
)

// ErrQueueFull is returned when the bounded queue cannot take another job.
// The submit path surfaces this instead of blocking the request.
var ErrQueueFull = errors.New("finish queue is full")

// ErrQueueClosed is returned for submissions that arrive during shutdown.
var ErrQueueClosed = errors.New("finish queue is closed")

// FinishJob is one photographed finish waiting for recognition and ranking.
type FinishJob struct {
	ID            string
	RaceID        string
	CompetitionID string
	Image         []byte
	EnqueuedAt    time.Time
}

// Queue is a bounded in-memory job buffer. Enqueue never blocks.
type Queue struct {
	mu     sync.Mutex
	jobs   chan FinishJob
	closed bool
}

func NewQueue(size int) *Queue {
	return &Queue{jobs: make(chan FinishJob, size)}
}

func (q *Queue) Enqueue(job FinishJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		metrics.QueueDepth.Inc()
		return nil
	default:
		metrics.QueueRejections.Inc()
		return ErrQueueFull
	}
}

// Dequeue exposes the job stream to workers. The channel closes after Close,
// once buffered jobs drain.
func (q *Queue) Dequeue() <-chan FinishJob {
	return q.jobs
}

// Close stops accepting new jobs. Jobs already buffered remain readable.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len reports the number of buffered jobs.
func (q *Queue) Len() int {
	return len(q.jobs)
}
