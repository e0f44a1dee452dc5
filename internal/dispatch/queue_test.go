package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestQueueEnqueueDequeue(t *testing.T) {
	q := NewQueue(4)

	for i, id := range []string{"a", "b", "c"} {
		if err := q.Enqueue(FinishJob{ID: id}); err != nil {
			t.Fatalf("enqueue %d failed: %v", i, err)
		}
	}
	if got := q.Len(); got != 3 {
		t.Fatalf("expected 3 buffered jobs, got %d", got)
	}

	for _, want := range []string{"a", "b", "c"} {
		job := <-q.Dequeue()
		if job.ID != want {
			t.Errorf("expected job %q, got %q", want, job.ID)
		}
	}
}

func TestQueueFullRejection(t *testing.T) {
	q := NewQueue(1)

	if err := q.Enqueue(FinishJob{ID: "first"}); err != nil {
		t.Fatalf("first enqueue failed: %v", err)
	}

	err := q.Enqueue(FinishJob{ID: "second"})
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}

	// The buffered job is unaffected by the rejection.
	if job := <-q.Dequeue(); job.ID != "first" {
		t.Errorf("expected buffered job to survive, got %q", job.ID)
	}
}

func TestQueueClosedRejection(t *testing.T) {
	q := NewQueue(4)
	q.Close()

	if err := q.Enqueue(FinishJob{ID: "late"}); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("expected ErrQueueClosed, got %v", err)
	}

	// Close is idempotent.
	q.Close()
}

func TestQueueCloseDrainsBuffered(t *testing.T) {
	q := NewQueue(4)
	if err := q.Enqueue(FinishJob{ID: "buffered"}); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	q.Close()

	job, ok := <-q.Dequeue()
	if !ok || job.ID != "buffered" {
		t.Fatalf("expected buffered job after close, got %v (ok=%v)", job.ID, ok)
	}
	if _, ok := <-q.Dequeue(); ok {
		t.Fatal("expected channel to close after draining")
	}
}

type recordingProcessor struct {
	mu     sync.Mutex
	seen   []string
	failOn string
}

func (p *recordingProcessor) Process(_ context.Context, job FinishJob) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, job.ID)
	if job.ID == p.failOn {
		return errors.New("processing failed")
	}
	return nil
}

func (p *recordingProcessor) ids() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.seen...)
}

func TestPoolProcessesAllJobs(t *testing.T) {
	q := NewQueue(16)
	proc := &recordingProcessor{}
	pool := NewPool(q, proc, 3, zerolog.Nop())
	pool.Start()

	for _, id := range []string{"j1", "j2", "j3", "j4", "j5"} {
		if err := q.Enqueue(FinishJob{ID: id, EnqueuedAt: time.Now()}); err != nil {
			t.Fatalf("enqueue %s failed: %v", id, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Stop(ctx); err != nil {
		t.Fatalf("pool did not drain: %v", err)
	}

	if got := len(proc.ids()); got != 5 {
		t.Fatalf("expected 5 processed jobs, got %d", got)
	}
}

func TestPoolSurvivesProcessorErrors(t *testing.T) {
	q := NewQueue(16)
	proc := &recordingProcessor{failOn: "bad"}
	pool := NewPool(q, proc, 1, zerolog.Nop())
	pool.Start()

	for _, id := range []string{"ok1", "bad", "ok2"} {
		if err := q.Enqueue(FinishJob{ID: id}); err != nil {
			t.Fatalf("enqueue %s failed: %v", id, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Stop(ctx); err != nil {
		t.Fatalf("pool did not drain: %v", err)
	}

	ids := proc.ids()
	if len(ids) != 3 {
		t.Fatalf("expected the worker to outlive the failure, processed %v", ids)
	}
}
