package dispatch

import (
	"context"
	"fmt"
	"sync"

	"regatta-tracker/internal/metrics"

	"github.com/rs/zerolog"
)

// Processor runs the recognition-and-ranking pipeline for one job. Errors are
// operational information only; there is no caller left to report them to.
type Processor interface {
	Process(ctx context.Context, job FinishJob) error
}

// Pool drains the queue with a fixed set of workers. Jobs are not cancellable
// once dequeued; shutdown closes the queue and waits for in-flight work.
type Pool struct {
	queue     *Queue
	processor Processor
	workers   int
	logger    zerolog.Logger

	wg   sync.WaitGroup
	done chan struct{}
}

func NewPool(queue *Queue, processor Processor, workers int, logger zerolog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		queue:     queue,
		processor: processor,
		workers:   workers,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Start launches the workers. Call once.
func (p *Pool) Start() {
	p.logger.Info().Int("workers", p.workers).Msg("starting finish workers")

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(i)
	}

	go func() {
		p.wg.Wait()
		close(p.done)
	}()
}

func (p *Pool) run(id int) {
	defer p.wg.Done()

	logger := p.logger.With().Int("worker", id).Logger()
	for job := range p.queue.Dequeue() {
		metrics.QueueDepth.Dec()

		logger.Debug().
			Str("job_id", job.ID).
			Str("race_id", job.RaceID).
			Msg("processing finish job")

		if err := p.processor.Process(context.Background(), job); err != nil {
			logger.Error().
				Err(err).
				Str("job_id", job.ID).
				Str("race_id", job.RaceID).
				Msg("finish job failed")
		}
	}
}

// Stop closes the queue and waits for the workers to drain it, or for ctx to
// expire.
func (p *Pool) Stop(ctx context.Context) error {
	p.queue.Close()

	select {
	case <-p.done:
		p.logger.Info().Msg("finish workers stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("finish workers did not drain in time: %w", ctx.Err())
	}
}
