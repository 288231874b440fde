package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// permanenter is implemented by errors that retries cannot fix. Checked
// structurally so the handler package can define its own error type.
type permanenter interface{ Permanent() bool }

func isPermanent(err error) bool {
	var p permanenter
	return errors.As(err, &p) && p.Permanent()
}

// WorkerQueue runs jobs on a fixed worker pool with bounded retries.
type WorkerQueue struct {
	handler  Handler
	logger   *slog.Logger
	workers  int
	timeout  time.Duration // per-attempt budget
	attempts int
	backoff  []time.Duration // wait before attempt n+1; last entry repeats

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*WorkerQueue)

func WithWorkers(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithAttemptTimeout(d time.Duration) Option {
	return func(q *WorkerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func WithAttempts(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.attempts = n
		}
	}
}

func WithBackoff(waits ...time.Duration) Option {
	return func(q *WorkerQueue) {
		if len(waits) > 0 {
			q.backoff = waits
		}
	}
}

func NewWorkerQueue(handler Handler, logger *slog.Logger, opts ...Option) *WorkerQueue {
	q := &WorkerQueue{
		handler:  handler,
		logger:   logger,
		workers:  4,
		timeout:  5 * time.Minute,
		attempts: 3,
		backoff:  []time.Duration{2 * time.Minute, 5 * time.Minute},
		ch:       make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *WorkerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					q.run(workerID, job)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *WorkerQueue) run(workerID int, job Job) {
	var lastErr error
	for attempt := 1; attempt <= q.attempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		err := q.handler.Handle(ctx, job, attempt)
		cancel()

		if err == nil {
			q.logger.Info("job succeeded",
				"worker_id", workerID, "quote_id", job.QuoteID, "kind", job.Kind, "attempt", attempt)
			return
		}
		lastErr = err

		if isPermanent(err) {
			q.logger.Error("job failed permanently",
				"worker_id", workerID, "quote_id", job.QuoteID, "kind", job.Kind, "attempt", attempt, "error", err)
			break
		}
		q.logger.Warn("job attempt failed",
			"worker_id", workerID, "quote_id", job.QuoteID, "kind", job.Kind, "attempt", attempt, "error", err)

		if attempt < q.attempts {
			time.Sleep(q.wait(attempt))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	q.handler.Abandon(ctx, job, lastErr)
	cancel()
}

func (q *WorkerQueue) wait(attempt int) time.Duration {
	if len(q.backoff) == 0 {
		return 0
	}
	idx := attempt - 1
	if idx >= len(q.backoff) {
		idx = len(q.backoff) - 1
	}
	return q.backoff[idx]
}

func (q *WorkerQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "quote_id", job.QuoteID, "kind", job.Kind)
		return nil
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now().UTC()
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued job", "quote_id", job.QuoteID, "kind", job.Kind)
	default:
		q.logger.Warn("queue full, applying backpressure", "quote_id", job.QuoteID, "kind", job.Kind)
		q.ch <- job
	}
	return nil
}

func (q *WorkerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
