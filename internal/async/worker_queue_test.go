package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type permErr struct{ msg string }

func (e *permErr) Error() string   { return e.msg }
func (e *permErr) Permanent() bool { return true }

// countingHandler fails the first failUntil attempts of every job.
type countingHandler struct {
	mu        sync.Mutex
	attempts  []int
	abandoned []error
	done      chan struct{}

	failUntil int
	err       error
}

func newCountingHandler(failUntil int, err error) *countingHandler {
	return &countingHandler{failUntil: failUntil, err: err, done: make(chan struct{}, 16)}
}

func (h *countingHandler) Handle(_ context.Context, _ Job, attempt int) error {
	h.mu.Lock()
	h.attempts = append(h.attempts, attempt)
	h.mu.Unlock()
	if attempt <= h.failUntil {
		return h.err
	}
	h.done <- struct{}{}
	return nil
}

func (h *countingHandler) Abandon(_ context.Context, _ Job, err error) {
	h.mu.Lock()
	h.abandoned = append(h.abandoned, err)
	h.mu.Unlock()
	h.done <- struct{}{}
}

func (h *countingHandler) waitDone(t *testing.T) {
	t.Helper()
	select {
	case <-h.done:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not finish in time")
	}
}

func (h *countingHandler) snapshot() ([]int, []error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]int(nil), h.attempts...), append([]error(nil), h.abandoned...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestQueue(h Handler) *WorkerQueue {
	return NewWorkerQueue(h, discardLogger(),
		WithWorkers(1),
		WithAttempts(3),
		WithBackoff(time.Millisecond),
		WithAttemptTimeout(time.Second),
	)
}

func TestQueueRetriesTransientFailure(t *testing.T) {
	h := newCountingHandler(2, errors.New("flaky"))
	q := newTestQueue(h)
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{QuoteID: uuid.New(), Kind: KindProcess}))
	h.waitDone(t)

	attempts, abandoned := h.snapshot()
	assert.Equal(t, []int{1, 2, 3}, attempts)
	assert.Empty(t, abandoned)
}

func TestQueueAbandonsAfterMaxAttempts(t *testing.T) {
	cause := errors.New("always down")
	h := newCountingHandler(3, cause)
	q := newTestQueue(h)
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{QuoteID: uuid.New(), Kind: KindProcess}))
	h.waitDone(t)

	attempts, abandoned := h.snapshot()
	assert.Equal(t, []int{1, 2, 3}, attempts)
	require.Len(t, abandoned, 1)
	assert.ErrorIs(t, abandoned[0], cause)
}

func TestQueueStopsRetryingOnPermanentFailure(t *testing.T) {
	h := newCountingHandler(3, &permErr{msg: "scanned pdf"})
	q := newTestQueue(h)
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{QuoteID: uuid.New(), Kind: KindProcess}))
	h.waitDone(t)

	attempts, abandoned := h.snapshot()
	assert.Equal(t, []int{1}, attempts)
	require.Len(t, abandoned, 1)
}

func TestQueueShutdownDrainsPendingJobs(t *testing.T) {
	h := newCountingHandler(0, nil)
	q := NewWorkerQueue(h, discardLogger(), WithWorkers(2), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{QuoteID: uuid.New(), Kind: KindOffers}))
	}
	q.Shutdown(context.Background())

	attempts, _ := h.snapshot()
	assert.Len(t, attempts, 5)
}

func TestQueueRejectsEnqueueAfterShutdown(t *testing.T) {
	h := newCountingHandler(0, nil)
	q := NewWorkerQueue(h, discardLogger(), WithWorkers(1))
	q.Shutdown(context.Background())

	assert.NoError(t, q.Enqueue(context.Background(), Job{QuoteID: uuid.New(), Kind: KindProcess}))

	attempts, _ := h.snapshot()
	assert.Empty(t, attempts)
}

func TestQueueStampsSubmittedAt(t *testing.T) {
	var got time.Time
	var mu sync.Mutex
	h := &funcHandler{fn: func(_ context.Context, job Job, _ int) error {
		mu.Lock()
		got = job.SubmittedAt
		mu.Unlock()
		return nil
	}}
	q := NewWorkerQueue(h, discardLogger(), WithWorkers(1))

	require.NoError(t, q.Enqueue(context.Background(), Job{QuoteID: uuid.New(), Kind: KindProcess}))
	q.Shutdown(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, got.IsZero())
}

type funcHandler struct {
	fn func(ctx context.Context, job Job, attempt int) error
}

func (h *funcHandler) Handle(ctx context.Context, job Job, attempt int) error {
	return h.fn(ctx, job, attempt)
}

func (h *funcHandler) Abandon(context.Context, Job, error) {}
