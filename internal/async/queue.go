package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JobKind selects which pipeline stage a job runs.
type JobKind string

const (
	// KindProcess runs extraction and structuring for an uploaded quote.
	KindProcess JobKind = "process"
	// KindOffers runs matching and counter-offer generation for a completed quote.
	KindOffers JobKind = "offers"
)

// Job is the smallest useful unit. Extend as needed later (trace, priority, etc).
type Job struct {
	QuoteID     uuid.UUID
	Kind        JobKind
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Handler executes one job attempt. attempt starts at 1. Returning an error
// triggers a retry unless the handler marked it permanent; Abandon runs once
// when no attempts remain.
type Handler interface {
	Handle(ctx context.Context, job Job, attempt int) error
	Abandon(ctx context.Context, job Job, err error)
}
