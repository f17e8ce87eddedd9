package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit of background work.
type Job struct {
	DocumentID  uuid.UUID
	Force       bool // enqueue even if deduplicated
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// DocumentProcessor is what the queue drives; satisfied by
// pipeline.Processor and by stubs in tests.
type DocumentProcessor interface {
	ProcessDocument(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error)
}
