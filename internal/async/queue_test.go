package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
}

func (s *stubProcessor) ProcessDocument(_ context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, documentID)
	return uuid.New(), nil
}

func (s *stubProcessor) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

func TestQueueProcessesAllJobs(t *testing.T) {
	proc := &stubProcessor{}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(3), WithQueueSize(16))

	ids := make([]uuid.UUID, 10)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: ids[i], SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, len(ids), proc.count())
}

func TestQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	proc := &stubProcessor{}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// must not panic on the closed channel
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	assert.Equal(t, 0, proc.count())
}

type blockingProcessor struct {
	release chan struct{}
}

func (b *blockingProcessor) ProcessDocument(ctx context.Context, _ uuid.UUID) (uuid.UUID, error) {
	select {
	case <-b.release:
	case <-ctx.Done():
	}
	return uuid.New(), nil
}

func TestQueueShutdownNotStalledBySaturatedQueue(t *testing.T) {
	proc := &blockingProcessor{release: make(chan struct{})}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1), WithQueueSize(1))

	// one job held by the worker, one filling the channel
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))

	// this sender blocks on backpressure until shutdown releases it
	sent := make(chan struct{})
	go func() {
		defer close(sent)
		_ = q.Enqueue(context.Background(), Job{DocumentID: uuid.New()})
	}()
	time.Sleep(50 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		q.Shutdown(ctx)
	}()

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("enqueue still blocked after shutdown started")
	}
	close(proc.release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown stalled on saturated queue")
	}
}

func TestQueueEnqueueHonorsContextCancel(t *testing.T) {
	proc := &blockingProcessor{release: make(chan struct{})}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1), WithQueueSize(1))

	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, Job{DocumentID: uuid.New()})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(proc.release)
	sctx, scancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer scancel()
	q.Shutdown(sctx)
}

func TestQueueShutdownIsIdempotent(t *testing.T) {
	proc := &stubProcessor{}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
