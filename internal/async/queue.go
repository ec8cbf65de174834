package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mattin-ai/mattin/internal/common"
	"github.com/mattin-ai/mattin/internal/pipeline"
)

// Job is a queued extraction request. The document has already been written
// to DocumentPath; the worker owns the file from the moment the job is
// enqueued and the pipeline removes it when processing finishes.
type Job struct {
	AgentID      int
	DocumentPath string
	WorkDir      string
	SubmittedAt  time.Time
	TraceID      string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

var ErrQueueClosed = errors.New("queue is shut down")

// WorkerQueue runs extraction jobs on a fixed pool of in-process workers.
type WorkerQueue struct {
	processor *pipeline.Processor
	jobs      chan Job
	logger    *slog.Logger

	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// NewWorkerQueue starts workers goroutines draining the queue.
func NewWorkerQueue(processor *pipeline.Processor, workers, capacity int, logger *slog.Logger) *WorkerQueue {
	if workers <= 0 {
		workers = 2
	}
	if capacity <= 0 {
		capacity = 64
	}
	if logger == nil {
		logger = slog.Default()
	}
	q := &WorkerQueue{
		processor: processor,
		jobs:      make(chan Job, capacity),
		logger:    logger,
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	return q
}

func (q *WorkerQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.mu.Unlock()

	if job.TraceID == "" {
		job.TraceID = uuid.NewString()
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}

	select {
	case q.jobs <- job:
		q.logger.Debug("queue.enqueued", "trace_id", job.TraceID, "agent_id", job.AgentID)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting jobs and waits for in-flight work, up to the
// context deadline.
func (q *WorkerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		q.logger.Info("queue.drained")
	case <-ctx.Done():
		q.logger.Warn("queue.shutdown_timeout", "error", ctx.Err())
	}
}

func (q *WorkerQueue) worker(id int) {
	defer q.wg.Done()
	for job := range q.jobs {
		start := time.Now()
		ctx := common.WithRequestID(context.Background(), job.TraceID)
		ctx = common.WithAgentID(ctx, job.AgentID)
		_, err := q.processor.ProcessDocument(ctx, job.AgentID, job.DocumentPath, job.WorkDir)
		if err != nil {
			q.logger.Error("queue.job.failed",
				"worker", id,
				"trace_id", job.TraceID,
				"agent_id", job.AgentID,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
			continue
		}
		q.logger.Info("queue.job.done",
			"worker", id,
			"trace_id", job.TraceID,
			"agent_id", job.AgentID,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}
