package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattin-ai/mattin/internal/async"
)

type captureQueue struct {
	jobs []async.Job
	err  error
}

func (q *captureQueue) Enqueue(_ context.Context, job async.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *captureQueue) Shutdown(context.Context) {}

func writeDoc(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func newTestIngestor(t *testing.T, queue async.Queue) *Ingestor {
	t.Helper()
	return NewIngestor(Config{
		UploadDir: t.TempDir(),
		WorkRoot:  t.TempDir(),
	}, queue, nil)
}

func TestIngestFileQueuesCopy(t *testing.T) {
	queue := &captureQueue{}
	ing := newTestIngestor(t, queue)
	src := writeDoc(t, t.TempDir(), "scan.pdf", []byte("%PDF-1.4 content"))

	require.NoError(t, ing.ingestFile(context.Background(), event{Path: src, AgentID: 4}))

	require.Len(t, queue.jobs, 1)
	job := queue.jobs[0]
	assert.Equal(t, 4, job.AgentID)
	assert.Equal(t, ".pdf", filepath.Ext(job.DocumentPath))
	assert.NotEmpty(t, job.TraceID)

	data, err := os.ReadFile(job.DocumentPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 content"), data)
	assert.FileExists(t, src, "watched original is left in place")
}

func TestIngestFileDeduplicatesByContent(t *testing.T) {
	queue := &captureQueue{}
	ing := newTestIngestor(t, queue)
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.pdf", []byte("same bytes"))
	b := writeDoc(t, dir, "b.pdf", []byte("same bytes"))

	require.NoError(t, ing.ingestFile(context.Background(), event{Path: a, AgentID: 1}))
	require.NoError(t, ing.ingestFile(context.Background(), event{Path: b, AgentID: 1}))
	assert.Len(t, queue.jobs, 1, "identical content for the same agent is queued once")

	// a different agent gets its own copy
	require.NoError(t, ing.ingestFile(context.Background(), event{Path: a, AgentID: 2}))
	assert.Len(t, queue.jobs, 2)
}

func TestIngestFileChangedContentRequeues(t *testing.T) {
	queue := &captureQueue{}
	ing := newTestIngestor(t, queue)
	src := writeDoc(t, t.TempDir(), "scan.pdf", []byte("v1"))

	require.NoError(t, ing.ingestFile(context.Background(), event{Path: src, AgentID: 1}))
	require.NoError(t, os.WriteFile(src, []byte("v2"), 0o644))
	require.NoError(t, ing.ingestFile(context.Background(), event{Path: src, AgentID: 1}))

	assert.Len(t, queue.jobs, 2)
}

func TestIngestFileEnqueueFailureRemovesCopy(t *testing.T) {
	queue := &captureQueue{err: errors.New("queue closed")}
	ing := newTestIngestor(t, queue)
	src := writeDoc(t, t.TempDir(), "scan.pdf", []byte("content"))

	err := ing.ingestFile(context.Background(), event{Path: src, AgentID: 1})
	require.Error(t, err)

	entries, rerr := os.ReadDir(ing.cfg.UploadDir)
	require.NoError(t, rerr)
	assert.Empty(t, entries, "rejected upload copy is cleaned up")
}

func TestIngestFileMissingSource(t *testing.T) {
	ing := newTestIngestor(t, &captureQueue{})
	err := ing.ingestFile(context.Background(), event{Path: "/nonexistent/file.pdf", AgentID: 1})
	require.Error(t, err)
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, "7:abc", keyFor(7, "abc"))
	assert.NotEqual(t, keyFor(1, "abc"), keyFor(2, "abc"))
}
