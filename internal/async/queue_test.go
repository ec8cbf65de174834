package async

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/internal/llm"
	"github.com/mattin-ai/mattin/internal/pipeline"
	"github.com/mattin-ai/mattin/internal/schema"
)

type stubStore struct{ agentID int }

func (s *stubStore) AgentConfig(_ context.Context, id int) (*pipeline.AgentConfig, error) {
	if id != s.agentID {
		return nil, &pipeline.AgentNotFoundError{AgentID: id}
	}
	return &pipeline.AgentConfig{
		ID:        id,
		Name:      "stub",
		Provider:  constants.ProviderOllama,
		TextModel: "llama3.2",
	}, nil
}

type stubLoader struct{}

func (stubLoader) ExtractText(context.Context, string) string { return "stub document text" }

func (stubLoader) HasPlainText(context.Context, string) bool { return true }

func (stubLoader) RenderPages(context.Context, string, string) ([]string, error) {
	return nil, nil
}

type stubModel struct {
	mu    sync.Mutex
	calls int
}

func (m *stubModel) Generate(context.Context, llm.TextRequest) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return "ok", nil
}

func (m *stubModel) Describe(context.Context, llm.VisionRequest) (string, error) {
	return "ok", nil
}

type stubResolver struct{ model *stubModel }

func (r stubResolver) TextModel(constants.Provider, string) (llm.TextModel, error) {
	return r.model, nil
}

func (r stubResolver) VisionModel(constants.Provider, string) (llm.VisionModel, error) {
	return r.model, nil
}

func newStubProcessor() (*pipeline.Processor, *stubModel) {
	model := &stubModel{}
	reg := schema.RegistryFunc(func(_ context.Context, id int) (*schema.Definition, error) {
		return nil, &schema.NotFoundError{DefinitionID: id}
	})
	p := pipeline.NewProcessor(&stubStore{agentID: 1}, reg, stubLoader{}, stubResolver{model: model}, nil, pipeline.Config{}, nil)
	return p, model
}

func tempDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-"), 0o600))
	return path
}

func TestWorkerQueueProcessesJobs(t *testing.T) {
	processor, model := newStubProcessor()
	q := NewWorkerQueue(processor, 2, 8, nil)

	doc := tempDoc(t)
	require.NoError(t, q.Enqueue(context.Background(), Job{
		AgentID:      1,
		DocumentPath: doc,
		WorkDir:      filepath.Join(t.TempDir(), "work"),
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.NoFileExists(t, doc, "pipeline removed its input")
	model.mu.Lock()
	defer model.mu.Unlock()
	assert.Positive(t, model.calls)
}

func TestWorkerQueueSurvivesFailingJob(t *testing.T) {
	processor, model := newStubProcessor()
	q := NewWorkerQueue(processor, 1, 8, nil)

	bad := tempDoc(t)
	good := tempDoc(t)

	// unknown agent fails fast; the worker must keep draining
	require.NoError(t, q.Enqueue(context.Background(), Job{AgentID: 99, DocumentPath: bad}))
	require.NoError(t, q.Enqueue(context.Background(), Job{AgentID: 1, DocumentPath: good}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.NoFileExists(t, bad)
	assert.NoFileExists(t, good)
	model.mu.Lock()
	defer model.mu.Unlock()
	assert.Positive(t, model.calls)
}

func TestWorkerQueueEnqueueAfterShutdown(t *testing.T) {
	processor, _ := newStubProcessor()
	q := NewWorkerQueue(processor, 1, 1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx) // idempotent

	err := q.Enqueue(context.Background(), Job{AgentID: 1})
	assert.ErrorIs(t, err, ErrQueueClosed)
}
