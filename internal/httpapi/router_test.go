package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattin-ai/mattin/gen/ent"
	"github.com/mattin-ai/mattin/internal/async"
	"github.com/mattin-ai/mattin/internal/common"
	"github.com/mattin-ai/mattin/internal/pipeline"
	"github.com/mattin-ai/mattin/internal/repository"
)

type stubAgents struct {
	existing map[int]bool
	err      error
}

func (s *stubAgents) GetByID(context.Context, int) (*ent.Agent, error) {
	return nil, errors.New("not used")
}

func (s *stubAgents) CreateAgent(context.Context, repository.CreateAgentParams) (*ent.Agent, error) {
	return nil, errors.New("not used")
}

func (s *stubAgents) ListAgents(context.Context) ([]*ent.Agent, error) {
	return nil, errors.New("not used")
}

func (s *stubAgents) DeleteAgent(context.Context, int) error { return errors.New("not used") }

func (s *stubAgents) Exists(_ context.Context, id int) (bool, error) {
	return s.existing[id], s.err
}

func (s *stubAgents) AgentConfig(context.Context, int) (*pipeline.AgentConfig, error) {
	return nil, errors.New("not used")
}

type stubJobRepo struct {
	job *ent.ExtractionJob
	err error
}

func (s *stubJobRepo) GetByID(context.Context, uuid.UUID) (*ent.ExtractionJob, error) {
	return s.job, s.err
}

func (s *stubJobRepo) ListByAgent(context.Context, int, *time.Time, *time.Time) ([]*ent.ExtractionJob, error) {
	return nil, errors.New("not used")
}

func (s *stubJobRepo) Start(context.Context, int, string) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not used")
}

func (s *stubJobRepo) Finish(context.Context, uuid.UUID, pipeline.JobOutcome) error {
	return errors.New("not used")
}

type stubQueue struct {
	jobs []async.Job
	err  error
}

func (q *stubQueue) Enqueue(_ context.Context, job async.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *stubQueue) Shutdown(context.Context) {}

func newTestServer(t *testing.T, agents *stubAgents, jobs *stubJobRepo, queue *stubQueue) *Server {
	t.Helper()
	return NewServer(Deps{
		Config: common.ServerConfig{
			UploadDir:     t.TempDir(),
			MaxUploadSize: 1 << 20,
		},
		WorkRoot: t.TempDir(),
		Queue:    queue,
		Agents:   agents,
		Jobs:     jobs,
	})
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &stubAgents{}, &stubJobRepo{}, &stubQueue{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUploadQueuesJob(t *testing.T) {
	agents := &stubAgents{existing: map[int]bool{7: true}}
	queue := &stubQueue{}
	srv := newTestServer(t, agents, &stubJobRepo{}, queue)

	body, ctype := multipartBody(t, "invoice.pdf", []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest(http.MethodPost, "/v1/agents/7/documents", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["trace_id"])

	require.Len(t, queue.jobs, 1)
	job := queue.jobs[0]
	assert.Equal(t, 7, job.AgentID)
	assert.FileExists(t, job.DocumentPath, "upload persisted before queueing")
	data, err := os.ReadFile(job.DocumentPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
}

func TestUploadUnknownAgent(t *testing.T) {
	srv := newTestServer(t, &stubAgents{}, &stubJobRepo{}, &stubQueue{})

	body, ctype := multipartBody(t, "invoice.pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/v1/agents/99/documents", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadRejectsExtension(t *testing.T) {
	srv := newTestServer(t, &stubAgents{existing: map[int]bool{1: true}}, &stubJobRepo{}, &stubQueue{})

	body, ctype := multipartBody(t, "notes.docx", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/v1/agents/1/documents", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestUploadQueueUnavailable(t *testing.T) {
	queue := &stubQueue{err: async.ErrQueueClosed}
	srv := newTestServer(t, &stubAgents{existing: map[int]bool{1: true}}, &stubJobRepo{}, queue)

	body, ctype := multipartBody(t, "invoice.pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/v1/agents/1/documents", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestJobStatus(t *testing.T) {
	jobID := uuid.New()
	finished := time.Date(2026, 2, 1, 12, 5, 0, 0, time.UTC)
	errMsg := "vision model unavailable"
	jobs := &stubJobRepo{job: &ent.ExtractionJob{
		ID:           jobID,
		AgentID:      3,
		DocumentName: "invoice.pdf",
		Status:       "SUCCEEDED",
		Result:       json.RawMessage(`{"total":42}`),
		ErrorMessage: &errMsg,
		Pages:        2,
		HasPlainText: true,
		Trace:        []string{"LoadModels: ok"},
		StartedAt:    finished.Add(-time.Minute),
		FinishedAt:   &finished,
	}}
	srv := newTestServer(t, &stubAgents{}, jobs, &stubQueue{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jobs/"+jobID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, jobID.String(), resp["id"])
	assert.Equal(t, "SUCCEEDED", resp["status"])
	assert.Equal(t, float64(2), resp["pages"])
	assert.Equal(t, map[string]any{"total": float64(42)}, resp["result"])
	assert.Equal(t, errMsg, resp["error"])
}

func TestJobStatusBadID(t *testing.T) {
	srv := newTestServer(t, &stubAgents{}, &stubJobRepo{}, &stubQueue{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jobs/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobStatusNotFound(t *testing.T) {
	srv := newTestServer(t, &stubAgents{}, &stubJobRepo{err: errors.New("gone")}, &stubQueue{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jobs/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
