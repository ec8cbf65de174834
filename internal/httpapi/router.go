// Package httpapi exposes the document-facing HTTP surface: uploads, job
// lookups, exports, and operational endpoints.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/internal/async"
	"github.com/mattin-ai/mattin/internal/common"
	"github.com/mattin-ai/mattin/internal/export"
	"github.com/mattin-ai/mattin/internal/mcptool"
	"github.com/mattin-ai/mattin/internal/pipeline"
	"github.com/mattin-ai/mattin/internal/repository"
)

// Server wires HTTP handlers to the extraction pipeline and repositories.
type Server struct {
	cfg       common.ServerConfig
	workRoot  string
	processor *pipeline.Processor
	queue     async.Queue
	agents    repository.AgentRepository
	jobs      repository.ExtractionJobRepository
	tools     repository.ToolServerRepository
	exporter  *export.Service
	logger    *slog.Logger
}

type Deps struct {
	Config    common.ServerConfig
	WorkRoot  string
	Processor *pipeline.Processor
	Queue     async.Queue
	Agents    repository.AgentRepository
	Jobs      repository.ExtractionJobRepository
	Tools     repository.ToolServerRepository
	Exporter  *export.Service
	Logger    *slog.Logger
}

func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workRoot := deps.WorkRoot
	if workRoot == "" {
		workRoot = "./tmp/images"
	}
	return &Server{
		cfg:       deps.Config,
		workRoot:  workRoot,
		processor: deps.Processor,
		queue:     deps.Queue,
		agents:    deps.Agents,
		jobs:      deps.Jobs,
		tools:     deps.Tools,
		exporter:  deps.Exporter,
		logger:    logger,
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/agents/{agentID}/documents", s.handleUpload)
		r.Get("/agents/{agentID}/export", s.handleExport)
		r.Get("/agents/{agentID}/tools", s.handleTools)
		r.Get("/jobs/{jobID}", s.handleJobStatus)
	})

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpload receives a multipart document and either queues it for
// extraction (default, 202) or processes it inline when wait=true.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(chi.URLParam(r, "agentID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	exists, err := s.agents.Exists(r.Context(), agentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "agent lookup failed")
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "agent not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large or malformed")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	ext := constants.NormalizeExt(filepath.Ext(header.Filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported file extension ."+ext)
		return
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		writeError(w, http.StatusInternalServerError, "cannot prepare upload dir")
		return
	}
	uploadID := uuid.NewString()
	documentPath := filepath.Join(s.cfg.UploadDir, uploadID+"."+ext)
	dst, err := os.Create(documentPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cannot store upload")
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(documentPath)
		writeError(w, http.StatusInternalServerError, "cannot store upload")
		return
	}
	dst.Close()

	workDir := filepath.Join(s.workRoot, uploadID)

	s.logger.Info("http.upload.accepted",
		"agent_id", agentID,
		"file", header.Filename,
		"bytes", header.Size,
		"trace_id", uploadID,
	)

	if r.URL.Query().Get("wait") == "true" {
		ctx := common.WithRequestID(r.Context(), uploadID)
		run, err := s.processor.ProcessDocument(ctx, agentID, documentPath, workDir)
		if err != nil {
			var notFound *pipeline.AgentNotFoundError
			if errors.As(err, &notFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		resp := map[string]any{"status": run.Status, "result": run.Final}
		if run.JobID != uuid.Nil {
			resp["job_id"] = run.JobID.String()
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	job := async.Job{
		AgentID:      agentID,
		DocumentPath: documentPath,
		WorkDir:      workDir,
		TraceID:      uploadID,
	}
	if err := s.queue.Enqueue(r.Context(), job); err != nil {
		os.Remove(documentPath)
		writeError(w, http.StatusServiceUnavailable, "queue unavailable")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"trace_id": uploadID})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}
	job, err := s.jobs.GetByID(r.Context(), jobID)
	if err != nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	resp := map[string]any{
		"id":             job.ID.String(),
		"agent_id":       job.AgentID,
		"document_name":  job.DocumentName,
		"status":         job.Status,
		"pages":          job.Pages,
		"has_plain_text": job.HasPlainText,
		"started_at":     job.StartedAt,
	}
	if job.FinishedAt != nil {
		resp["finished_at"] = *job.FinishedAt
	}
	if job.ErrorMessage != nil {
		resp["error"] = *job.ErrorMessage
	}
	if len(job.Result) > 0 {
		resp["result"] = json.RawMessage(job.Result)
	}
	if len(job.Trace) > 0 {
		resp["trace"] = job.Trace
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(chi.URLParam(r, "agentID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid agent id")
		return
	}
	from, err := parseDateParam(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date, want YYYY-MM-DD")
		return
	}
	to, err := parseDateParam(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date, want YYYY-MM-DD")
		return
	}

	data, err := s.exporter.ExportJobsXLSX(r.Context(), agentID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="extractions.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(chi.URLParam(r, "agentID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid agent id")
		return
	}
	rows, err := s.tools.ToolServersForAgent(r.Context(), agentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "tool server lookup failed")
		return
	}
	servers := make([]mcptool.ServerConfig, 0, len(rows))
	for _, row := range rows {
		servers = append(servers, mcptool.ServerConfig{
			Name:      row.Name,
			URL:       row.URL,
			Transport: row.Transport,
		})
	}
	tools := mcptool.CollectTools(r.Context(), servers, s.logger)
	writeJSON(w, http.StatusOK, map[string]any{"tools": tools})
}

func parseDateParam(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
