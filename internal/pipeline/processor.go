package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/internal/common"
	"github.com/mattin-ai/mattin/internal/llm"
	"github.com/mattin-ai/mattin/internal/schema"
)

// DocumentLoader is the slice of the document loader the pipeline needs.
type DocumentLoader interface {
	ExtractText(ctx context.Context, path string) string
	HasPlainText(ctx context.Context, path string) bool
	RenderPages(ctx context.Context, path, outputDir string) ([]string, error)
}

// ModelResolver resolves provider/model pairs into clients.
type ModelResolver interface {
	TextModel(provider constants.Provider, model string) (llm.TextModel, error)
	VisionModel(provider constants.Provider, model string) (llm.VisionModel, error)
}

// JobRecorder persists run lifecycle for observability. Optional: a nil
// recorder disables persistence without touching pipeline behavior.
type JobRecorder interface {
	Start(ctx context.Context, agentID int, documentName string) (uuid.UUID, error)
	Finish(ctx context.Context, jobID uuid.UUID, outcome JobOutcome) error
}

// JobOutcome is the terminal record of one run.
type JobOutcome struct {
	Status       constants.JobStatus
	Result       map[string]any
	ErrorMessage string
	Pages        int
	HasPlainText bool
	Trace        []string
}

// Processor owns one document's workflow end to end: resolve the agent, run
// the graph, persist the outcome, and clean up the temp files on every exit
// path.
type Processor struct {
	agents             AgentStore
	registry           schema.Registry
	loader             DocumentLoader
	models             ModelResolver
	jobs               JobRecorder // may be nil
	logger             *slog.Logger
	pageConcurrency    int
	skipVisionWhenText bool
}

// Config tunes processor behavior.
type Config struct {
	// PageConcurrency caps concurrent vision calls per document; <=1 is sequential.
	PageConcurrency int
	// SkipVisionWhenText makes every agent skip the image path for documents
	// with a usable text layer, regardless of the per-agent flag.
	SkipVisionWhenText bool
}

func NewProcessor(agents AgentStore, registry schema.Registry, loader DocumentLoader, models ModelResolver, jobs JobRecorder, cfg Config, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		agents:             agents,
		registry:           registry,
		loader:             loader,
		models:             models,
		jobs:               jobs,
		logger:             logger,
		pageConcurrency:    cfg.PageConcurrency,
		skipVisionWhenText: cfg.SkipVisionWhenText,
	}
}

// RunResult is what ProcessDocument hands back to callers.
type RunResult struct {
	JobID  uuid.UUID // uuid.Nil when no recorder is configured
	Status constants.JobStatus
	Final  map[string]any
}

// ProcessDocument runs the extraction pipeline for one uploaded document and
// returns the document-level result mapping. documentPath and workDir are
// owned exclusively by this run and are deleted before returning, on success
// and failure alike. An unresolvable agent or model is the only error class
// that propagates; every other stage failure degrades to a partial or empty
// result.
func (p *Processor) ProcessDocument(ctx context.Context, agentID int, documentPath, workDir string) (*RunResult, error) {
	start := time.Now()
	defer p.cleanup(documentPath, workDir)

	agent, err := p.agents.AgentConfig(ctx, agentID)
	if err != nil {
		p.logger.Error("pipeline.agent.resolve_failed", "agent_id", agentID, "error", err)
		return nil, err
	}

	jobID := p.startJob(ctx, agentID, documentPath)

	s := &State{
		DocumentPath: documentPath,
		WorkDir:      workDir,
		Agent:        agent,
	}

	p.logger.Info("pipeline.start",
		"agent_id", agentID,
		"agent", agent.Name,
		"document", filepath.Base(documentPath),
		"provider", agent.Provider,
		"trace_id", common.RequestIDFromContext(ctx),
	)

	if err := p.execute(ctx, s); err != nil {
		p.finishJob(ctx, jobID, s, constants.JobStatusFailed, err.Error())
		documentsProcessed.WithLabelValues(string(constants.JobStatusFailed)).Inc()
		p.logger.Error("pipeline.failed", "agent_id", agentID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	if s.Final == nil {
		s.Final = map[string]any{}
	}
	status := constants.JobStatusSucceeded
	if len(s.Final) == 0 {
		// Soft-failure signal: an empty mapping means stages degraded.
		status = constants.JobStatusEmpty
	}
	p.finishJob(ctx, jobID, s, status, "")
	documentsProcessed.WithLabelValues(string(status)).Inc()

	p.logger.Info("pipeline.done",
		"agent_id", agentID,
		"status", status,
		"pages", len(s.PageImages),
		"has_plain_text", s.HasPlainText,
		"fields", len(s.Final),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &RunResult{JobID: jobID, Status: status, Final: s.Final}, nil
}

func (p *Processor) cleanup(documentPath, workDir string) {
	if documentPath != "" {
		if err := os.Remove(documentPath); err != nil && !os.IsNotExist(err) {
			p.logger.Warn("pipeline.cleanup.document", "path", documentPath, "error", err)
		}
	}
	if workDir != "" {
		if err := os.RemoveAll(workDir); err != nil {
			p.logger.Warn("pipeline.cleanup.workdir", "path", workDir, "error", err)
		}
	}
}

func (p *Processor) startJob(ctx context.Context, agentID int, documentPath string) uuid.UUID {
	if p.jobs == nil {
		return uuid.Nil
	}
	jobID, err := p.jobs.Start(ctx, agentID, filepath.Base(documentPath))
	if err != nil {
		p.logger.Warn("pipeline.job.start_failed", "agent_id", agentID, "error", err)
		return uuid.Nil
	}
	return jobID
}

func (p *Processor) finishJob(ctx context.Context, jobID uuid.UUID, s *State, status constants.JobStatus, errMsg string) {
	if p.jobs == nil || jobID == uuid.Nil {
		return
	}
	outcome := JobOutcome{
		Status:       status,
		Result:       s.Final,
		ErrorMessage: errMsg,
		Pages:        len(s.PageImages),
		HasPlainText: s.HasPlainText,
		Trace:        s.Trace,
	}
	if err := p.jobs.Finish(ctx, jobID, outcome); err != nil {
		p.logger.Warn("pipeline.job.finish_failed", "job_id", jobID, "error", err)
	}
}

func (s *State) documentLabel() string {
	return filepath.Base(s.DocumentPath)
}
