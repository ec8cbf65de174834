package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/gen/ent"
	mattinpb "github.com/mattin-ai/mattin/gen/proto/mattin/v1"
	"github.com/mattin-ai/mattin/internal/export"
	"github.com/mattin-ai/mattin/internal/pipeline"
	"github.com/mattin-ai/mattin/internal/repository"
)

type ExtractionService struct {
	mattinpb.UnimplementedExtractionServiceServer
	processor *pipeline.Processor
	jobs      repository.ExtractionJobRepository
	exporter  *export.Service
	uploadDir string
	workRoot  string
	logger    *zap.Logger
}

func NewExtractionService(
	processor *pipeline.Processor,
	jobs repository.ExtractionJobRepository,
	exporter *export.Service,
	uploadDir, workRoot string,
	logger *zap.Logger,
) *ExtractionService {
	if uploadDir == "" {
		uploadDir = "./tmp/uploads"
	}
	if workRoot == "" {
		workRoot = "./tmp/images"
	}
	return &ExtractionService{
		processor: processor,
		jobs:      jobs,
		exporter:  exporter,
		uploadDir: uploadDir,
		workRoot:  workRoot,
		logger:    logger,
	}
}

// ExtractDocument runs one document through the agent's pipeline synchronously.
// The payload is written to a scratch file owned by the pipeline, which removes
// it when the run finishes.
func (s *ExtractionService) ExtractDocument(ctx context.Context, req *mattinpb.ExtractDocumentRequest) (*mattinpb.ExtractDocumentResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(req.GetFilename()))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file extension %q", ext)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		s.logger.Warn("prepare upload dir failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "cannot store document")
	}
	uploadID := uuid.NewString()
	documentPath := filepath.Join(s.uploadDir, fmt.Sprintf("%s.%s", uploadID, ext))
	if err := os.WriteFile(documentPath, req.GetContent(), 0o600); err != nil {
		s.logger.Warn("write upload failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "cannot store document")
	}
	workDir := filepath.Join(s.workRoot, uploadID)

	run, err := s.processor.ProcessDocument(ctx, int(req.GetAgentId()), documentPath, workDir)
	if err != nil {
		var notFound *pipeline.AgentNotFoundError
		if errors.As(err, &notFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		s.logger.Warn("extraction failed", zap.Int32("agent_id", req.GetAgentId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "extraction failed")
	}

	resultJSON, err := json.Marshal(run.Final)
	if err != nil {
		s.logger.Warn("marshal result failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "extraction failed")
	}

	resp := &mattinpb.ExtractDocumentResponse{
		Status:     string(run.Status),
		ResultJson: string(resultJSON),
	}
	if run.JobID != uuid.Nil {
		resp.JobId = run.JobID.String()
	}
	return resp, nil
}

func (s *ExtractionService) GetJob(ctx context.Context, req *mattinpb.GetJobRequest) (*mattinpb.GetJobResponse, error) {
	jobID, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid job id")
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "job %s not found", req.GetId())
	}
	return &mattinpb.GetJobResponse{Job: toPBJob(job)}, nil
}

func (s *ExtractionService) ListJobs(ctx context.Context, req *mattinpb.ListJobsRequest) (*mattinpb.ListJobsResponse, error) {
	if req.GetAgentId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "agent_id is required")
	}
	from, err := parseDate(req.GetFromDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	to, err := parseDate(req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	jobs, err := s.jobs.ListByAgent(ctx, int(req.GetAgentId()), from, to)
	if err != nil {
		s.logger.Warn("list jobs failed", zap.Int32("agent_id", req.GetAgentId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "list jobs failed")
	}
	out := make([]*mattinpb.Job, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, toPBJob(job))
	}
	return &mattinpb.ListJobsResponse{Jobs: out}, nil
}

func (s *ExtractionService) ExportJobs(ctx context.Context, req *mattinpb.ExportJobsRequest) (*mattinpb.ExportJobsResponse, error) {
	if req.GetAgentId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "agent_id is required")
	}
	from, err := parseDate(req.GetFromDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	to, err := parseDate(req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	data, err := s.exporter.ExportJobsXLSX(ctx, int(req.GetAgentId()), from, to)
	if err != nil {
		s.logger.Warn("export failed", zap.Int32("agent_id", req.GetAgentId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "export failed")
	}
	filename := fmt.Sprintf("extractions-agent-%d-%s.xlsx", req.GetAgentId(), time.Now().UTC().Format("20060102"))
	return &mattinpb.ExportJobsResponse{Xlsx: data, Filename: filename}, nil
}

func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", v, err)
	}
	return &t, nil
}

func toPBJob(job *ent.ExtractionJob) *mattinpb.Job {
	pb := &mattinpb.Job{
		Id:           job.ID.String(),
		AgentId:      int32(job.AgentID),
		DocumentName: job.DocumentName,
		Status:       job.Status,
		Pages:        int32(job.Pages),
		HasPlainText: job.HasPlainText,
		Trace:        job.Trace,
		StartedAt:    job.StartedAt.Format(time.RFC3339Nano),
	}
	if len(job.Result) > 0 {
		pb.ResultJson = string(job.Result)
	}
	if job.ErrorMessage != nil {
		pb.ErrorMessage = *job.ErrorMessage
	}
	if job.FinishedAt != nil {
		pb.FinishedAt = job.FinishedAt.Format(time.RFC3339Nano)
	}
	return pb
}
