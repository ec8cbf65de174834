package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/gen/ent"
	entjob "github.com/mattin-ai/mattin/gen/ent/extractionjob"
	"github.com/mattin-ai/mattin/internal/pipeline"
)

type ExtractionJobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ExtractionJob, error)
	ListByAgent(ctx context.Context, agentID int, from, to *time.Time) ([]*ent.ExtractionJob, error)

	// Start and Finish implement pipeline.JobRecorder.
	Start(ctx context.Context, agentID int, documentName string) (uuid.UUID, error)
	Finish(ctx context.Context, jobID uuid.UUID, outcome pipeline.JobOutcome) error
}

type extractionJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractionJobRepository(client *ent.Client, logger *slog.Logger) ExtractionJobRepository {
	return &extractionJobRepository{client: client, logger: logger}
}

func (r *extractionJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.ExtractionJob, error) {
	return r.client.ExtractionJob.Query().Where(entjob.ID(id)).Only(ctx)
}

func (r *extractionJobRepository) ListByAgent(ctx context.Context, agentID int, from, to *time.Time) ([]*ent.ExtractionJob, error) {
	q := r.client.ExtractionJob.Query().
		Where(entjob.AgentID(agentID)).
		Order(entjob.ByStartedAt())
	if from != nil {
		q = q.Where(entjob.StartedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entjob.StartedAtLTE(*to))
	}
	jobs, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list extraction jobs", "agent_id", agentID, "error", err)
		return nil, err
	}
	return jobs, nil
}

func (r *extractionJobRepository) Start(ctx context.Context, agentID int, documentName string) (uuid.UUID, error) {
	job, err := r.client.ExtractionJob.Create().
		SetAgentID(agentID).
		SetDocumentName(documentName).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return job.ID, nil
}

func (r *extractionJobRepository) Finish(ctx context.Context, jobID uuid.UUID, outcome pipeline.JobOutcome) error {
	update := r.client.ExtractionJob.UpdateOneID(jobID).
		SetStatus(string(outcome.Status)).
		SetPages(outcome.Pages).
		SetHasPlainText(outcome.HasPlainText).
		SetTrace(outcome.Trace).
		SetFinishedAt(time.Now())
	if outcome.ErrorMessage != "" {
		update = update.SetErrorMessage(outcome.ErrorMessage)
	}
	if outcome.Result != nil {
		raw, err := json.Marshal(outcome.Result)
		if err != nil {
			r.logger.Warn("failed to marshal job result", "job_id", jobID, "error", err)
		} else {
			update = update.SetResult(raw)
		}
	}
	return update.Exec(ctx)
}
