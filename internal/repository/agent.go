package repository

import (
	"context"
	"log/slog"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/gen/ent"
	entagent "github.com/mattin-ai/mattin/gen/ent/agent"
	"github.com/mattin-ai/mattin/internal/pipeline"
)

// CreateAgentParams carries the writable fields of an agent.
type CreateAgentParams struct {
	Name               string
	Description        string
	Provider           string
	TextModel          string
	VisionModel        string
	VisionInstruction  string
	TextInstruction    string
	OutputSchemaID     *int
	SkipVisionWhenText bool
	Temperature        float32
}

type AgentRepository interface {
	GetByID(ctx context.Context, id int) (*ent.Agent, error)
	CreateAgent(ctx context.Context, params CreateAgentParams) (*ent.Agent, error)
	ListAgents(ctx context.Context) ([]*ent.Agent, error)
	DeleteAgent(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)

	// AgentConfig implements pipeline.AgentStore.
	AgentConfig(ctx context.Context, id int) (*pipeline.AgentConfig, error)
}

type agentRepository struct {
	client  *ent.Client
	schemas SchemaDefinitionRepository
	logger  *slog.Logger
}

func NewAgentRepository(client *ent.Client, schemas SchemaDefinitionRepository, logger *slog.Logger) AgentRepository {
	return &agentRepository{
		client:  client,
		schemas: schemas,
		logger:  logger,
	}
}

func (r *agentRepository) GetByID(ctx context.Context, id int) (*ent.Agent, error) {
	return r.client.Agent.
		Query().
		Where(entagent.ID(id)).
		Only(ctx)
}

func (r *agentRepository) CreateAgent(ctx context.Context, params CreateAgentParams) (*ent.Agent, error) {
	create := r.client.Agent.Create().
		SetName(params.Name).
		SetDescription(params.Description).
		SetProvider(params.Provider).
		SetTextModel(params.TextModel).
		SetVisionModel(params.VisionModel).
		SetVisionInstruction(params.VisionInstruction).
		SetTextInstruction(params.TextInstruction).
		SetSkipVisionWhenText(params.SkipVisionWhenText).
		SetTemperature(params.Temperature)
	if params.OutputSchemaID != nil {
		create = create.SetOutputSchemaID(*params.OutputSchemaID)
	}
	a, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create agent", "name", params.Name, "provider", params.Provider, "error", err)
		return nil, err
	}
	return a, nil
}

func (r *agentRepository) ListAgents(ctx context.Context) ([]*ent.Agent, error) {
	agents, err := r.client.Agent.Query().Order(entagent.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list agents", "error", err)
		return nil, err
	}
	return agents, nil
}

func (r *agentRepository) DeleteAgent(ctx context.Context, id int) error {
	return r.client.Agent.DeleteOneID(id).Exec(ctx)
}

func (r *agentRepository) Exists(ctx context.Context, id int) (bool, error) {
	return r.client.Agent.Query().Where(entagent.ID(id)).Exist(ctx)
}

// AgentConfig resolves an agent row into the read-only value object the
// pipeline consumes, including its output schema definition when configured.
func (r *agentRepository) AgentConfig(ctx context.Context, id int) (*pipeline.AgentConfig, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &pipeline.AgentNotFoundError{AgentID: id}
		}
		return nil, err
	}

	provider, ok := constants.ParseProvider(a.Provider)
	if !ok {
		r.logger.Error("agent has unknown provider", "agent_id", id, "provider", a.Provider)
		provider = constants.Provider(a.Provider) // let LoadModels reject it
	}

	cfg := &pipeline.AgentConfig{
		ID:                 a.ID,
		Name:               a.Name,
		Provider:           provider,
		TextModel:          a.TextModel,
		VisionModel:        a.VisionModel,
		VisionInstruction:  a.VisionInstruction,
		TextInstruction:    a.TextInstruction,
		SkipVisionWhenText: a.SkipVisionWhenText,
		Temperature:        a.Temperature,
	}
	if a.OutputSchemaID != nil {
		def, err := r.schemas.DefinitionByID(ctx, *a.OutputSchemaID)
		if err != nil {
			// A broken schema reference degrades to unstructured output,
			// matching the pipeline's schema-build fallback.
			r.logger.Warn("agent output schema unresolvable", "agent_id", id, "schema_id", *a.OutputSchemaID, "error", err)
		} else {
			cfg.OutputSchema = def
		}
	}
	return cfg, nil
}
