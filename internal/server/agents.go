package server

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/gen/ent"
	mattinpb "github.com/mattin-ai/mattin/gen/proto/mattin/v1"
	"github.com/mattin-ai/mattin/internal/common"
	"github.com/mattin-ai/mattin/internal/repository"
)

type AgentsService struct {
	mattinpb.UnimplementedAgentsServiceServer
	agents  repository.AgentRepository
	schemas repository.SchemaDefinitionRepository
	tools   repository.ToolServerRepository
	silos   repository.SiloRepository
	logger  *zap.Logger
}

func NewAgentsService(
	agents repository.AgentRepository,
	schemas repository.SchemaDefinitionRepository,
	tools repository.ToolServerRepository,
	silos repository.SiloRepository,
	logger *zap.Logger,
) *AgentsService {
	return &AgentsService{
		agents:  agents,
		schemas: schemas,
		tools:   tools,
		silos:   silos,
		logger:  logger,
	}
}

func (s *AgentsService) CreateAgent(ctx context.Context, req *mattinpb.CreateAgentRequest) (*mattinpb.CreateAgentResponse, error) {
	v := common.NewValidator().
		Field("name", req.GetName(), common.Required).
		Field("provider", req.GetProvider(), common.Required, common.ProviderName(constants.Providers())).
		Field("text_model", req.GetTextModel(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	provider, _ := constants.ParseProvider(req.GetProvider())

	params := repository.CreateAgentParams{
		Name:               req.GetName(),
		Description:        req.GetDescription(),
		Provider:           string(provider),
		TextModel:          req.GetTextModel(),
		VisionModel:        req.GetVisionModel(),
		VisionInstruction:  req.GetVisionInstruction(),
		TextInstruction:    req.GetTextInstruction(),
		SkipVisionWhenText: req.GetSkipVisionWhenText(),
		Temperature:        req.GetTemperature(),
	}
	if req.OutputSchemaId != nil {
		id := int(req.GetOutputSchemaId())
		params.OutputSchemaID = &id
	}

	a, err := s.agents.CreateAgent(ctx, params)
	if err != nil {
		s.logger.Warn("create agent failed", zap.String("name", req.GetName()), zap.Error(err))
		return nil, status.Error(codes.Internal, "create agent failed")
	}
	return &mattinpb.CreateAgentResponse{Agent: toPBAgent(a)}, nil
}

func (s *AgentsService) GetAgent(ctx context.Context, req *mattinpb.GetAgentRequest) (*mattinpb.GetAgentResponse, error) {
	a, err := s.agents.GetByID(ctx, int(req.GetId()))
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "agent %d not found", req.GetId())
	}
	return &mattinpb.GetAgentResponse{Agent: toPBAgent(a)}, nil
}

func (s *AgentsService) ListAgents(ctx context.Context, _ *mattinpb.ListAgentsRequest) (*mattinpb.ListAgentsResponse, error) {
	agents, err := s.agents.ListAgents(ctx)
	if err != nil {
		s.logger.Warn("list agents failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "list agents failed")
	}
	out := make([]*mattinpb.Agent, 0, len(agents))
	for _, a := range agents {
		out = append(out, toPBAgent(a))
	}
	return &mattinpb.ListAgentsResponse{Agents: out}, nil
}

func (s *AgentsService) DeleteAgent(ctx context.Context, req *mattinpb.DeleteAgentRequest) (*mattinpb.DeleteAgentResponse, error) {
	if err := s.agents.DeleteAgent(ctx, int(req.GetId())); err != nil {
		s.logger.Warn("delete agent failed", zap.Int32("id", req.GetId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "delete agent failed")
	}
	return &mattinpb.DeleteAgentResponse{}, nil
}

func (s *AgentsService) CreateSchemaDefinition(ctx context.Context, req *mattinpb.CreateSchemaDefinitionRequest) (*mattinpb.CreateSchemaDefinitionResponse, error) {
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	if len(req.GetFields()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one field is required")
	}

	fields := make([]repository.CreateFieldParams, 0, len(req.GetFields()))
	for _, f := range req.GetFields() {
		ft, ok := constants.ParseFieldType(f.GetFieldType())
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "field %q: unknown type %q", f.GetName(), f.GetFieldType())
		}
		if ft == constants.FieldTypeList && f.GetListItemType() != "" {
			if _, ok := constants.ParseFieldType(f.GetListItemType()); !ok {
				return nil, status.Errorf(codes.InvalidArgument, "field %q: unknown list item type %q", f.GetName(), f.GetListItemType())
			}
		}
		params := repository.CreateFieldParams{
			Name:         f.GetName(),
			FieldType:    string(ft),
			Description:  f.GetDescription(),
			ListItemType: f.GetListItemType(),
		}
		if f.NestedSchemaId != nil {
			id := int(f.GetNestedSchemaId())
			params.NestedSchemaID = &id
		}
		fields = append(fields, params)
	}

	def, err := s.schemas.CreateDefinition(ctx, req.GetName(), fields)
	if err != nil {
		s.logger.Warn("create schema failed", zap.String("name", req.GetName()), zap.Error(err))
		return nil, status.Error(codes.Internal, "create schema failed")
	}
	return &mattinpb.CreateSchemaDefinitionResponse{Id: int32(def.ID)}, nil
}

func (s *AgentsService) CreateToolServer(ctx context.Context, req *mattinpb.CreateToolServerRequest) (*mattinpb.CreateToolServerResponse, error) {
	v := common.NewValidator().
		Field("name", req.GetName(), common.Required).
		Field("url", req.GetUrl(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	ts, err := s.tools.CreateToolServer(ctx, req.GetName(), req.GetUrl(), req.GetTransport())
	if err != nil {
		s.logger.Warn("create tool server failed", zap.String("name", req.GetName()), zap.Error(err))
		return nil, status.Error(codes.Internal, "create tool server failed")
	}
	return &mattinpb.CreateToolServerResponse{
		ToolServer: &mattinpb.ToolServer{
			Id:        int32(ts.ID),
			Name:      ts.Name,
			Url:       ts.URL,
			Transport: ts.Transport,
		},
	}, nil
}

func (s *AgentsService) ListToolServers(ctx context.Context, _ *mattinpb.ListToolServersRequest) (*mattinpb.ListToolServersResponse, error) {
	servers, err := s.tools.ListToolServers(ctx)
	if err != nil {
		s.logger.Warn("list tool servers failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "list tool servers failed")
	}
	out := make([]*mattinpb.ToolServer, 0, len(servers))
	for _, ts := range servers {
		out = append(out, &mattinpb.ToolServer{
			Id:        int32(ts.ID),
			Name:      ts.Name,
			Url:       ts.URL,
			Transport: ts.Transport,
		})
	}
	return &mattinpb.ListToolServersResponse{ToolServers: out}, nil
}

func (s *AgentsService) CreateSilo(ctx context.Context, req *mattinpb.CreateSiloRequest) (*mattinpb.CreateSiloResponse, error) {
	v := common.NewValidator().
		Field("name", req.GetName(), common.Required).
		Field("collection", req.GetCollection(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	silo, err := s.silos.CreateSilo(ctx, req.GetName(), req.GetCollection(), req.GetEmbeddingModel())
	if err != nil {
		s.logger.Warn("create silo failed", zap.String("name", req.GetName()), zap.Error(err))
		return nil, status.Error(codes.Internal, "create silo failed")
	}
	return &mattinpb.CreateSiloResponse{
		Silo: &mattinpb.Silo{
			Id:             int32(silo.ID),
			Name:           silo.Name,
			Collection:     silo.Collection,
			EmbeddingModel: silo.EmbeddingModel,
		},
	}, nil
}

func (s *AgentsService) ListSilos(ctx context.Context, _ *mattinpb.ListSilosRequest) (*mattinpb.ListSilosResponse, error) {
	silos, err := s.silos.ListSilos(ctx)
	if err != nil {
		s.logger.Warn("list silos failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "list silos failed")
	}
	out := make([]*mattinpb.Silo, 0, len(silos))
	for _, silo := range silos {
		out = append(out, &mattinpb.Silo{
			Id:             int32(silo.ID),
			Name:           silo.Name,
			Collection:     silo.Collection,
			EmbeddingModel: silo.EmbeddingModel,
		})
	}
	return &mattinpb.ListSilosResponse{Silos: out}, nil
}

func toPBAgent(a *ent.Agent) *mattinpb.Agent {
	pb := &mattinpb.Agent{
		Id:                 int32(a.ID),
		Name:               a.Name,
		Description:        a.Description,
		Provider:           a.Provider,
		TextModel:          a.TextModel,
		VisionModel:        a.VisionModel,
		VisionInstruction:  a.VisionInstruction,
		TextInstruction:    a.TextInstruction,
		SkipVisionWhenText: a.SkipVisionWhenText,
		Temperature:        a.Temperature,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:          a.UpdatedAt.Format(time.RFC3339Nano),
	}
	if a.OutputSchemaID != nil {
		id := int32(*a.OutputSchemaID)
		pb.OutputSchemaId = &id
	}
	return pb
}
