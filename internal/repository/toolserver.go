package repository

import (
	"context"
	"log/slog"

	"github.com/mattin-ai/mattin/gen/ent"
	entagent "github.com/mattin-ai/mattin/gen/ent/agent"
	enttool "github.com/mattin-ai/mattin/gen/ent/toolserver"
)

type ToolServerRepository interface {
	CreateToolServer(ctx context.Context, name, url, transport string) (*ent.ToolServer, error)
	ListToolServers(ctx context.Context) ([]*ent.ToolServer, error)
	ToolServersForAgent(ctx context.Context, agentID int) ([]*ent.ToolServer, error)
	DeleteToolServer(ctx context.Context, id int) error
}

type toolServerRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewToolServerRepository(client *ent.Client, logger *slog.Logger) ToolServerRepository {
	return &toolServerRepository{client: client, logger: logger}
}

func (r *toolServerRepository) CreateToolServer(ctx context.Context, name, url, transport string) (*ent.ToolServer, error) {
	ts, err := r.client.ToolServer.Create().
		SetName(name).
		SetURL(url).
		SetTransport(transport).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create tool server", "name", name, "url", url, "error", err)
		return nil, err
	}
	return ts, nil
}

func (r *toolServerRepository) ListToolServers(ctx context.Context) ([]*ent.ToolServer, error) {
	servers, err := r.client.ToolServer.Query().Order(enttool.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list tool servers", "error", err)
		return nil, err
	}
	return servers, nil
}

func (r *toolServerRepository) ToolServersForAgent(ctx context.Context, agentID int) ([]*ent.ToolServer, error) {
	servers, err := r.client.Agent.Query().
		Where(entagent.ID(agentID)).
		QueryToolServers().
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list tool servers for agent", "agent_id", agentID, "error", err)
		return nil, err
	}
	return servers, nil
}

func (r *toolServerRepository) DeleteToolServer(ctx context.Context, id int) error {
	return r.client.ToolServer.DeleteOneID(id).Exec(ctx)
}
