package repository

import (
	"context"
	"log/slog"

	"github.com/mattin-ai/mattin/gen/ent"
	entsilo "github.com/mattin-ai/mattin/gen/ent/silo"
)

type SiloRepository interface {
	CreateSilo(ctx context.Context, name, collection, embeddingModel string) (*ent.Silo, error)
	ListSilos(ctx context.Context) ([]*ent.Silo, error)
	DeleteSilo(ctx context.Context, id int) error
}

type siloRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSiloRepository(client *ent.Client, logger *slog.Logger) SiloRepository {
	return &siloRepository{client: client, logger: logger}
}

func (r *siloRepository) CreateSilo(ctx context.Context, name, collection, embeddingModel string) (*ent.Silo, error) {
	s, err := r.client.Silo.Create().
		SetName(name).
		SetCollection(collection).
		SetEmbeddingModel(embeddingModel).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create silo", "name", name, "collection", collection, "error", err)
		return nil, err
	}
	return s, nil
}

func (r *siloRepository) ListSilos(ctx context.Context) ([]*ent.Silo, error) {
	silos, err := r.client.Silo.Query().Order(entsilo.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list silos", "error", err)
		return nil, err
	}
	return silos, nil
}

func (r *siloRepository) DeleteSilo(ctx context.Context, id int) error {
	return r.client.Silo.DeleteOneID(id).Exec(ctx)
}
