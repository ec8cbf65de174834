package repository

import (
	"context"
	"log/slog"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/gen/ent"
	entschemadef "github.com/mattin-ai/mattin/gen/ent/schemadefinition"
	entschemafield "github.com/mattin-ai/mattin/gen/ent/schemafield"
	"github.com/mattin-ai/mattin/internal/schema"
)

// CreateFieldParams is one field of a new schema definition.
type CreateFieldParams struct {
	Name           string
	FieldType      string
	Description    string
	NestedSchemaID *int
	ListItemType   string
}

type SchemaDefinitionRepository interface {
	CreateDefinition(ctx context.Context, name string, fields []CreateFieldParams) (*ent.SchemaDefinition, error)
	ListDefinitions(ctx context.Context) ([]*ent.SchemaDefinition, error)
	DeleteDefinition(ctx context.Context, id int) error

	// DefinitionByID implements schema.Registry.
	DefinitionByID(ctx context.Context, id int) (*schema.Definition, error)
}

type schemaDefinitionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSchemaDefinitionRepository(client *ent.Client, logger *slog.Logger) SchemaDefinitionRepository {
	return &schemaDefinitionRepository{client: client, logger: logger}
}

func (r *schemaDefinitionRepository) CreateDefinition(ctx context.Context, name string, fields []CreateFieldParams) (*ent.SchemaDefinition, error) {
	def, err := r.client.SchemaDefinition.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create schema definition", "name", name, "error", err)
		return nil, err
	}
	for i, f := range fields {
		create := r.client.SchemaField.Create().
			SetDefinitionID(def.ID).
			SetName(f.Name).
			SetFieldType(f.FieldType).
			SetDescription(f.Description).
			SetPosition(i)
		if f.NestedSchemaID != nil {
			create = create.SetNestedSchemaID(*f.NestedSchemaID)
		}
		if f.ListItemType != "" {
			create = create.SetListItemType(f.ListItemType)
		}
		if _, err := create.Save(ctx); err != nil {
			r.logger.Error("failed to create schema field", "definition_id", def.ID, "field", f.Name, "error", err)
			return nil, err
		}
	}
	return def, nil
}

func (r *schemaDefinitionRepository) ListDefinitions(ctx context.Context) ([]*ent.SchemaDefinition, error) {
	defs, err := r.client.SchemaDefinition.Query().Order(entschemadef.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list schema definitions", "error", err)
		return nil, err
	}
	return defs, nil
}

func (r *schemaDefinitionRepository) DeleteDefinition(ctx context.Context, id int) error {
	if _, err := r.client.SchemaField.Delete().
		Where(entschemafield.DefinitionID(id)).
		Exec(ctx); err != nil {
		return err
	}
	return r.client.SchemaDefinition.DeleteOneID(id).Exec(ctx)
}

// DefinitionByID loads one definition with its fields in declared order,
// as the value types the schema builder consumes.
func (r *schemaDefinitionRepository) DefinitionByID(ctx context.Context, id int) (*schema.Definition, error) {
	def, err := r.client.SchemaDefinition.Query().
		Where(entschemadef.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &schema.NotFoundError{DefinitionID: id}
		}
		return nil, err
	}
	rows, err := r.client.SchemaField.Query().
		Where(entschemafield.DefinitionID(id)).
		Order(entschemafield.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	fields := make([]schema.FieldSpec, 0, len(rows))
	for _, row := range rows {
		spec := schema.FieldSpec{
			Name:           row.Name,
			Type:           constants.FieldType(row.FieldType),
			Description:    row.Description,
			NestedSchemaID: row.NestedSchemaID,
		}
		if row.ListItemType != "" {
			item := constants.FieldType(row.ListItemType)
			spec.ListItemType = &item
		}
		fields = append(fields, spec)
	}
	return &schema.Definition{ID: def.ID, Name: def.Name, Fields: fields}, nil
}
