package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/db/ent/schema/utils"
)

type SchemaField struct{ ent.Schema }

func (SchemaField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "schema_fields"},
	}
}

func (SchemaField) Fields() []ent.Field {
	return []ent.Field{
		// explicit FKs
		field.Int("definition_id"),
		field.String("name").NotEmpty(),
		field.String("field_type").NotEmpty().
			Validate(utils.EnumValidator(constants.FieldTypes()...)),
		field.String("description").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("position").Default(0),
		field.Int("nested_schema_id").Optional().Nillable(),
		field.String("list_item_type").Optional().
			Validate(utils.EnumValidator(constants.FieldTypes()...)),
	}
}

func (SchemaField) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("definition", SchemaDefinition.Type).
			Ref("fields").
			Field("definition_id").
			Unique().
			Required(),
		edge.To("nested_schema", SchemaDefinition.Type).
			Field("nested_schema_id").
			Unique(),
	}
}

func (SchemaField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("definition_id", "position"),
	}
}
