package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

type SchemaDefinition struct{ ent.Schema }

func (SchemaDefinition) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "schema_definitions"},
	}
}

func (SchemaDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SchemaDefinition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("fields", SchemaField.Type),
		edge.From("agents", Agent.Type).Ref("output_schema"),
	}
}
