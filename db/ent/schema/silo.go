package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Silo is a retrieval collection reference (pgvector collection name plus
// embedding model). Retrieval itself lives outside this service; agents only
// hold the binding.
type Silo struct{ ent.Schema }

func (Silo) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "silos"},
	}
}

func (Silo) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty(),
		field.String("collection").NotEmpty().Unique(),
		field.String("embedding_model").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Silo) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agents", Agent.Type).Ref("silos"),
	}
}
