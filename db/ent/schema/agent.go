package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/db/ent/schema/utils"
)

type Agent struct{ ent.Schema }

func (Agent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "agents"},
	}
}

func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty(),
		field.String("description").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("provider").NotEmpty().
			Validate(utils.EnumValidator(constants.Providers()...)),
		field.String("text_model").NotEmpty(),
		field.String("vision_model").Optional(),
		field.String("vision_instruction").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("text_instruction").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("output_schema_id").Optional().Nillable(),
		field.Bool("skip_vision_when_text").Default(false),
		field.Float32("temperature").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("output_schema", SchemaDefinition.Type).
			Field("output_schema_id").
			Unique(),
		edge.To("jobs", ExtractionJob.Type),
		edge.To("silos", Silo.Type),
		edge.To("tool_servers", ToolServer.Type),
	}
}
