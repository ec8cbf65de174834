package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/mattin-ai/mattin/db/ent/schema/utils"
)

// ToolServer is a registered MCP server an agent can call tools on.
type ToolServer struct{ ent.Schema }

func (ToolServer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tool_servers"},
	}
}

func (ToolServer) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty(),
		field.String("transport").NotEmpty().
			Validate(utils.EnumValidator("sse", "streamable-http")),
		field.String("url").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ToolServer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agents", Agent.Type).Ref("tool_servers"),
	}
}
