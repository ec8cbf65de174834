// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldTextModel holds the string denoting the text_model field in the database.
	FieldTextModel = "text_model"
	// FieldVisionModel holds the string denoting the vision_model field in the database.
	FieldVisionModel = "vision_model"
	// FieldVisionInstruction holds the string denoting the vision_instruction field in the database.
	FieldVisionInstruction = "vision_instruction"
	// FieldTextInstruction holds the string denoting the text_instruction field in the database.
	FieldTextInstruction = "text_instruction"
	// FieldOutputSchemaID holds the string denoting the output_schema_id field in the database.
	FieldOutputSchemaID = "output_schema_id"
	// FieldSkipVisionWhenText holds the string denoting the skip_vision_when_text field in the database.
	FieldSkipVisionWhenText = "skip_vision_when_text"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeOutputSchema holds the string denoting the output_schema edge name in mutations.
	EdgeOutputSchema = "output_schema"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// EdgeSilos holds the string denoting the silos edge name in mutations.
	EdgeSilos = "silos"
	// EdgeToolServers holds the string denoting the tool_servers edge name in mutations.
	EdgeToolServers = "tool_servers"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// OutputSchemaTable is the table that holds the output_schema relation/edge.
	OutputSchemaTable = "agents"
	// OutputSchemaInverseTable is the table name for the SchemaDefinition entity.
	// It exists in this package in order to avoid circular dependency with the "schemadefinition" package.
	OutputSchemaInverseTable = "schema_definitions"
	// OutputSchemaColumn is the table column denoting the output_schema relation/edge.
	OutputSchemaColumn = "output_schema_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extraction_jobs"
	// JobsInverseTable is the table name for the ExtractionJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractionjob" package.
	JobsInverseTable = "extraction_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "agent_id"
	// SilosTable is the table that holds the silos relation/edge. The primary key declared below.
	SilosTable = "agent_silos"
	// SilosInverseTable is the table name for the Silo entity.
	// It exists in this package in order to avoid circular dependency with the "silo" package.
	SilosInverseTable = "silos"
	// ToolServersTable is the table that holds the tool_servers relation/edge. The primary key declared below.
	ToolServersTable = "agent_tool_servers"
	// ToolServersInverseTable is the table name for the ToolServer entity.
	// It exists in this package in order to avoid circular dependency with the "toolserver" package.
	ToolServersInverseTable = "tool_servers"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldProvider,
	FieldTextModel,
	FieldVisionModel,
	FieldVisionInstruction,
	FieldTextInstruction,
	FieldOutputSchemaID,
	FieldSkipVisionWhenText,
	FieldTemperature,
	FieldCreatedAt,
	FieldUpdatedAt,
}

var (
	// SilosPrimaryKey and SilosColumn2 are the table columns denoting the
	// primary key for the silos relation (M2M).
	SilosPrimaryKey = []string{"agent_id", "silo_id"}
	// ToolServersPrimaryKey and ToolServersColumn2 are the table columns denoting the
	// primary key for the tool_servers relation (M2M).
	ToolServersPrimaryKey = []string{"agent_id", "tool_server_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	ProviderValidator func(string) error
	// TextModelValidator is a validator for the "text_model" field. It is called by the builders before save.
	TextModelValidator func(string) error
	// DefaultSkipVisionWhenText holds the default value on creation for the "skip_vision_when_text" field.
	DefaultSkipVisionWhenText bool
	// DefaultTemperature holds the default value on creation for the "temperature" field.
	DefaultTemperature float32
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByTextModel orders the results by the text_model field.
func ByTextModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextModel, opts...).ToFunc()
}

// ByVisionModel orders the results by the vision_model field.
func ByVisionModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisionModel, opts...).ToFunc()
}

// ByVisionInstruction orders the results by the vision_instruction field.
func ByVisionInstruction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisionInstruction, opts...).ToFunc()
}

// ByTextInstruction orders the results by the text_instruction field.
func ByTextInstruction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextInstruction, opts...).ToFunc()
}

// ByOutputSchemaID orders the results by the output_schema_id field.
func ByOutputSchemaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputSchemaID, opts...).ToFunc()
}

// BySkipVisionWhenText orders the results by the skip_vision_when_text field.
func BySkipVisionWhenText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipVisionWhenText, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOutputSchemaField orders the results by output_schema field.
func ByOutputSchemaField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutputSchemaStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySilosCount orders the results by silos count.
func BySilosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSilosStep(), opts...)
	}
}

// BySilos orders the results by silos terms.
func BySilos(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSilosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByToolServersCount orders the results by tool_servers count.
func ByToolServersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newToolServersStep(), opts...)
	}
}

// ByToolServers orders the results by tool_servers terms.
func ByToolServers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToolServersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newOutputSchemaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutputSchemaInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, OutputSchemaTable, OutputSchemaColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
func newSilosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SilosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, SilosTable, SilosPrimaryKey...),
	)
}
func newToolServersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolServersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, ToolServersTable, ToolServersPrimaryKey...),
	)
}
