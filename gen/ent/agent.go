// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mattin-ai/mattin/gen/ent/agent"
	"github.com/mattin-ai/mattin/gen/ent/schemadefinition"
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// TextModel holds the value of the "text_model" field.
	TextModel string `json:"text_model,omitempty"`
	// VisionModel holds the value of the "vision_model" field.
	VisionModel string `json:"vision_model,omitempty"`
	// VisionInstruction holds the value of the "vision_instruction" field.
	VisionInstruction string `json:"vision_instruction,omitempty"`
	// TextInstruction holds the value of the "text_instruction" field.
	TextInstruction string `json:"text_instruction,omitempty"`
	// OutputSchemaID holds the value of the "output_schema_id" field.
	OutputSchemaID *int `json:"output_schema_id,omitempty"`
	// SkipVisionWhenText holds the value of the "skip_vision_when_text" field.
	SkipVisionWhenText bool `json:"skip_vision_when_text,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature float32 `json:"temperature,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentQuery when eager-loading is set.
	Edges        AgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentEdges holds the relations/edges for other nodes in the graph.
type AgentEdges struct {
	// OutputSchema holds the value of the output_schema edge.
	OutputSchema *SchemaDefinition `json:"output_schema,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractionJob `json:"jobs,omitempty"`
	// Silos holds the value of the silos edge.
	Silos []*Silo `json:"silos,omitempty"`
	// ToolServers holds the value of the tool_servers edge.
	ToolServers []*ToolServer `json:"tool_servers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// OutputSchemaOrErr returns the OutputSchema value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentEdges) OutputSchemaOrErr() (*SchemaDefinition, error) {
	if e.OutputSchema != nil {
		return e.OutputSchema, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: schemadefinition.Label}
	}
	return nil, &NotLoadedError{edge: "output_schema"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) JobsOrErr() ([]*ExtractionJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// SilosOrErr returns the Silos value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) SilosOrErr() ([]*Silo, error) {
	if e.loadedTypes[2] {
		return e.Silos, nil
	}
	return nil, &NotLoadedError{edge: "silos"}
}

// ToolServersOrErr returns the ToolServers value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ToolServersOrErr() ([]*ToolServer, error) {
	if e.loadedTypes[3] {
		return e.ToolServers, nil
	}
	return nil, &NotLoadedError{edge: "tool_servers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldSkipVisionWhenText:
			values[i] = new(sql.NullBool)
		case agent.FieldTemperature:
			values[i] = new(sql.NullFloat64)
		case agent.FieldID, agent.FieldOutputSchemaID:
			values[i] = new(sql.NullInt64)
		case agent.FieldName, agent.FieldDescription, agent.FieldProvider, agent.FieldTextModel, agent.FieldVisionModel, agent.FieldVisionInstruction, agent.FieldTextInstruction:
			values[i] = new(sql.NullString)
		case agent.FieldCreatedAt, agent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (_m *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case agent.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case agent.FieldTextModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_model", values[i])
			} else if value.Valid {
				_m.TextModel = value.String
			}
		case agent.FieldVisionModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vision_model", values[i])
			} else if value.Valid {
				_m.VisionModel = value.String
			}
		case agent.FieldVisionInstruction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vision_instruction", values[i])
			} else if value.Valid {
				_m.VisionInstruction = value.String
			}
		case agent.FieldTextInstruction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_instruction", values[i])
			} else if value.Valid {
				_m.TextInstruction = value.String
			}
		case agent.FieldOutputSchemaID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_schema_id", values[i])
			} else if value.Valid {
				_m.OutputSchemaID = new(int)
				*_m.OutputSchemaID = int(value.Int64)
			}
		case agent.FieldSkipVisionWhenText:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skip_vision_when_text", values[i])
			} else if value.Valid {
				_m.SkipVisionWhenText = value.Bool
			}
		case agent.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = float32(value.Float64)
			}
		case agent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (_m *Agent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOutputSchema queries the "output_schema" edge of the Agent entity.
func (_m *Agent) QueryOutputSchema() *SchemaDefinitionQuery {
	return NewAgentClient(_m.config).QueryOutputSchema(_m)
}

// QueryJobs queries the "jobs" edge of the Agent entity.
func (_m *Agent) QueryJobs() *ExtractionJobQuery {
	return NewAgentClient(_m.config).QueryJobs(_m)
}

// QuerySilos queries the "silos" edge of the Agent entity.
func (_m *Agent) QuerySilos() *SiloQuery {
	return NewAgentClient(_m.config).QuerySilos(_m)
}

// QueryToolServers queries the "tool_servers" edge of the Agent entity.
func (_m *Agent) QueryToolServers() *ToolServerQuery {
	return NewAgentClient(_m.config).QueryToolServers(_m)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Agent) Unwrap() *Agent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("text_model=")
	builder.WriteString(_m.TextModel)
	builder.WriteString(", ")
	builder.WriteString("vision_model=")
	builder.WriteString(_m.VisionModel)
	builder.WriteString(", ")
	builder.WriteString("vision_instruction=")
	builder.WriteString(_m.VisionInstruction)
	builder.WriteString(", ")
	builder.WriteString("text_instruction=")
	builder.WriteString(_m.TextInstruction)
	builder.WriteString(", ")
	if v := _m.OutputSchemaID; v != nil {
		builder.WriteString("output_schema_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("skip_vision_when_text=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipVisionWhenText))
	builder.WriteString(", ")
	builder.WriteString("temperature=")
	builder.WriteString(fmt.Sprintf("%v", _m.Temperature))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
