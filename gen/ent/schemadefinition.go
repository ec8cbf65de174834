// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mattin-ai/mattin/gen/ent/schemadefinition"
)

// SchemaDefinition is the model entity for the SchemaDefinition schema.
type SchemaDefinition struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SchemaDefinitionQuery when eager-loading is set.
	Edges        SchemaDefinitionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SchemaDefinitionEdges holds the relations/edges for other nodes in the graph.
type SchemaDefinitionEdges struct {
	// Fields holds the value of the fields edge.
	Fields []*SchemaField `json:"fields,omitempty"`
	// Agents holds the value of the agents edge.
	Agents []*Agent `json:"agents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FieldsOrErr returns the Fields value or an error if the edge
// was not loaded in eager-loading.
func (e SchemaDefinitionEdges) FieldsOrErr() ([]*SchemaField, error) {
	if e.loadedTypes[0] {
		return e.Fields, nil
	}
	return nil, &NotLoadedError{edge: "fields"}
}

// AgentsOrErr returns the Agents value or an error if the edge
// was not loaded in eager-loading.
func (e SchemaDefinitionEdges) AgentsOrErr() ([]*Agent, error) {
	if e.loadedTypes[1] {
		return e.Agents, nil
	}
	return nil, &NotLoadedError{edge: "agents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SchemaDefinition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schemadefinition.FieldID:
			values[i] = new(sql.NullInt64)
		case schemadefinition.FieldName:
			values[i] = new(sql.NullString)
		case schemadefinition.FieldCreatedAt, schemadefinition.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SchemaDefinition fields.
func (_m *SchemaDefinition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schemadefinition.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case schemadefinition.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case schemadefinition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case schemadefinition.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SchemaDefinition.
// This includes values selected through modifiers, order, etc.
func (_m *SchemaDefinition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFields queries the "fields" edge of the SchemaDefinition entity.
func (_m *SchemaDefinition) QueryFields() *SchemaFieldQuery {
	return NewSchemaDefinitionClient(_m.config).QueryFields(_m)
}

// QueryAgents queries the "agents" edge of the SchemaDefinition entity.
func (_m *SchemaDefinition) QueryAgents() *AgentQuery {
	return NewSchemaDefinitionClient(_m.config).QueryAgents(_m)
}

// Update returns a builder for updating this SchemaDefinition.
// Note that you need to call SchemaDefinition.Unwrap() before calling this method if this SchemaDefinition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SchemaDefinition) Update() *SchemaDefinitionUpdateOne {
	return NewSchemaDefinitionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SchemaDefinition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SchemaDefinition) Unwrap() *SchemaDefinition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SchemaDefinition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SchemaDefinition) String() string {
	var builder strings.Builder
	builder.WriteString("SchemaDefinition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SchemaDefinitions is a parsable slice of SchemaDefinition.
type SchemaDefinitions []*SchemaDefinition
