// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mattin-ai/mattin/gen/ent/schemadefinition"
	"github.com/mattin-ai/mattin/gen/ent/schemafield"
)

// SchemaField is the model entity for the SchemaField schema.
type SchemaField struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DefinitionID holds the value of the "definition_id" field.
	DefinitionID int `json:"definition_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// FieldType holds the value of the "field_type" field.
	FieldType string `json:"field_type,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// NestedSchemaID holds the value of the "nested_schema_id" field.
	NestedSchemaID *int `json:"nested_schema_id,omitempty"`
	// ListItemType holds the value of the "list_item_type" field.
	ListItemType string `json:"list_item_type,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SchemaFieldQuery when eager-loading is set.
	Edges        SchemaFieldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SchemaFieldEdges holds the relations/edges for other nodes in the graph.
type SchemaFieldEdges struct {
	// Definition holds the value of the definition edge.
	Definition *SchemaDefinition `json:"definition,omitempty"`
	// NestedSchema holds the value of the nested_schema edge.
	NestedSchema *SchemaDefinition `json:"nested_schema,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DefinitionOrErr returns the Definition value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SchemaFieldEdges) DefinitionOrErr() (*SchemaDefinition, error) {
	if e.Definition != nil {
		return e.Definition, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: schemadefinition.Label}
	}
	return nil, &NotLoadedError{edge: "definition"}
}

// NestedSchemaOrErr returns the NestedSchema value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SchemaFieldEdges) NestedSchemaOrErr() (*SchemaDefinition, error) {
	if e.NestedSchema != nil {
		return e.NestedSchema, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: schemadefinition.Label}
	}
	return nil, &NotLoadedError{edge: "nested_schema"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SchemaField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schemafield.FieldID, schemafield.FieldDefinitionID, schemafield.FieldPosition, schemafield.FieldNestedSchemaID:
			values[i] = new(sql.NullInt64)
		case schemafield.FieldName, schemafield.FieldFieldType, schemafield.FieldDescription, schemafield.FieldListItemType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SchemaField fields.
func (_m *SchemaField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schemafield.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case schemafield.FieldDefinitionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field definition_id", values[i])
			} else if value.Valid {
				_m.DefinitionID = int(value.Int64)
			}
		case schemafield.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case schemafield.FieldFieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_type", values[i])
			} else if value.Valid {
				_m.FieldType = value.String
			}
		case schemafield.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case schemafield.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case schemafield.FieldNestedSchemaID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field nested_schema_id", values[i])
			} else if value.Valid {
				_m.NestedSchemaID = new(int)
				*_m.NestedSchemaID = int(value.Int64)
			}
		case schemafield.FieldListItemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field list_item_type", values[i])
			} else if value.Valid {
				_m.ListItemType = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SchemaField.
// This includes values selected through modifiers, order, etc.
func (_m *SchemaField) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDefinition queries the "definition" edge of the SchemaField entity.
func (_m *SchemaField) QueryDefinition() *SchemaDefinitionQuery {
	return NewSchemaFieldClient(_m.config).QueryDefinition(_m)
}

// QueryNestedSchema queries the "nested_schema" edge of the SchemaField entity.
func (_m *SchemaField) QueryNestedSchema() *SchemaDefinitionQuery {
	return NewSchemaFieldClient(_m.config).QueryNestedSchema(_m)
}

// Update returns a builder for updating this SchemaField.
// Note that you need to call SchemaField.Unwrap() before calling this method if this SchemaField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SchemaField) Update() *SchemaFieldUpdateOne {
	return NewSchemaFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SchemaField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SchemaField) Unwrap() *SchemaField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SchemaField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SchemaField) String() string {
	var builder strings.Builder
	builder.WriteString("SchemaField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("definition_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefinitionID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("field_type=")
	builder.WriteString(_m.FieldType)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	if v := _m.NestedSchemaID; v != nil {
		builder.WriteString("nested_schema_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("list_item_type=")
	builder.WriteString(_m.ListItemType)
	builder.WriteByte(')')
	return builder.String()
}

// SchemaFields is a parsable slice of SchemaField.
type SchemaFields []*SchemaField
