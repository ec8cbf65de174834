// Code generated by ent, DO NOT EDIT.

package schemafield

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the schemafield type in the database.
	Label = "schema_field"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDefinitionID holds the string denoting the definition_id field in the database.
	FieldDefinitionID = "definition_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldFieldType holds the string denoting the field_type field in the database.
	FieldFieldType = "field_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldNestedSchemaID holds the string denoting the nested_schema_id field in the database.
	FieldNestedSchemaID = "nested_schema_id"
	// FieldListItemType holds the string denoting the list_item_type field in the database.
	FieldListItemType = "list_item_type"
	// EdgeDefinition holds the string denoting the definition edge name in mutations.
	EdgeDefinition = "definition"
	// EdgeNestedSchema holds the string denoting the nested_schema edge name in mutations.
	EdgeNestedSchema = "nested_schema"
	// Table holds the table name of the schemafield in the database.
	Table = "schema_fields"
	// DefinitionTable is the table that holds the definition relation/edge.
	DefinitionTable = "schema_fields"
	// DefinitionInverseTable is the table name for the SchemaDefinition entity.
	// It exists in this package in order to avoid circular dependency with the "schemadefinition" package.
	DefinitionInverseTable = "schema_definitions"
	// DefinitionColumn is the table column denoting the definition relation/edge.
	DefinitionColumn = "definition_id"
	// NestedSchemaTable is the table that holds the nested_schema relation/edge.
	NestedSchemaTable = "schema_fields"
	// NestedSchemaInverseTable is the table name for the SchemaDefinition entity.
	// It exists in this package in order to avoid circular dependency with the "schemadefinition" package.
	NestedSchemaInverseTable = "schema_definitions"
	// NestedSchemaColumn is the table column denoting the nested_schema relation/edge.
	NestedSchemaColumn = "nested_schema_id"
)

// Columns holds all SQL columns for schemafield fields.
var Columns = []string{
	FieldID,
	FieldDefinitionID,
	FieldName,
	FieldFieldType,
	FieldDescription,
	FieldPosition,
	FieldNestedSchemaID,
	FieldListItemType,
}

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
	// FieldTypeValidator is a validator for the "field_type" field. It is called by the builders before save.
	FieldTypeValidator func(string) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// ListItemTypeValidator is a validator for the "list_item_type" field. It is called by the builders before save.
	ListItemTypeValidator func(string) error
)

// OrderOption defines the ordering options for the SchemaField queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDefinitionID orders the results by the definition_id field.
func ByDefinitionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefinitionID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByFieldType orders the results by the field_type field.
func ByFieldType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByNestedSchemaID orders the results by the nested_schema_id field.
func ByNestedSchemaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNestedSchemaID, opts...).ToFunc()
}

// ByListItemType orders the results by the list_item_type field.
func ByListItemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListItemType, opts...).ToFunc()
}

// ByDefinitionField orders the results by definition field.
func ByDefinitionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDefinitionStep(), sql.OrderByField(field, opts...))
	}
}

// ByNestedSchemaField orders the results by nested_schema field.
func ByNestedSchemaField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNestedSchemaStep(), sql.OrderByField(field, opts...))
	}
}
func newDefinitionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DefinitionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DefinitionTable, DefinitionColumn),
	)
}
func newNestedSchemaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NestedSchemaInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, NestedSchemaTable, NestedSchemaColumn),
	)
}
