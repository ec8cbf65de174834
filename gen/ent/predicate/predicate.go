// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// ExtractionJob is the predicate function for extractionjob builders.
type ExtractionJob func(*sql.Selector)

// SchemaDefinition is the predicate function for schemadefinition builders.
type SchemaDefinition func(*sql.Selector)

// SchemaField is the predicate function for schemafield builders.
type SchemaField func(*sql.Selector)

// Silo is the predicate function for silo builders.
type Silo func(*sql.Selector)

// ToolServer is the predicate function for toolserver builders.
type ToolServer func(*sql.Selector)
