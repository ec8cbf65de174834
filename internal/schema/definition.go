package schema

import (
	"context"

	"github.com/mattin-ai/mattin/constants"
)

// FieldSpec is one user-authored field of a schema definition.
type FieldSpec struct {
	Name           string
	Type           constants.FieldType
	Description    string
	NestedSchemaID *int                 // set when Type is object, or list of object
	ListItemType   *constants.FieldType // set when Type is list
}

// Definition is a named collection of field specs, authored in the
// configuration UI and consumed at pipeline-run time.
type Definition struct {
	ID     int
	Name   string
	Fields []FieldSpec
}

// Registry fetches definitions by id so nested references can be resolved.
type Registry interface {
	DefinitionByID(ctx context.Context, id int) (*Definition, error)
}

// RegistryFunc adapts a function to the Registry interface.
type RegistryFunc func(ctx context.Context, id int) (*Definition, error)

func (f RegistryFunc) DefinitionByID(ctx context.Context, id int) (*Definition, error) {
	return f(ctx, id)
}
