// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mattin-ai/mattin/gen/ent/schemadefinition"
	"github.com/mattin-ai/mattin/gen/ent/schemafield"
)

// SchemaFieldCreate is the builder for creating a SchemaField entity.
type SchemaFieldCreate struct {
	config
	mutation *SchemaFieldMutation
	hooks    []Hook
}

// SetDefinitionID sets the "definition_id" field.
func (_c *SchemaFieldCreate) SetDefinitionID(v int) *SchemaFieldCreate {
	_c.mutation.SetDefinitionID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SchemaFieldCreate) SetName(v string) *SchemaFieldCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetFieldType sets the "field_type" field.
func (_c *SchemaFieldCreate) SetFieldType(v string) *SchemaFieldCreate {
	_c.mutation.SetFieldType(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SchemaFieldCreate) SetDescription(v string) *SchemaFieldCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SchemaFieldCreate) SetNillableDescription(v *string) *SchemaFieldCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *SchemaFieldCreate) SetPosition(v int) *SchemaFieldCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *SchemaFieldCreate) SetNillablePosition(v *int) *SchemaFieldCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetNestedSchemaID sets the "nested_schema_id" field.
func (_c *SchemaFieldCreate) SetNestedSchemaID(v int) *SchemaFieldCreate {
	_c.mutation.SetNestedSchemaID(v)
	return _c
}

// SetNillableNestedSchemaID sets the "nested_schema_id" field if the given value is not nil.
func (_c *SchemaFieldCreate) SetNillableNestedSchemaID(v *int) *SchemaFieldCreate {
	if v != nil {
		_c.SetNestedSchemaID(*v)
	}
	return _c
}

// SetListItemType sets the "list_item_type" field.
func (_c *SchemaFieldCreate) SetListItemType(v string) *SchemaFieldCreate {
	_c.mutation.SetListItemType(v)
	return _c
}

// SetNillableListItemType sets the "list_item_type" field if the given value is not nil.
func (_c *SchemaFieldCreate) SetNillableListItemType(v *string) *SchemaFieldCreate {
	if v != nil {
		_c.SetListItemType(*v)
	}
	return _c
}

// SetDefinition sets the "definition" edge to the SchemaDefinition entity.
func (_c *SchemaFieldCreate) SetDefinition(v *SchemaDefinition) *SchemaFieldCreate {
	return _c.SetDefinitionID(v.ID)
}

// SetNestedSchema sets the "nested_schema" edge to the SchemaDefinition entity.
func (_c *SchemaFieldCreate) SetNestedSchema(v *SchemaDefinition) *SchemaFieldCreate {
	return _c.SetNestedSchemaID(v.ID)
}

// Mutation returns the SchemaFieldMutation object of the builder.
func (_c *SchemaFieldCreate) Mutation() *SchemaFieldMutation {
	return _c.mutation
}

// Save creates the SchemaField in the database.
func (_c *SchemaFieldCreate) Save(ctx context.Context) (*SchemaField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchemaFieldCreate) SaveX(ctx context.Context) *SchemaField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchemaFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchemaFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SchemaFieldCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := schemafield.DefaultPosition
		_c.mutation.SetPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchemaFieldCreate) check() error {
	if _, ok := _c.mutation.DefinitionID(); !ok {
		return &ValidationError{Name: "definition_id", err: errors.New(`ent: missing required field "SchemaField.definition_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SchemaField.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := schemafield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SchemaField.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldType(); !ok {
		return &ValidationError{Name: "field_type", err: errors.New(`ent: missing required field "SchemaField.field_type"`)}
	}
	if v, ok := _c.mutation.FieldType(); ok {
		if err := schemafield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "SchemaField.field_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "SchemaField.position"`)}
	}
	if v, ok := _c.mutation.ListItemType(); ok {
		if err := schemafield.ListItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "list_item_type", err: fmt.Errorf(`ent: validator failed for field "SchemaField.list_item_type": %w`, err)}
		}
	}
	if len(_c.mutation.DefinitionIDs()) == 0 {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required edge "SchemaField.definition"`)}
	}
	return nil
}

func (_c *SchemaFieldCreate) sqlSave(ctx context.Context) (*SchemaField, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SchemaFieldCreate) createSpec() (*SchemaField, *sqlgraph.CreateSpec) {
	var (
		_node = &SchemaField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schemafield.Table, sqlgraph.NewFieldSpec(schemafield.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(schemafield.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.FieldType(); ok {
		_spec.SetField(schemafield.FieldFieldType, field.TypeString, value)
		_node.FieldType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(schemafield.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(schemafield.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.ListItemType(); ok {
		_spec.SetField(schemafield.FieldListItemType, field.TypeString, value)
		_node.ListItemType = value
	}
	if nodes := _c.mutation.DefinitionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   schemafield.DefinitionTable,
			Columns: []string{schemafield.DefinitionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schemadefinition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DefinitionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NestedSchemaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   schemafield.NestedSchemaTable,
			Columns: []string{schemafield.NestedSchemaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schemadefinition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.NestedSchemaID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SchemaFieldCreateBulk is the builder for creating many SchemaField entities in bulk.
type SchemaFieldCreateBulk struct {
	config
	err      error
	builders []*SchemaFieldCreate
}

// Save creates the SchemaField entities in the database.
func (_c *SchemaFieldCreateBulk) Save(ctx context.Context) ([]*SchemaField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SchemaField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchemaFieldMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SchemaFieldCreateBulk) SaveX(ctx context.Context) []*SchemaField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchemaFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchemaFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
