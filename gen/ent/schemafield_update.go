// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mattin-ai/mattin/gen/ent/predicate"
	"github.com/mattin-ai/mattin/gen/ent/schemadefinition"
	"github.com/mattin-ai/mattin/gen/ent/schemafield"
)

// SchemaFieldUpdate is the builder for updating SchemaField entities.
type SchemaFieldUpdate struct {
	config
	hooks    []Hook
	mutation *SchemaFieldMutation
}

// Where appends a list predicates to the SchemaFieldUpdate builder.
func (_u *SchemaFieldUpdate) Where(ps ...predicate.SchemaField) *SchemaFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDefinitionID sets the "definition_id" field.
func (_u *SchemaFieldUpdate) SetDefinitionID(v int) *SchemaFieldUpdate {
	_u.mutation.SetDefinitionID(v)
	return _u
}

// SetNillableDefinitionID sets the "definition_id" field if the given value is not nil.
func (_u *SchemaFieldUpdate) SetNillableDefinitionID(v *int) *SchemaFieldUpdate {
	if v != nil {
		_u.SetDefinitionID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SchemaFieldUpdate) SetName(v string) *SchemaFieldUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SchemaFieldUpdate) SetNillableName(v *string) *SchemaFieldUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *SchemaFieldUpdate) SetFieldType(v string) *SchemaFieldUpdate {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *SchemaFieldUpdate) SetNillableFieldType(v *string) *SchemaFieldUpdate {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SchemaFieldUpdate) SetDescription(v string) *SchemaFieldUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SchemaFieldUpdate) SetNillableDescription(v *string) *SchemaFieldUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SchemaFieldUpdate) ClearDescription() *SchemaFieldUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPosition sets the "position" field.
func (_u *SchemaFieldUpdate) SetPosition(v int) *SchemaFieldUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SchemaFieldUpdate) SetNillablePosition(v *int) *SchemaFieldUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SchemaFieldUpdate) AddPosition(v int) *SchemaFieldUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetNestedSchemaID sets the "nested_schema_id" field.
func (_u *SchemaFieldUpdate) SetNestedSchemaID(v int) *SchemaFieldUpdate {
	_u.mutation.SetNestedSchemaID(v)
	return _u
}

// SetNillableNestedSchemaID sets the "nested_schema_id" field if the given value is not nil.
func (_u *SchemaFieldUpdate) SetNillableNestedSchemaID(v *int) *SchemaFieldUpdate {
	if v != nil {
		_u.SetNestedSchemaID(*v)
	}
	return _u
}

// ClearNestedSchemaID clears the value of the "nested_schema_id" field.
func (_u *SchemaFieldUpdate) ClearNestedSchemaID() *SchemaFieldUpdate {
	_u.mutation.ClearNestedSchemaID()
	return _u
}

// SetListItemType sets the "list_item_type" field.
func (_u *SchemaFieldUpdate) SetListItemType(v string) *SchemaFieldUpdate {
	_u.mutation.SetListItemType(v)
	return _u
}

// SetNillableListItemType sets the "list_item_type" field if the given value is not nil.
func (_u *SchemaFieldUpdate) SetNillableListItemType(v *string) *SchemaFieldUpdate {
	if v != nil {
		_u.SetListItemType(*v)
	}
	return _u
}

// ClearListItemType clears the value of the "list_item_type" field.
func (_u *SchemaFieldUpdate) ClearListItemType() *SchemaFieldUpdate {
	_u.mutation.ClearListItemType()
	return _u
}

// SetDefinition sets the "definition" edge to the SchemaDefinition entity.
func (_u *SchemaFieldUpdate) SetDefinition(v *SchemaDefinition) *SchemaFieldUpdate {
	return _u.SetDefinitionID(v.ID)
}

// SetNestedSchema sets the "nested_schema" edge to the SchemaDefinition entity.
func (_u *SchemaFieldUpdate) SetNestedSchema(v *SchemaDefinition) *SchemaFieldUpdate {
	return _u.SetNestedSchemaID(v.ID)
}

// Mutation returns the SchemaFieldMutation object of the builder.
func (_u *SchemaFieldUpdate) Mutation() *SchemaFieldMutation {
	return _u.mutation
}

// ClearDefinition clears the "definition" edge to the SchemaDefinition entity.
func (_u *SchemaFieldUpdate) ClearDefinition() *SchemaFieldUpdate {
	_u.mutation.ClearDefinition()
	return _u
}

// ClearNestedSchema clears the "nested_schema" edge to the SchemaDefinition entity.
func (_u *SchemaFieldUpdate) ClearNestedSchema() *SchemaFieldUpdate {
	_u.mutation.ClearNestedSchema()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchemaFieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchemaFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchemaFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchemaFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchemaFieldUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := schemafield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SchemaField.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := schemafield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "SchemaField.field_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ListItemType(); ok {
		if err := schemafield.ListItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "list_item_type", err: fmt.Errorf(`ent: validator failed for field "SchemaField.list_item_type": %w`, err)}
		}
	}
	if _u.mutation.DefinitionCleared() && len(_u.mutation.DefinitionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SchemaField.definition"`)
	}
	return nil
}

func (_u *SchemaFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schemafield.Table, schemafield.Columns, sqlgraph.NewFieldSpec(schemafield.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(schemafield.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(schemafield.FieldFieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(schemafield.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(schemafield.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(schemafield.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(schemafield.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ListItemType(); ok {
		_spec.SetField(schemafield.FieldListItemType, field.TypeString, value)
	}
	if _u.mutation.ListItemTypeCleared() {
		_spec.ClearField(schemafield.FieldListItemType, field.TypeString)
	}
	if _u.mutation.DefinitionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefinitionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NestedSchemaCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NestedSchemaIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schemafield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchemaFieldUpdateOne is the builder for updating a single SchemaField entity.
type SchemaFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchemaFieldMutation
}

// SetDefinitionID sets the "definition_id" field.
func (_u *SchemaFieldUpdateOne) SetDefinitionID(v int) *SchemaFieldUpdateOne {
	_u.mutation.SetDefinitionID(v)
	return _u
}

// SetNillableDefinitionID sets the "definition_id" field if the given value is not nil.
func (_u *SchemaFieldUpdateOne) SetNillableDefinitionID(v *int) *SchemaFieldUpdateOne {
	if v != nil {
		_u.SetDefinitionID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SchemaFieldUpdateOne) SetName(v string) *SchemaFieldUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SchemaFieldUpdateOne) SetNillableName(v *string) *SchemaFieldUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *SchemaFieldUpdateOne) SetFieldType(v string) *SchemaFieldUpdateOne {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *SchemaFieldUpdateOne) SetNillableFieldType(v *string) *SchemaFieldUpdateOne {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SchemaFieldUpdateOne) SetDescription(v string) *SchemaFieldUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SchemaFieldUpdateOne) SetNillableDescription(v *string) *SchemaFieldUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SchemaFieldUpdateOne) ClearDescription() *SchemaFieldUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPosition sets the "position" field.
func (_u *SchemaFieldUpdateOne) SetPosition(v int) *SchemaFieldUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SchemaFieldUpdateOne) SetNillablePosition(v *int) *SchemaFieldUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SchemaFieldUpdateOne) AddPosition(v int) *SchemaFieldUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetNestedSchemaID sets the "nested_schema_id" field.
func (_u *SchemaFieldUpdateOne) SetNestedSchemaID(v int) *SchemaFieldUpdateOne {
	_u.mutation.SetNestedSchemaID(v)
	return _u
}

// SetNillableNestedSchemaID sets the "nested_schema_id" field if the given value is not nil.
func (_u *SchemaFieldUpdateOne) SetNillableNestedSchemaID(v *int) *SchemaFieldUpdateOne {
	if v != nil {
		_u.SetNestedSchemaID(*v)
	}
	return _u
}

// ClearNestedSchemaID clears the value of the "nested_schema_id" field.
func (_u *SchemaFieldUpdateOne) ClearNestedSchemaID() *SchemaFieldUpdateOne {
	_u.mutation.ClearNestedSchemaID()
	return _u
}

// SetListItemType sets the "list_item_type" field.
func (_u *SchemaFieldUpdateOne) SetListItemType(v string) *SchemaFieldUpdateOne {
	_u.mutation.SetListItemType(v)
	return _u
}

// SetNillableListItemType sets the "list_item_type" field if the given value is not nil.
func (_u *SchemaFieldUpdateOne) SetNillableListItemType(v *string) *SchemaFieldUpdateOne {
	if v != nil {
		_u.SetListItemType(*v)
	}
	return _u
}

// ClearListItemType clears the value of the "list_item_type" field.
func (_u *SchemaFieldUpdateOne) ClearListItemType() *SchemaFieldUpdateOne {
	_u.mutation.ClearListItemType()
	return _u
}

// SetDefinition sets the "definition" edge to the SchemaDefinition entity.
func (_u *SchemaFieldUpdateOne) SetDefinition(v *SchemaDefinition) *SchemaFieldUpdateOne {
	return _u.SetDefinitionID(v.ID)
}

// SetNestedSchema sets the "nested_schema" edge to the SchemaDefinition entity.
func (_u *SchemaFieldUpdateOne) SetNestedSchema(v *SchemaDefinition) *SchemaFieldUpdateOne {
	return _u.SetNestedSchemaID(v.ID)
}

// Mutation returns the SchemaFieldMutation object of the builder.
func (_u *SchemaFieldUpdateOne) Mutation() *SchemaFieldMutation {
	return _u.mutation
}

// ClearDefinition clears the "definition" edge to the SchemaDefinition entity.
func (_u *SchemaFieldUpdateOne) ClearDefinition() *SchemaFieldUpdateOne {
	_u.mutation.ClearDefinition()
	return _u
}

// ClearNestedSchema clears the "nested_schema" edge to the SchemaDefinition entity.
func (_u *SchemaFieldUpdateOne) ClearNestedSchema() *SchemaFieldUpdateOne {
	_u.mutation.ClearNestedSchema()
	return _u
}

// Where appends a list predicates to the SchemaFieldUpdate builder.
func (_u *SchemaFieldUpdateOne) Where(ps ...predicate.SchemaField) *SchemaFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchemaFieldUpdateOne) Select(field string, fields ...string) *SchemaFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SchemaField entity.
func (_u *SchemaFieldUpdateOne) Save(ctx context.Context) (*SchemaField, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchemaFieldUpdateOne) SaveX(ctx context.Context) *SchemaField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchemaFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchemaFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchemaFieldUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := schemafield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SchemaField.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := schemafield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "SchemaField.field_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ListItemType(); ok {
		if err := schemafield.ListItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "list_item_type", err: fmt.Errorf(`ent: validator failed for field "SchemaField.list_item_type": %w`, err)}
		}
	}
	if _u.mutation.DefinitionCleared() && len(_u.mutation.DefinitionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SchemaField.definition"`)
	}
	return nil
}

func (_u *SchemaFieldUpdateOne) sqlSave(ctx context.Context) (_node *SchemaField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schemafield.Table, schemafield.Columns, sqlgraph.NewFieldSpec(schemafield.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SchemaField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schemafield.FieldID)
		for _, f := range fields {
			if !schemafield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schemafield.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(schemafield.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(schemafield.FieldFieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(schemafield.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(schemafield.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(schemafield.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(schemafield.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ListItemType(); ok {
		_spec.SetField(schemafield.FieldListItemType, field.TypeString, value)
	}
	if _u.mutation.ListItemTypeCleared() {
		_spec.ClearField(schemafield.FieldListItemType, field.TypeString)
	}
	if _u.mutation.DefinitionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefinitionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NestedSchemaCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NestedSchemaIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SchemaField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schemafield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
