// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mattin-ai/mattin/gen/ent/predicate"
	"github.com/mattin-ai/mattin/gen/ent/schemadefinition"
)

// SchemaDefinitionDelete is the builder for deleting a SchemaDefinition entity.
type SchemaDefinitionDelete struct {
	config
	hooks    []Hook
	mutation *SchemaDefinitionMutation
}

// Where appends a list predicates to the SchemaDefinitionDelete builder.
func (_d *SchemaDefinitionDelete) Where(ps ...predicate.SchemaDefinition) *SchemaDefinitionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SchemaDefinitionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SchemaDefinitionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SchemaDefinitionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(schemadefinition.Table, sqlgraph.NewFieldSpec(schemadefinition.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SchemaDefinitionDeleteOne is the builder for deleting a single SchemaDefinition entity.
type SchemaDefinitionDeleteOne struct {
	_d *SchemaDefinitionDelete
}

// Where appends a list predicates to the SchemaDefinitionDelete builder.
func (_d *SchemaDefinitionDeleteOne) Where(ps ...predicate.SchemaDefinition) *SchemaDefinitionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SchemaDefinitionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{schemadefinition.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SchemaDefinitionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
