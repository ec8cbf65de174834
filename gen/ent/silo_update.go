// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mattin-ai/mattin/gen/ent/agent"
	"github.com/mattin-ai/mattin/gen/ent/predicate"
	"github.com/mattin-ai/mattin/gen/ent/silo"
)

// SiloUpdate is the builder for updating Silo entities.
type SiloUpdate struct {
	config
	hooks    []Hook
	mutation *SiloMutation
}

// Where appends a list predicates to the SiloUpdate builder.
func (_u *SiloUpdate) Where(ps ...predicate.Silo) *SiloUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SiloUpdate) SetName(v string) *SiloUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SiloUpdate) SetNillableName(v *string) *SiloUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCollection sets the "collection" field.
func (_u *SiloUpdate) SetCollection(v string) *SiloUpdate {
	_u.mutation.SetCollection(v)
	return _u
}

// SetNillableCollection sets the "collection" field if the given value is not nil.
func (_u *SiloUpdate) SetNillableCollection(v *string) *SiloUpdate {
	if v != nil {
		_u.SetCollection(*v)
	}
	return _u
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_u *SiloUpdate) SetEmbeddingModel(v string) *SiloUpdate {
	_u.mutation.SetEmbeddingModel(v)
	return _u
}

// SetNillableEmbeddingModel sets the "embedding_model" field if the given value is not nil.
func (_u *SiloUpdate) SetNillableEmbeddingModel(v *string) *SiloUpdate {
	if v != nil {
		_u.SetEmbeddingModel(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SiloUpdate) SetCreatedAt(v time.Time) *SiloUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SiloUpdate) SetNillableCreatedAt(v *time.Time) *SiloUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SiloUpdate) SetUpdatedAt(v time.Time) *SiloUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *SiloUpdate) AddAgentIDs(ids ...int) *SiloUpdate {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *SiloUpdate) AddAgents(v ...*Agent) *SiloUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// Mutation returns the SiloMutation object of the builder.
func (_u *SiloUpdate) Mutation() *SiloMutation {
	return _u.mutation
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *SiloUpdate) ClearAgents() *SiloUpdate {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *SiloUpdate) RemoveAgentIDs(ids ...int) *SiloUpdate {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *SiloUpdate) RemoveAgents(v ...*Agent) *SiloUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SiloUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SiloUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SiloUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SiloUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SiloUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := silo.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SiloUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := silo.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Silo.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Collection(); ok {
		if err := silo.CollectionValidator(v); err != nil {
			return &ValidationError{Name: "collection", err: fmt.Errorf(`ent: validator failed for field "Silo.collection": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmbeddingModel(); ok {
		if err := silo.EmbeddingModelValidator(v); err != nil {
			return &ValidationError{Name: "embedding_model", err: fmt.Errorf(`ent: validator failed for field "Silo.embedding_model": %w`, err)}
		}
	}
	return nil
}

func (_u *SiloUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(silo.Table, silo.Columns, sqlgraph.NewFieldSpec(silo.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(silo.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Collection(); ok {
		_spec.SetField(silo.FieldCollection, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmbeddingModel(); ok {
		_spec.SetField(silo.FieldEmbeddingModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(silo.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(silo.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   silo.AgentsTable,
			Columns: silo.AgentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   silo.AgentsTable,
			Columns: silo.AgentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   silo.AgentsTable,
			Columns: silo.AgentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{silo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SiloUpdateOne is the builder for updating a single Silo entity.
type SiloUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SiloMutation
}

// SetName sets the "name" field.
func (_u *SiloUpdateOne) SetName(v string) *SiloUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SiloUpdateOne) SetNillableName(v *string) *SiloUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCollection sets the "collection" field.
func (_u *SiloUpdateOne) SetCollection(v string) *SiloUpdateOne {
	_u.mutation.SetCollection(v)
	return _u
}

// SetNillableCollection sets the "collection" field if the given value is not nil.
func (_u *SiloUpdateOne) SetNillableCollection(v *string) *SiloUpdateOne {
	if v != nil {
		_u.SetCollection(*v)
	}
	return _u
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_u *SiloUpdateOne) SetEmbeddingModel(v string) *SiloUpdateOne {
	_u.mutation.SetEmbeddingModel(v)
	return _u
}

// SetNillableEmbeddingModel sets the "embedding_model" field if the given value is not nil.
func (_u *SiloUpdateOne) SetNillableEmbeddingModel(v *string) *SiloUpdateOne {
	if v != nil {
		_u.SetEmbeddingModel(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SiloUpdateOne) SetCreatedAt(v time.Time) *SiloUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SiloUpdateOne) SetNillableCreatedAt(v *time.Time) *SiloUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SiloUpdateOne) SetUpdatedAt(v time.Time) *SiloUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *SiloUpdateOne) AddAgentIDs(ids ...int) *SiloUpdateOne {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *SiloUpdateOne) AddAgents(v ...*Agent) *SiloUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// Mutation returns the SiloMutation object of the builder.
func (_u *SiloUpdateOne) Mutation() *SiloMutation {
	return _u.mutation
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *SiloUpdateOne) ClearAgents() *SiloUpdateOne {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *SiloUpdateOne) RemoveAgentIDs(ids ...int) *SiloUpdateOne {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *SiloUpdateOne) RemoveAgents(v ...*Agent) *SiloUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// Where appends a list predicates to the SiloUpdate builder.
func (_u *SiloUpdateOne) Where(ps ...predicate.Silo) *SiloUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SiloUpdateOne) Select(field string, fields ...string) *SiloUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Silo entity.
func (_u *SiloUpdateOne) Save(ctx context.Context) (*Silo, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SiloUpdateOne) SaveX(ctx context.Context) *Silo {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SiloUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SiloUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SiloUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := silo.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SiloUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := silo.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Silo.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Collection(); ok {
		if err := silo.CollectionValidator(v); err != nil {
			return &ValidationError{Name: "collection", err: fmt.Errorf(`ent: validator failed for field "Silo.collection": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmbeddingModel(); ok {
		if err := silo.EmbeddingModelValidator(v); err != nil {
			return &ValidationError{Name: "embedding_model", err: fmt.Errorf(`ent: validator failed for field "Silo.embedding_model": %w`, err)}
		}
	}
	return nil
}

func (_u *SiloUpdateOne) sqlSave(ctx context.Context) (_node *Silo, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(silo.Table, silo.Columns, sqlgraph.NewFieldSpec(silo.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Silo.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, silo.FieldID)
		for _, f := range fields {
			if !silo.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != silo.FieldID {
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
		_spec.SetField(silo.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Collection(); ok {
		_spec.SetField(silo.FieldCollection, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmbeddingModel(); ok {
		_spec.SetField(silo.FieldEmbeddingModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(silo.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(silo.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   silo.AgentsTable,
			Columns: silo.AgentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   silo.AgentsTable,
			Columns: silo.AgentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   silo.AgentsTable,
			Columns: silo.AgentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Silo{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{silo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
