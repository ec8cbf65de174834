// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mattin-ai/mattin/gen/ent/agent"
	"github.com/mattin-ai/mattin/gen/ent/silo"
)

// SiloCreate is the builder for creating a Silo entity.
type SiloCreate struct {
	config
	mutation *SiloMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SiloCreate) SetName(v string) *SiloCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCollection sets the "collection" field.
func (_c *SiloCreate) SetCollection(v string) *SiloCreate {
	_c.mutation.SetCollection(v)
	return _c
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_c *SiloCreate) SetEmbeddingModel(v string) *SiloCreate {
	_c.mutation.SetEmbeddingModel(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SiloCreate) SetCreatedAt(v time.Time) *SiloCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SiloCreate) SetNillableCreatedAt(v *time.Time) *SiloCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SiloCreate) SetUpdatedAt(v time.Time) *SiloCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SiloCreate) SetNillableUpdatedAt(v *time.Time) *SiloCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_c *SiloCreate) AddAgentIDs(ids ...int) *SiloCreate {
	_c.mutation.AddAgentIDs(ids...)
	return _c
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_c *SiloCreate) AddAgents(v ...*Agent) *SiloCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentIDs(ids...)
}

// Mutation returns the SiloMutation object of the builder.
func (_c *SiloCreate) Mutation() *SiloMutation {
	return _c.mutation
}

// Save creates the Silo in the database.
func (_c *SiloCreate) Save(ctx context.Context) (*Silo, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SiloCreate) SaveX(ctx context.Context) *Silo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SiloCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SiloCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SiloCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := silo.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := silo.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SiloCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Silo.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := silo.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Silo.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Collection(); !ok {
		return &ValidationError{Name: "collection", err: errors.New(`ent: missing required field "Silo.collection"`)}
	}
	if v, ok := _c.mutation.Collection(); ok {
		if err := silo.CollectionValidator(v); err != nil {
			return &ValidationError{Name: "collection", err: fmt.Errorf(`ent: validator failed for field "Silo.collection": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmbeddingModel(); !ok {
		return &ValidationError{Name: "embedding_model", err: errors.New(`ent: missing required field "Silo.embedding_model"`)}
	}
	if v, ok := _c.mutation.EmbeddingModel(); ok {
		if err := silo.EmbeddingModelValidator(v); err != nil {
			return &ValidationError{Name: "embedding_model", err: fmt.Errorf(`ent: validator failed for field "Silo.embedding_model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Silo.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Silo.updated_at"`)}
	}
	return nil
}

func (_c *SiloCreate) sqlSave(ctx context.Context) (*Silo, error) {
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

func (_c *SiloCreate) createSpec() (*Silo, *sqlgraph.CreateSpec) {
	var (
		_node = &Silo{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(silo.Table, sqlgraph.NewFieldSpec(silo.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(silo.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Collection(); ok {
		_spec.SetField(silo.FieldCollection, field.TypeString, value)
		_node.Collection = value
	}
	if value, ok := _c.mutation.EmbeddingModel(); ok {
		_spec.SetField(silo.FieldEmbeddingModel, field.TypeString, value)
		_node.EmbeddingModel = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(silo.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(silo.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SiloCreateBulk is the builder for creating many Silo entities in bulk.
type SiloCreateBulk struct {
	config
	err      error
	builders []*SiloCreate
}

// Save creates the Silo entities in the database.
func (_c *SiloCreateBulk) Save(ctx context.Context) ([]*Silo, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Silo, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SiloMutation)
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
func (_c *SiloCreateBulk) SaveX(ctx context.Context) []*Silo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SiloCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SiloCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
