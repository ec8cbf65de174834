// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mattin-ai/mattin/gen/ent/agent"
	"github.com/mattin-ai/mattin/gen/ent/extractionjob"
	"github.com/mattin-ai/mattin/gen/ent/schemadefinition"
	"github.com/mattin-ai/mattin/gen/ent/silo"
	"github.com/mattin-ai/mattin/gen/ent/toolserver"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AgentCreate) SetDescription(v string) *AgentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AgentCreate) SetNillableDescription(v *string) *AgentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *AgentCreate) SetProvider(v string) *AgentCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetTextModel sets the "text_model" field.
func (_c *AgentCreate) SetTextModel(v string) *AgentCreate {
	_c.mutation.SetTextModel(v)
	return _c
}

// SetVisionModel sets the "vision_model" field.
func (_c *AgentCreate) SetVisionModel(v string) *AgentCreate {
	_c.mutation.SetVisionModel(v)
	return _c
}

// SetNillableVisionModel sets the "vision_model" field if the given value is not nil.
func (_c *AgentCreate) SetNillableVisionModel(v *string) *AgentCreate {
	if v != nil {
		_c.SetVisionModel(*v)
	}
	return _c
}

// SetVisionInstruction sets the "vision_instruction" field.
func (_c *AgentCreate) SetVisionInstruction(v string) *AgentCreate {
	_c.mutation.SetVisionInstruction(v)
	return _c
}

// SetNillableVisionInstruction sets the "vision_instruction" field if the given value is not nil.
func (_c *AgentCreate) SetNillableVisionInstruction(v *string) *AgentCreate {
	if v != nil {
		_c.SetVisionInstruction(*v)
	}
	return _c
}

// SetTextInstruction sets the "text_instruction" field.
func (_c *AgentCreate) SetTextInstruction(v string) *AgentCreate {
	_c.mutation.SetTextInstruction(v)
	return _c
}

// SetNillableTextInstruction sets the "text_instruction" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTextInstruction(v *string) *AgentCreate {
	if v != nil {
		_c.SetTextInstruction(*v)
	}
	return _c
}

// SetOutputSchemaID sets the "output_schema_id" field.
func (_c *AgentCreate) SetOutputSchemaID(v int) *AgentCreate {
	_c.mutation.SetOutputSchemaID(v)
	return _c
}

// SetNillableOutputSchemaID sets the "output_schema_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableOutputSchemaID(v *int) *AgentCreate {
	if v != nil {
		_c.SetOutputSchemaID(*v)
	}
	return _c
}

// SetSkipVisionWhenText sets the "skip_vision_when_text" field.
func (_c *AgentCreate) SetSkipVisionWhenText(v bool) *AgentCreate {
	_c.mutation.SetSkipVisionWhenText(v)
	return _c
}

// SetNillableSkipVisionWhenText sets the "skip_vision_when_text" field if the given value is not nil.
func (_c *AgentCreate) SetNillableSkipVisionWhenText(v *bool) *AgentCreate {
	if v != nil {
		_c.SetSkipVisionWhenText(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *AgentCreate) SetTemperature(v float32) *AgentCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTemperature(v *float32) *AgentCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentCreate) SetUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOutputSchema sets the "output_schema" edge to the SchemaDefinition entity.
func (_c *AgentCreate) SetOutputSchema(v *SchemaDefinition) *AgentCreate {
	return _c.SetOutputSchemaID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_c *AgentCreate) AddJobIDs(ids ...uuid.UUID) *AgentCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_c *AgentCreate) AddJobs(v ...*ExtractionJob) *AgentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// AddSiloIDs adds the "silos" edge to the Silo entity by IDs.
func (_c *AgentCreate) AddSiloIDs(ids ...int) *AgentCreate {
	_c.mutation.AddSiloIDs(ids...)
	return _c
}

// AddSilos adds the "silos" edges to the Silo entity.
func (_c *AgentCreate) AddSilos(v ...*Silo) *AgentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSiloIDs(ids...)
}

// AddToolServerIDs adds the "tool_servers" edge to the ToolServer entity by IDs.
func (_c *AgentCreate) AddToolServerIDs(ids ...int) *AgentCreate {
	_c.mutation.AddToolServerIDs(ids...)
	return _c
}

// AddToolServers adds the "tool_servers" edges to the ToolServer entity.
func (_c *AgentCreate) AddToolServers(v ...*ToolServer) *AgentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddToolServerIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.SkipVisionWhenText(); !ok {
		v := agent.DefaultSkipVisionWhenText
		_c.mutation.SetSkipVisionWhenText(v)
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		v := agent.DefaultTemperature
		_c.mutation.SetTemperature(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Agent.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := agent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Agent.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TextModel(); !ok {
		return &ValidationError{Name: "text_model", err: errors.New(`ent: missing required field "Agent.text_model"`)}
	}
	if v, ok := _c.mutation.TextModel(); ok {
		if err := agent.TextModelValidator(v); err != nil {
			return &ValidationError{Name: "text_model", err: fmt.Errorf(`ent: validator failed for field "Agent.text_model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkipVisionWhenText(); !ok {
		return &ValidationError{Name: "skip_vision_when_text", err: errors.New(`ent: missing required field "Agent.skip_vision_when_text"`)}
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "Agent.temperature"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Agent.updated_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(agent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(agent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.TextModel(); ok {
		_spec.SetField(agent.FieldTextModel, field.TypeString, value)
		_node.TextModel = value
	}
	if value, ok := _c.mutation.VisionModel(); ok {
		_spec.SetField(agent.FieldVisionModel, field.TypeString, value)
		_node.VisionModel = value
	}
	if value, ok := _c.mutation.VisionInstruction(); ok {
		_spec.SetField(agent.FieldVisionInstruction, field.TypeString, value)
		_node.VisionInstruction = value
	}
	if value, ok := _c.mutation.TextInstruction(); ok {
		_spec.SetField(agent.FieldTextInstruction, field.TypeString, value)
		_node.TextInstruction = value
	}
	if value, ok := _c.mutation.SkipVisionWhenText(); ok {
		_spec.SetField(agent.FieldSkipVisionWhenText, field.TypeBool, value)
		_node.SkipVisionWhenText = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(agent.FieldTemperature, field.TypeFloat32, value)
		_node.Temperature = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OutputSchemaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   agent.OutputSchemaTable,
			Columns: []string{agent.OutputSchemaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schemadefinition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OutputSchemaID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.JobsTable,
			Columns: []string{agent.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SilosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   agent.SilosTable,
			Columns: agent.SilosPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(silo.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ToolServersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   agent.ToolServersTable,
			Columns: agent.ToolServersPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolserver.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
