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
	"github.com/google/uuid"
	"github.com/mattin-ai/mattin/gen/ent/agent"
	"github.com/mattin-ai/mattin/gen/ent/extractionjob"
	"github.com/mattin-ai/mattin/gen/ent/predicate"
	"github.com/mattin-ai/mattin/gen/ent/schemadefinition"
	"github.com/mattin-ai/mattin/gen/ent/silo"
	"github.com/mattin-ai/mattin/gen/ent/toolserver"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentUpdate) SetDescription(v string) *AgentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableDescription(v *string) *AgentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AgentUpdate) ClearDescription() *AgentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AgentUpdate) SetProvider(v string) *AgentUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableProvider(v *string) *AgentUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetTextModel sets the "text_model" field.
func (_u *AgentUpdate) SetTextModel(v string) *AgentUpdate {
	_u.mutation.SetTextModel(v)
	return _u
}

// SetNillableTextModel sets the "text_model" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTextModel(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTextModel(*v)
	}
	return _u
}

// SetVisionModel sets the "vision_model" field.
func (_u *AgentUpdate) SetVisionModel(v string) *AgentUpdate {
	_u.mutation.SetVisionModel(v)
	return _u
}

// SetNillableVisionModel sets the "vision_model" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableVisionModel(v *string) *AgentUpdate {
	if v != nil {
		_u.SetVisionModel(*v)
	}
	return _u
}

// ClearVisionModel clears the value of the "vision_model" field.
func (_u *AgentUpdate) ClearVisionModel() *AgentUpdate {
	_u.mutation.ClearVisionModel()
	return _u
}

// SetVisionInstruction sets the "vision_instruction" field.
func (_u *AgentUpdate) SetVisionInstruction(v string) *AgentUpdate {
	_u.mutation.SetVisionInstruction(v)
	return _u
}

// SetNillableVisionInstruction sets the "vision_instruction" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableVisionInstruction(v *string) *AgentUpdate {
	if v != nil {
		_u.SetVisionInstruction(*v)
	}
	return _u
}

// ClearVisionInstruction clears the value of the "vision_instruction" field.
func (_u *AgentUpdate) ClearVisionInstruction() *AgentUpdate {
	_u.mutation.ClearVisionInstruction()
	return _u
}

// SetTextInstruction sets the "text_instruction" field.
func (_u *AgentUpdate) SetTextInstruction(v string) *AgentUpdate {
	_u.mutation.SetTextInstruction(v)
	return _u
}

// SetNillableTextInstruction sets the "text_instruction" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTextInstruction(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTextInstruction(*v)
	}
	return _u
}

// ClearTextInstruction clears the value of the "text_instruction" field.
func (_u *AgentUpdate) ClearTextInstruction() *AgentUpdate {
	_u.mutation.ClearTextInstruction()
	return _u
}

// SetOutputSchemaID sets the "output_schema_id" field.
func (_u *AgentUpdate) SetOutputSchemaID(v int) *AgentUpdate {
	_u.mutation.SetOutputSchemaID(v)
	return _u
}

// SetNillableOutputSchemaID sets the "output_schema_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableOutputSchemaID(v *int) *AgentUpdate {
	if v != nil {
		_u.SetOutputSchemaID(*v)
	}
	return _u
}

// ClearOutputSchemaID clears the value of the "output_schema_id" field.
func (_u *AgentUpdate) ClearOutputSchemaID() *AgentUpdate {
	_u.mutation.ClearOutputSchemaID()
	return _u
}

// SetSkipVisionWhenText sets the "skip_vision_when_text" field.
func (_u *AgentUpdate) SetSkipVisionWhenText(v bool) *AgentUpdate {
	_u.mutation.SetSkipVisionWhenText(v)
	return _u
}

// SetNillableSkipVisionWhenText sets the "skip_vision_when_text" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSkipVisionWhenText(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetSkipVisionWhenText(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *AgentUpdate) SetTemperature(v float32) *AgentUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTemperature(v *float32) *AgentUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *AgentUpdate) AddTemperature(v float32) *AgentUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentUpdate) SetCreatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCreatedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOutputSchema sets the "output_schema" edge to the SchemaDefinition entity.
func (_u *AgentUpdate) SetOutputSchema(v *SchemaDefinition) *AgentUpdate {
	return _u.SetOutputSchemaID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *AgentUpdate) AddJobIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *AgentUpdate) AddJobs(v ...*ExtractionJob) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddSiloIDs adds the "silos" edge to the Silo entity by IDs.
func (_u *AgentUpdate) AddSiloIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddSiloIDs(ids...)
	return _u
}

// AddSilos adds the "silos" edges to the Silo entity.
func (_u *AgentUpdate) AddSilos(v ...*Silo) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSiloIDs(ids...)
}

// AddToolServerIDs adds the "tool_servers" edge to the ToolServer entity by IDs.
func (_u *AgentUpdate) AddToolServerIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddToolServerIDs(ids...)
	return _u
}

// AddToolServers adds the "tool_servers" edges to the ToolServer entity.
func (_u *AgentUpdate) AddToolServers(v ...*ToolServer) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolServerIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearOutputSchema clears the "output_schema" edge to the SchemaDefinition entity.
func (_u *AgentUpdate) ClearOutputSchema() *AgentUpdate {
	_u.mutation.ClearOutputSchema()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *AgentUpdate) ClearJobs() *AgentUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *AgentUpdate) RemoveJobIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *AgentUpdate) RemoveJobs(v ...*ExtractionJob) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearSilos clears all "silos" edges to the Silo entity.
func (_u *AgentUpdate) ClearSilos() *AgentUpdate {
	_u.mutation.ClearSilos()
	return _u
}

// RemoveSiloIDs removes the "silos" edge to Silo entities by IDs.
func (_u *AgentUpdate) RemoveSiloIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveSiloIDs(ids...)
	return _u
}

// RemoveSilos removes "silos" edges to Silo entities.
func (_u *AgentUpdate) RemoveSilos(v ...*Silo) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSiloIDs(ids...)
}

// ClearToolServers clears all "tool_servers" edges to the ToolServer entity.
func (_u *AgentUpdate) ClearToolServers() *AgentUpdate {
	_u.mutation.ClearToolServers()
	return _u
}

// RemoveToolServerIDs removes the "tool_servers" edge to ToolServer entities by IDs.
func (_u *AgentUpdate) RemoveToolServerIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveToolServerIDs(ids...)
	return _u
}

// RemoveToolServers removes "tool_servers" edges to ToolServer entities.
func (_u *AgentUpdate) RemoveToolServers(v ...*ToolServer) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolServerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := agent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Agent.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TextModel(); ok {
		if err := agent.TextModelValidator(v); err != nil {
			return &ValidationError{Name: "text_model", err: fmt.Errorf(`ent: validator failed for field "Agent.text_model": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(agent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(agent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextModel(); ok {
		_spec.SetField(agent.FieldTextModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisionModel(); ok {
		_spec.SetField(agent.FieldVisionModel, field.TypeString, value)
	}
	if _u.mutation.VisionModelCleared() {
		_spec.ClearField(agent.FieldVisionModel, field.TypeString)
	}
	if value, ok := _u.mutation.VisionInstruction(); ok {
		_spec.SetField(agent.FieldVisionInstruction, field.TypeString, value)
	}
	if _u.mutation.VisionInstructionCleared() {
		_spec.ClearField(agent.FieldVisionInstruction, field.TypeString)
	}
	if value, ok := _u.mutation.TextInstruction(); ok {
		_spec.SetField(agent.FieldTextInstruction, field.TypeString, value)
	}
	if _u.mutation.TextInstructionCleared() {
		_spec.ClearField(agent.FieldTextInstruction, field.TypeString)
	}
	if value, ok := _u.mutation.SkipVisionWhenText(); ok {
		_spec.SetField(agent.FieldSkipVisionWhenText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(agent.FieldTemperature, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(agent.FieldTemperature, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OutputSchemaCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutputSchemaIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SilosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSilosIDs(); len(nodes) > 0 && !_u.mutation.SilosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SilosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolServersIDs(); len(nodes) > 0 && !_u.mutation.ToolServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolServersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentUpdateOne) SetDescription(v string) *AgentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableDescription(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AgentUpdateOne) ClearDescription() *AgentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AgentUpdateOne) SetProvider(v string) *AgentUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableProvider(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetTextModel sets the "text_model" field.
func (_u *AgentUpdateOne) SetTextModel(v string) *AgentUpdateOne {
	_u.mutation.SetTextModel(v)
	return _u
}

// SetNillableTextModel sets the "text_model" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTextModel(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTextModel(*v)
	}
	return _u
}

// SetVisionModel sets the "vision_model" field.
func (_u *AgentUpdateOne) SetVisionModel(v string) *AgentUpdateOne {
	_u.mutation.SetVisionModel(v)
	return _u
}

// SetNillableVisionModel sets the "vision_model" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableVisionModel(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetVisionModel(*v)
	}
	return _u
}

// ClearVisionModel clears the value of the "vision_model" field.
func (_u *AgentUpdateOne) ClearVisionModel() *AgentUpdateOne {
	_u.mutation.ClearVisionModel()
	return _u
}

// SetVisionInstruction sets the "vision_instruction" field.
func (_u *AgentUpdateOne) SetVisionInstruction(v string) *AgentUpdateOne {
	_u.mutation.SetVisionInstruction(v)
	return _u
}

// SetNillableVisionInstruction sets the "vision_instruction" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableVisionInstruction(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetVisionInstruction(*v)
	}
	return _u
}

// ClearVisionInstruction clears the value of the "vision_instruction" field.
func (_u *AgentUpdateOne) ClearVisionInstruction() *AgentUpdateOne {
	_u.mutation.ClearVisionInstruction()
	return _u
}

// SetTextInstruction sets the "text_instruction" field.
func (_u *AgentUpdateOne) SetTextInstruction(v string) *AgentUpdateOne {
	_u.mutation.SetTextInstruction(v)
	return _u
}

// SetNillableTextInstruction sets the "text_instruction" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTextInstruction(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTextInstruction(*v)
	}
	return _u
}

// ClearTextInstruction clears the value of the "text_instruction" field.
func (_u *AgentUpdateOne) ClearTextInstruction() *AgentUpdateOne {
	_u.mutation.ClearTextInstruction()
	return _u
}

// SetOutputSchemaID sets the "output_schema_id" field.
func (_u *AgentUpdateOne) SetOutputSchemaID(v int) *AgentUpdateOne {
	_u.mutation.SetOutputSchemaID(v)
	return _u
}

// SetNillableOutputSchemaID sets the "output_schema_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableOutputSchemaID(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetOutputSchemaID(*v)
	}
	return _u
}

// ClearOutputSchemaID clears the value of the "output_schema_id" field.
func (_u *AgentUpdateOne) ClearOutputSchemaID() *AgentUpdateOne {
	_u.mutation.ClearOutputSchemaID()
	return _u
}

// SetSkipVisionWhenText sets the "skip_vision_when_text" field.
func (_u *AgentUpdateOne) SetSkipVisionWhenText(v bool) *AgentUpdateOne {
	_u.mutation.SetSkipVisionWhenText(v)
	return _u
}

// SetNillableSkipVisionWhenText sets the "skip_vision_when_text" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSkipVisionWhenText(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetSkipVisionWhenText(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *AgentUpdateOne) SetTemperature(v float32) *AgentUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTemperature(v *float32) *AgentUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *AgentUpdateOne) AddTemperature(v float32) *AgentUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentUpdateOne) SetCreatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCreatedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOutputSchema sets the "output_schema" edge to the SchemaDefinition entity.
func (_u *AgentUpdateOne) SetOutputSchema(v *SchemaDefinition) *AgentUpdateOne {
	return _u.SetOutputSchemaID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *AgentUpdateOne) AddJobIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *AgentUpdateOne) AddJobs(v ...*ExtractionJob) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddSiloIDs adds the "silos" edge to the Silo entity by IDs.
func (_u *AgentUpdateOne) AddSiloIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddSiloIDs(ids...)
	return _u
}

// AddSilos adds the "silos" edges to the Silo entity.
func (_u *AgentUpdateOne) AddSilos(v ...*Silo) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSiloIDs(ids...)
}

// AddToolServerIDs adds the "tool_servers" edge to the ToolServer entity by IDs.
func (_u *AgentUpdateOne) AddToolServerIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddToolServerIDs(ids...)
	return _u
}

// AddToolServers adds the "tool_servers" edges to the ToolServer entity.
func (_u *AgentUpdateOne) AddToolServers(v ...*ToolServer) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolServerIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearOutputSchema clears the "output_schema" edge to the SchemaDefinition entity.
func (_u *AgentUpdateOne) ClearOutputSchema() *AgentUpdateOne {
	_u.mutation.ClearOutputSchema()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *AgentUpdateOne) ClearJobs() *AgentUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *AgentUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *AgentUpdateOne) RemoveJobs(v ...*ExtractionJob) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearSilos clears all "silos" edges to the Silo entity.
func (_u *AgentUpdateOne) ClearSilos() *AgentUpdateOne {
	_u.mutation.ClearSilos()
	return _u
}

// RemoveSiloIDs removes the "silos" edge to Silo entities by IDs.
func (_u *AgentUpdateOne) RemoveSiloIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveSiloIDs(ids...)
	return _u
}

// RemoveSilos removes "silos" edges to Silo entities.
func (_u *AgentUpdateOne) RemoveSilos(v ...*Silo) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSiloIDs(ids...)
}

// ClearToolServers clears all "tool_servers" edges to the ToolServer entity.
func (_u *AgentUpdateOne) ClearToolServers() *AgentUpdateOne {
	_u.mutation.ClearToolServers()
	return _u
}

// RemoveToolServerIDs removes the "tool_servers" edge to ToolServer entities by IDs.
func (_u *AgentUpdateOne) RemoveToolServerIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveToolServerIDs(ids...)
	return _u
}

// RemoveToolServers removes "tool_servers" edges to ToolServer entities.
func (_u *AgentUpdateOne) RemoveToolServers(v ...*ToolServer) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolServerIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := agent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Agent.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TextModel(); ok {
		if err := agent.TextModelValidator(v); err != nil {
			return &ValidationError{Name: "text_model", err: fmt.Errorf(`ent: validator failed for field "Agent.text_model": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(agent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(agent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextModel(); ok {
		_spec.SetField(agent.FieldTextModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisionModel(); ok {
		_spec.SetField(agent.FieldVisionModel, field.TypeString, value)
	}
	if _u.mutation.VisionModelCleared() {
		_spec.ClearField(agent.FieldVisionModel, field.TypeString)
	}
	if value, ok := _u.mutation.VisionInstruction(); ok {
		_spec.SetField(agent.FieldVisionInstruction, field.TypeString, value)
	}
	if _u.mutation.VisionInstructionCleared() {
		_spec.ClearField(agent.FieldVisionInstruction, field.TypeString)
	}
	if value, ok := _u.mutation.TextInstruction(); ok {
		_spec.SetField(agent.FieldTextInstruction, field.TypeString, value)
	}
	if _u.mutation.TextInstructionCleared() {
		_spec.ClearField(agent.FieldTextInstruction, field.TypeString)
	}
	if value, ok := _u.mutation.SkipVisionWhenText(); ok {
		_spec.SetField(agent.FieldSkipVisionWhenText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(agent.FieldTemperature, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(agent.FieldTemperature, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OutputSchemaCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutputSchemaIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SilosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSilosIDs(); len(nodes) > 0 && !_u.mutation.SilosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SilosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolServersIDs(); len(nodes) > 0 && !_u.mutation.ToolServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolServersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
