// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mattin-ai/mattin/gen/ent/agent"
	"github.com/mattin-ai/mattin/gen/ent/extractionjob"
	"github.com/mattin-ai/mattin/gen/ent/predicate"
	"github.com/mattin-ai/mattin/gen/ent/schemadefinition"
	"github.com/mattin-ai/mattin/gen/ent/schemafield"
	"github.com/mattin-ai/mattin/gen/ent/silo"
	"github.com/mattin-ai/mattin/gen/ent/toolserver"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent            = "Agent"
	TypeExtractionJob    = "ExtractionJob"
	TypeSchemaDefinition = "SchemaDefinition"
	TypeSchemaField      = "SchemaField"
	TypeSilo             = "Silo"
	TypeToolServer       = "ToolServer"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	name                  *string
	description           *string
	provider              *string
	text_model            *string
	vision_model          *string
	vision_instruction    *string
	text_instruction      *string
	skip_vision_when_text *bool
	temperature           *float32
	addtemperature        *float32
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	output_schema         *int
	clearedoutput_schema  bool
	jobs                  map[uuid.UUID]struct{}
	removedjobs           map[uuid.UUID]struct{}
	clearedjobs           bool
	silos                 map[int]struct{}
	removedsilos          map[int]struct{}
	clearedsilos          bool
	tool_servers          map[int]struct{}
	removedtool_servers   map[int]struct{}
	clearedtool_servers   bool
	done                  bool
	oldValue              func(context.Context) (*Agent, error)
	predicates            []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id int) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *AgentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AgentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AgentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[agent.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AgentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[agent.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AgentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, agent.FieldDescription)
}

// SetProvider sets the "provider" field.
func (m *AgentMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AgentMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *AgentMutation) ResetProvider() {
	m.provider = nil
}

// SetTextModel sets the "text_model" field.
func (m *AgentMutation) SetTextModel(s string) {
	m.text_model = &s
}

// TextModel returns the value of the "text_model" field in the mutation.
func (m *AgentMutation) TextModel() (r string, exists bool) {
	v := m.text_model
	if v == nil {
		return
	}
	return *v, true
}

// OldTextModel returns the old "text_model" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTextModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextModel: %w", err)
	}
	return oldValue.TextModel, nil
}

// ResetTextModel resets all changes to the "text_model" field.
func (m *AgentMutation) ResetTextModel() {
	m.text_model = nil
}

// SetVisionModel sets the "vision_model" field.
func (m *AgentMutation) SetVisionModel(s string) {
	m.vision_model = &s
}

// VisionModel returns the value of the "vision_model" field in the mutation.
func (m *AgentMutation) VisionModel() (r string, exists bool) {
	v := m.vision_model
	if v == nil {
		return
	}
	return *v, true
}

// OldVisionModel returns the old "vision_model" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldVisionModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisionModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisionModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisionModel: %w", err)
	}
	return oldValue.VisionModel, nil
}

// ClearVisionModel clears the value of the "vision_model" field.
func (m *AgentMutation) ClearVisionModel() {
	m.vision_model = nil
	m.clearedFields[agent.FieldVisionModel] = struct{}{}
}

// VisionModelCleared returns if the "vision_model" field was cleared in this mutation.
func (m *AgentMutation) VisionModelCleared() bool {
	_, ok := m.clearedFields[agent.FieldVisionModel]
	return ok
}

// ResetVisionModel resets all changes to the "vision_model" field.
func (m *AgentMutation) ResetVisionModel() {
	m.vision_model = nil
	delete(m.clearedFields, agent.FieldVisionModel)
}

// SetVisionInstruction sets the "vision_instruction" field.
func (m *AgentMutation) SetVisionInstruction(s string) {
	m.vision_instruction = &s
}

// VisionInstruction returns the value of the "vision_instruction" field in the mutation.
func (m *AgentMutation) VisionInstruction() (r string, exists bool) {
	v := m.vision_instruction
	if v == nil {
		return
	}
	return *v, true
}

// OldVisionInstruction returns the old "vision_instruction" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldVisionInstruction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisionInstruction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisionInstruction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisionInstruction: %w", err)
	}
	return oldValue.VisionInstruction, nil
}

// ClearVisionInstruction clears the value of the "vision_instruction" field.
func (m *AgentMutation) ClearVisionInstruction() {
	m.vision_instruction = nil
	m.clearedFields[agent.FieldVisionInstruction] = struct{}{}
}

// VisionInstructionCleared returns if the "vision_instruction" field was cleared in this mutation.
func (m *AgentMutation) VisionInstructionCleared() bool {
	_, ok := m.clearedFields[agent.FieldVisionInstruction]
	return ok
}

// ResetVisionInstruction resets all changes to the "vision_instruction" field.
func (m *AgentMutation) ResetVisionInstruction() {
	m.vision_instruction = nil
	delete(m.clearedFields, agent.FieldVisionInstruction)
}

// SetTextInstruction sets the "text_instruction" field.
func (m *AgentMutation) SetTextInstruction(s string) {
	m.text_instruction = &s
}

// TextInstruction returns the value of the "text_instruction" field in the mutation.
func (m *AgentMutation) TextInstruction() (r string, exists bool) {
	v := m.text_instruction
	if v == nil {
		return
	}
	return *v, true
}

// OldTextInstruction returns the old "text_instruction" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTextInstruction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextInstruction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextInstruction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextInstruction: %w", err)
	}
	return oldValue.TextInstruction, nil
}

// ClearTextInstruction clears the value of the "text_instruction" field.
func (m *AgentMutation) ClearTextInstruction() {
	m.text_instruction = nil
	m.clearedFields[agent.FieldTextInstruction] = struct{}{}
}

// TextInstructionCleared returns if the "text_instruction" field was cleared in this mutation.
func (m *AgentMutation) TextInstructionCleared() bool {
	_, ok := m.clearedFields[agent.FieldTextInstruction]
	return ok
}

// ResetTextInstruction resets all changes to the "text_instruction" field.
func (m *AgentMutation) ResetTextInstruction() {
	m.text_instruction = nil
	delete(m.clearedFields, agent.FieldTextInstruction)
}

// SetOutputSchemaID sets the "output_schema_id" field.
func (m *AgentMutation) SetOutputSchemaID(i int) {
	m.output_schema = &i
}

// OutputSchemaID returns the value of the "output_schema_id" field in the mutation.
func (m *AgentMutation) OutputSchemaID() (r int, exists bool) {
	v := m.output_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSchemaID returns the old "output_schema_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldOutputSchemaID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSchemaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSchemaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSchemaID: %w", err)
	}
	return oldValue.OutputSchemaID, nil
}

// ClearOutputSchemaID clears the value of the "output_schema_id" field.
func (m *AgentMutation) ClearOutputSchemaID() {
	m.output_schema = nil
	m.clearedFields[agent.FieldOutputSchemaID] = struct{}{}
}

// OutputSchemaIDCleared returns if the "output_schema_id" field was cleared in this mutation.
func (m *AgentMutation) OutputSchemaIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldOutputSchemaID]
	return ok
}

// ResetOutputSchemaID resets all changes to the "output_schema_id" field.
func (m *AgentMutation) ResetOutputSchemaID() {
	m.output_schema = nil
	delete(m.clearedFields, agent.FieldOutputSchemaID)
}

// SetSkipVisionWhenText sets the "skip_vision_when_text" field.
func (m *AgentMutation) SetSkipVisionWhenText(b bool) {
	m.skip_vision_when_text = &b
}

// SkipVisionWhenText returns the value of the "skip_vision_when_text" field in the mutation.
func (m *AgentMutation) SkipVisionWhenText() (r bool, exists bool) {
	v := m.skip_vision_when_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipVisionWhenText returns the old "skip_vision_when_text" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSkipVisionWhenText(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipVisionWhenText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipVisionWhenText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipVisionWhenText: %w", err)
	}
	return oldValue.SkipVisionWhenText, nil
}

// ResetSkipVisionWhenText resets all changes to the "skip_vision_when_text" field.
func (m *AgentMutation) ResetSkipVisionWhenText() {
	m.skip_vision_when_text = nil
}

// SetTemperature sets the "temperature" field.
func (m *AgentMutation) SetTemperature(f float32) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *AgentMutation) Temperature() (r float32, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTemperature(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *AgentMutation) AddTemperature(f float32) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *AgentMutation) AddedTemperature() (r float32, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *AgentMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearOutputSchema clears the "output_schema" edge to the SchemaDefinition entity.
func (m *AgentMutation) ClearOutputSchema() {
	m.clearedoutput_schema = true
	m.clearedFields[agent.FieldOutputSchemaID] = struct{}{}
}

// OutputSchemaCleared reports if the "output_schema" edge to the SchemaDefinition entity was cleared.
func (m *AgentMutation) OutputSchemaCleared() bool {
	return m.OutputSchemaIDCleared() || m.clearedoutput_schema
}

// OutputSchemaIDs returns the "output_schema" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OutputSchemaID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) OutputSchemaIDs() (ids []int) {
	if id := m.output_schema; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOutputSchema resets all changes to the "output_schema" edge.
func (m *AgentMutation) ResetOutputSchema() {
	m.output_schema = nil
	m.clearedoutput_schema = false
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by ids.
func (m *AgentMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractionJob entity.
func (m *AgentMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractionJob entity was cleared.
func (m *AgentMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractionJob entity by IDs.
func (m *AgentMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractionJob entity.
func (m *AgentMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *AgentMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *AgentMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddSiloIDs adds the "silos" edge to the Silo entity by ids.
func (m *AgentMutation) AddSiloIDs(ids ...int) {
	if m.silos == nil {
		m.silos = make(map[int]struct{})
	}
	for i := range ids {
		m.silos[ids[i]] = struct{}{}
	}
}

// ClearSilos clears the "silos" edge to the Silo entity.
func (m *AgentMutation) ClearSilos() {
	m.clearedsilos = true
}

// SilosCleared reports if the "silos" edge to the Silo entity was cleared.
func (m *AgentMutation) SilosCleared() bool {
	return m.clearedsilos
}

// RemoveSiloIDs removes the "silos" edge to the Silo entity by IDs.
func (m *AgentMutation) RemoveSiloIDs(ids ...int) {
	if m.removedsilos == nil {
		m.removedsilos = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.silos, ids[i])
		m.removedsilos[ids[i]] = struct{}{}
	}
}

// RemovedSilos returns the removed IDs of the "silos" edge to the Silo entity.
func (m *AgentMutation) RemovedSilosIDs() (ids []int) {
	for id := range m.removedsilos {
		ids = append(ids, id)
	}
	return
}

// SilosIDs returns the "silos" edge IDs in the mutation.
func (m *AgentMutation) SilosIDs() (ids []int) {
	for id := range m.silos {
		ids = append(ids, id)
	}
	return
}

// ResetSilos resets all changes to the "silos" edge.
func (m *AgentMutation) ResetSilos() {
	m.silos = nil
	m.clearedsilos = false
	m.removedsilos = nil
}

// AddToolServerIDs adds the "tool_servers" edge to the ToolServer entity by ids.
func (m *AgentMutation) AddToolServerIDs(ids ...int) {
	if m.tool_servers == nil {
		m.tool_servers = make(map[int]struct{})
	}
	for i := range ids {
		m.tool_servers[ids[i]] = struct{}{}
	}
}

// ClearToolServers clears the "tool_servers" edge to the ToolServer entity.
func (m *AgentMutation) ClearToolServers() {
	m.clearedtool_servers = true
}

// ToolServersCleared reports if the "tool_servers" edge to the ToolServer entity was cleared.
func (m *AgentMutation) ToolServersCleared() bool {
	return m.clearedtool_servers
}

// RemoveToolServerIDs removes the "tool_servers" edge to the ToolServer entity by IDs.
func (m *AgentMutation) RemoveToolServerIDs(ids ...int) {
	if m.removedtool_servers == nil {
		m.removedtool_servers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tool_servers, ids[i])
		m.removedtool_servers[ids[i]] = struct{}{}
	}
}

// RemovedToolServers returns the removed IDs of the "tool_servers" edge to the ToolServer entity.
func (m *AgentMutation) RemovedToolServersIDs() (ids []int) {
	for id := range m.removedtool_servers {
		ids = append(ids, id)
	}
	return
}

// ToolServersIDs returns the "tool_servers" edge IDs in the mutation.
func (m *AgentMutation) ToolServersIDs() (ids []int) {
	for id := range m.tool_servers {
		ids = append(ids, id)
	}
	return
}

// ResetToolServers resets all changes to the "tool_servers" edge.
func (m *AgentMutation) ResetToolServers() {
	m.tool_servers = nil
	m.clearedtool_servers = false
	m.removedtool_servers = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.description != nil {
		fields = append(fields, agent.FieldDescription)
	}
	if m.provider != nil {
		fields = append(fields, agent.FieldProvider)
	}
	if m.text_model != nil {
		fields = append(fields, agent.FieldTextModel)
	}
	if m.vision_model != nil {
		fields = append(fields, agent.FieldVisionModel)
	}
	if m.vision_instruction != nil {
		fields = append(fields, agent.FieldVisionInstruction)
	}
	if m.text_instruction != nil {
		fields = append(fields, agent.FieldTextInstruction)
	}
	if m.output_schema != nil {
		fields = append(fields, agent.FieldOutputSchemaID)
	}
	if m.skip_vision_when_text != nil {
		fields = append(fields, agent.FieldSkipVisionWhenText)
	}
	if m.temperature != nil {
		fields = append(fields, agent.FieldTemperature)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldName:
		return m.Name()
	case agent.FieldDescription:
		return m.Description()
	case agent.FieldProvider:
		return m.Provider()
	case agent.FieldTextModel:
		return m.TextModel()
	case agent.FieldVisionModel:
		return m.VisionModel()
	case agent.FieldVisionInstruction:
		return m.VisionInstruction()
	case agent.FieldTextInstruction:
		return m.TextInstruction()
	case agent.FieldOutputSchemaID:
		return m.OutputSchemaID()
	case agent.FieldSkipVisionWhenText:
		return m.SkipVisionWhenText()
	case agent.FieldTemperature:
		return m.Temperature()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldDescription:
		return m.OldDescription(ctx)
	case agent.FieldProvider:
		return m.OldProvider(ctx)
	case agent.FieldTextModel:
		return m.OldTextModel(ctx)
	case agent.FieldVisionModel:
		return m.OldVisionModel(ctx)
	case agent.FieldVisionInstruction:
		return m.OldVisionInstruction(ctx)
	case agent.FieldTextInstruction:
		return m.OldTextInstruction(ctx)
	case agent.FieldOutputSchemaID:
		return m.OldOutputSchemaID(ctx)
	case agent.FieldSkipVisionWhenText:
		return m.OldSkipVisionWhenText(ctx)
	case agent.FieldTemperature:
		return m.OldTemperature(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case agent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case agent.FieldTextModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextModel(v)
		return nil
	case agent.FieldVisionModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisionModel(v)
		return nil
	case agent.FieldVisionInstruction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisionInstruction(v)
		return nil
	case agent.FieldTextInstruction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextInstruction(v)
		return nil
	case agent.FieldOutputSchemaID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSchemaID(v)
		return nil
	case agent.FieldSkipVisionWhenText:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipVisionWhenText(v)
		return nil
	case agent.FieldTemperature:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, agent.FieldTemperature)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldTemperature:
		return m.AddedTemperature()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldTemperature:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldDescription) {
		fields = append(fields, agent.FieldDescription)
	}
	if m.FieldCleared(agent.FieldVisionModel) {
		fields = append(fields, agent.FieldVisionModel)
	}
	if m.FieldCleared(agent.FieldVisionInstruction) {
		fields = append(fields, agent.FieldVisionInstruction)
	}
	if m.FieldCleared(agent.FieldTextInstruction) {
		fields = append(fields, agent.FieldTextInstruction)
	}
	if m.FieldCleared(agent.FieldOutputSchemaID) {
		fields = append(fields, agent.FieldOutputSchemaID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldDescription:
		m.ClearDescription()
		return nil
	case agent.FieldVisionModel:
		m.ClearVisionModel()
		return nil
	case agent.FieldVisionInstruction:
		m.ClearVisionInstruction()
		return nil
	case agent.FieldTextInstruction:
		m.ClearTextInstruction()
		return nil
	case agent.FieldOutputSchemaID:
		m.ClearOutputSchemaID()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldDescription:
		m.ResetDescription()
		return nil
	case agent.FieldProvider:
		m.ResetProvider()
		return nil
	case agent.FieldTextModel:
		m.ResetTextModel()
		return nil
	case agent.FieldVisionModel:
		m.ResetVisionModel()
		return nil
	case agent.FieldVisionInstruction:
		m.ResetVisionInstruction()
		return nil
	case agent.FieldTextInstruction:
		m.ResetTextInstruction()
		return nil
	case agent.FieldOutputSchemaID:
		m.ResetOutputSchemaID()
		return nil
	case agent.FieldSkipVisionWhenText:
		m.ResetSkipVisionWhenText()
		return nil
	case agent.FieldTemperature:
		m.ResetTemperature()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.output_schema != nil {
		edges = append(edges, agent.EdgeOutputSchema)
	}
	if m.jobs != nil {
		edges = append(edges, agent.EdgeJobs)
	}
	if m.silos != nil {
		edges = append(edges, agent.EdgeSilos)
	}
	if m.tool_servers != nil {
		edges = append(edges, agent.EdgeToolServers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeOutputSchema:
		if id := m.output_schema; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeSilos:
		ids := make([]ent.Value, 0, len(m.silos))
		for id := range m.silos {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeToolServers:
		ids := make([]ent.Value, 0, len(m.tool_servers))
		for id := range m.tool_servers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedjobs != nil {
		edges = append(edges, agent.EdgeJobs)
	}
	if m.removedsilos != nil {
		edges = append(edges, agent.EdgeSilos)
	}
	if m.removedtool_servers != nil {
		edges = append(edges, agent.EdgeToolServers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeSilos:
		ids := make([]ent.Value, 0, len(m.removedsilos))
		for id := range m.removedsilos {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeToolServers:
		ids := make([]ent.Value, 0, len(m.removedtool_servers))
		for id := range m.removedtool_servers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedoutput_schema {
		edges = append(edges, agent.EdgeOutputSchema)
	}
	if m.clearedjobs {
		edges = append(edges, agent.EdgeJobs)
	}
	if m.clearedsilos {
		edges = append(edges, agent.EdgeSilos)
	}
	if m.clearedtool_servers {
		edges = append(edges, agent.EdgeToolServers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeOutputSchema:
		return m.clearedoutput_schema
	case agent.EdgeJobs:
		return m.clearedjobs
	case agent.EdgeSilos:
		return m.clearedsilos
	case agent.EdgeToolServers:
		return m.clearedtool_servers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeOutputSchema:
		m.ClearOutputSchema()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeOutputSchema:
		m.ResetOutputSchema()
		return nil
	case agent.EdgeJobs:
		m.ResetJobs()
		return nil
	case agent.EdgeSilos:
		m.ResetSilos()
		return nil
	case agent.EdgeToolServers:
		m.ResetToolServers()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// ExtractionJobMutation represents an operation that mutates the ExtractionJob nodes in the graph.
type ExtractionJobMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	document_name  *string
	status         *string
	result         *json.RawMessage
	appendresult   json.RawMessage
	error_message  *string
	pages          *int
	addpages       *int
	has_plain_text *bool
	trace          *[]string
	appendtrace    []string
	started_at     *time.Time
	finished_at    *time.Time
	ocr_text       *string
	clearedFields  map[string]struct{}
	agent          *int
	clearedagent   bool
	done           bool
	oldValue       func(context.Context) (*ExtractionJob, error)
	predicates     []predicate.ExtractionJob
}

var _ ent.Mutation = (*ExtractionJobMutation)(nil)

// extractionjobOption allows management of the mutation configuration using functional options.
type extractionjobOption func(*ExtractionJobMutation)

// newExtractionJobMutation creates new mutation for the ExtractionJob entity.
func newExtractionJobMutation(c config, op Op, opts ...extractionjobOption) *ExtractionJobMutation {
	m := &ExtractionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionJobID sets the ID field of the mutation.
func withExtractionJobID(id uuid.UUID) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionJob sets the old ExtractionJob of the mutation.
func withExtractionJob(node *ExtractionJob) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		m.oldValue = func(context.Context) (*ExtractionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionJob entities.
func (m *ExtractionJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *ExtractionJobMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ExtractionJobMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ExtractionJobMutation) ResetAgentID() {
	m.agent = nil
}

// SetDocumentName sets the "document_name" field.
func (m *ExtractionJobMutation) SetDocumentName(s string) {
	m.document_name = &s
}

// DocumentName returns the value of the "document_name" field in the mutation.
func (m *ExtractionJobMutation) DocumentName() (r string, exists bool) {
	v := m.document_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentName returns the old "document_name" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldDocumentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentName: %w", err)
	}
	return oldValue.DocumentName, nil
}

// ResetDocumentName resets all changes to the "document_name" field.
func (m *ExtractionJobMutation) ResetDocumentName() {
	m.document_name = nil
}

// SetStatus sets the "status" field.
func (m *ExtractionJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionJobMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *ExtractionJobMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *ExtractionJobMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *ExtractionJobMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *ExtractionJobMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *ExtractionJobMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[extractionjob.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ExtractionJobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ExtractionJobMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, extractionjob.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionjob.FieldErrorMessage)
}

// SetPages sets the "pages" field.
func (m *ExtractionJobMutation) SetPages(i int) {
	m.pages = &i
	m.addpages = nil
}

// Pages returns the value of the "pages" field in the mutation.
func (m *ExtractionJobMutation) Pages() (r int, exists bool) {
	v := m.pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPages returns the old "pages" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPages: %w", err)
	}
	return oldValue.Pages, nil
}

// AddPages adds i to the "pages" field.
func (m *ExtractionJobMutation) AddPages(i int) {
	if m.addpages != nil {
		*m.addpages += i
	} else {
		m.addpages = &i
	}
}

// AddedPages returns the value that was added to the "pages" field in this mutation.
func (m *ExtractionJobMutation) AddedPages() (r int, exists bool) {
	v := m.addpages
	if v == nil {
		return
	}
	return *v, true
}

// ResetPages resets all changes to the "pages" field.
func (m *ExtractionJobMutation) ResetPages() {
	m.pages = nil
	m.addpages = nil
}

// SetHasPlainText sets the "has_plain_text" field.
func (m *ExtractionJobMutation) SetHasPlainText(b bool) {
	m.has_plain_text = &b
}

// HasPlainText returns the value of the "has_plain_text" field in the mutation.
func (m *ExtractionJobMutation) HasPlainText() (r bool, exists bool) {
	v := m.has_plain_text
	if v == nil {
		return
	}
	return *v, true
}

// OldHasPlainText returns the old "has_plain_text" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldHasPlainText(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasPlainText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasPlainText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasPlainText: %w", err)
	}
	return oldValue.HasPlainText, nil
}

// ResetHasPlainText resets all changes to the "has_plain_text" field.
func (m *ExtractionJobMutation) ResetHasPlainText() {
	m.has_plain_text = nil
}

// SetTrace sets the "trace" field.
func (m *ExtractionJobMutation) SetTrace(s []string) {
	m.trace = &s
	m.appendtrace = nil
}

// Trace returns the value of the "trace" field in the mutation.
func (m *ExtractionJobMutation) Trace() (r []string, exists bool) {
	v := m.trace
	if v == nil {
		return
	}
	return *v, true
}

// OldTrace returns the old "trace" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTrace(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrace: %w", err)
	}
	return oldValue.Trace, nil
}

// AppendTrace adds s to the "trace" field.
func (m *ExtractionJobMutation) AppendTrace(s []string) {
	m.appendtrace = append(m.appendtrace, s...)
}

// AppendedTrace returns the list of values that were appended to the "trace" field in this mutation.
func (m *ExtractionJobMutation) AppendedTrace() ([]string, bool) {
	if len(m.appendtrace) == 0 {
		return nil, false
	}
	return m.appendtrace, true
}

// ClearTrace clears the value of the "trace" field.
func (m *ExtractionJobMutation) ClearTrace() {
	m.trace = nil
	m.appendtrace = nil
	m.clearedFields[extractionjob.FieldTrace] = struct{}{}
}

// TraceCleared returns if the "trace" field was cleared in this mutation.
func (m *ExtractionJobMutation) TraceCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldTrace]
	return ok
}

// ResetTrace resets all changes to the "trace" field.
func (m *ExtractionJobMutation) ResetTrace() {
	m.trace = nil
	m.appendtrace = nil
	delete(m.clearedFields, extractionjob.FieldTrace)
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractionJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractionJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractionJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractionjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractionJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractionJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractionjob.FieldFinishedAt)
}

// SetOcrText sets the "ocr_text" field.
func (m *ExtractionJobMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *ExtractionJobMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *ExtractionJobMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[extractionjob.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *ExtractionJobMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *ExtractionJobMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, extractionjob.FieldOcrText)
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *ExtractionJobMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[extractionjob.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *ExtractionJobMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *ExtractionJobMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *ExtractionJobMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the ExtractionJobMutation builder.
func (m *ExtractionJobMutation) Where(ps ...predicate.ExtractionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionJob).
func (m *ExtractionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.agent != nil {
		fields = append(fields, extractionjob.FieldAgentID)
	}
	if m.document_name != nil {
		fields = append(fields, extractionjob.FieldDocumentName)
	}
	if m.status != nil {
		fields = append(fields, extractionjob.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, extractionjob.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.pages != nil {
		fields = append(fields, extractionjob.FieldPages)
	}
	if m.has_plain_text != nil {
		fields = append(fields, extractionjob.FieldHasPlainText)
	}
	if m.trace != nil {
		fields = append(fields, extractionjob.FieldTrace)
	}
	if m.started_at != nil {
		fields = append(fields, extractionjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractionjob.FieldFinishedAt)
	}
	if m.ocr_text != nil {
		fields = append(fields, extractionjob.FieldOcrText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldAgentID:
		return m.AgentID()
	case extractionjob.FieldDocumentName:
		return m.DocumentName()
	case extractionjob.FieldStatus:
		return m.Status()
	case extractionjob.FieldResult:
		return m.Result()
	case extractionjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionjob.FieldPages:
		return m.Pages()
	case extractionjob.FieldHasPlainText:
		return m.HasPlainText()
	case extractionjob.FieldTrace:
		return m.Trace()
	case extractionjob.FieldStartedAt:
		return m.StartedAt()
	case extractionjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractionjob.FieldOcrText:
		return m.OcrText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionjob.FieldAgentID:
		return m.OldAgentID(ctx)
	case extractionjob.FieldDocumentName:
		return m.OldDocumentName(ctx)
	case extractionjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractionjob.FieldResult:
		return m.OldResult(ctx)
	case extractionjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionjob.FieldPages:
		return m.OldPages(ctx)
	case extractionjob.FieldHasPlainText:
		return m.OldHasPlainText(ctx)
	case extractionjob.FieldTrace:
		return m.OldTrace(ctx)
	case extractionjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractionjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractionjob.FieldOcrText:
		return m.OldOcrText(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case extractionjob.FieldDocumentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentName(v)
		return nil
	case extractionjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionjob.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case extractionjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionjob.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPages(v)
		return nil
	case extractionjob.FieldHasPlainText:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasPlainText(v)
		return nil
	case extractionjob.FieldTrace:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrace(v)
		return nil
	case extractionjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractionjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractionjob.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionJobMutation) AddedFields() []string {
	var fields []string
	if m.addpages != nil {
		fields = append(fields, extractionjob.FieldPages)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldPages:
		return m.AddedPages()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPages(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionjob.FieldResult) {
		fields = append(fields, extractionjob.FieldResult)
	}
	if m.FieldCleared(extractionjob.FieldErrorMessage) {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractionjob.FieldTrace) {
		fields = append(fields, extractionjob.FieldTrace)
	}
	if m.FieldCleared(extractionjob.FieldFinishedAt) {
		fields = append(fields, extractionjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractionjob.FieldOcrText) {
		fields = append(fields, extractionjob.FieldOcrText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ClearField(name string) error {
	switch name {
	case extractionjob.FieldResult:
		m.ClearResult()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractionjob.FieldTrace:
		m.ClearTrace()
		return nil
	case extractionjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractionjob.FieldOcrText:
		m.ClearOcrText()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ResetField(name string) error {
	switch name {
	case extractionjob.FieldAgentID:
		m.ResetAgentID()
		return nil
	case extractionjob.FieldDocumentName:
		m.ResetDocumentName()
		return nil
	case extractionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionjob.FieldResult:
		m.ResetResult()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionjob.FieldPages:
		m.ResetPages()
		return nil
	case extractionjob.FieldHasPlainText:
		m.ResetHasPlainText()
		return nil
	case extractionjob.FieldTrace:
		m.ResetTrace()
		return nil
	case extractionjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractionjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractionjob.FieldOcrText:
		m.ResetOcrText()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, extractionjob.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, extractionjob.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionjob.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionJobMutation) ClearEdge(name string) error {
	switch name {
	case extractionjob.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionJobMutation) ResetEdge(name string) error {
	switch name {
	case extractionjob.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob edge %s", name)
}

// SchemaDefinitionMutation represents an operation that mutates the SchemaDefinition nodes in the graph.
type SchemaDefinitionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	fields        map[int]struct{}
	removedfields map[int]struct{}
	clearedfields bool
	agents        map[int]struct{}
	removedagents map[int]struct{}
	clearedagents bool
	done          bool
	oldValue      func(context.Context) (*SchemaDefinition, error)
	predicates    []predicate.SchemaDefinition
}

var _ ent.Mutation = (*SchemaDefinitionMutation)(nil)

// schemadefinitionOption allows management of the mutation configuration using functional options.
type schemadefinitionOption func(*SchemaDefinitionMutation)

// newSchemaDefinitionMutation creates new mutation for the SchemaDefinition entity.
func newSchemaDefinitionMutation(c config, op Op, opts ...schemadefinitionOption) *SchemaDefinitionMutation {
	m := &SchemaDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeSchemaDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchemaDefinitionID sets the ID field of the mutation.
func withSchemaDefinitionID(id int) schemadefinitionOption {
	return func(m *SchemaDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *SchemaDefinition
		)
		m.oldValue = func(ctx context.Context) (*SchemaDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SchemaDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchemaDefinition sets the old SchemaDefinition of the mutation.
func withSchemaDefinition(node *SchemaDefinition) schemadefinitionOption {
	return func(m *SchemaDefinitionMutation) {
		m.oldValue = func(context.Context) (*SchemaDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchemaDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchemaDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchemaDefinitionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchemaDefinitionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SchemaDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SchemaDefinitionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SchemaDefinitionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SchemaDefinition entity.
// If the SchemaDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaDefinitionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SchemaDefinitionMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SchemaDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SchemaDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SchemaDefinition entity.
// If the SchemaDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SchemaDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SchemaDefinitionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SchemaDefinitionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SchemaDefinition entity.
// If the SchemaDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaDefinitionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SchemaDefinitionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFieldIDs adds the "fields" edge to the SchemaField entity by ids.
func (m *SchemaDefinitionMutation) AddFieldIDs(ids ...int) {
	if m.fields == nil {
		m.fields = make(map[int]struct{})
	}
	for i := range ids {
		m.fields[ids[i]] = struct{}{}
	}
}

// ClearFields clears the "fields" edge to the SchemaField entity.
func (m *SchemaDefinitionMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the SchemaField entity was cleared.
func (m *SchemaDefinitionMutation) FieldsCleared() bool {
	return m.clearedfields
}

// RemoveFieldIDs removes the "fields" edge to the SchemaField entity by IDs.
func (m *SchemaDefinitionMutation) RemoveFieldIDs(ids ...int) {
	if m.removedfields == nil {
		m.removedfields = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.fields, ids[i])
		m.removedfields[ids[i]] = struct{}{}
	}
}

// RemovedFields returns the removed IDs of the "fields" edge to the SchemaField entity.
func (m *SchemaDefinitionMutation) RemovedFieldsIDs() (ids []int) {
	for id := range m.removedfields {
		ids = append(ids, id)
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
func (m *SchemaDefinitionMutation) FieldsIDs() (ids []int) {
	for id := range m.fields {
		ids = append(ids, id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *SchemaDefinitionMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
	m.removedfields = nil
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *SchemaDefinitionMutation) AddAgentIDs(ids ...int) {
	if m.agents == nil {
		m.agents = make(map[int]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *SchemaDefinitionMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *SchemaDefinitionMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *SchemaDefinitionMutation) RemoveAgentIDs(ids ...int) {
	if m.removedagents == nil {
		m.removedagents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *SchemaDefinitionMutation) RemovedAgentsIDs() (ids []int) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *SchemaDefinitionMutation) AgentsIDs() (ids []int) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *SchemaDefinitionMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// Where appends a list predicates to the SchemaDefinitionMutation builder.
func (m *SchemaDefinitionMutation) Where(ps ...predicate.SchemaDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchemaDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchemaDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SchemaDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchemaDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchemaDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SchemaDefinition).
func (m *SchemaDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchemaDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, schemadefinition.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, schemadefinition.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, schemadefinition.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchemaDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schemadefinition.FieldName:
		return m.Name()
	case schemadefinition.FieldCreatedAt:
		return m.CreatedAt()
	case schemadefinition.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchemaDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schemadefinition.FieldName:
		return m.OldName(ctx)
	case schemadefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case schemadefinition.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SchemaDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchemaDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schemadefinition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case schemadefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case schemadefinition.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SchemaDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchemaDefinitionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchemaDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchemaDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SchemaDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchemaDefinitionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchemaDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchemaDefinitionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SchemaDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchemaDefinitionMutation) ResetField(name string) error {
	switch name {
	case schemadefinition.FieldName:
		m.ResetName()
		return nil
	case schemadefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case schemadefinition.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SchemaDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchemaDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.fields != nil {
		edges = append(edges, schemadefinition.EdgeFields)
	}
	if m.agents != nil {
		edges = append(edges, schemadefinition.EdgeAgents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchemaDefinitionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case schemadefinition.EdgeFields:
		ids := make([]ent.Value, 0, len(m.fields))
		for id := range m.fields {
			ids = append(ids, id)
		}
		return ids
	case schemadefinition.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchemaDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfields != nil {
		edges = append(edges, schemadefinition.EdgeFields)
	}
	if m.removedagents != nil {
		edges = append(edges, schemadefinition.EdgeAgents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchemaDefinitionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case schemadefinition.EdgeFields:
		ids := make([]ent.Value, 0, len(m.removedfields))
		for id := range m.removedfields {
			ids = append(ids, id)
		}
		return ids
	case schemadefinition.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchemaDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfields {
		edges = append(edges, schemadefinition.EdgeFields)
	}
	if m.clearedagents {
		edges = append(edges, schemadefinition.EdgeAgents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchemaDefinitionMutation) EdgeCleared(name string) bool {
	switch name {
	case schemadefinition.EdgeFields:
		return m.clearedfields
	case schemadefinition.EdgeAgents:
		return m.clearedagents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchemaDefinitionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SchemaDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchemaDefinitionMutation) ResetEdge(name string) error {
	switch name {
	case schemadefinition.EdgeFields:
		m.ResetFields()
		return nil
	case schemadefinition.EdgeAgents:
		m.ResetAgents()
		return nil
	}
	return fmt.Errorf("unknown SchemaDefinition edge %s", name)
}

// SchemaFieldMutation represents an operation that mutates the SchemaField nodes in the graph.
type SchemaFieldMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	name                 *string
	field_type           *string
	description          *string
	position             *int
	addposition          *int
	list_item_type       *string
	clearedFields        map[string]struct{}
	definition           *int
	cleareddefinition    bool
	nested_schema        *int
	clearednested_schema bool
	done                 bool
	oldValue             func(context.Context) (*SchemaField, error)
	predicates           []predicate.SchemaField
}

var _ ent.Mutation = (*SchemaFieldMutation)(nil)

// schemafieldOption allows management of the mutation configuration using functional options.
type schemafieldOption func(*SchemaFieldMutation)

// newSchemaFieldMutation creates new mutation for the SchemaField entity.
func newSchemaFieldMutation(c config, op Op, opts ...schemafieldOption) *SchemaFieldMutation {
	m := &SchemaFieldMutation{
		config:        c,
		op:            op,
		typ:           TypeSchemaField,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchemaFieldID sets the ID field of the mutation.
func withSchemaFieldID(id int) schemafieldOption {
	return func(m *SchemaFieldMutation) {
		var (
			err   error
			once  sync.Once
			value *SchemaField
		)
		m.oldValue = func(ctx context.Context) (*SchemaField, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SchemaField.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchemaField sets the old SchemaField of the mutation.
func withSchemaField(node *SchemaField) schemafieldOption {
	return func(m *SchemaFieldMutation) {
		m.oldValue = func(context.Context) (*SchemaField, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchemaFieldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchemaFieldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchemaFieldMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchemaFieldMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SchemaField.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDefinitionID sets the "definition_id" field.
func (m *SchemaFieldMutation) SetDefinitionID(i int) {
	m.definition = &i
}

// DefinitionID returns the value of the "definition_id" field in the mutation.
func (m *SchemaFieldMutation) DefinitionID() (r int, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinitionID returns the old "definition_id" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldDefinitionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinitionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinitionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinitionID: %w", err)
	}
	return oldValue.DefinitionID, nil
}

// ResetDefinitionID resets all changes to the "definition_id" field.
func (m *SchemaFieldMutation) ResetDefinitionID() {
	m.definition = nil
}

// SetName sets the "name" field.
func (m *SchemaFieldMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SchemaFieldMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SchemaFieldMutation) ResetName() {
	m.name = nil
}

// SetFieldType sets the "field_type" field.
func (m *SchemaFieldMutation) SetFieldType(s string) {
	m.field_type = &s
}

// FieldType returns the value of the "field_type" field in the mutation.
func (m *SchemaFieldMutation) FieldType() (r string, exists bool) {
	v := m.field_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldType returns the old "field_type" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldFieldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldType: %w", err)
	}
	return oldValue.FieldType, nil
}

// ResetFieldType resets all changes to the "field_type" field.
func (m *SchemaFieldMutation) ResetFieldType() {
	m.field_type = nil
}

// SetDescription sets the "description" field.
func (m *SchemaFieldMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SchemaFieldMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SchemaFieldMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[schemafield.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SchemaFieldMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[schemafield.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SchemaFieldMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, schemafield.FieldDescription)
}

// SetPosition sets the "position" field.
func (m *SchemaFieldMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *SchemaFieldMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *SchemaFieldMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *SchemaFieldMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *SchemaFieldMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetNestedSchemaID sets the "nested_schema_id" field.
func (m *SchemaFieldMutation) SetNestedSchemaID(i int) {
	m.nested_schema = &i
}

// NestedSchemaID returns the value of the "nested_schema_id" field in the mutation.
func (m *SchemaFieldMutation) NestedSchemaID() (r int, exists bool) {
	v := m.nested_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldNestedSchemaID returns the old "nested_schema_id" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldNestedSchemaID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNestedSchemaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNestedSchemaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNestedSchemaID: %w", err)
	}
	return oldValue.NestedSchemaID, nil
}

// ClearNestedSchemaID clears the value of the "nested_schema_id" field.
func (m *SchemaFieldMutation) ClearNestedSchemaID() {
	m.nested_schema = nil
	m.clearedFields[schemafield.FieldNestedSchemaID] = struct{}{}
}

// NestedSchemaIDCleared returns if the "nested_schema_id" field was cleared in this mutation.
func (m *SchemaFieldMutation) NestedSchemaIDCleared() bool {
	_, ok := m.clearedFields[schemafield.FieldNestedSchemaID]
	return ok
}

// ResetNestedSchemaID resets all changes to the "nested_schema_id" field.
func (m *SchemaFieldMutation) ResetNestedSchemaID() {
	m.nested_schema = nil
	delete(m.clearedFields, schemafield.FieldNestedSchemaID)
}

// SetListItemType sets the "list_item_type" field.
func (m *SchemaFieldMutation) SetListItemType(s string) {
	m.list_item_type = &s
}

// ListItemType returns the value of the "list_item_type" field in the mutation.
func (m *SchemaFieldMutation) ListItemType() (r string, exists bool) {
	v := m.list_item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldListItemType returns the old "list_item_type" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldListItemType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListItemType: %w", err)
	}
	return oldValue.ListItemType, nil
}

// ClearListItemType clears the value of the "list_item_type" field.
func (m *SchemaFieldMutation) ClearListItemType() {
	m.list_item_type = nil
	m.clearedFields[schemafield.FieldListItemType] = struct{}{}
}

// ListItemTypeCleared returns if the "list_item_type" field was cleared in this mutation.
func (m *SchemaFieldMutation) ListItemTypeCleared() bool {
	_, ok := m.clearedFields[schemafield.FieldListItemType]
	return ok
}

// ResetListItemType resets all changes to the "list_item_type" field.
func (m *SchemaFieldMutation) ResetListItemType() {
	m.list_item_type = nil
	delete(m.clearedFields, schemafield.FieldListItemType)
}

// ClearDefinition clears the "definition" edge to the SchemaDefinition entity.
func (m *SchemaFieldMutation) ClearDefinition() {
	m.cleareddefinition = true
	m.clearedFields[schemafield.FieldDefinitionID] = struct{}{}
}

// DefinitionCleared reports if the "definition" edge to the SchemaDefinition entity was cleared.
func (m *SchemaFieldMutation) DefinitionCleared() bool {
	return m.cleareddefinition
}

// DefinitionIDs returns the "definition" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DefinitionID instead. It exists only for internal usage by the builders.
func (m *SchemaFieldMutation) DefinitionIDs() (ids []int) {
	if id := m.definition; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDefinition resets all changes to the "definition" edge.
func (m *SchemaFieldMutation) ResetDefinition() {
	m.definition = nil
	m.cleareddefinition = false
}

// ClearNestedSchema clears the "nested_schema" edge to the SchemaDefinition entity.
func (m *SchemaFieldMutation) ClearNestedSchema() {
	m.clearednested_schema = true
	m.clearedFields[schemafield.FieldNestedSchemaID] = struct{}{}
}

// NestedSchemaCleared reports if the "nested_schema" edge to the SchemaDefinition entity was cleared.
func (m *SchemaFieldMutation) NestedSchemaCleared() bool {
	return m.NestedSchemaIDCleared() || m.clearednested_schema
}

// NestedSchemaIDs returns the "nested_schema" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NestedSchemaID instead. It exists only for internal usage by the builders.
func (m *SchemaFieldMutation) NestedSchemaIDs() (ids []int) {
	if id := m.nested_schema; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNestedSchema resets all changes to the "nested_schema" edge.
func (m *SchemaFieldMutation) ResetNestedSchema() {
	m.nested_schema = nil
	m.clearednested_schema = false
}

// Where appends a list predicates to the SchemaFieldMutation builder.
func (m *SchemaFieldMutation) Where(ps ...predicate.SchemaField) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchemaFieldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchemaFieldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SchemaField, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchemaFieldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchemaFieldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SchemaField).
func (m *SchemaFieldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchemaFieldMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.definition != nil {
		fields = append(fields, schemafield.FieldDefinitionID)
	}
	if m.name != nil {
		fields = append(fields, schemafield.FieldName)
	}
	if m.field_type != nil {
		fields = append(fields, schemafield.FieldFieldType)
	}
	if m.description != nil {
		fields = append(fields, schemafield.FieldDescription)
	}
	if m.position != nil {
		fields = append(fields, schemafield.FieldPosition)
	}
	if m.nested_schema != nil {
		fields = append(fields, schemafield.FieldNestedSchemaID)
	}
	if m.list_item_type != nil {
		fields = append(fields, schemafield.FieldListItemType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchemaFieldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schemafield.FieldDefinitionID:
		return m.DefinitionID()
	case schemafield.FieldName:
		return m.Name()
	case schemafield.FieldFieldType:
		return m.FieldType()
	case schemafield.FieldDescription:
		return m.Description()
	case schemafield.FieldPosition:
		return m.Position()
	case schemafield.FieldNestedSchemaID:
		return m.NestedSchemaID()
	case schemafield.FieldListItemType:
		return m.ListItemType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchemaFieldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schemafield.FieldDefinitionID:
		return m.OldDefinitionID(ctx)
	case schemafield.FieldName:
		return m.OldName(ctx)
	case schemafield.FieldFieldType:
		return m.OldFieldType(ctx)
	case schemafield.FieldDescription:
		return m.OldDescription(ctx)
	case schemafield.FieldPosition:
		return m.OldPosition(ctx)
	case schemafield.FieldNestedSchemaID:
		return m.OldNestedSchemaID(ctx)
	case schemafield.FieldListItemType:
		return m.OldListItemType(ctx)
	}
	return nil, fmt.Errorf("unknown SchemaField field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchemaFieldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schemafield.FieldDefinitionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinitionID(v)
		return nil
	case schemafield.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case schemafield.FieldFieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldType(v)
		return nil
	case schemafield.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case schemafield.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case schemafield.FieldNestedSchemaID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNestedSchemaID(v)
		return nil
	case schemafield.FieldListItemType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListItemType(v)
		return nil
	}
	return fmt.Errorf("unknown SchemaField field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchemaFieldMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, schemafield.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchemaFieldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case schemafield.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchemaFieldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case schemafield.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown SchemaField numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchemaFieldMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(schemafield.FieldDescription) {
		fields = append(fields, schemafield.FieldDescription)
	}
	if m.FieldCleared(schemafield.FieldNestedSchemaID) {
		fields = append(fields, schemafield.FieldNestedSchemaID)
	}
	if m.FieldCleared(schemafield.FieldListItemType) {
		fields = append(fields, schemafield.FieldListItemType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchemaFieldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchemaFieldMutation) ClearField(name string) error {
	switch name {
	case schemafield.FieldDescription:
		m.ClearDescription()
		return nil
	case schemafield.FieldNestedSchemaID:
		m.ClearNestedSchemaID()
		return nil
	case schemafield.FieldListItemType:
		m.ClearListItemType()
		return nil
	}
	return fmt.Errorf("unknown SchemaField nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchemaFieldMutation) ResetField(name string) error {
	switch name {
	case schemafield.FieldDefinitionID:
		m.ResetDefinitionID()
		return nil
	case schemafield.FieldName:
		m.ResetName()
		return nil
	case schemafield.FieldFieldType:
		m.ResetFieldType()
		return nil
	case schemafield.FieldDescription:
		m.ResetDescription()
		return nil
	case schemafield.FieldPosition:
		m.ResetPosition()
		return nil
	case schemafield.FieldNestedSchemaID:
		m.ResetNestedSchemaID()
		return nil
	case schemafield.FieldListItemType:
		m.ResetListItemType()
		return nil
	}
	return fmt.Errorf("unknown SchemaField field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchemaFieldMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.definition != nil {
		edges = append(edges, schemafield.EdgeDefinition)
	}
	if m.nested_schema != nil {
		edges = append(edges, schemafield.EdgeNestedSchema)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchemaFieldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case schemafield.EdgeDefinition:
		if id := m.definition; id != nil {
			return []ent.Value{*id}
		}
	case schemafield.EdgeNestedSchema:
		if id := m.nested_schema; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchemaFieldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchemaFieldMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchemaFieldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddefinition {
		edges = append(edges, schemafield.EdgeDefinition)
	}
	if m.clearednested_schema {
		edges = append(edges, schemafield.EdgeNestedSchema)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchemaFieldMutation) EdgeCleared(name string) bool {
	switch name {
	case schemafield.EdgeDefinition:
		return m.cleareddefinition
	case schemafield.EdgeNestedSchema:
		return m.clearednested_schema
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchemaFieldMutation) ClearEdge(name string) error {
	switch name {
	case schemafield.EdgeDefinition:
		m.ClearDefinition()
		return nil
	case schemafield.EdgeNestedSchema:
		m.ClearNestedSchema()
		return nil
	}
	return fmt.Errorf("unknown SchemaField unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchemaFieldMutation) ResetEdge(name string) error {
	switch name {
	case schemafield.EdgeDefinition:
		m.ResetDefinition()
		return nil
	case schemafield.EdgeNestedSchema:
		m.ResetNestedSchema()
		return nil
	}
	return fmt.Errorf("unknown SchemaField edge %s", name)
}

// SiloMutation represents an operation that mutates the Silo nodes in the graph.
type SiloMutation struct {
	config
	op              Op
	typ             string
	id              *int
	name            *string
	collection      *string
	embedding_model *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	agents          map[int]struct{}
	removedagents   map[int]struct{}
	clearedagents   bool
	done            bool
	oldValue        func(context.Context) (*Silo, error)
	predicates      []predicate.Silo
}

var _ ent.Mutation = (*SiloMutation)(nil)

// siloOption allows management of the mutation configuration using functional options.
type siloOption func(*SiloMutation)

// newSiloMutation creates new mutation for the Silo entity.
func newSiloMutation(c config, op Op, opts ...siloOption) *SiloMutation {
	m := &SiloMutation{
		config:        c,
		op:            op,
		typ:           TypeSilo,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSiloID sets the ID field of the mutation.
func withSiloID(id int) siloOption {
	return func(m *SiloMutation) {
		var (
			err   error
			once  sync.Once
			value *Silo
		)
		m.oldValue = func(ctx context.Context) (*Silo, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Silo.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSilo sets the old Silo of the mutation.
func withSilo(node *Silo) siloOption {
	return func(m *SiloMutation) {
		m.oldValue = func(context.Context) (*Silo, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SiloMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SiloMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SiloMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SiloMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Silo.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SiloMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SiloMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Silo entity.
// If the Silo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiloMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SiloMutation) ResetName() {
	m.name = nil
}

// SetCollection sets the "collection" field.
func (m *SiloMutation) SetCollection(s string) {
	m.collection = &s
}

// Collection returns the value of the "collection" field in the mutation.
func (m *SiloMutation) Collection() (r string, exists bool) {
	v := m.collection
	if v == nil {
		return
	}
	return *v, true
}

// OldCollection returns the old "collection" field's value of the Silo entity.
// If the Silo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiloMutation) OldCollection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollection: %w", err)
	}
	return oldValue.Collection, nil
}

// ResetCollection resets all changes to the "collection" field.
func (m *SiloMutation) ResetCollection() {
	m.collection = nil
}

// SetEmbeddingModel sets the "embedding_model" field.
func (m *SiloMutation) SetEmbeddingModel(s string) {
	m.embedding_model = &s
}

// EmbeddingModel returns the value of the "embedding_model" field in the mutation.
func (m *SiloMutation) EmbeddingModel() (r string, exists bool) {
	v := m.embedding_model
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbeddingModel returns the old "embedding_model" field's value of the Silo entity.
// If the Silo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiloMutation) OldEmbeddingModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbeddingModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbeddingModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbeddingModel: %w", err)
	}
	return oldValue.EmbeddingModel, nil
}

// ResetEmbeddingModel resets all changes to the "embedding_model" field.
func (m *SiloMutation) ResetEmbeddingModel() {
	m.embedding_model = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SiloMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SiloMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Silo entity.
// If the Silo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiloMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SiloMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SiloMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SiloMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Silo entity.
// If the Silo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiloMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SiloMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *SiloMutation) AddAgentIDs(ids ...int) {
	if m.agents == nil {
		m.agents = make(map[int]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *SiloMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *SiloMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *SiloMutation) RemoveAgentIDs(ids ...int) {
	if m.removedagents == nil {
		m.removedagents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *SiloMutation) RemovedAgentsIDs() (ids []int) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *SiloMutation) AgentsIDs() (ids []int) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *SiloMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// Where appends a list predicates to the SiloMutation builder.
func (m *SiloMutation) Where(ps ...predicate.Silo) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SiloMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SiloMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Silo, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SiloMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SiloMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Silo).
func (m *SiloMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SiloMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, silo.FieldName)
	}
	if m.collection != nil {
		fields = append(fields, silo.FieldCollection)
	}
	if m.embedding_model != nil {
		fields = append(fields, silo.FieldEmbeddingModel)
	}
	if m.created_at != nil {
		fields = append(fields, silo.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, silo.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SiloMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case silo.FieldName:
		return m.Name()
	case silo.FieldCollection:
		return m.Collection()
	case silo.FieldEmbeddingModel:
		return m.EmbeddingModel()
	case silo.FieldCreatedAt:
		return m.CreatedAt()
	case silo.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SiloMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case silo.FieldName:
		return m.OldName(ctx)
	case silo.FieldCollection:
		return m.OldCollection(ctx)
	case silo.FieldEmbeddingModel:
		return m.OldEmbeddingModel(ctx)
	case silo.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case silo.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Silo field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SiloMutation) SetField(name string, value ent.Value) error {
	switch name {
	case silo.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case silo.FieldCollection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollection(v)
		return nil
	case silo.FieldEmbeddingModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbeddingModel(v)
		return nil
	case silo.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case silo.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Silo field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SiloMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SiloMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SiloMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Silo numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SiloMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SiloMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SiloMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Silo nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SiloMutation) ResetField(name string) error {
	switch name {
	case silo.FieldName:
		m.ResetName()
		return nil
	case silo.FieldCollection:
		m.ResetCollection()
		return nil
	case silo.FieldEmbeddingModel:
		m.ResetEmbeddingModel()
		return nil
	case silo.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case silo.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Silo field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SiloMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agents != nil {
		edges = append(edges, silo.EdgeAgents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SiloMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case silo.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SiloMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedagents != nil {
		edges = append(edges, silo.EdgeAgents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SiloMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case silo.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SiloMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagents {
		edges = append(edges, silo.EdgeAgents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SiloMutation) EdgeCleared(name string) bool {
	switch name {
	case silo.EdgeAgents:
		return m.clearedagents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SiloMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Silo unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SiloMutation) ResetEdge(name string) error {
	switch name {
	case silo.EdgeAgents:
		m.ResetAgents()
		return nil
	}
	return fmt.Errorf("unknown Silo edge %s", name)
}

// ToolServerMutation represents an operation that mutates the ToolServer nodes in the graph.
type ToolServerMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	transport     *string
	url           *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	agents        map[int]struct{}
	removedagents map[int]struct{}
	clearedagents bool
	done          bool
	oldValue      func(context.Context) (*ToolServer, error)
	predicates    []predicate.ToolServer
}

var _ ent.Mutation = (*ToolServerMutation)(nil)

// toolserverOption allows management of the mutation configuration using functional options.
type toolserverOption func(*ToolServerMutation)

// newToolServerMutation creates new mutation for the ToolServer entity.
func newToolServerMutation(c config, op Op, opts ...toolserverOption) *ToolServerMutation {
	m := &ToolServerMutation{
		config:        c,
		op:            op,
		typ:           TypeToolServer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolServerID sets the ID field of the mutation.
func withToolServerID(id int) toolserverOption {
	return func(m *ToolServerMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolServer
		)
		m.oldValue = func(ctx context.Context) (*ToolServer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolServer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolServer sets the old ToolServer of the mutation.
func withToolServer(node *ToolServer) toolserverOption {
	return func(m *ToolServerMutation) {
		m.oldValue = func(context.Context) (*ToolServer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolServerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolServerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolServerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolServerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolServer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ToolServerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ToolServerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ToolServer entity.
// If the ToolServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolServerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ToolServerMutation) ResetName() {
	m.name = nil
}

// SetTransport sets the "transport" field.
func (m *ToolServerMutation) SetTransport(s string) {
	m.transport = &s
}

// Transport returns the value of the "transport" field in the mutation.
func (m *ToolServerMutation) Transport() (r string, exists bool) {
	v := m.transport
	if v == nil {
		return
	}
	return *v, true
}

// OldTransport returns the old "transport" field's value of the ToolServer entity.
// If the ToolServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolServerMutation) OldTransport(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransport: %w", err)
	}
	return oldValue.Transport, nil
}

// ResetTransport resets all changes to the "transport" field.
func (m *ToolServerMutation) ResetTransport() {
	m.transport = nil
}

// SetURL sets the "url" field.
func (m *ToolServerMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ToolServerMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the ToolServer entity.
// If the ToolServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolServerMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ToolServerMutation) ResetURL() {
	m.url = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolServerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolServerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolServer entity.
// If the ToolServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolServerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolServerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ToolServerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ToolServerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ToolServer entity.
// If the ToolServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolServerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ToolServerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *ToolServerMutation) AddAgentIDs(ids ...int) {
	if m.agents == nil {
		m.agents = make(map[int]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *ToolServerMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *ToolServerMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *ToolServerMutation) RemoveAgentIDs(ids ...int) {
	if m.removedagents == nil {
		m.removedagents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *ToolServerMutation) RemovedAgentsIDs() (ids []int) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *ToolServerMutation) AgentsIDs() (ids []int) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *ToolServerMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// Where appends a list predicates to the ToolServerMutation builder.
func (m *ToolServerMutation) Where(ps ...predicate.ToolServer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolServerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolServerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolServer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolServerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolServerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolServer).
func (m *ToolServerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolServerMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, toolserver.FieldName)
	}
	if m.transport != nil {
		fields = append(fields, toolserver.FieldTransport)
	}
	if m.url != nil {
		fields = append(fields, toolserver.FieldURL)
	}
	if m.created_at != nil {
		fields = append(fields, toolserver.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, toolserver.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolServerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolserver.FieldName:
		return m.Name()
	case toolserver.FieldTransport:
		return m.Transport()
	case toolserver.FieldURL:
		return m.URL()
	case toolserver.FieldCreatedAt:
		return m.CreatedAt()
	case toolserver.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolServerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolserver.FieldName:
		return m.OldName(ctx)
	case toolserver.FieldTransport:
		return m.OldTransport(ctx)
	case toolserver.FieldURL:
		return m.OldURL(ctx)
	case toolserver.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case toolserver.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolServer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolServerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolserver.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case toolserver.FieldTransport:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransport(v)
		return nil
	case toolserver.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case toolserver.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case toolserver.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolServer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolServerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolServerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolServerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ToolServer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolServerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolServerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolServerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ToolServer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolServerMutation) ResetField(name string) error {
	switch name {
	case toolserver.FieldName:
		m.ResetName()
		return nil
	case toolserver.FieldTransport:
		m.ResetTransport()
		return nil
	case toolserver.FieldURL:
		m.ResetURL()
		return nil
	case toolserver.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case toolserver.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolServer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolServerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agents != nil {
		edges = append(edges, toolserver.EdgeAgents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolServerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case toolserver.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolServerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedagents != nil {
		edges = append(edges, toolserver.EdgeAgents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolServerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case toolserver.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolServerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagents {
		edges = append(edges, toolserver.EdgeAgents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolServerMutation) EdgeCleared(name string) bool {
	switch name {
	case toolserver.EdgeAgents:
		return m.clearedagents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolServerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ToolServer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolServerMutation) ResetEdge(name string) error {
	switch name {
	case toolserver.EdgeAgents:
		m.ResetAgents()
		return nil
	}
	return fmt.Errorf("unknown ToolServer edge %s", name)
}
