// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mattin-ai/mattin/gen/ent/agent"
	"github.com/mattin-ai/mattin/gen/ent/extractionjob"
	"github.com/mattin-ai/mattin/gen/ent/predicate"
)

// ExtractionJobUpdate is the builder for updating ExtractionJob entities.
type ExtractionJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdate) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ExtractionJobUpdate) SetAgentID(v int) *ExtractionJobUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableAgentID(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetDocumentName sets the "document_name" field.
func (_u *ExtractionJobUpdate) SetDocumentName(v string) *ExtractionJobUpdate {
	_u.mutation.SetDocumentName(v)
	return _u
}

// SetNillableDocumentName sets the "document_name" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableDocumentName(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetDocumentName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdate) SetStatus(v string) *ExtractionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStatus(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ExtractionJobUpdate) SetResult(v json.RawMessage) *ExtractionJobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ExtractionJobUpdate) AppendResult(v json.RawMessage) *ExtractionJobUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExtractionJobUpdate) ClearResult() *ExtractionJobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdate) SetErrorMessage(v string) *ExtractionJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableErrorMessage(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdate) ClearErrorMessage() *ExtractionJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPages sets the "pages" field.
func (_u *ExtractionJobUpdate) SetPages(v int) *ExtractionJobUpdate {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillablePages(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *ExtractionJobUpdate) AddPages(v int) *ExtractionJobUpdate {
	_u.mutation.AddPages(v)
	return _u
}

// SetHasPlainText sets the "has_plain_text" field.
func (_u *ExtractionJobUpdate) SetHasPlainText(v bool) *ExtractionJobUpdate {
	_u.mutation.SetHasPlainText(v)
	return _u
}

// SetNillableHasPlainText sets the "has_plain_text" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableHasPlainText(v *bool) *ExtractionJobUpdate {
	if v != nil {
		_u.SetHasPlainText(*v)
	}
	return _u
}

// SetTrace sets the "trace" field.
func (_u *ExtractionJobUpdate) SetTrace(v []string) *ExtractionJobUpdate {
	_u.mutation.SetTrace(v)
	return _u
}

// AppendTrace appends value to the "trace" field.
func (_u *ExtractionJobUpdate) AppendTrace(v []string) *ExtractionJobUpdate {
	_u.mutation.AppendTrace(v)
	return _u
}

// ClearTrace clears the value of the "trace" field.
func (_u *ExtractionJobUpdate) ClearTrace() *ExtractionJobUpdate {
	_u.mutation.ClearTrace()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionJobUpdate) SetStartedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStartedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionJobUpdate) SetFinishedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableFinishedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionJobUpdate) ClearFinishedAt() *ExtractionJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ExtractionJobUpdate) SetOcrText(v string) *ExtractionJobUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableOcrText(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ExtractionJobUpdate) ClearOcrText() *ExtractionJobUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *ExtractionJobUpdate) SetAgent(v *Agent) *ExtractionJobUpdate {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdate) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *ExtractionJobUpdate) ClearAgent() *ExtractionJobUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdate) check() error {
	if v, ok := _u.mutation.DocumentName(); ok {
		if err := extractionjob.DocumentNameValidator(v); err != nil {
			return &ValidationError{Name: "document_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.document_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionJob.agent"`)
	}
	return nil
}

func (_u *ExtractionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentName(); ok {
		_spec.SetField(extractionjob.FieldDocumentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(extractionjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(extractionjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(extractionjob.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(extractionjob.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasPlainText(); ok {
		_spec.SetField(extractionjob.FieldHasPlainText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Trace(); ok {
		_spec.SetField(extractionjob.FieldTrace, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldTrace, value)
		})
	}
	if _u.mutation.TraceCleared() {
		_spec.ClearField(extractionjob.FieldTrace, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(extractionjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(extractionjob.FieldOcrText, field.TypeString)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.AgentTable,
			Columns: []string{extractionjob.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.AgentTable,
			Columns: []string{extractionjob.AgentColumn},
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
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionJobUpdateOne is the builder for updating a single ExtractionJob entity.
type ExtractionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *ExtractionJobUpdateOne) SetAgentID(v int) *ExtractionJobUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableAgentID(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetDocumentName sets the "document_name" field.
func (_u *ExtractionJobUpdateOne) SetDocumentName(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetDocumentName(v)
	return _u
}

// SetNillableDocumentName sets the "document_name" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableDocumentName(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetDocumentName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdateOne) SetStatus(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStatus(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ExtractionJobUpdateOne) SetResult(v json.RawMessage) *ExtractionJobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ExtractionJobUpdateOne) AppendResult(v json.RawMessage) *ExtractionJobUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExtractionJobUpdateOne) ClearResult() *ExtractionJobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdateOne) SetErrorMessage(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdateOne) ClearErrorMessage() *ExtractionJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPages sets the "pages" field.
func (_u *ExtractionJobUpdateOne) SetPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillablePages(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *ExtractionJobUpdateOne) AddPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddPages(v)
	return _u
}

// SetHasPlainText sets the "has_plain_text" field.
func (_u *ExtractionJobUpdateOne) SetHasPlainText(v bool) *ExtractionJobUpdateOne {
	_u.mutation.SetHasPlainText(v)
	return _u
}

// SetNillableHasPlainText sets the "has_plain_text" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableHasPlainText(v *bool) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetHasPlainText(*v)
	}
	return _u
}

// SetTrace sets the "trace" field.
func (_u *ExtractionJobUpdateOne) SetTrace(v []string) *ExtractionJobUpdateOne {
	_u.mutation.SetTrace(v)
	return _u
}

// AppendTrace appends value to the "trace" field.
func (_u *ExtractionJobUpdateOne) AppendTrace(v []string) *ExtractionJobUpdateOne {
	_u.mutation.AppendTrace(v)
	return _u
}

// ClearTrace clears the value of the "trace" field.
func (_u *ExtractionJobUpdateOne) ClearTrace() *ExtractionJobUpdateOne {
	_u.mutation.ClearTrace()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionJobUpdateOne) SetStartedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionJobUpdateOne) SetFinishedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionJobUpdateOne) ClearFinishedAt() *ExtractionJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ExtractionJobUpdateOne) SetOcrText(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableOcrText(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ExtractionJobUpdateOne) ClearOcrText() *ExtractionJobUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *ExtractionJobUpdateOne) SetAgent(v *Agent) *ExtractionJobUpdateOne {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdateOne) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *ExtractionJobUpdateOne) ClearAgent() *ExtractionJobUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdateOne) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionJobUpdateOne) Select(field string, fields ...string) *ExtractionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionJob entity.
func (_u *ExtractionJobUpdateOne) Save(ctx context.Context) (*ExtractionJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) SaveX(ctx context.Context) *ExtractionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentName(); ok {
		if err := extractionjob.DocumentNameValidator(v); err != nil {
			return &ValidationError{Name: "document_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.document_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionJob.agent"`)
	}
	return nil
}

func (_u *ExtractionJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionjob.FieldID)
		for _, f := range fields {
			if !extractionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionjob.FieldID {
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
	if value, ok := _u.mutation.DocumentName(); ok {
		_spec.SetField(extractionjob.FieldDocumentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(extractionjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(extractionjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(extractionjob.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(extractionjob.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasPlainText(); ok {
		_spec.SetField(extractionjob.FieldHasPlainText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Trace(); ok {
		_spec.SetField(extractionjob.FieldTrace, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldTrace, value)
		})
	}
	if _u.mutation.TraceCleared() {
		_spec.ClearField(extractionjob.FieldTrace, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(extractionjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(extractionjob.FieldOcrText, field.TypeString)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.AgentTable,
			Columns: []string{extractionjob.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.AgentTable,
			Columns: []string{extractionjob.AgentColumn},
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
	_node = &ExtractionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
