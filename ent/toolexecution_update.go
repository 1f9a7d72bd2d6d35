// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/quarryhq/quarry/ent/predicate"
	"github.com/quarryhq/quarry/ent/toolexecution"
)

// ToolExecutionUpdate is the builder for updating ToolExecution entities.
type ToolExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ToolExecutionMutation
}

// Where appends a list predicates to the ToolExecutionUpdate builder.
func (_u *ToolExecutionUpdate) Where(ps ...predicate.ToolExecution) *ToolExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ToolExecutionUpdate) SetToolName(v string) *ToolExecutionUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableToolName(v *string) *ToolExecutionUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetToolAction sets the "tool_action" field.
func (_u *ToolExecutionUpdate) SetToolAction(v string) *ToolExecutionUpdate {
	_u.mutation.SetToolAction(v)
	return _u
}

// SetNillableToolAction sets the "tool_action" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableToolAction(v *string) *ToolExecutionUpdate {
	if v != nil {
		_u.SetToolAction(*v)
	}
	return _u
}

// ClearToolAction clears the value of the "tool_action" field.
func (_u *ToolExecutionUpdate) ClearToolAction() *ToolExecutionUpdate {
	_u.mutation.ClearToolAction()
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *ToolExecutionUpdate) SetArguments(v map[string]interface{}) *ToolExecutionUpdate {
	_u.mutation.SetArguments(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolExecutionUpdate) SetStatus(v toolexecution.Status) *ToolExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableStatus(v *toolexecution.Status) *ToolExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ToolExecutionUpdate) SetSuccess(v bool) *ToolExecutionUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableSuccess(v *bool) *ToolExecutionUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *ToolExecutionUpdate) SetAttemptNumber(v int) *ToolExecutionUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableAttemptNumber(v *int) *ToolExecutionUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *ToolExecutionUpdate) AddAttemptNumber(v int) *ToolExecutionUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *ToolExecutionUpdate) SetMaxRetries(v int) *ToolExecutionUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableMaxRetries(v *int) *ToolExecutionUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *ToolExecutionUpdate) AddMaxRetries(v int) *ToolExecutionUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *ToolExecutionUpdate) SetResultSummary(v string) *ToolExecutionUpdate {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableResultSummary(v *string) *ToolExecutionUpdate {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *ToolExecutionUpdate) ClearResultSummary() *ToolExecutionUpdate {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *ToolExecutionUpdate) SetResultJSON(v map[string]interface{}) *ToolExecutionUpdate {
	_u.mutation.SetResultJSON(v)
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *ToolExecutionUpdate) ClearResultJSON() *ToolExecutionUpdate {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ToolExecutionUpdate) SetErrorMessage(v string) *ToolExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableErrorMessage(v *string) *ToolExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ToolExecutionUpdate) ClearErrorMessage() *ToolExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedWidgetID sets the "created_widget_id" field.
func (_u *ToolExecutionUpdate) SetCreatedWidgetID(v string) *ToolExecutionUpdate {
	_u.mutation.SetCreatedWidgetID(v)
	return _u
}

// SetNillableCreatedWidgetID sets the "created_widget_id" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableCreatedWidgetID(v *string) *ToolExecutionUpdate {
	if v != nil {
		_u.SetCreatedWidgetID(*v)
	}
	return _u
}

// ClearCreatedWidgetID clears the value of the "created_widget_id" field.
func (_u *ToolExecutionUpdate) ClearCreatedWidgetID() *ToolExecutionUpdate {
	_u.mutation.ClearCreatedWidgetID()
	return _u
}

// SetCreatedStepID sets the "created_step_id" field.
func (_u *ToolExecutionUpdate) SetCreatedStepID(v string) *ToolExecutionUpdate {
	_u.mutation.SetCreatedStepID(v)
	return _u
}

// SetNillableCreatedStepID sets the "created_step_id" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableCreatedStepID(v *string) *ToolExecutionUpdate {
	if v != nil {
		_u.SetCreatedStepID(*v)
	}
	return _u
}

// ClearCreatedStepID clears the value of the "created_step_id" field.
func (_u *ToolExecutionUpdate) ClearCreatedStepID() *ToolExecutionUpdate {
	_u.mutation.ClearCreatedStepID()
	return _u
}

// SetCreatedVisualizationIds sets the "created_visualization_ids" field.
func (_u *ToolExecutionUpdate) SetCreatedVisualizationIds(v []string) *ToolExecutionUpdate {
	_u.mutation.SetCreatedVisualizationIds(v)
	return _u
}

// AppendCreatedVisualizationIds appends value to the "created_visualization_ids" field.
func (_u *ToolExecutionUpdate) AppendCreatedVisualizationIds(v []string) *ToolExecutionUpdate {
	_u.mutation.AppendCreatedVisualizationIds(v)
	return _u
}

// ClearCreatedVisualizationIds clears the value of the "created_visualization_ids" field.
func (_u *ToolExecutionUpdate) ClearCreatedVisualizationIds() *ToolExecutionUpdate {
	_u.mutation.ClearCreatedVisualizationIds()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ToolExecutionUpdate) SetCompletedAt(v time.Time) *ToolExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableCompletedAt(v *time.Time) *ToolExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ToolExecutionUpdate) ClearCompletedAt() *ToolExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ToolExecutionUpdate) SetDurationMs(v int) *ToolExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableDurationMs(v *int) *ToolExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ToolExecutionUpdate) AddDurationMs(v int) *ToolExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ToolExecutionUpdate) ClearDurationMs() *ToolExecutionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the ToolExecutionMutation object of the builder.
func (_u *ToolExecutionUpdate) Mutation() *ToolExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolExecution.status": %w`, err)}
		}
	}
	if _u.mutation.AgentExecutionCleared() && len(_u.mutation.AgentExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolExecution.agent_execution"`)
	}
	return nil
}

func (_u *ToolExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolexecution.Table, toolexecution.Columns, sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolexecution.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolAction(); ok {
		_spec.SetField(toolexecution.FieldToolAction, field.TypeString, value)
	}
	if _u.mutation.ToolActionCleared() {
		_spec.ClearField(toolexecution.FieldToolAction, field.TypeString)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(toolexecution.FieldArguments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(toolexecution.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(toolexecution.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(toolexecution.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(toolexecution.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(toolexecution.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(toolexecution.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(toolexecution.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(toolexecution.FieldResultJSON, field.TypeJSON, value)
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(toolexecution.FieldResultJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(toolexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(toolexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedWidgetID(); ok {
		_spec.SetField(toolexecution.FieldCreatedWidgetID, field.TypeString, value)
	}
	if _u.mutation.CreatedWidgetIDCleared() {
		_spec.ClearField(toolexecution.FieldCreatedWidgetID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedStepID(); ok {
		_spec.SetField(toolexecution.FieldCreatedStepID, field.TypeString, value)
	}
	if _u.mutation.CreatedStepIDCleared() {
		_spec.ClearField(toolexecution.FieldCreatedStepID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedVisualizationIds(); ok {
		_spec.SetField(toolexecution.FieldCreatedVisualizationIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCreatedVisualizationIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolexecution.FieldCreatedVisualizationIds, value)
		})
	}
	if _u.mutation.CreatedVisualizationIdsCleared() {
		_spec.ClearField(toolexecution.FieldCreatedVisualizationIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(toolexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(toolexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(toolexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(toolexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(toolexecution.FieldDurationMs, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolExecutionUpdateOne is the builder for updating a single ToolExecution entity.
type ToolExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolExecutionMutation
}

// SetToolName sets the "tool_name" field.
func (_u *ToolExecutionUpdateOne) SetToolName(v string) *ToolExecutionUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableToolName(v *string) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetToolAction sets the "tool_action" field.
func (_u *ToolExecutionUpdateOne) SetToolAction(v string) *ToolExecutionUpdateOne {
	_u.mutation.SetToolAction(v)
	return _u
}

// SetNillableToolAction sets the "tool_action" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableToolAction(v *string) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetToolAction(*v)
	}
	return _u
}

// ClearToolAction clears the value of the "tool_action" field.
func (_u *ToolExecutionUpdateOne) ClearToolAction() *ToolExecutionUpdateOne {
	_u.mutation.ClearToolAction()
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *ToolExecutionUpdateOne) SetArguments(v map[string]interface{}) *ToolExecutionUpdateOne {
	_u.mutation.SetArguments(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolExecutionUpdateOne) SetStatus(v toolexecution.Status) *ToolExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableStatus(v *toolexecution.Status) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ToolExecutionUpdateOne) SetSuccess(v bool) *ToolExecutionUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableSuccess(v *bool) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *ToolExecutionUpdateOne) SetAttemptNumber(v int) *ToolExecutionUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableAttemptNumber(v *int) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *ToolExecutionUpdateOne) AddAttemptNumber(v int) *ToolExecutionUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *ToolExecutionUpdateOne) SetMaxRetries(v int) *ToolExecutionUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableMaxRetries(v *int) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *ToolExecutionUpdateOne) AddMaxRetries(v int) *ToolExecutionUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *ToolExecutionUpdateOne) SetResultSummary(v string) *ToolExecutionUpdateOne {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableResultSummary(v *string) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *ToolExecutionUpdateOne) ClearResultSummary() *ToolExecutionUpdateOne {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *ToolExecutionUpdateOne) SetResultJSON(v map[string]interface{}) *ToolExecutionUpdateOne {
	_u.mutation.SetResultJSON(v)
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *ToolExecutionUpdateOne) ClearResultJSON() *ToolExecutionUpdateOne {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ToolExecutionUpdateOne) SetErrorMessage(v string) *ToolExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableErrorMessage(v *string) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ToolExecutionUpdateOne) ClearErrorMessage() *ToolExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedWidgetID sets the "created_widget_id" field.
func (_u *ToolExecutionUpdateOne) SetCreatedWidgetID(v string) *ToolExecutionUpdateOne {
	_u.mutation.SetCreatedWidgetID(v)
	return _u
}

// SetNillableCreatedWidgetID sets the "created_widget_id" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableCreatedWidgetID(v *string) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetCreatedWidgetID(*v)
	}
	return _u
}

// ClearCreatedWidgetID clears the value of the "created_widget_id" field.
func (_u *ToolExecutionUpdateOne) ClearCreatedWidgetID() *ToolExecutionUpdateOne {
	_u.mutation.ClearCreatedWidgetID()
	return _u
}

// SetCreatedStepID sets the "created_step_id" field.
func (_u *ToolExecutionUpdateOne) SetCreatedStepID(v string) *ToolExecutionUpdateOne {
	_u.mutation.SetCreatedStepID(v)
	return _u
}

// SetNillableCreatedStepID sets the "created_step_id" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableCreatedStepID(v *string) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetCreatedStepID(*v)
	}
	return _u
}

// ClearCreatedStepID clears the value of the "created_step_id" field.
func (_u *ToolExecutionUpdateOne) ClearCreatedStepID() *ToolExecutionUpdateOne {
	_u.mutation.ClearCreatedStepID()
	return _u
}

// SetCreatedVisualizationIds sets the "created_visualization_ids" field.
func (_u *ToolExecutionUpdateOne) SetCreatedVisualizationIds(v []string) *ToolExecutionUpdateOne {
	_u.mutation.SetCreatedVisualizationIds(v)
	return _u
}

// AppendCreatedVisualizationIds appends value to the "created_visualization_ids" field.
func (_u *ToolExecutionUpdateOne) AppendCreatedVisualizationIds(v []string) *ToolExecutionUpdateOne {
	_u.mutation.AppendCreatedVisualizationIds(v)
	return _u
}

// ClearCreatedVisualizationIds clears the value of the "created_visualization_ids" field.
func (_u *ToolExecutionUpdateOne) ClearCreatedVisualizationIds() *ToolExecutionUpdateOne {
	_u.mutation.ClearCreatedVisualizationIds()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ToolExecutionUpdateOne) SetCompletedAt(v time.Time) *ToolExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ToolExecutionUpdateOne) ClearCompletedAt() *ToolExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ToolExecutionUpdateOne) SetDurationMs(v int) *ToolExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableDurationMs(v *int) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ToolExecutionUpdateOne) AddDurationMs(v int) *ToolExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ToolExecutionUpdateOne) ClearDurationMs() *ToolExecutionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the ToolExecutionMutation object of the builder.
func (_u *ToolExecutionUpdateOne) Mutation() *ToolExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolExecutionUpdate builder.
func (_u *ToolExecutionUpdateOne) Where(ps ...predicate.ToolExecution) *ToolExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolExecutionUpdateOne) Select(field string, fields ...string) *ToolExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolExecution entity.
func (_u *ToolExecutionUpdateOne) Save(ctx context.Context) (*ToolExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolExecutionUpdateOne) SaveX(ctx context.Context) *ToolExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolExecution.status": %w`, err)}
		}
	}
	if _u.mutation.AgentExecutionCleared() && len(_u.mutation.AgentExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolExecution.agent_execution"`)
	}
	return nil
}

func (_u *ToolExecutionUpdateOne) sqlSave(ctx context.Context) (_node *ToolExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolexecution.Table, toolexecution.Columns, sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolexecution.FieldID)
		for _, f := range fields {
			if !toolexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolexecution.FieldID {
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
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolexecution.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolAction(); ok {
		_spec.SetField(toolexecution.FieldToolAction, field.TypeString, value)
	}
	if _u.mutation.ToolActionCleared() {
		_spec.ClearField(toolexecution.FieldToolAction, field.TypeString)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(toolexecution.FieldArguments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(toolexecution.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(toolexecution.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(toolexecution.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(toolexecution.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(toolexecution.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(toolexecution.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(toolexecution.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(toolexecution.FieldResultJSON, field.TypeJSON, value)
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(toolexecution.FieldResultJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(toolexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(toolexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedWidgetID(); ok {
		_spec.SetField(toolexecution.FieldCreatedWidgetID, field.TypeString, value)
	}
	if _u.mutation.CreatedWidgetIDCleared() {
		_spec.ClearField(toolexecution.FieldCreatedWidgetID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedStepID(); ok {
		_spec.SetField(toolexecution.FieldCreatedStepID, field.TypeString, value)
	}
	if _u.mutation.CreatedStepIDCleared() {
		_spec.ClearField(toolexecution.FieldCreatedStepID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedVisualizationIds(); ok {
		_spec.SetField(toolexecution.FieldCreatedVisualizationIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCreatedVisualizationIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolexecution.FieldCreatedVisualizationIds, value)
		})
	}
	if _u.mutation.CreatedVisualizationIdsCleared() {
		_spec.ClearField(toolexecution.FieldCreatedVisualizationIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(toolexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(toolexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(toolexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(toolexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(toolexecution.FieldDurationMs, field.TypeInt)
	}
	_node = &ToolExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
