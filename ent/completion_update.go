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
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/predicate"
)

// CompletionUpdate is the builder for updating Completion entities.
type CompletionUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionMutation
}

// Where appends a list predicates to the CompletionUpdate builder.
func (_u *CompletionUpdate) Where(ps ...predicate.Completion) *CompletionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CompletionUpdate) SetStatus(v completion.Status) *CompletionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableStatus(v *completion.Status) *CompletionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CompletionUpdate) SetPrompt(v map[string]interface{}) *CompletionUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *CompletionUpdate) SetContent(v string) *CompletionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableContent(v *string) *CompletionUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *CompletionUpdate) ClearContent() *CompletionUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *CompletionUpdate) SetReasoning(v string) *CompletionUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableReasoning(v *string) *CompletionUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *CompletionUpdate) ClearReasoning() *CompletionUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CompletionUpdate) SetErrorMessage(v string) *CompletionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableErrorMessage(v *string) *CompletionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CompletionUpdate) ClearErrorMessage() *CompletionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSigkillAt sets the "sigkill_at" field.
func (_u *CompletionUpdate) SetSigkillAt(v time.Time) *CompletionUpdate {
	_u.mutation.SetSigkillAt(v)
	return _u
}

// SetNillableSigkillAt sets the "sigkill_at" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableSigkillAt(v *time.Time) *CompletionUpdate {
	if v != nil {
		_u.SetSigkillAt(*v)
	}
	return _u
}

// ClearSigkillAt clears the value of the "sigkill_at" field.
func (_u *CompletionUpdate) ClearSigkillAt() *CompletionUpdate {
	_u.mutation.ClearSigkillAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *CompletionUpdate) SetClaimedBy(v string) *CompletionUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableClaimedBy(v *string) *CompletionUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *CompletionUpdate) ClearClaimedBy() *CompletionUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *CompletionUpdate) SetClaimedAt(v time.Time) *CompletionUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableClaimedAt(v *time.Time) *CompletionUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *CompletionUpdate) ClearClaimedAt() *CompletionUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *CompletionUpdate) SetHeartbeatAt(v time.Time) *CompletionUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableHeartbeatAt(v *time.Time) *CompletionUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *CompletionUpdate) ClearHeartbeatAt() *CompletionUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompletionUpdate) SetUpdatedAt(v time.Time) *CompletionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_u *CompletionUpdate) AddAgentExecutionIDs(ids ...string) *CompletionUpdate {
	_u.mutation.AddAgentExecutionIDs(ids...)
	return _u
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_u *CompletionUpdate) AddAgentExecutions(v ...*AgentExecution) *CompletionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentExecutionIDs(ids...)
}

// AddBlockIDs adds the "blocks" edge to the CompletionBlock entity by IDs.
func (_u *CompletionUpdate) AddBlockIDs(ids ...string) *CompletionUpdate {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlocks adds the "blocks" edges to the CompletionBlock entity.
func (_u *CompletionUpdate) AddBlocks(v ...*CompletionBlock) *CompletionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// Mutation returns the CompletionMutation object of the builder.
func (_u *CompletionUpdate) Mutation() *CompletionMutation {
	return _u.mutation
}

// ClearAgentExecutions clears all "agent_executions" edges to the AgentExecution entity.
func (_u *CompletionUpdate) ClearAgentExecutions() *CompletionUpdate {
	_u.mutation.ClearAgentExecutions()
	return _u
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to AgentExecution entities by IDs.
func (_u *CompletionUpdate) RemoveAgentExecutionIDs(ids ...string) *CompletionUpdate {
	_u.mutation.RemoveAgentExecutionIDs(ids...)
	return _u
}

// RemoveAgentExecutions removes "agent_executions" edges to AgentExecution entities.
func (_u *CompletionUpdate) RemoveAgentExecutions(v ...*AgentExecution) *CompletionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentExecutionIDs(ids...)
}

// ClearBlocks clears all "blocks" edges to the CompletionBlock entity.
func (_u *CompletionUpdate) ClearBlocks() *CompletionUpdate {
	_u.mutation.ClearBlocks()
	return _u
}

// RemoveBlockIDs removes the "blocks" edge to CompletionBlock entities by IDs.
func (_u *CompletionUpdate) RemoveBlockIDs(ids ...string) *CompletionUpdate {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlocks removes "blocks" edges to CompletionBlock entities.
func (_u *CompletionUpdate) RemoveBlocks(v ...*CompletionBlock) *CompletionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompletionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := completion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := completion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Completion.status": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Completion.report"`)
	}
	return nil
}

func (_u *CompletionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completion.Table, completion.Columns, sqlgraph.NewFieldSpec(completion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(completion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(completion.FieldPrompt, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(completion.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(completion.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(completion.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(completion.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(completion.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(completion.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SigkillAt(); ok {
		_spec.SetField(completion.FieldSigkillAt, field.TypeTime, value)
	}
	if _u.mutation.SigkillAtCleared() {
		_spec.ClearField(completion.FieldSigkillAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(completion.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(completion.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(completion.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(completion.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(completion.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(completion.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(completion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.AgentExecutionsTable,
			Columns: []string{completion.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentExecutionsIDs(); len(nodes) > 0 && !_u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.AgentExecutionsTable,
			Columns: []string{completion.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.AgentExecutionsTable,
			Columns: []string{completion.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.BlocksTable,
			Columns: []string{completion.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBlocksIDs(); len(nodes) > 0 && !_u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.BlocksTable,
			Columns: []string{completion.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlocksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.BlocksTable,
			Columns: []string{completion.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionUpdateOne is the builder for updating a single Completion entity.
type CompletionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionMutation
}

// SetStatus sets the "status" field.
func (_u *CompletionUpdateOne) SetStatus(v completion.Status) *CompletionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableStatus(v *completion.Status) *CompletionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CompletionUpdateOne) SetPrompt(v map[string]interface{}) *CompletionUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *CompletionUpdateOne) SetContent(v string) *CompletionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableContent(v *string) *CompletionUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *CompletionUpdateOne) ClearContent() *CompletionUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *CompletionUpdateOne) SetReasoning(v string) *CompletionUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableReasoning(v *string) *CompletionUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *CompletionUpdateOne) ClearReasoning() *CompletionUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CompletionUpdateOne) SetErrorMessage(v string) *CompletionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableErrorMessage(v *string) *CompletionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CompletionUpdateOne) ClearErrorMessage() *CompletionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSigkillAt sets the "sigkill_at" field.
func (_u *CompletionUpdateOne) SetSigkillAt(v time.Time) *CompletionUpdateOne {
	_u.mutation.SetSigkillAt(v)
	return _u
}

// SetNillableSigkillAt sets the "sigkill_at" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableSigkillAt(v *time.Time) *CompletionUpdateOne {
	if v != nil {
		_u.SetSigkillAt(*v)
	}
	return _u
}

// ClearSigkillAt clears the value of the "sigkill_at" field.
func (_u *CompletionUpdateOne) ClearSigkillAt() *CompletionUpdateOne {
	_u.mutation.ClearSigkillAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *CompletionUpdateOne) SetClaimedBy(v string) *CompletionUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableClaimedBy(v *string) *CompletionUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *CompletionUpdateOne) ClearClaimedBy() *CompletionUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *CompletionUpdateOne) SetClaimedAt(v time.Time) *CompletionUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableClaimedAt(v *time.Time) *CompletionUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *CompletionUpdateOne) ClearClaimedAt() *CompletionUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *CompletionUpdateOne) SetHeartbeatAt(v time.Time) *CompletionUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableHeartbeatAt(v *time.Time) *CompletionUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *CompletionUpdateOne) ClearHeartbeatAt() *CompletionUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompletionUpdateOne) SetUpdatedAt(v time.Time) *CompletionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_u *CompletionUpdateOne) AddAgentExecutionIDs(ids ...string) *CompletionUpdateOne {
	_u.mutation.AddAgentExecutionIDs(ids...)
	return _u
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_u *CompletionUpdateOne) AddAgentExecutions(v ...*AgentExecution) *CompletionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentExecutionIDs(ids...)
}

// AddBlockIDs adds the "blocks" edge to the CompletionBlock entity by IDs.
func (_u *CompletionUpdateOne) AddBlockIDs(ids ...string) *CompletionUpdateOne {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlocks adds the "blocks" edges to the CompletionBlock entity.
func (_u *CompletionUpdateOne) AddBlocks(v ...*CompletionBlock) *CompletionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// Mutation returns the CompletionMutation object of the builder.
func (_u *CompletionUpdateOne) Mutation() *CompletionMutation {
	return _u.mutation
}

// ClearAgentExecutions clears all "agent_executions" edges to the AgentExecution entity.
func (_u *CompletionUpdateOne) ClearAgentExecutions() *CompletionUpdateOne {
	_u.mutation.ClearAgentExecutions()
	return _u
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to AgentExecution entities by IDs.
func (_u *CompletionUpdateOne) RemoveAgentExecutionIDs(ids ...string) *CompletionUpdateOne {
	_u.mutation.RemoveAgentExecutionIDs(ids...)
	return _u
}

// RemoveAgentExecutions removes "agent_executions" edges to AgentExecution entities.
func (_u *CompletionUpdateOne) RemoveAgentExecutions(v ...*AgentExecution) *CompletionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentExecutionIDs(ids...)
}

// ClearBlocks clears all "blocks" edges to the CompletionBlock entity.
func (_u *CompletionUpdateOne) ClearBlocks() *CompletionUpdateOne {
	_u.mutation.ClearBlocks()
	return _u
}

// RemoveBlockIDs removes the "blocks" edge to CompletionBlock entities by IDs.
func (_u *CompletionUpdateOne) RemoveBlockIDs(ids ...string) *CompletionUpdateOne {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlocks removes "blocks" edges to CompletionBlock entities.
func (_u *CompletionUpdateOne) RemoveBlocks(v ...*CompletionBlock) *CompletionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// Where appends a list predicates to the CompletionUpdate builder.
func (_u *CompletionUpdateOne) Where(ps ...predicate.Completion) *CompletionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionUpdateOne) Select(field string, fields ...string) *CompletionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Completion entity.
func (_u *CompletionUpdateOne) Save(ctx context.Context) (*Completion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionUpdateOne) SaveX(ctx context.Context) *Completion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompletionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := completion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := completion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Completion.status": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Completion.report"`)
	}
	return nil
}

func (_u *CompletionUpdateOne) sqlSave(ctx context.Context) (_node *Completion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completion.Table, completion.Columns, sqlgraph.NewFieldSpec(completion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Completion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completion.FieldID)
		for _, f := range fields {
			if !completion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completion.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(completion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(completion.FieldPrompt, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(completion.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(completion.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(completion.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(completion.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(completion.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(completion.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SigkillAt(); ok {
		_spec.SetField(completion.FieldSigkillAt, field.TypeTime, value)
	}
	if _u.mutation.SigkillAtCleared() {
		_spec.ClearField(completion.FieldSigkillAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(completion.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(completion.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(completion.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(completion.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(completion.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(completion.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(completion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.AgentExecutionsTable,
			Columns: []string{completion.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentExecutionsIDs(); len(nodes) > 0 && !_u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.AgentExecutionsTable,
			Columns: []string{completion.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.AgentExecutionsTable,
			Columns: []string{completion.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.BlocksTable,
			Columns: []string{completion.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBlocksIDs(); len(nodes) > 0 && !_u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.BlocksTable,
			Columns: []string{completion.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlocksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.BlocksTable,
			Columns: []string{completion.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Completion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
