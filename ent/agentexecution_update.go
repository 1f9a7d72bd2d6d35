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
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/contextsnapshot"
	"github.com/quarryhq/quarry/ent/executionscore"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/ent/predicate"
	"github.com/quarryhq/quarry/ent/toolexecution"
)

// AgentExecutionUpdate is the builder for updating AgentExecution entities.
type AgentExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentExecutionMutation
}

// Where appends a list predicates to the AgentExecutionUpdate builder.
func (_u *AgentExecutionUpdate) Where(ps ...predicate.AgentExecution) *AgentExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentExecutionUpdate) SetStatus(v agentexecution.Status) *AgentExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableStatus(v *agentexecution.Status) *AgentExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLatestSeq sets the "latest_seq" field.
func (_u *AgentExecutionUpdate) SetLatestSeq(v int) *AgentExecutionUpdate {
	_u.mutation.ResetLatestSeq()
	_u.mutation.SetLatestSeq(v)
	return _u
}

// SetNillableLatestSeq sets the "latest_seq" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableLatestSeq(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetLatestSeq(*v)
	}
	return _u
}

// AddLatestSeq adds value to the "latest_seq" field.
func (_u *AgentExecutionUpdate) AddLatestSeq(v int) *AgentExecutionUpdate {
	_u.mutation.AddLatestSeq(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *AgentExecutionUpdate) SetConfig(v map[string]interface{}) *AgentExecutionUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *AgentExecutionUpdate) ClearConfig() *AgentExecutionUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentExecutionUpdate) SetCompletedAt(v time.Time) *AgentExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableCompletedAt(v *time.Time) *AgentExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentExecutionUpdate) ClearCompletedAt() *AgentExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (_u *AgentExecutionUpdate) SetTotalDurationMs(v int) *AgentExecutionUpdate {
	_u.mutation.ResetTotalDurationMs()
	_u.mutation.SetTotalDurationMs(v)
	return _u
}

// SetNillableTotalDurationMs sets the "total_duration_ms" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableTotalDurationMs(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetTotalDurationMs(*v)
	}
	return _u
}

// AddTotalDurationMs adds value to the "total_duration_ms" field.
func (_u *AgentExecutionUpdate) AddTotalDurationMs(v int) *AgentExecutionUpdate {
	_u.mutation.AddTotalDurationMs(v)
	return _u
}

// ClearTotalDurationMs clears the value of the "total_duration_ms" field.
func (_u *AgentExecutionUpdate) ClearTotalDurationMs() *AgentExecutionUpdate {
	_u.mutation.ClearTotalDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentExecutionUpdate) SetErrorMessage(v string) *AgentExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableErrorMessage(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentExecutionUpdate) ClearErrorMessage() *AgentExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddPlanDecisionIDs adds the "plan_decisions" edge to the PlanDecision entity by IDs.
func (_u *AgentExecutionUpdate) AddPlanDecisionIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.AddPlanDecisionIDs(ids...)
	return _u
}

// AddPlanDecisions adds the "plan_decisions" edges to the PlanDecision entity.
func (_u *AgentExecutionUpdate) AddPlanDecisions(v ...*PlanDecision) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlanDecisionIDs(ids...)
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by IDs.
func (_u *AgentExecutionUpdate) AddToolExecutionIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.AddToolExecutionIDs(ids...)
	return _u
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecution entity.
func (_u *AgentExecutionUpdate) AddToolExecutions(v ...*ToolExecution) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolExecutionIDs(ids...)
}

// AddBlockIDs adds the "blocks" edge to the CompletionBlock entity by IDs.
func (_u *AgentExecutionUpdate) AddBlockIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlocks adds the "blocks" edges to the CompletionBlock entity.
func (_u *AgentExecutionUpdate) AddBlocks(v ...*CompletionBlock) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// AddSnapshotIDs adds the "snapshots" edge to the ContextSnapshot entity by IDs.
func (_u *AgentExecutionUpdate) AddSnapshotIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the ContextSnapshot entity.
func (_u *AgentExecutionUpdate) AddSnapshots(v ...*ContextSnapshot) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddScoreIDs adds the "scores" edge to the ExecutionScore entity by IDs.
func (_u *AgentExecutionUpdate) AddScoreIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.AddScoreIDs(ids...)
	return _u
}

// AddScores adds the "scores" edges to the ExecutionScore entity.
func (_u *AgentExecutionUpdate) AddScores(v ...*ExecutionScore) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScoreIDs(ids...)
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_u *AgentExecutionUpdate) Mutation() *AgentExecutionMutation {
	return _u.mutation
}

// ClearPlanDecisions clears all "plan_decisions" edges to the PlanDecision entity.
func (_u *AgentExecutionUpdate) ClearPlanDecisions() *AgentExecutionUpdate {
	_u.mutation.ClearPlanDecisions()
	return _u
}

// RemovePlanDecisionIDs removes the "plan_decisions" edge to PlanDecision entities by IDs.
func (_u *AgentExecutionUpdate) RemovePlanDecisionIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.RemovePlanDecisionIDs(ids...)
	return _u
}

// RemovePlanDecisions removes "plan_decisions" edges to PlanDecision entities.
func (_u *AgentExecutionUpdate) RemovePlanDecisions(v ...*PlanDecision) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlanDecisionIDs(ids...)
}

// ClearToolExecutions clears all "tool_executions" edges to the ToolExecution entity.
func (_u *AgentExecutionUpdate) ClearToolExecutions() *AgentExecutionUpdate {
	_u.mutation.ClearToolExecutions()
	return _u
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to ToolExecution entities by IDs.
func (_u *AgentExecutionUpdate) RemoveToolExecutionIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.RemoveToolExecutionIDs(ids...)
	return _u
}

// RemoveToolExecutions removes "tool_executions" edges to ToolExecution entities.
func (_u *AgentExecutionUpdate) RemoveToolExecutions(v ...*ToolExecution) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolExecutionIDs(ids...)
}

// ClearBlocks clears all "blocks" edges to the CompletionBlock entity.
func (_u *AgentExecutionUpdate) ClearBlocks() *AgentExecutionUpdate {
	_u.mutation.ClearBlocks()
	return _u
}

// RemoveBlockIDs removes the "blocks" edge to CompletionBlock entities by IDs.
func (_u *AgentExecutionUpdate) RemoveBlockIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlocks removes "blocks" edges to CompletionBlock entities.
func (_u *AgentExecutionUpdate) RemoveBlocks(v ...*CompletionBlock) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// ClearSnapshots clears all "snapshots" edges to the ContextSnapshot entity.
func (_u *AgentExecutionUpdate) ClearSnapshots() *AgentExecutionUpdate {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to ContextSnapshot entities by IDs.
func (_u *AgentExecutionUpdate) RemoveSnapshotIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to ContextSnapshot entities.
func (_u *AgentExecutionUpdate) RemoveSnapshots(v ...*ContextSnapshot) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearScores clears all "scores" edges to the ExecutionScore entity.
func (_u *AgentExecutionUpdate) ClearScores() *AgentExecutionUpdate {
	_u.mutation.ClearScores()
	return _u
}

// RemoveScoreIDs removes the "scores" edge to ExecutionScore entities by IDs.
func (_u *AgentExecutionUpdate) RemoveScoreIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.RemoveScoreIDs(ids...)
	return _u
}

// RemoveScores removes "scores" edges to ExecutionScore entities.
func (_u *AgentExecutionUpdate) RemoveScores(v ...*ExecutionScore) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScoreIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _u.mutation.CompletionCleared() && len(_u.mutation.CompletionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.completion"`)
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.report"`)
	}
	return nil
}

func (_u *AgentExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LatestSeq(); ok {
		_spec.SetField(agentexecution.FieldLatestSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatestSeq(); ok {
		_spec.AddField(agentexecution.FieldLatestSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(agentexecution.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(agentexecution.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalDurationMs(); ok {
		_spec.SetField(agentexecution.FieldTotalDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDurationMs(); ok {
		_spec.AddField(agentexecution.FieldTotalDurationMs, field.TypeInt, value)
	}
	if _u.mutation.TotalDurationMsCleared() {
		_spec.ClearField(agentexecution.FieldTotalDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentexecution.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.PlanDecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.PlanDecisionsTable,
			Columns: []string{agentexecution.PlanDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlanDecisionsIDs(); len(nodes) > 0 && !_u.mutation.PlanDecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.PlanDecisionsTable,
			Columns: []string{agentexecution.PlanDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanDecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.PlanDecisionsTable,
			Columns: []string{agentexecution.PlanDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.ToolExecutionsTable,
			Columns: []string{agentexecution.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.ToolExecutionsTable,
			Columns: []string{agentexecution.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.ToolExecutionsTable,
			Columns: []string{agentexecution.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
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
			Table:   agentexecution.BlocksTable,
			Columns: []string{agentexecution.BlocksColumn},
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
			Table:   agentexecution.BlocksTable,
			Columns: []string{agentexecution.BlocksColumn},
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
			Table:   agentexecution.BlocksTable,
			Columns: []string{agentexecution.BlocksColumn},
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
	if _u.mutation.SnapshotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.SnapshotsTable,
			Columns: []string{agentexecution.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextsnapshot.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.SnapshotsTable,
			Columns: []string{agentexecution.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextsnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.SnapshotsTable,
			Columns: []string{agentexecution.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextsnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.ScoresTable,
			Columns: []string{agentexecution.ScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionscore.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScoresIDs(); len(nodes) > 0 && !_u.mutation.ScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.ScoresTable,
			Columns: []string{agentexecution.ScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.ScoresTable,
			Columns: []string{agentexecution.ScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentExecutionUpdateOne is the builder for updating a single AgentExecution entity.
type AgentExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentExecutionMutation
}

// SetStatus sets the "status" field.
func (_u *AgentExecutionUpdateOne) SetStatus(v agentexecution.Status) *AgentExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableStatus(v *agentexecution.Status) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLatestSeq sets the "latest_seq" field.
func (_u *AgentExecutionUpdateOne) SetLatestSeq(v int) *AgentExecutionUpdateOne {
	_u.mutation.ResetLatestSeq()
	_u.mutation.SetLatestSeq(v)
	return _u
}

// SetNillableLatestSeq sets the "latest_seq" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableLatestSeq(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetLatestSeq(*v)
	}
	return _u
}

// AddLatestSeq adds value to the "latest_seq" field.
func (_u *AgentExecutionUpdateOne) AddLatestSeq(v int) *AgentExecutionUpdateOne {
	_u.mutation.AddLatestSeq(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *AgentExecutionUpdateOne) SetConfig(v map[string]interface{}) *AgentExecutionUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *AgentExecutionUpdateOne) ClearConfig() *AgentExecutionUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentExecutionUpdateOne) SetCompletedAt(v time.Time) *AgentExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentExecutionUpdateOne) ClearCompletedAt() *AgentExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (_u *AgentExecutionUpdateOne) SetTotalDurationMs(v int) *AgentExecutionUpdateOne {
	_u.mutation.ResetTotalDurationMs()
	_u.mutation.SetTotalDurationMs(v)
	return _u
}

// SetNillableTotalDurationMs sets the "total_duration_ms" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableTotalDurationMs(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetTotalDurationMs(*v)
	}
	return _u
}

// AddTotalDurationMs adds value to the "total_duration_ms" field.
func (_u *AgentExecutionUpdateOne) AddTotalDurationMs(v int) *AgentExecutionUpdateOne {
	_u.mutation.AddTotalDurationMs(v)
	return _u
}

// ClearTotalDurationMs clears the value of the "total_duration_ms" field.
func (_u *AgentExecutionUpdateOne) ClearTotalDurationMs() *AgentExecutionUpdateOne {
	_u.mutation.ClearTotalDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentExecutionUpdateOne) SetErrorMessage(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableErrorMessage(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentExecutionUpdateOne) ClearErrorMessage() *AgentExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddPlanDecisionIDs adds the "plan_decisions" edge to the PlanDecision entity by IDs.
func (_u *AgentExecutionUpdateOne) AddPlanDecisionIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.AddPlanDecisionIDs(ids...)
	return _u
}

// AddPlanDecisions adds the "plan_decisions" edges to the PlanDecision entity.
func (_u *AgentExecutionUpdateOne) AddPlanDecisions(v ...*PlanDecision) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlanDecisionIDs(ids...)
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by IDs.
func (_u *AgentExecutionUpdateOne) AddToolExecutionIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.AddToolExecutionIDs(ids...)
	return _u
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecution entity.
func (_u *AgentExecutionUpdateOne) AddToolExecutions(v ...*ToolExecution) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolExecutionIDs(ids...)
}

// AddBlockIDs adds the "blocks" edge to the CompletionBlock entity by IDs.
func (_u *AgentExecutionUpdateOne) AddBlockIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlocks adds the "blocks" edges to the CompletionBlock entity.
func (_u *AgentExecutionUpdateOne) AddBlocks(v ...*CompletionBlock) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// AddSnapshotIDs adds the "snapshots" edge to the ContextSnapshot entity by IDs.
func (_u *AgentExecutionUpdateOne) AddSnapshotIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the ContextSnapshot entity.
func (_u *AgentExecutionUpdateOne) AddSnapshots(v ...*ContextSnapshot) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddScoreIDs adds the "scores" edge to the ExecutionScore entity by IDs.
func (_u *AgentExecutionUpdateOne) AddScoreIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.AddScoreIDs(ids...)
	return _u
}

// AddScores adds the "scores" edges to the ExecutionScore entity.
func (_u *AgentExecutionUpdateOne) AddScores(v ...*ExecutionScore) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScoreIDs(ids...)
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_u *AgentExecutionUpdateOne) Mutation() *AgentExecutionMutation {
	return _u.mutation
}

// ClearPlanDecisions clears all "plan_decisions" edges to the PlanDecision entity.
func (_u *AgentExecutionUpdateOne) ClearPlanDecisions() *AgentExecutionUpdateOne {
	_u.mutation.ClearPlanDecisions()
	return _u
}

// RemovePlanDecisionIDs removes the "plan_decisions" edge to PlanDecision entities by IDs.
func (_u *AgentExecutionUpdateOne) RemovePlanDecisionIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.RemovePlanDecisionIDs(ids...)
	return _u
}

// RemovePlanDecisions removes "plan_decisions" edges to PlanDecision entities.
func (_u *AgentExecutionUpdateOne) RemovePlanDecisions(v ...*PlanDecision) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlanDecisionIDs(ids...)
}

// ClearToolExecutions clears all "tool_executions" edges to the ToolExecution entity.
func (_u *AgentExecutionUpdateOne) ClearToolExecutions() *AgentExecutionUpdateOne {
	_u.mutation.ClearToolExecutions()
	return _u
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to ToolExecution entities by IDs.
func (_u *AgentExecutionUpdateOne) RemoveToolExecutionIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.RemoveToolExecutionIDs(ids...)
	return _u
}

// RemoveToolExecutions removes "tool_executions" edges to ToolExecution entities.
func (_u *AgentExecutionUpdateOne) RemoveToolExecutions(v ...*ToolExecution) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolExecutionIDs(ids...)
}

// ClearBlocks clears all "blocks" edges to the CompletionBlock entity.
func (_u *AgentExecutionUpdateOne) ClearBlocks() *AgentExecutionUpdateOne {
	_u.mutation.ClearBlocks()
	return _u
}

// RemoveBlockIDs removes the "blocks" edge to CompletionBlock entities by IDs.
func (_u *AgentExecutionUpdateOne) RemoveBlockIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlocks removes "blocks" edges to CompletionBlock entities.
func (_u *AgentExecutionUpdateOne) RemoveBlocks(v ...*CompletionBlock) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// ClearSnapshots clears all "snapshots" edges to the ContextSnapshot entity.
func (_u *AgentExecutionUpdateOne) ClearSnapshots() *AgentExecutionUpdateOne {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to ContextSnapshot entities by IDs.
func (_u *AgentExecutionUpdateOne) RemoveSnapshotIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to ContextSnapshot entities.
func (_u *AgentExecutionUpdateOne) RemoveSnapshots(v ...*ContextSnapshot) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearScores clears all "scores" edges to the ExecutionScore entity.
func (_u *AgentExecutionUpdateOne) ClearScores() *AgentExecutionUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// RemoveScoreIDs removes the "scores" edge to ExecutionScore entities by IDs.
func (_u *AgentExecutionUpdateOne) RemoveScoreIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.RemoveScoreIDs(ids...)
	return _u
}

// RemoveScores removes "scores" edges to ExecutionScore entities.
func (_u *AgentExecutionUpdateOne) RemoveScores(v ...*ExecutionScore) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScoreIDs(ids...)
}

// Where appends a list predicates to the AgentExecutionUpdate builder.
func (_u *AgentExecutionUpdateOne) Where(ps ...predicate.AgentExecution) *AgentExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentExecutionUpdateOne) Select(field string, fields ...string) *AgentExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentExecution entity.
func (_u *AgentExecutionUpdateOne) Save(ctx context.Context) (*AgentExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentExecutionUpdateOne) SaveX(ctx context.Context) *AgentExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _u.mutation.CompletionCleared() && len(_u.mutation.CompletionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.completion"`)
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.report"`)
	}
	return nil
}

func (_u *AgentExecutionUpdateOne) sqlSave(ctx context.Context) (_node *AgentExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentexecution.FieldID)
		for _, f := range fields {
			if !agentexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentexecution.FieldID {
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
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LatestSeq(); ok {
		_spec.SetField(agentexecution.FieldLatestSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatestSeq(); ok {
		_spec.AddField(agentexecution.FieldLatestSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(agentexecution.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(agentexecution.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalDurationMs(); ok {
		_spec.SetField(agentexecution.FieldTotalDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDurationMs(); ok {
		_spec.AddField(agentexecution.FieldTotalDurationMs, field.TypeInt, value)
	}
	if _u.mutation.TotalDurationMsCleared() {
		_spec.ClearField(agentexecution.FieldTotalDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentexecution.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.PlanDecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.PlanDecisionsTable,
			Columns: []string{agentexecution.PlanDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlanDecisionsIDs(); len(nodes) > 0 && !_u.mutation.PlanDecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.PlanDecisionsTable,
			Columns: []string{agentexecution.PlanDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanDecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.PlanDecisionsTable,
			Columns: []string{agentexecution.PlanDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.ToolExecutionsTable,
			Columns: []string{agentexecution.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.ToolExecutionsTable,
			Columns: []string{agentexecution.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.ToolExecutionsTable,
			Columns: []string{agentexecution.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
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
			Table:   agentexecution.BlocksTable,
			Columns: []string{agentexecution.BlocksColumn},
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
			Table:   agentexecution.BlocksTable,
			Columns: []string{agentexecution.BlocksColumn},
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
			Table:   agentexecution.BlocksTable,
			Columns: []string{agentexecution.BlocksColumn},
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
	if _u.mutation.SnapshotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.SnapshotsTable,
			Columns: []string{agentexecution.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextsnapshot.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.SnapshotsTable,
			Columns: []string{agentexecution.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextsnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.SnapshotsTable,
			Columns: []string{agentexecution.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextsnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.ScoresTable,
			Columns: []string{agentexecution.ScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionscore.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScoresIDs(); len(nodes) > 0 && !_u.mutation.ScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.ScoresTable,
			Columns: []string{agentexecution.ScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.ScoresTable,
			Columns: []string{agentexecution.ScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
