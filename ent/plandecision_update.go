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
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/ent/predicate"
	"github.com/quarryhq/quarry/ent/toolexecution"
)

// PlanDecisionUpdate is the builder for updating PlanDecision entities.
type PlanDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *PlanDecisionMutation
}

// Where appends a list predicates to the PlanDecisionUpdate builder.
func (_u *PlanDecisionUpdate) Where(ps ...predicate.PlanDecision) *PlanDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanType sets the "plan_type" field.
func (_u *PlanDecisionUpdate) SetPlanType(v plandecision.PlanType) *PlanDecisionUpdate {
	_u.mutation.SetPlanType(v)
	return _u
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillablePlanType(v *plandecision.PlanType) *PlanDecisionUpdate {
	if v != nil {
		_u.SetPlanType(*v)
	}
	return _u
}

// SetAnalysisComplete sets the "analysis_complete" field.
func (_u *PlanDecisionUpdate) SetAnalysisComplete(v bool) *PlanDecisionUpdate {
	_u.mutation.SetAnalysisComplete(v)
	return _u
}

// SetNillableAnalysisComplete sets the "analysis_complete" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableAnalysisComplete(v *bool) *PlanDecisionUpdate {
	if v != nil {
		_u.SetAnalysisComplete(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *PlanDecisionUpdate) SetReasoning(v string) *PlanDecisionUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableReasoning(v *string) *PlanDecisionUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *PlanDecisionUpdate) ClearReasoning() *PlanDecisionUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetAssistant sets the "assistant" field.
func (_u *PlanDecisionUpdate) SetAssistant(v string) *PlanDecisionUpdate {
	_u.mutation.SetAssistant(v)
	return _u
}

// SetNillableAssistant sets the "assistant" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableAssistant(v *string) *PlanDecisionUpdate {
	if v != nil {
		_u.SetAssistant(*v)
	}
	return _u
}

// ClearAssistant clears the value of the "assistant" field.
func (_u *PlanDecisionUpdate) ClearAssistant() *PlanDecisionUpdate {
	_u.mutation.ClearAssistant()
	return _u
}

// SetFinalAnswer sets the "final_answer" field.
func (_u *PlanDecisionUpdate) SetFinalAnswer(v string) *PlanDecisionUpdate {
	_u.mutation.SetFinalAnswer(v)
	return _u
}

// SetNillableFinalAnswer sets the "final_answer" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableFinalAnswer(v *string) *PlanDecisionUpdate {
	if v != nil {
		_u.SetFinalAnswer(*v)
	}
	return _u
}

// ClearFinalAnswer clears the value of the "final_answer" field.
func (_u *PlanDecisionUpdate) ClearFinalAnswer() *PlanDecisionUpdate {
	_u.mutation.ClearFinalAnswer()
	return _u
}

// SetActionName sets the "action_name" field.
func (_u *PlanDecisionUpdate) SetActionName(v string) *PlanDecisionUpdate {
	_u.mutation.SetActionName(v)
	return _u
}

// SetNillableActionName sets the "action_name" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableActionName(v *string) *PlanDecisionUpdate {
	if v != nil {
		_u.SetActionName(*v)
	}
	return _u
}

// ClearActionName clears the value of the "action_name" field.
func (_u *PlanDecisionUpdate) ClearActionName() *PlanDecisionUpdate {
	_u.mutation.ClearActionName()
	return _u
}

// SetActionArgs sets the "action_args" field.
func (_u *PlanDecisionUpdate) SetActionArgs(v map[string]interface{}) *PlanDecisionUpdate {
	_u.mutation.SetActionArgs(v)
	return _u
}

// ClearActionArgs clears the value of the "action_args" field.
func (_u *PlanDecisionUpdate) ClearActionArgs() *PlanDecisionUpdate {
	_u.mutation.ClearActionArgs()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *PlanDecisionUpdate) SetMetrics(v map[string]interface{}) *PlanDecisionUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *PlanDecisionUpdate) ClearMetrics() *PlanDecisionUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanDecisionUpdate) SetUpdatedAt(v time.Time) *PlanDecisionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by IDs.
func (_u *PlanDecisionUpdate) AddToolExecutionIDs(ids ...string) *PlanDecisionUpdate {
	_u.mutation.AddToolExecutionIDs(ids...)
	return _u
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecution entity.
func (_u *PlanDecisionUpdate) AddToolExecutions(v ...*ToolExecution) *PlanDecisionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolExecutionIDs(ids...)
}

// Mutation returns the PlanDecisionMutation object of the builder.
func (_u *PlanDecisionUpdate) Mutation() *PlanDecisionMutation {
	return _u.mutation
}

// ClearToolExecutions clears all "tool_executions" edges to the ToolExecution entity.
func (_u *PlanDecisionUpdate) ClearToolExecutions() *PlanDecisionUpdate {
	_u.mutation.ClearToolExecutions()
	return _u
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to ToolExecution entities by IDs.
func (_u *PlanDecisionUpdate) RemoveToolExecutionIDs(ids ...string) *PlanDecisionUpdate {
	_u.mutation.RemoveToolExecutionIDs(ids...)
	return _u
}

// RemoveToolExecutions removes "tool_executions" edges to ToolExecution entities.
func (_u *PlanDecisionUpdate) RemoveToolExecutions(v ...*ToolExecution) *PlanDecisionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolExecutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanDecisionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanDecisionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plandecision.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanDecisionUpdate) check() error {
	if v, ok := _u.mutation.PlanType(); ok {
		if err := plandecision.PlanTypeValidator(v); err != nil {
			return &ValidationError{Name: "plan_type", err: fmt.Errorf(`ent: validator failed for field "PlanDecision.plan_type": %w`, err)}
		}
	}
	if _u.mutation.AgentExecutionCleared() && len(_u.mutation.AgentExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlanDecision.agent_execution"`)
	}
	return nil
}

func (_u *PlanDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plandecision.Table, plandecision.Columns, sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanType(); ok {
		_spec.SetField(plandecision.FieldPlanType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnalysisComplete(); ok {
		_spec.SetField(plandecision.FieldAnalysisComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(plandecision.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(plandecision.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Assistant(); ok {
		_spec.SetField(plandecision.FieldAssistant, field.TypeString, value)
	}
	if _u.mutation.AssistantCleared() {
		_spec.ClearField(plandecision.FieldAssistant, field.TypeString)
	}
	if value, ok := _u.mutation.FinalAnswer(); ok {
		_spec.SetField(plandecision.FieldFinalAnswer, field.TypeString, value)
	}
	if _u.mutation.FinalAnswerCleared() {
		_spec.ClearField(plandecision.FieldFinalAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.ActionName(); ok {
		_spec.SetField(plandecision.FieldActionName, field.TypeString, value)
	}
	if _u.mutation.ActionNameCleared() {
		_spec.ClearField(plandecision.FieldActionName, field.TypeString)
	}
	if value, ok := _u.mutation.ActionArgs(); ok {
		_spec.SetField(plandecision.FieldActionArgs, field.TypeJSON, value)
	}
	if _u.mutation.ActionArgsCleared() {
		_spec.ClearField(plandecision.FieldActionArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(plandecision.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(plandecision.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plandecision.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.ToolExecutionsTable,
			Columns: []string{plandecision.ToolExecutionsColumn},
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
			Table:   plandecision.ToolExecutionsTable,
			Columns: []string{plandecision.ToolExecutionsColumn},
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
			Table:   plandecision.ToolExecutionsTable,
			Columns: []string{plandecision.ToolExecutionsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plandecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanDecisionUpdateOne is the builder for updating a single PlanDecision entity.
type PlanDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanDecisionMutation
}

// SetPlanType sets the "plan_type" field.
func (_u *PlanDecisionUpdateOne) SetPlanType(v plandecision.PlanType) *PlanDecisionUpdateOne {
	_u.mutation.SetPlanType(v)
	return _u
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillablePlanType(v *plandecision.PlanType) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetPlanType(*v)
	}
	return _u
}

// SetAnalysisComplete sets the "analysis_complete" field.
func (_u *PlanDecisionUpdateOne) SetAnalysisComplete(v bool) *PlanDecisionUpdateOne {
	_u.mutation.SetAnalysisComplete(v)
	return _u
}

// SetNillableAnalysisComplete sets the "analysis_complete" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableAnalysisComplete(v *bool) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetAnalysisComplete(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *PlanDecisionUpdateOne) SetReasoning(v string) *PlanDecisionUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableReasoning(v *string) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *PlanDecisionUpdateOne) ClearReasoning() *PlanDecisionUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetAssistant sets the "assistant" field.
func (_u *PlanDecisionUpdateOne) SetAssistant(v string) *PlanDecisionUpdateOne {
	_u.mutation.SetAssistant(v)
	return _u
}

// SetNillableAssistant sets the "assistant" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableAssistant(v *string) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetAssistant(*v)
	}
	return _u
}

// ClearAssistant clears the value of the "assistant" field.
func (_u *PlanDecisionUpdateOne) ClearAssistant() *PlanDecisionUpdateOne {
	_u.mutation.ClearAssistant()
	return _u
}

// SetFinalAnswer sets the "final_answer" field.
func (_u *PlanDecisionUpdateOne) SetFinalAnswer(v string) *PlanDecisionUpdateOne {
	_u.mutation.SetFinalAnswer(v)
	return _u
}

// SetNillableFinalAnswer sets the "final_answer" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableFinalAnswer(v *string) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetFinalAnswer(*v)
	}
	return _u
}

// ClearFinalAnswer clears the value of the "final_answer" field.
func (_u *PlanDecisionUpdateOne) ClearFinalAnswer() *PlanDecisionUpdateOne {
	_u.mutation.ClearFinalAnswer()
	return _u
}

// SetActionName sets the "action_name" field.
func (_u *PlanDecisionUpdateOne) SetActionName(v string) *PlanDecisionUpdateOne {
	_u.mutation.SetActionName(v)
	return _u
}

// SetNillableActionName sets the "action_name" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableActionName(v *string) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetActionName(*v)
	}
	return _u
}

// ClearActionName clears the value of the "action_name" field.
func (_u *PlanDecisionUpdateOne) ClearActionName() *PlanDecisionUpdateOne {
	_u.mutation.ClearActionName()
	return _u
}

// SetActionArgs sets the "action_args" field.
func (_u *PlanDecisionUpdateOne) SetActionArgs(v map[string]interface{}) *PlanDecisionUpdateOne {
	_u.mutation.SetActionArgs(v)
	return _u
}

// ClearActionArgs clears the value of the "action_args" field.
func (_u *PlanDecisionUpdateOne) ClearActionArgs() *PlanDecisionUpdateOne {
	_u.mutation.ClearActionArgs()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *PlanDecisionUpdateOne) SetMetrics(v map[string]interface{}) *PlanDecisionUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *PlanDecisionUpdateOne) ClearMetrics() *PlanDecisionUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanDecisionUpdateOne) SetUpdatedAt(v time.Time) *PlanDecisionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by IDs.
func (_u *PlanDecisionUpdateOne) AddToolExecutionIDs(ids ...string) *PlanDecisionUpdateOne {
	_u.mutation.AddToolExecutionIDs(ids...)
	return _u
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecution entity.
func (_u *PlanDecisionUpdateOne) AddToolExecutions(v ...*ToolExecution) *PlanDecisionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolExecutionIDs(ids...)
}

// Mutation returns the PlanDecisionMutation object of the builder.
func (_u *PlanDecisionUpdateOne) Mutation() *PlanDecisionMutation {
	return _u.mutation
}

// ClearToolExecutions clears all "tool_executions" edges to the ToolExecution entity.
func (_u *PlanDecisionUpdateOne) ClearToolExecutions() *PlanDecisionUpdateOne {
	_u.mutation.ClearToolExecutions()
	return _u
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to ToolExecution entities by IDs.
func (_u *PlanDecisionUpdateOne) RemoveToolExecutionIDs(ids ...string) *PlanDecisionUpdateOne {
	_u.mutation.RemoveToolExecutionIDs(ids...)
	return _u
}

// RemoveToolExecutions removes "tool_executions" edges to ToolExecution entities.
func (_u *PlanDecisionUpdateOne) RemoveToolExecutions(v ...*ToolExecution) *PlanDecisionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolExecutionIDs(ids...)
}

// Where appends a list predicates to the PlanDecisionUpdate builder.
func (_u *PlanDecisionUpdateOne) Where(ps ...predicate.PlanDecision) *PlanDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanDecisionUpdateOne) Select(field string, fields ...string) *PlanDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanDecision entity.
func (_u *PlanDecisionUpdateOne) Save(ctx context.Context) (*PlanDecision, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanDecisionUpdateOne) SaveX(ctx context.Context) *PlanDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanDecisionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plandecision.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanDecisionUpdateOne) check() error {
	if v, ok := _u.mutation.PlanType(); ok {
		if err := plandecision.PlanTypeValidator(v); err != nil {
			return &ValidationError{Name: "plan_type", err: fmt.Errorf(`ent: validator failed for field "PlanDecision.plan_type": %w`, err)}
		}
	}
	if _u.mutation.AgentExecutionCleared() && len(_u.mutation.AgentExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlanDecision.agent_execution"`)
	}
	return nil
}

func (_u *PlanDecisionUpdateOne) sqlSave(ctx context.Context) (_node *PlanDecision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plandecision.Table, plandecision.Columns, sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plandecision.FieldID)
		for _, f := range fields {
			if !plandecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plandecision.FieldID {
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
	if value, ok := _u.mutation.PlanType(); ok {
		_spec.SetField(plandecision.FieldPlanType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnalysisComplete(); ok {
		_spec.SetField(plandecision.FieldAnalysisComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(plandecision.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(plandecision.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Assistant(); ok {
		_spec.SetField(plandecision.FieldAssistant, field.TypeString, value)
	}
	if _u.mutation.AssistantCleared() {
		_spec.ClearField(plandecision.FieldAssistant, field.TypeString)
	}
	if value, ok := _u.mutation.FinalAnswer(); ok {
		_spec.SetField(plandecision.FieldFinalAnswer, field.TypeString, value)
	}
	if _u.mutation.FinalAnswerCleared() {
		_spec.ClearField(plandecision.FieldFinalAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.ActionName(); ok {
		_spec.SetField(plandecision.FieldActionName, field.TypeString, value)
	}
	if _u.mutation.ActionNameCleared() {
		_spec.ClearField(plandecision.FieldActionName, field.TypeString)
	}
	if value, ok := _u.mutation.ActionArgs(); ok {
		_spec.SetField(plandecision.FieldActionArgs, field.TypeJSON, value)
	}
	if _u.mutation.ActionArgsCleared() {
		_spec.ClearField(plandecision.FieldActionArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(plandecision.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(plandecision.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plandecision.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.ToolExecutionsTable,
			Columns: []string{plandecision.ToolExecutionsColumn},
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
			Table:   plandecision.ToolExecutionsTable,
			Columns: []string{plandecision.ToolExecutionsColumn},
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
			Table:   plandecision.ToolExecutionsTable,
			Columns: []string{plandecision.ToolExecutionsColumn},
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
	_node = &PlanDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plandecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
