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
	"github.com/quarryhq/quarry/ent/executionscore"
	"github.com/quarryhq/quarry/ent/predicate"
)

// ExecutionScoreUpdate is the builder for updating ExecutionScore entities.
type ExecutionScoreUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionScoreMutation
}

// Where appends a list predicates to the ExecutionScoreUpdate builder.
func (_u *ExecutionScoreUpdate) Where(ps ...predicate.ExecutionScore) *ExecutionScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *ExecutionScoreUpdate) SetScore(v int) *ExecutionScoreUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExecutionScoreUpdate) SetNillableScore(v *int) *ExecutionScoreUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExecutionScoreUpdate) AddScore(v int) *ExecutionScoreUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ExecutionScoreUpdate) ClearScore() *ExecutionScoreUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *ExecutionScoreUpdate) SetRationale(v string) *ExecutionScoreUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *ExecutionScoreUpdate) SetNillableRationale(v *string) *ExecutionScoreUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *ExecutionScoreUpdate) ClearRationale() *ExecutionScoreUpdate {
	_u.mutation.ClearRationale()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionScoreUpdate) SetStatus(v executionscore.Status) *ExecutionScoreUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionScoreUpdate) SetNillableStatus(v *executionscore.Status) *ExecutionScoreUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionScoreUpdate) SetCompletedAt(v time.Time) *ExecutionScoreUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionScoreUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionScoreUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionScoreUpdate) ClearCompletedAt() *ExecutionScoreUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionScoreUpdate) SetErrorMessage(v string) *ExecutionScoreUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionScoreUpdate) SetNillableErrorMessage(v *string) *ExecutionScoreUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionScoreUpdate) ClearErrorMessage() *ExecutionScoreUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ExecutionScoreMutation object of the builder.
func (_u *ExecutionScoreUpdate) Mutation() *ExecutionScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionScoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionScoreUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionscore.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionScore.status": %w`, err)}
		}
	}
	if _u.mutation.AgentExecutionCleared() && len(_u.mutation.AgentExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionScore.agent_execution"`)
	}
	return nil
}

func (_u *ExecutionScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionscore.Table, executionscore.Columns, sqlgraph.NewFieldSpec(executionscore.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(executionscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(executionscore.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(executionscore.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(executionscore.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(executionscore.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionscore.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executionscore.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executionscore.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(executionscore.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(executionscore.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionScoreUpdateOne is the builder for updating a single ExecutionScore entity.
type ExecutionScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionScoreMutation
}

// SetScore sets the "score" field.
func (_u *ExecutionScoreUpdateOne) SetScore(v int) *ExecutionScoreUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExecutionScoreUpdateOne) SetNillableScore(v *int) *ExecutionScoreUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExecutionScoreUpdateOne) AddScore(v int) *ExecutionScoreUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ExecutionScoreUpdateOne) ClearScore() *ExecutionScoreUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *ExecutionScoreUpdateOne) SetRationale(v string) *ExecutionScoreUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *ExecutionScoreUpdateOne) SetNillableRationale(v *string) *ExecutionScoreUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *ExecutionScoreUpdateOne) ClearRationale() *ExecutionScoreUpdateOne {
	_u.mutation.ClearRationale()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionScoreUpdateOne) SetStatus(v executionscore.Status) *ExecutionScoreUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionScoreUpdateOne) SetNillableStatus(v *executionscore.Status) *ExecutionScoreUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionScoreUpdateOne) SetCompletedAt(v time.Time) *ExecutionScoreUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionScoreUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionScoreUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionScoreUpdateOne) ClearCompletedAt() *ExecutionScoreUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionScoreUpdateOne) SetErrorMessage(v string) *ExecutionScoreUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionScoreUpdateOne) SetNillableErrorMessage(v *string) *ExecutionScoreUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionScoreUpdateOne) ClearErrorMessage() *ExecutionScoreUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ExecutionScoreMutation object of the builder.
func (_u *ExecutionScoreUpdateOne) Mutation() *ExecutionScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionScoreUpdate builder.
func (_u *ExecutionScoreUpdateOne) Where(ps ...predicate.ExecutionScore) *ExecutionScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionScoreUpdateOne) Select(field string, fields ...string) *ExecutionScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionScore entity.
func (_u *ExecutionScoreUpdateOne) Save(ctx context.Context) (*ExecutionScore, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionScoreUpdateOne) SaveX(ctx context.Context) *ExecutionScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionScoreUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionscore.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionScore.status": %w`, err)}
		}
	}
	if _u.mutation.AgentExecutionCleared() && len(_u.mutation.AgentExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionScore.agent_execution"`)
	}
	return nil
}

func (_u *ExecutionScoreUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionscore.Table, executionscore.Columns, sqlgraph.NewFieldSpec(executionscore.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionscore.FieldID)
		for _, f := range fields {
			if !executionscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionscore.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(executionscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(executionscore.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(executionscore.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(executionscore.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(executionscore.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionscore.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executionscore.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executionscore.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(executionscore.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(executionscore.FieldErrorMessage, field.TypeString)
	}
	_node = &ExecutionScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
