// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quarryhq/quarry/ent/contextsnapshot"
	"github.com/quarryhq/quarry/ent/predicate"
)

// ContextSnapshotUpdate is the builder for updating ContextSnapshot entities.
type ContextSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ContextSnapshotMutation
}

// Where appends a list predicates to the ContextSnapshotUpdate builder.
func (_u *ContextSnapshotUpdate) Where(ps ...predicate.ContextSnapshot) *ContextSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContextView sets the "context_view" field.
func (_u *ContextSnapshotUpdate) SetContextView(v map[string]interface{}) *ContextSnapshotUpdate {
	_u.mutation.SetContextView(v)
	return _u
}

// SetPromptText sets the "prompt_text" field.
func (_u *ContextSnapshotUpdate) SetPromptText(v string) *ContextSnapshotUpdate {
	_u.mutation.SetPromptText(v)
	return _u
}

// SetNillablePromptText sets the "prompt_text" field if the given value is not nil.
func (_u *ContextSnapshotUpdate) SetNillablePromptText(v *string) *ContextSnapshotUpdate {
	if v != nil {
		_u.SetPromptText(*v)
	}
	return _u
}

// ClearPromptText clears the value of the "prompt_text" field.
func (_u *ContextSnapshotUpdate) ClearPromptText() *ContextSnapshotUpdate {
	_u.mutation.ClearPromptText()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *ContextSnapshotUpdate) SetPromptTokens(v int) *ContextSnapshotUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *ContextSnapshotUpdate) SetNillablePromptTokens(v *int) *ContextSnapshotUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *ContextSnapshotUpdate) AddPromptTokens(v int) *ContextSnapshotUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *ContextSnapshotUpdate) ClearPromptTokens() *ContextSnapshotUpdate {
	_u.mutation.ClearPromptTokens()
	return _u
}

// Mutation returns the ContextSnapshotMutation object of the builder.
func (_u *ContextSnapshotUpdate) Mutation() *ContextSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContextSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContextSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextSnapshotUpdate) check() error {
	if _u.mutation.AgentExecutionCleared() && len(_u.mutation.AgentExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContextSnapshot.agent_execution"`)
	}
	return nil
}

func (_u *ContextSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextsnapshot.Table, contextsnapshot.Columns, sqlgraph.NewFieldSpec(contextsnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContextView(); ok {
		_spec.SetField(contextsnapshot.FieldContextView, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PromptText(); ok {
		_spec.SetField(contextsnapshot.FieldPromptText, field.TypeString, value)
	}
	if _u.mutation.PromptTextCleared() {
		_spec.ClearField(contextsnapshot.FieldPromptText, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(contextsnapshot.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(contextsnapshot.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(contextsnapshot.FieldPromptTokens, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContextSnapshotUpdateOne is the builder for updating a single ContextSnapshot entity.
type ContextSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContextSnapshotMutation
}

// SetContextView sets the "context_view" field.
func (_u *ContextSnapshotUpdateOne) SetContextView(v map[string]interface{}) *ContextSnapshotUpdateOne {
	_u.mutation.SetContextView(v)
	return _u
}

// SetPromptText sets the "prompt_text" field.
func (_u *ContextSnapshotUpdateOne) SetPromptText(v string) *ContextSnapshotUpdateOne {
	_u.mutation.SetPromptText(v)
	return _u
}

// SetNillablePromptText sets the "prompt_text" field if the given value is not nil.
func (_u *ContextSnapshotUpdateOne) SetNillablePromptText(v *string) *ContextSnapshotUpdateOne {
	if v != nil {
		_u.SetPromptText(*v)
	}
	return _u
}

// ClearPromptText clears the value of the "prompt_text" field.
func (_u *ContextSnapshotUpdateOne) ClearPromptText() *ContextSnapshotUpdateOne {
	_u.mutation.ClearPromptText()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *ContextSnapshotUpdateOne) SetPromptTokens(v int) *ContextSnapshotUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *ContextSnapshotUpdateOne) SetNillablePromptTokens(v *int) *ContextSnapshotUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *ContextSnapshotUpdateOne) AddPromptTokens(v int) *ContextSnapshotUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *ContextSnapshotUpdateOne) ClearPromptTokens() *ContextSnapshotUpdateOne {
	_u.mutation.ClearPromptTokens()
	return _u
}

// Mutation returns the ContextSnapshotMutation object of the builder.
func (_u *ContextSnapshotUpdateOne) Mutation() *ContextSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContextSnapshotUpdate builder.
func (_u *ContextSnapshotUpdateOne) Where(ps ...predicate.ContextSnapshot) *ContextSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContextSnapshotUpdateOne) Select(field string, fields ...string) *ContextSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContextSnapshot entity.
func (_u *ContextSnapshotUpdateOne) Save(ctx context.Context) (*ContextSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextSnapshotUpdateOne) SaveX(ctx context.Context) *ContextSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContextSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextSnapshotUpdateOne) check() error {
	if _u.mutation.AgentExecutionCleared() && len(_u.mutation.AgentExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContextSnapshot.agent_execution"`)
	}
	return nil
}

func (_u *ContextSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ContextSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextsnapshot.Table, contextsnapshot.Columns, sqlgraph.NewFieldSpec(contextsnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContextSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contextsnapshot.FieldID)
		for _, f := range fields {
			if !contextsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contextsnapshot.FieldID {
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
	if value, ok := _u.mutation.ContextView(); ok {
		_spec.SetField(contextsnapshot.FieldContextView, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PromptText(); ok {
		_spec.SetField(contextsnapshot.FieldPromptText, field.TypeString, value)
	}
	if _u.mutation.PromptTextCleared() {
		_spec.ClearField(contextsnapshot.FieldPromptText, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(contextsnapshot.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(contextsnapshot.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(contextsnapshot.FieldPromptTokens, field.TypeInt)
	}
	_node = &ContextSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
