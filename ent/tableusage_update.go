// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quarryhq/quarry/ent/predicate"
	"github.com/quarryhq/quarry/ent/tableusage"
)

// TableUsageUpdate is the builder for updating TableUsage entities.
type TableUsageUpdate struct {
	config
	hooks    []Hook
	mutation *TableUsageMutation
}

// Where appends a list predicates to the TableUsageUpdate builder.
func (_u *TableUsageUpdate) Where(ps ...predicate.TableUsage) *TableUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *TableUsageUpdate) SetFeedback(v int) *TableUsageUpdate {
	_u.mutation.ResetFeedback()
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *TableUsageUpdate) SetNillableFeedback(v *int) *TableUsageUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// AddFeedback adds value to the "feedback" field.
func (_u *TableUsageUpdate) AddFeedback(v int) *TableUsageUpdate {
	_u.mutation.AddFeedback(v)
	return _u
}

// Mutation returns the TableUsageMutation object of the builder.
func (_u *TableUsageUpdate) Mutation() *TableUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TableUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TableUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TableUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TableUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TableUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tableusage.Table, tableusage.Columns, sqlgraph.NewFieldSpec(tableusage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(tableusage.FieldFeedback, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFeedback(); ok {
		_spec.AddField(tableusage.FieldFeedback, field.TypeInt, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(tableusage.FieldStepID, field.TypeString)
	}
	if _u.mutation.AgentExecutionIDCleared() {
		_spec.ClearField(tableusage.FieldAgentExecutionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tableusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TableUsageUpdateOne is the builder for updating a single TableUsage entity.
type TableUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TableUsageMutation
}

// SetFeedback sets the "feedback" field.
func (_u *TableUsageUpdateOne) SetFeedback(v int) *TableUsageUpdateOne {
	_u.mutation.ResetFeedback()
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *TableUsageUpdateOne) SetNillableFeedback(v *int) *TableUsageUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// AddFeedback adds value to the "feedback" field.
func (_u *TableUsageUpdateOne) AddFeedback(v int) *TableUsageUpdateOne {
	_u.mutation.AddFeedback(v)
	return _u
}

// Mutation returns the TableUsageMutation object of the builder.
func (_u *TableUsageUpdateOne) Mutation() *TableUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the TableUsageUpdate builder.
func (_u *TableUsageUpdateOne) Where(ps ...predicate.TableUsage) *TableUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TableUsageUpdateOne) Select(field string, fields ...string) *TableUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TableUsage entity.
func (_u *TableUsageUpdateOne) Save(ctx context.Context) (*TableUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TableUsageUpdateOne) SaveX(ctx context.Context) *TableUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TableUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TableUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TableUsageUpdateOne) sqlSave(ctx context.Context) (_node *TableUsage, err error) {
	_spec := sqlgraph.NewUpdateSpec(tableusage.Table, tableusage.Columns, sqlgraph.NewFieldSpec(tableusage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TableUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tableusage.FieldID)
		for _, f := range fields {
			if !tableusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tableusage.FieldID {
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
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(tableusage.FieldFeedback, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFeedback(); ok {
		_spec.AddField(tableusage.FieldFeedback, field.TypeInt, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(tableusage.FieldStepID, field.TypeString)
	}
	if _u.mutation.AgentExecutionIDCleared() {
		_spec.ClearField(tableusage.FieldAgentExecutionID, field.TypeString)
	}
	_node = &TableUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tableusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
