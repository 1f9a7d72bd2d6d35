// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/executionscore"
)

// ExecutionScoreCreate is the builder for creating a ExecutionScore entity.
type ExecutionScoreCreate struct {
	config
	mutation *ExecutionScoreMutation
	hooks    []Hook
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (_c *ExecutionScoreCreate) SetAgentExecutionID(v string) *ExecutionScoreCreate {
	_c.mutation.SetAgentExecutionID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ExecutionScoreCreate) SetKind(v executionscore.Kind) *ExecutionScoreCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ExecutionScoreCreate) SetScore(v int) *ExecutionScoreCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ExecutionScoreCreate) SetNillableScore(v *int) *ExecutionScoreCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *ExecutionScoreCreate) SetRationale(v string) *ExecutionScoreCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *ExecutionScoreCreate) SetNillableRationale(v *string) *ExecutionScoreCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionScoreCreate) SetStatus(v executionscore.Status) *ExecutionScoreCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionScoreCreate) SetNillableStatus(v *executionscore.Status) *ExecutionScoreCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionScoreCreate) SetCreatedAt(v time.Time) *ExecutionScoreCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionScoreCreate) SetNillableCreatedAt(v *time.Time) *ExecutionScoreCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionScoreCreate) SetCompletedAt(v time.Time) *ExecutionScoreCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionScoreCreate) SetNillableCompletedAt(v *time.Time) *ExecutionScoreCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExecutionScoreCreate) SetErrorMessage(v string) *ExecutionScoreCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExecutionScoreCreate) SetNillableErrorMessage(v *string) *ExecutionScoreCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionScoreCreate) SetID(v string) *ExecutionScoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAgentExecution sets the "agent_execution" edge to the AgentExecution entity.
func (_c *ExecutionScoreCreate) SetAgentExecution(v *AgentExecution) *ExecutionScoreCreate {
	return _c.SetAgentExecutionID(v.ID)
}

// Mutation returns the ExecutionScoreMutation object of the builder.
func (_c *ExecutionScoreCreate) Mutation() *ExecutionScoreMutation {
	return _c.mutation
}

// Save creates the ExecutionScore in the database.
func (_c *ExecutionScoreCreate) Save(ctx context.Context) (*ExecutionScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionScoreCreate) SaveX(ctx context.Context) *ExecutionScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionScoreCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := executionscore.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executionscore.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionScoreCreate) check() error {
	if _, ok := _c.mutation.AgentExecutionID(); !ok {
		return &ValidationError{Name: "agent_execution_id", err: errors.New(`ent: missing required field "ExecutionScore.agent_execution_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ExecutionScore.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := executionscore.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ExecutionScore.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionScore.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := executionscore.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionScore.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionScore.created_at"`)}
	}
	if len(_c.mutation.AgentExecutionIDs()) == 0 {
		return &ValidationError{Name: "agent_execution", err: errors.New(`ent: missing required edge "ExecutionScore.agent_execution"`)}
	}
	return nil
}

func (_c *ExecutionScoreCreate) sqlSave(ctx context.Context) (*ExecutionScore, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ExecutionScore.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionScoreCreate) createSpec() (*ExecutionScore, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionscore.Table, sqlgraph.NewFieldSpec(executionscore.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(executionscore.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(executionscore.FieldScore, field.TypeInt, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(executionscore.FieldRationale, field.TypeString, value)
		_node.Rationale = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executionscore.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executionscore.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(executionscore.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(executionscore.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.AgentExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionscore.AgentExecutionTable,
			Columns: []string{executionscore.AgentExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionScoreCreateBulk is the builder for creating many ExecutionScore entities in bulk.
type ExecutionScoreCreateBulk struct {
	config
	err      error
	builders []*ExecutionScoreCreate
}

// Save creates the ExecutionScore entities in the database.
func (_c *ExecutionScoreCreateBulk) Save(ctx context.Context) ([]*ExecutionScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionScoreMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExecutionScoreCreateBulk) SaveX(ctx context.Context) []*ExecutionScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
