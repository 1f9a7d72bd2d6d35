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
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
)

// CompletionBlockCreate is the builder for creating a CompletionBlock entity.
type CompletionBlockCreate struct {
	config
	mutation *CompletionBlockMutation
	hooks    []Hook
}

// SetCompletionID sets the "completion_id" field.
func (_c *CompletionBlockCreate) SetCompletionID(v string) *CompletionBlockCreate {
	_c.mutation.SetCompletionID(v)
	return _c
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (_c *CompletionBlockCreate) SetAgentExecutionID(v string) *CompletionBlockCreate {
	_c.mutation.SetAgentExecutionID(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *CompletionBlockCreate) SetSourceType(v completionblock.SourceType) *CompletionBlockCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableSourceType(v *completionblock.SourceType) *CompletionBlockCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetPlanDecisionID sets the "plan_decision_id" field.
func (_c *CompletionBlockCreate) SetPlanDecisionID(v string) *CompletionBlockCreate {
	_c.mutation.SetPlanDecisionID(v)
	return _c
}

// SetNillablePlanDecisionID sets the "plan_decision_id" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillablePlanDecisionID(v *string) *CompletionBlockCreate {
	if v != nil {
		_c.SetPlanDecisionID(*v)
	}
	return _c
}

// SetToolExecutionID sets the "tool_execution_id" field.
func (_c *CompletionBlockCreate) SetToolExecutionID(v string) *CompletionBlockCreate {
	_c.mutation.SetToolExecutionID(v)
	return _c
}

// SetNillableToolExecutionID sets the "tool_execution_id" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableToolExecutionID(v *string) *CompletionBlockCreate {
	if v != nil {
		_c.SetToolExecutionID(*v)
	}
	return _c
}

// SetBlockIndex sets the "block_index" field.
func (_c *CompletionBlockCreate) SetBlockIndex(v int) *CompletionBlockCreate {
	_c.mutation.SetBlockIndex(v)
	return _c
}

// SetLoopIndex sets the "loop_index" field.
func (_c *CompletionBlockCreate) SetLoopIndex(v int) *CompletionBlockCreate {
	_c.mutation.SetLoopIndex(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CompletionBlockCreate) SetTitle(v string) *CompletionBlockCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CompletionBlockCreate) SetStatus(v completionblock.Status) *CompletionBlockCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableStatus(v *completionblock.Status) *CompletionBlockCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIcon sets the "icon" field.
func (_c *CompletionBlockCreate) SetIcon(v string) *CompletionBlockCreate {
	_c.mutation.SetIcon(v)
	return _c
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableIcon(v *string) *CompletionBlockCreate {
	if v != nil {
		_c.SetIcon(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *CompletionBlockCreate) SetContent(v string) *CompletionBlockCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableContent(v *string) *CompletionBlockCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *CompletionBlockCreate) SetReasoning(v string) *CompletionBlockCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableReasoning(v *string) *CompletionBlockCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CompletionBlockCreate) SetStartedAt(v time.Time) *CompletionBlockCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableStartedAt(v *time.Time) *CompletionBlockCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CompletionBlockCreate) SetCompletedAt(v time.Time) *CompletionBlockCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableCompletedAt(v *time.Time) *CompletionBlockCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CompletionBlockCreate) SetUpdatedAt(v time.Time) *CompletionBlockCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableUpdatedAt(v *time.Time) *CompletionBlockCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompletionBlockCreate) SetID(v string) *CompletionBlockCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCompletion sets the "completion" edge to the Completion entity.
func (_c *CompletionBlockCreate) SetCompletion(v *Completion) *CompletionBlockCreate {
	return _c.SetCompletionID(v.ID)
}

// SetAgentExecution sets the "agent_execution" edge to the AgentExecution entity.
func (_c *CompletionBlockCreate) SetAgentExecution(v *AgentExecution) *CompletionBlockCreate {
	return _c.SetAgentExecutionID(v.ID)
}

// Mutation returns the CompletionBlockMutation object of the builder.
func (_c *CompletionBlockCreate) Mutation() *CompletionBlockMutation {
	return _c.mutation
}

// Save creates the CompletionBlock in the database.
func (_c *CompletionBlockCreate) Save(ctx context.Context) (*CompletionBlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompletionBlockCreate) SaveX(ctx context.Context) *CompletionBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompletionBlockCreate) defaults() {
	if _, ok := _c.mutation.SourceType(); !ok {
		v := completionblock.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := completionblock.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Icon(); !ok {
		v := completionblock.DefaultIcon
		_c.mutation.SetIcon(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := completionblock.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := completionblock.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompletionBlockCreate) check() error {
	if _, ok := _c.mutation.CompletionID(); !ok {
		return &ValidationError{Name: "completion_id", err: errors.New(`ent: missing required field "CompletionBlock.completion_id"`)}
	}
	if _, ok := _c.mutation.AgentExecutionID(); !ok {
		return &ValidationError{Name: "agent_execution_id", err: errors.New(`ent: missing required field "CompletionBlock.agent_execution_id"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "CompletionBlock.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := completionblock.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "CompletionBlock.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlockIndex(); !ok {
		return &ValidationError{Name: "block_index", err: errors.New(`ent: missing required field "CompletionBlock.block_index"`)}
	}
	if _, ok := _c.mutation.LoopIndex(); !ok {
		return &ValidationError{Name: "loop_index", err: errors.New(`ent: missing required field "CompletionBlock.loop_index"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CompletionBlock.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CompletionBlock.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := completionblock.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CompletionBlock.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Icon(); !ok {
		return &ValidationError{Name: "icon", err: errors.New(`ent: missing required field "CompletionBlock.icon"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "CompletionBlock.started_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CompletionBlock.updated_at"`)}
	}
	if len(_c.mutation.CompletionIDs()) == 0 {
		return &ValidationError{Name: "completion", err: errors.New(`ent: missing required edge "CompletionBlock.completion"`)}
	}
	if len(_c.mutation.AgentExecutionIDs()) == 0 {
		return &ValidationError{Name: "agent_execution", err: errors.New(`ent: missing required edge "CompletionBlock.agent_execution"`)}
	}
	return nil
}

func (_c *CompletionBlockCreate) sqlSave(ctx context.Context) (*CompletionBlock, error) {
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
			return nil, fmt.Errorf("unexpected CompletionBlock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompletionBlockCreate) createSpec() (*CompletionBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &CompletionBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(completionblock.Table, sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(completionblock.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.PlanDecisionID(); ok {
		_spec.SetField(completionblock.FieldPlanDecisionID, field.TypeString, value)
		_node.PlanDecisionID = &value
	}
	if value, ok := _c.mutation.ToolExecutionID(); ok {
		_spec.SetField(completionblock.FieldToolExecutionID, field.TypeString, value)
		_node.ToolExecutionID = &value
	}
	if value, ok := _c.mutation.BlockIndex(); ok {
		_spec.SetField(completionblock.FieldBlockIndex, field.TypeInt, value)
		_node.BlockIndex = value
	}
	if value, ok := _c.mutation.LoopIndex(); ok {
		_spec.SetField(completionblock.FieldLoopIndex, field.TypeInt, value)
		_node.LoopIndex = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(completionblock.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(completionblock.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Icon(); ok {
		_spec.SetField(completionblock.FieldIcon, field.TypeString, value)
		_node.Icon = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(completionblock.FieldContent, field.TypeString, value)
		_node.Content = &value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(completionblock.FieldReasoning, field.TypeString, value)
		_node.Reasoning = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(completionblock.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(completionblock.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(completionblock.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompletionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   completionblock.CompletionTable,
			Columns: []string{completionblock.CompletionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompletionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   completionblock.AgentExecutionTable,
			Columns: []string{completionblock.AgentExecutionColumn},
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

// CompletionBlockCreateBulk is the builder for creating many CompletionBlock entities in bulk.
type CompletionBlockCreateBulk struct {
	config
	err      error
	builders []*CompletionBlockCreate
}

// Save creates the CompletionBlock entities in the database.
func (_c *CompletionBlockCreateBulk) Save(ctx context.Context) ([]*CompletionBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompletionBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionBlockMutation)
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
func (_c *CompletionBlockCreateBulk) SaveX(ctx context.Context) []*CompletionBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
