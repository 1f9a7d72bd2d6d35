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
	"github.com/quarryhq/quarry/ent/report"
)

// CompletionCreate is the builder for creating a Completion entity.
type CompletionCreate struct {
	config
	mutation *CompletionMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *CompletionCreate) SetReportID(v string) *CompletionCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *CompletionCreate) SetOrganizationID(v string) *CompletionCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CompletionCreate) SetUserID(v string) *CompletionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CompletionCreate) SetStatus(v completion.Status) *CompletionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CompletionCreate) SetNillableStatus(v *completion.Status) *CompletionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *CompletionCreate) SetPrompt(v map[string]interface{}) *CompletionCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *CompletionCreate) SetContent(v string) *CompletionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *CompletionCreate) SetNillableContent(v *string) *CompletionCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *CompletionCreate) SetReasoning(v string) *CompletionCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *CompletionCreate) SetNillableReasoning(v *string) *CompletionCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CompletionCreate) SetErrorMessage(v string) *CompletionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CompletionCreate) SetNillableErrorMessage(v *string) *CompletionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSigkillAt sets the "sigkill_at" field.
func (_c *CompletionCreate) SetSigkillAt(v time.Time) *CompletionCreate {
	_c.mutation.SetSigkillAt(v)
	return _c
}

// SetNillableSigkillAt sets the "sigkill_at" field if the given value is not nil.
func (_c *CompletionCreate) SetNillableSigkillAt(v *time.Time) *CompletionCreate {
	if v != nil {
		_c.SetSigkillAt(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *CompletionCreate) SetClaimedBy(v string) *CompletionCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *CompletionCreate) SetNillableClaimedBy(v *string) *CompletionCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *CompletionCreate) SetClaimedAt(v time.Time) *CompletionCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *CompletionCreate) SetNillableClaimedAt(v *time.Time) *CompletionCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *CompletionCreate) SetHeartbeatAt(v time.Time) *CompletionCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *CompletionCreate) SetNillableHeartbeatAt(v *time.Time) *CompletionCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompletionCreate) SetCreatedAt(v time.Time) *CompletionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompletionCreate) SetNillableCreatedAt(v *time.Time) *CompletionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CompletionCreate) SetUpdatedAt(v time.Time) *CompletionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CompletionCreate) SetNillableUpdatedAt(v *time.Time) *CompletionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompletionCreate) SetID(v string) *CompletionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *CompletionCreate) SetReport(v *Report) *CompletionCreate {
	return _c.SetReportID(v.ID)
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_c *CompletionCreate) AddAgentExecutionIDs(ids ...string) *CompletionCreate {
	_c.mutation.AddAgentExecutionIDs(ids...)
	return _c
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_c *CompletionCreate) AddAgentExecutions(v ...*AgentExecution) *CompletionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentExecutionIDs(ids...)
}

// AddBlockIDs adds the "blocks" edge to the CompletionBlock entity by IDs.
func (_c *CompletionCreate) AddBlockIDs(ids ...string) *CompletionCreate {
	_c.mutation.AddBlockIDs(ids...)
	return _c
}

// AddBlocks adds the "blocks" edges to the CompletionBlock entity.
func (_c *CompletionCreate) AddBlocks(v ...*CompletionBlock) *CompletionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBlockIDs(ids...)
}

// Mutation returns the CompletionMutation object of the builder.
func (_c *CompletionCreate) Mutation() *CompletionMutation {
	return _c.mutation
}

// Save creates the Completion in the database.
func (_c *CompletionCreate) Save(ctx context.Context) (*Completion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompletionCreate) SaveX(ctx context.Context) *Completion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompletionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := completion.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := completion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := completion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompletionCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Completion.report_id"`)}
	}
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Completion.organization_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Completion.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Completion.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := completion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Completion.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Completion.prompt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Completion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Completion.updated_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "Completion.report"`)}
	}
	return nil
}

func (_c *CompletionCreate) sqlSave(ctx context.Context) (*Completion, error) {
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
			return nil, fmt.Errorf("unexpected Completion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompletionCreate) createSpec() (*Completion, *sqlgraph.CreateSpec) {
	var (
		_node = &Completion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(completion.Table, sqlgraph.NewFieldSpec(completion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(completion.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(completion.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(completion.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(completion.FieldPrompt, field.TypeJSON, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(completion.FieldContent, field.TypeString, value)
		_node.Content = &value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(completion.FieldReasoning, field.TypeString, value)
		_node.Reasoning = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(completion.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.SigkillAt(); ok {
		_spec.SetField(completion.FieldSigkillAt, field.TypeTime, value)
		_node.SigkillAt = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(completion.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(completion.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(completion.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(completion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(completion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   completion.ReportTable,
			Columns: []string{completion.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BlocksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CompletionCreateBulk is the builder for creating many Completion entities in bulk.
type CompletionCreateBulk struct {
	config
	err      error
	builders []*CompletionCreate
}

// Save creates the Completion entities in the database.
func (_c *CompletionCreateBulk) Save(ctx context.Context) ([]*Completion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Completion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionMutation)
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
func (_c *CompletionCreateBulk) SaveX(ctx context.Context) []*Completion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
