// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quarryhq/quarry/ent/tableusage"
)

// TableUsageCreate is the builder for creating a TableUsage entity.
type TableUsageCreate struct {
	config
	mutation *TableUsageMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *TableUsageCreate) SetOrganizationID(v string) *TableUsageCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetDatasource sets the "datasource" field.
func (_c *TableUsageCreate) SetDatasource(v string) *TableUsageCreate {
	_c.mutation.SetDatasource(v)
	return _c
}

// SetTableName sets the "table_name" field.
func (_c *TableUsageCreate) SetTableName(v string) *TableUsageCreate {
	_c.mutation.SetTableName(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *TableUsageCreate) SetSuccess(v bool) *TableUsageCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *TableUsageCreate) SetFeedback(v int) *TableUsageCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *TableUsageCreate) SetNillableFeedback(v *int) *TableUsageCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *TableUsageCreate) SetStepID(v string) *TableUsageCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *TableUsageCreate) SetNillableStepID(v *string) *TableUsageCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (_c *TableUsageCreate) SetAgentExecutionID(v string) *TableUsageCreate {
	_c.mutation.SetAgentExecutionID(v)
	return _c
}

// SetNillableAgentExecutionID sets the "agent_execution_id" field if the given value is not nil.
func (_c *TableUsageCreate) SetNillableAgentExecutionID(v *string) *TableUsageCreate {
	if v != nil {
		_c.SetAgentExecutionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TableUsageCreate) SetCreatedAt(v time.Time) *TableUsageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TableUsageCreate) SetNillableCreatedAt(v *time.Time) *TableUsageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TableUsageCreate) SetID(v string) *TableUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TableUsageMutation object of the builder.
func (_c *TableUsageCreate) Mutation() *TableUsageMutation {
	return _c.mutation
}

// Save creates the TableUsage in the database.
func (_c *TableUsageCreate) Save(ctx context.Context) (*TableUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TableUsageCreate) SaveX(ctx context.Context) *TableUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TableUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TableUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TableUsageCreate) defaults() {
	if _, ok := _c.mutation.Feedback(); !ok {
		v := tableusage.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tableusage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TableUsageCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "TableUsage.organization_id"`)}
	}
	if _, ok := _c.mutation.Datasource(); !ok {
		return &ValidationError{Name: "datasource", err: errors.New(`ent: missing required field "TableUsage.datasource"`)}
	}
	if _, ok := _c.mutation.TableName(); !ok {
		return &ValidationError{Name: "table_name", err: errors.New(`ent: missing required field "TableUsage.table_name"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "TableUsage.success"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "TableUsage.feedback"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TableUsage.created_at"`)}
	}
	return nil
}

func (_c *TableUsageCreate) sqlSave(ctx context.Context) (*TableUsage, error) {
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
			return nil, fmt.Errorf("unexpected TableUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TableUsageCreate) createSpec() (*TableUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &TableUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tableusage.Table, sqlgraph.NewFieldSpec(tableusage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(tableusage.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.Datasource(); ok {
		_spec.SetField(tableusage.FieldDatasource, field.TypeString, value)
		_node.Datasource = value
	}
	if value, ok := _c.mutation.TableName(); ok {
		_spec.SetField(tableusage.FieldTableName, field.TypeString, value)
		_node.TableName = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(tableusage.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(tableusage.FieldFeedback, field.TypeInt, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(tableusage.FieldStepID, field.TypeString, value)
		_node.StepID = &value
	}
	if value, ok := _c.mutation.AgentExecutionID(); ok {
		_spec.SetField(tableusage.FieldAgentExecutionID, field.TypeString, value)
		_node.AgentExecutionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tableusage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TableUsageCreateBulk is the builder for creating many TableUsage entities in bulk.
type TableUsageCreateBulk struct {
	config
	err      error
	builders []*TableUsageCreate
}

// Save creates the TableUsage entities in the database.
func (_c *TableUsageCreateBulk) Save(ctx context.Context) ([]*TableUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TableUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TableUsageMutation)
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
func (_c *TableUsageCreateBulk) SaveX(ctx context.Context) []*TableUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TableUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TableUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
