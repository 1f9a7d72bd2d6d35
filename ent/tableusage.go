// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quarryhq/quarry/ent/tableusage"
)

// TableUsage is the model entity for the TableUsage schema.
type TableUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID string `json:"organization_id,omitempty"`
	// Datasource holds the value of the "datasource" field.
	Datasource string `json:"datasource,omitempty"`
	// TableName holds the value of the "table_name" field.
	TableName string `json:"table_name,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// Net thumbs applied later by collaborator services
	Feedback int `json:"feedback,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID *string `json:"step_id,omitempty"`
	// AgentExecutionID holds the value of the "agent_execution_id" field.
	AgentExecutionID *string `json:"agent_execution_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TableUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tableusage.FieldSuccess:
			values[i] = new(sql.NullBool)
		case tableusage.FieldFeedback:
			values[i] = new(sql.NullInt64)
		case tableusage.FieldID, tableusage.FieldOrganizationID, tableusage.FieldDatasource, tableusage.FieldTableName, tableusage.FieldStepID, tableusage.FieldAgentExecutionID:
			values[i] = new(sql.NullString)
		case tableusage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TableUsage fields.
func (_m *TableUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tableusage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tableusage.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case tableusage.FieldDatasource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field datasource", values[i])
			} else if value.Valid {
				_m.Datasource = value.String
			}
		case tableusage.FieldTableName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field table_name", values[i])
			} else if value.Valid {
				_m.TableName = value.String
			}
		case tableusage.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case tableusage.FieldFeedback:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = int(value.Int64)
			}
		case tableusage.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = new(string)
				*_m.StepID = value.String
			}
		case tableusage.FieldAgentExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_execution_id", values[i])
			} else if value.Valid {
				_m.AgentExecutionID = new(string)
				*_m.AgentExecutionID = value.String
			}
		case tableusage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TableUsage.
// This includes values selected through modifiers, order, etc.
func (_m *TableUsage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TableUsage.
// Note that you need to call TableUsage.Unwrap() before calling this method if this TableUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TableUsage) Update() *TableUsageUpdateOne {
	return NewTableUsageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TableUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TableUsage) Unwrap() *TableUsage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TableUsage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TableUsage) String() string {
	var builder strings.Builder
	builder.WriteString("TableUsage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("datasource=")
	builder.WriteString(_m.Datasource)
	builder.WriteString(", ")
	builder.WriteString("table_name=")
	builder.WriteString(_m.TableName)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(fmt.Sprintf("%v", _m.Feedback))
	builder.WriteString(", ")
	if v := _m.StepID; v != nil {
		builder.WriteString("step_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AgentExecutionID; v != nil {
		builder.WriteString("agent_execution_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TableUsages is a parsable slice of TableUsage.
type TableUsages []*TableUsage
