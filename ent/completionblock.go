// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
)

// CompletionBlock is the model entity for the CompletionBlock schema.
type CompletionBlock struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CompletionID holds the value of the "completion_id" field.
	CompletionID string `json:"completion_id,omitempty"`
	// AgentExecutionID holds the value of the "agent_execution_id" field.
	AgentExecutionID string `json:"agent_execution_id,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType completionblock.SourceType `json:"source_type,omitempty"`
	// PlanDecisionID holds the value of the "plan_decision_id" field.
	PlanDecisionID *string `json:"plan_decision_id,omitempty"`
	// Set when a tool annotates its decision block
	ToolExecutionID *string `json:"tool_execution_id,omitempty"`
	// seq * 10; gaps left for future interpolation
	BlockIndex int `json:"block_index,omitempty"`
	// LoopIndex holds the value of the "loop_index" field.
	LoopIndex int `json:"loop_index,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Status holds the value of the "status" field.
	Status completionblock.Status `json:"status,omitempty"`
	// Icon holds the value of the "icon" field.
	Icon string `json:"icon,omitempty"`
	// Content holds the value of the "content" field.
	Content *string `json:"content,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning *string `json:"reasoning,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Only moves when an upsert actually changes content
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompletionBlockQuery when eager-loading is set.
	Edges        CompletionBlockEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompletionBlockEdges holds the relations/edges for other nodes in the graph.
type CompletionBlockEdges struct {
	// Completion holds the value of the completion edge.
	Completion *Completion `json:"completion,omitempty"`
	// AgentExecution holds the value of the agent_execution edge.
	AgentExecution *AgentExecution `json:"agent_execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CompletionOrErr returns the Completion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompletionBlockEdges) CompletionOrErr() (*Completion, error) {
	if e.Completion != nil {
		return e.Completion, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: completion.Label}
	}
	return nil, &NotLoadedError{edge: "completion"}
}

// AgentExecutionOrErr returns the AgentExecution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompletionBlockEdges) AgentExecutionOrErr() (*AgentExecution, error) {
	if e.AgentExecution != nil {
		return e.AgentExecution, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agentexecution.Label}
	}
	return nil, &NotLoadedError{edge: "agent_execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompletionBlock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case completionblock.FieldBlockIndex, completionblock.FieldLoopIndex:
			values[i] = new(sql.NullInt64)
		case completionblock.FieldID, completionblock.FieldCompletionID, completionblock.FieldAgentExecutionID, completionblock.FieldSourceType, completionblock.FieldPlanDecisionID, completionblock.FieldToolExecutionID, completionblock.FieldTitle, completionblock.FieldStatus, completionblock.FieldIcon, completionblock.FieldContent, completionblock.FieldReasoning:
			values[i] = new(sql.NullString)
		case completionblock.FieldStartedAt, completionblock.FieldCompletedAt, completionblock.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompletionBlock fields.
func (_m *CompletionBlock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case completionblock.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case completionblock.FieldCompletionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completion_id", values[i])
			} else if value.Valid {
				_m.CompletionID = value.String
			}
		case completionblock.FieldAgentExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_execution_id", values[i])
			} else if value.Valid {
				_m.AgentExecutionID = value.String
			}
		case completionblock.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = completionblock.SourceType(value.String)
			}
		case completionblock.FieldPlanDecisionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_decision_id", values[i])
			} else if value.Valid {
				_m.PlanDecisionID = new(string)
				*_m.PlanDecisionID = value.String
			}
		case completionblock.FieldToolExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_execution_id", values[i])
			} else if value.Valid {
				_m.ToolExecutionID = new(string)
				*_m.ToolExecutionID = value.String
			}
		case completionblock.FieldBlockIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field block_index", values[i])
			} else if value.Valid {
				_m.BlockIndex = int(value.Int64)
			}
		case completionblock.FieldLoopIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field loop_index", values[i])
			} else if value.Valid {
				_m.LoopIndex = int(value.Int64)
			}
		case completionblock.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case completionblock.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = completionblock.Status(value.String)
			}
		case completionblock.FieldIcon:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field icon", values[i])
			} else if value.Valid {
				_m.Icon = value.String
			}
		case completionblock.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = new(string)
				*_m.Content = value.String
			}
		case completionblock.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = new(string)
				*_m.Reasoning = value.String
			}
		case completionblock.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case completionblock.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case completionblock.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompletionBlock.
// This includes values selected through modifiers, order, etc.
func (_m *CompletionBlock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompletion queries the "completion" edge of the CompletionBlock entity.
func (_m *CompletionBlock) QueryCompletion() *CompletionQuery {
	return NewCompletionBlockClient(_m.config).QueryCompletion(_m)
}

// QueryAgentExecution queries the "agent_execution" edge of the CompletionBlock entity.
func (_m *CompletionBlock) QueryAgentExecution() *AgentExecutionQuery {
	return NewCompletionBlockClient(_m.config).QueryAgentExecution(_m)
}

// Update returns a builder for updating this CompletionBlock.
// Note that you need to call CompletionBlock.Unwrap() before calling this method if this CompletionBlock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompletionBlock) Update() *CompletionBlockUpdateOne {
	return NewCompletionBlockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompletionBlock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompletionBlock) Unwrap() *CompletionBlock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompletionBlock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompletionBlock) String() string {
	var builder strings.Builder
	builder.WriteString("CompletionBlock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("completion_id=")
	builder.WriteString(_m.CompletionID)
	builder.WriteString(", ")
	builder.WriteString("agent_execution_id=")
	builder.WriteString(_m.AgentExecutionID)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	if v := _m.PlanDecisionID; v != nil {
		builder.WriteString("plan_decision_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ToolExecutionID; v != nil {
		builder.WriteString("tool_execution_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("block_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockIndex))
	builder.WriteString(", ")
	builder.WriteString("loop_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoopIndex))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("icon=")
	builder.WriteString(_m.Icon)
	builder.WriteString(", ")
	if v := _m.Content; v != nil {
		builder.WriteString("content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Reasoning; v != nil {
		builder.WriteString("reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CompletionBlocks is a parsable slice of CompletionBlock.
type CompletionBlocks []*CompletionBlock
