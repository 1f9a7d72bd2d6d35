// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/ent/toolexecution"
)

// ToolExecution is the model entity for the ToolExecution schema.
type ToolExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentExecutionID holds the value of the "agent_execution_id" field.
	AgentExecutionID string `json:"agent_execution_id,omitempty"`
	// Owning decision; nil only for runtime-internal invocations
	PlanDecisionID *string `json:"plan_decision_id,omitempty"`
	// Event sequence allocated when the tool started
	Seq int `json:"seq,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// ToolAction holds the value of the "tool_action" field.
	ToolAction *string `json:"tool_action,omitempty"`
	// Arguments holds the value of the "arguments" field.
	Arguments map[string]interface{} `json:"arguments,omitempty"`
	// Status holds the value of the "status" field.
	Status toolexecution.Status `json:"status,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// 1-based; bumped by the retry policy
	AttemptNumber int `json:"attempt_number,omitempty"`
	// From tool metadata at dispatch time
	MaxRetries int `json:"max_retries,omitempty"`
	// ResultSummary holds the value of the "result_summary" field.
	ResultSummary *string `json:"result_summary,omitempty"`
	// Normalized tool output; widget_data is stripped before events
	ResultJSON map[string]interface{} `json:"result_json,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedWidgetID holds the value of the "created_widget_id" field.
	CreatedWidgetID *string `json:"created_widget_id,omitempty"`
	// CreatedStepID holds the value of the "created_step_id" field.
	CreatedStepID *string `json:"created_step_id,omitempty"`
	// CreatedVisualizationIds holds the value of the "created_visualization_ids" field.
	CreatedVisualizationIds []string `json:"created_visualization_ids,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ToolExecutionQuery when eager-loading is set.
	Edges        ToolExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ToolExecutionEdges holds the relations/edges for other nodes in the graph.
type ToolExecutionEdges struct {
	// AgentExecution holds the value of the agent_execution edge.
	AgentExecution *AgentExecution `json:"agent_execution,omitempty"`
	// PlanDecision holds the value of the plan_decision edge.
	PlanDecision *PlanDecision `json:"plan_decision,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AgentExecutionOrErr returns the AgentExecution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ToolExecutionEdges) AgentExecutionOrErr() (*AgentExecution, error) {
	if e.AgentExecution != nil {
		return e.AgentExecution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentexecution.Label}
	}
	return nil, &NotLoadedError{edge: "agent_execution"}
}

// PlanDecisionOrErr returns the PlanDecision value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ToolExecutionEdges) PlanDecisionOrErr() (*PlanDecision, error) {
	if e.PlanDecision != nil {
		return e.PlanDecision, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: plandecision.Label}
	}
	return nil, &NotLoadedError{edge: "plan_decision"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ToolExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case toolexecution.FieldArguments, toolexecution.FieldResultJSON, toolexecution.FieldCreatedVisualizationIds:
			values[i] = new([]byte)
		case toolexecution.FieldSuccess:
			values[i] = new(sql.NullBool)
		case toolexecution.FieldSeq, toolexecution.FieldAttemptNumber, toolexecution.FieldMaxRetries, toolexecution.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case toolexecution.FieldID, toolexecution.FieldAgentExecutionID, toolexecution.FieldPlanDecisionID, toolexecution.FieldToolName, toolexecution.FieldToolAction, toolexecution.FieldStatus, toolexecution.FieldResultSummary, toolexecution.FieldErrorMessage, toolexecution.FieldCreatedWidgetID, toolexecution.FieldCreatedStepID:
			values[i] = new(sql.NullString)
		case toolexecution.FieldStartedAt, toolexecution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ToolExecution fields.
func (_m *ToolExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case toolexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case toolexecution.FieldAgentExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_execution_id", values[i])
			} else if value.Valid {
				_m.AgentExecutionID = value.String
			}
		case toolexecution.FieldPlanDecisionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_decision_id", values[i])
			} else if value.Valid {
				_m.PlanDecisionID = new(string)
				*_m.PlanDecisionID = value.String
			}
		case toolexecution.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case toolexecution.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case toolexecution.FieldToolAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_action", values[i])
			} else if value.Valid {
				_m.ToolAction = new(string)
				*_m.ToolAction = value.String
			}
		case toolexecution.FieldArguments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field arguments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Arguments); err != nil {
					return fmt.Errorf("unmarshal field arguments: %w", err)
				}
			}
		case toolexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = toolexecution.Status(value.String)
			}
		case toolexecution.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case toolexecution.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case toolexecution.FieldMaxRetries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_retries", values[i])
			} else if value.Valid {
				_m.MaxRetries = int(value.Int64)
			}
		case toolexecution.FieldResultSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_summary", values[i])
			} else if value.Valid {
				_m.ResultSummary = new(string)
				*_m.ResultSummary = value.String
			}
		case toolexecution.FieldResultJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultJSON); err != nil {
					return fmt.Errorf("unmarshal field result_json: %w", err)
				}
			}
		case toolexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case toolexecution.FieldCreatedWidgetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_widget_id", values[i])
			} else if value.Valid {
				_m.CreatedWidgetID = new(string)
				*_m.CreatedWidgetID = value.String
			}
		case toolexecution.FieldCreatedStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_step_id", values[i])
			} else if value.Valid {
				_m.CreatedStepID = new(string)
				*_m.CreatedStepID = value.String
			}
		case toolexecution.FieldCreatedVisualizationIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field created_visualization_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CreatedVisualizationIds); err != nil {
					return fmt.Errorf("unmarshal field created_visualization_ids: %w", err)
				}
			}
		case toolexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case toolexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case toolexecution.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ToolExecution.
// This includes values selected through modifiers, order, etc.
func (_m *ToolExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgentExecution queries the "agent_execution" edge of the ToolExecution entity.
func (_m *ToolExecution) QueryAgentExecution() *AgentExecutionQuery {
	return NewToolExecutionClient(_m.config).QueryAgentExecution(_m)
}

// QueryPlanDecision queries the "plan_decision" edge of the ToolExecution entity.
func (_m *ToolExecution) QueryPlanDecision() *PlanDecisionQuery {
	return NewToolExecutionClient(_m.config).QueryPlanDecision(_m)
}

// Update returns a builder for updating this ToolExecution.
// Note that you need to call ToolExecution.Unwrap() before calling this method if this ToolExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ToolExecution) Update() *ToolExecutionUpdateOne {
	return NewToolExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ToolExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ToolExecution) Unwrap() *ToolExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ToolExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ToolExecution) String() string {
	var builder strings.Builder
	builder.WriteString("ToolExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_execution_id=")
	builder.WriteString(_m.AgentExecutionID)
	builder.WriteString(", ")
	if v := _m.PlanDecisionID; v != nil {
		builder.WriteString("plan_decision_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	if v := _m.ToolAction; v != nil {
		builder.WriteString("tool_action=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("arguments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Arguments))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("max_retries=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRetries))
	builder.WriteString(", ")
	if v := _m.ResultSummary; v != nil {
		builder.WriteString("result_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("result_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultJSON))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CreatedWidgetID; v != nil {
		builder.WriteString("created_widget_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CreatedStepID; v != nil {
		builder.WriteString("created_step_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_visualization_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedVisualizationIds))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ToolExecutions is a parsable slice of ToolExecution.
type ToolExecutions []*ToolExecution
