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
)

// PlanDecision is the model entity for the PlanDecision schema.
type PlanDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentExecutionID holds the value of the "agent_execution_id" field.
	AgentExecutionID string `json:"agent_execution_id,omitempty"`
	// Pinned at decision start; shared by every partial update
	Seq int `json:"seq,omitempty"`
	// LoopIndex holds the value of the "loop_index" field.
	LoopIndex int `json:"loop_index,omitempty"`
	// Skeleton rows start as research and are corrected by the first typed partial
	PlanType plandecision.PlanType `json:"plan_type,omitempty"`
	// AnalysisComplete holds the value of the "analysis_complete" field.
	AnalysisComplete bool `json:"analysis_complete,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning *string `json:"reasoning,omitempty"`
	// Assistant holds the value of the "assistant" field.
	Assistant *string `json:"assistant,omitempty"`
	// FinalAnswer holds the value of the "final_answer" field.
	FinalAnswer *string `json:"final_answer,omitempty"`
	// ActionName holds the value of the "action_name" field.
	ActionName *string `json:"action_name,omitempty"`
	// ActionArgs holds the value of the "action_args" field.
	ActionArgs map[string]interface{} `json:"action_args,omitempty"`
	// Token usage and latency reported by the planner
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlanDecisionQuery when eager-loading is set.
	Edges        PlanDecisionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlanDecisionEdges holds the relations/edges for other nodes in the graph.
type PlanDecisionEdges struct {
	// AgentExecution holds the value of the agent_execution edge.
	AgentExecution *AgentExecution `json:"agent_execution,omitempty"`
	// ToolExecutions holds the value of the tool_executions edge.
	ToolExecutions []*ToolExecution `json:"tool_executions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AgentExecutionOrErr returns the AgentExecution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PlanDecisionEdges) AgentExecutionOrErr() (*AgentExecution, error) {
	if e.AgentExecution != nil {
		return e.AgentExecution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentexecution.Label}
	}
	return nil, &NotLoadedError{edge: "agent_execution"}
}

// ToolExecutionsOrErr returns the ToolExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e PlanDecisionEdges) ToolExecutionsOrErr() ([]*ToolExecution, error) {
	if e.loadedTypes[1] {
		return e.ToolExecutions, nil
	}
	return nil, &NotLoadedError{edge: "tool_executions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlanDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case plandecision.FieldActionArgs, plandecision.FieldMetrics:
			values[i] = new([]byte)
		case plandecision.FieldAnalysisComplete:
			values[i] = new(sql.NullBool)
		case plandecision.FieldSeq, plandecision.FieldLoopIndex:
			values[i] = new(sql.NullInt64)
		case plandecision.FieldID, plandecision.FieldAgentExecutionID, plandecision.FieldPlanType, plandecision.FieldReasoning, plandecision.FieldAssistant, plandecision.FieldFinalAnswer, plandecision.FieldActionName:
			values[i] = new(sql.NullString)
		case plandecision.FieldCreatedAt, plandecision.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlanDecision fields.
func (_m *PlanDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case plandecision.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case plandecision.FieldAgentExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_execution_id", values[i])
			} else if value.Valid {
				_m.AgentExecutionID = value.String
			}
		case plandecision.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case plandecision.FieldLoopIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field loop_index", values[i])
			} else if value.Valid {
				_m.LoopIndex = int(value.Int64)
			}
		case plandecision.FieldPlanType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_type", values[i])
			} else if value.Valid {
				_m.PlanType = plandecision.PlanType(value.String)
			}
		case plandecision.FieldAnalysisComplete:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_complete", values[i])
			} else if value.Valid {
				_m.AnalysisComplete = value.Bool
			}
		case plandecision.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = new(string)
				*_m.Reasoning = value.String
			}
		case plandecision.FieldAssistant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assistant", values[i])
			} else if value.Valid {
				_m.Assistant = new(string)
				*_m.Assistant = value.String
			}
		case plandecision.FieldFinalAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_answer", values[i])
			} else if value.Valid {
				_m.FinalAnswer = new(string)
				*_m.FinalAnswer = value.String
			}
		case plandecision.FieldActionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_name", values[i])
			} else if value.Valid {
				_m.ActionName = new(string)
				*_m.ActionName = value.String
			}
		case plandecision.FieldActionArgs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_args", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionArgs); err != nil {
					return fmt.Errorf("unmarshal field action_args: %w", err)
				}
			}
		case plandecision.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case plandecision.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case plandecision.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PlanDecision.
// This includes values selected through modifiers, order, etc.
func (_m *PlanDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgentExecution queries the "agent_execution" edge of the PlanDecision entity.
func (_m *PlanDecision) QueryAgentExecution() *AgentExecutionQuery {
	return NewPlanDecisionClient(_m.config).QueryAgentExecution(_m)
}

// QueryToolExecutions queries the "tool_executions" edge of the PlanDecision entity.
func (_m *PlanDecision) QueryToolExecutions() *ToolExecutionQuery {
	return NewPlanDecisionClient(_m.config).QueryToolExecutions(_m)
}

// Update returns a builder for updating this PlanDecision.
// Note that you need to call PlanDecision.Unwrap() before calling this method if this PlanDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlanDecision) Update() *PlanDecisionUpdateOne {
	return NewPlanDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlanDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlanDecision) Unwrap() *PlanDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlanDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlanDecision) String() string {
	var builder strings.Builder
	builder.WriteString("PlanDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_execution_id=")
	builder.WriteString(_m.AgentExecutionID)
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("loop_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoopIndex))
	builder.WriteString(", ")
	builder.WriteString("plan_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanType))
	builder.WriteString(", ")
	builder.WriteString("analysis_complete=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisComplete))
	builder.WriteString(", ")
	if v := _m.Reasoning; v != nil {
		builder.WriteString("reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Assistant; v != nil {
		builder.WriteString("assistant=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FinalAnswer; v != nil {
		builder.WriteString("final_answer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActionName; v != nil {
		builder.WriteString("action_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("action_args=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionArgs))
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PlanDecisions is a parsable slice of PlanDecision.
type PlanDecisions []*PlanDecision
