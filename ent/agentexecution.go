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
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/report"
)

// AgentExecution is the model entity for the AgentExecution schema.
type AgentExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CompletionID holds the value of the "completion_id" field.
	CompletionID string `json:"completion_id,omitempty"`
	// Denormalized for report-wide tool lineage queries
	ReportID string `json:"report_id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID string `json:"organization_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Terminal statuses are write-once: no decisions or tools may be appended after
	Status agentexecution.Status `json:"status,omitempty"`
	// Per-run event sequence cursor, bumped under the single writer
	LatestSeq int `json:"latest_seq,omitempty"`
	// Effective loop config (step limit, retry caps, model)
	Config map[string]interface{} `json:"config,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// TotalDurationMs holds the value of the "total_duration_ms" field.
	TotalDurationMs *int `json:"total_duration_ms,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentExecutionQuery when eager-loading is set.
	Edges        AgentExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentExecutionEdges holds the relations/edges for other nodes in the graph.
type AgentExecutionEdges struct {
	// Completion holds the value of the completion edge.
	Completion *Completion `json:"completion,omitempty"`
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// PlanDecisions holds the value of the plan_decisions edge.
	PlanDecisions []*PlanDecision `json:"plan_decisions,omitempty"`
	// ToolExecutions holds the value of the tool_executions edge.
	ToolExecutions []*ToolExecution `json:"tool_executions,omitempty"`
	// Blocks holds the value of the blocks edge.
	Blocks []*CompletionBlock `json:"blocks,omitempty"`
	// Snapshots holds the value of the snapshots edge.
	Snapshots []*ContextSnapshot `json:"snapshots,omitempty"`
	// Scores holds the value of the scores edge.
	Scores []*ExecutionScore `json:"scores,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// CompletionOrErr returns the Completion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentExecutionEdges) CompletionOrErr() (*Completion, error) {
	if e.Completion != nil {
		return e.Completion, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: completion.Label}
	}
	return nil, &NotLoadedError{edge: "completion"}
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentExecutionEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// PlanDecisionsOrErr returns the PlanDecisions value or an error if the edge
// was not loaded in eager-loading.
func (e AgentExecutionEdges) PlanDecisionsOrErr() ([]*PlanDecision, error) {
	if e.loadedTypes[2] {
		return e.PlanDecisions, nil
	}
	return nil, &NotLoadedError{edge: "plan_decisions"}
}

// ToolExecutionsOrErr returns the ToolExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e AgentExecutionEdges) ToolExecutionsOrErr() ([]*ToolExecution, error) {
	if e.loadedTypes[3] {
		return e.ToolExecutions, nil
	}
	return nil, &NotLoadedError{edge: "tool_executions"}
}

// BlocksOrErr returns the Blocks value or an error if the edge
// was not loaded in eager-loading.
func (e AgentExecutionEdges) BlocksOrErr() ([]*CompletionBlock, error) {
	if e.loadedTypes[4] {
		return e.Blocks, nil
	}
	return nil, &NotLoadedError{edge: "blocks"}
}

// SnapshotsOrErr returns the Snapshots value or an error if the edge
// was not loaded in eager-loading.
func (e AgentExecutionEdges) SnapshotsOrErr() ([]*ContextSnapshot, error) {
	if e.loadedTypes[5] {
		return e.Snapshots, nil
	}
	return nil, &NotLoadedError{edge: "snapshots"}
}

// ScoresOrErr returns the Scores value or an error if the edge
// was not loaded in eager-loading.
func (e AgentExecutionEdges) ScoresOrErr() ([]*ExecutionScore, error) {
	if e.loadedTypes[6] {
		return e.Scores, nil
	}
	return nil, &NotLoadedError{edge: "scores"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentexecution.FieldConfig:
			values[i] = new([]byte)
		case agentexecution.FieldLatestSeq, agentexecution.FieldTotalDurationMs:
			values[i] = new(sql.NullInt64)
		case agentexecution.FieldID, agentexecution.FieldCompletionID, agentexecution.FieldReportID, agentexecution.FieldOrganizationID, agentexecution.FieldUserID, agentexecution.FieldStatus, agentexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case agentexecution.FieldStartedAt, agentexecution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentExecution fields.
func (_m *AgentExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentexecution.FieldCompletionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completion_id", values[i])
			} else if value.Valid {
				_m.CompletionID = value.String
			}
		case agentexecution.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = value.String
			}
		case agentexecution.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case agentexecution.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case agentexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentexecution.Status(value.String)
			}
		case agentexecution.FieldLatestSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latest_seq", values[i])
			} else if value.Valid {
				_m.LatestSeq = int(value.Int64)
			}
		case agentexecution.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case agentexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case agentexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case agentexecution.FieldTotalDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_duration_ms", values[i])
			} else if value.Valid {
				_m.TotalDurationMs = new(int)
				*_m.TotalDurationMs = int(value.Int64)
			}
		case agentexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentExecution.
// This includes values selected through modifiers, order, etc.
func (_m *AgentExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompletion queries the "completion" edge of the AgentExecution entity.
func (_m *AgentExecution) QueryCompletion() *CompletionQuery {
	return NewAgentExecutionClient(_m.config).QueryCompletion(_m)
}

// QueryReport queries the "report" edge of the AgentExecution entity.
func (_m *AgentExecution) QueryReport() *ReportQuery {
	return NewAgentExecutionClient(_m.config).QueryReport(_m)
}

// QueryPlanDecisions queries the "plan_decisions" edge of the AgentExecution entity.
func (_m *AgentExecution) QueryPlanDecisions() *PlanDecisionQuery {
	return NewAgentExecutionClient(_m.config).QueryPlanDecisions(_m)
}

// QueryToolExecutions queries the "tool_executions" edge of the AgentExecution entity.
func (_m *AgentExecution) QueryToolExecutions() *ToolExecutionQuery {
	return NewAgentExecutionClient(_m.config).QueryToolExecutions(_m)
}

// QueryBlocks queries the "blocks" edge of the AgentExecution entity.
func (_m *AgentExecution) QueryBlocks() *CompletionBlockQuery {
	return NewAgentExecutionClient(_m.config).QueryBlocks(_m)
}

// QuerySnapshots queries the "snapshots" edge of the AgentExecution entity.
func (_m *AgentExecution) QuerySnapshots() *ContextSnapshotQuery {
	return NewAgentExecutionClient(_m.config).QuerySnapshots(_m)
}

// QueryScores queries the "scores" edge of the AgentExecution entity.
func (_m *AgentExecution) QueryScores() *ExecutionScoreQuery {
	return NewAgentExecutionClient(_m.config).QueryScores(_m)
}

// Update returns a builder for updating this AgentExecution.
// Note that you need to call AgentExecution.Unwrap() before calling this method if this AgentExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentExecution) Update() *AgentExecutionUpdateOne {
	return NewAgentExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentExecution) Unwrap() *AgentExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentExecution) String() string {
	var builder strings.Builder
	builder.WriteString("AgentExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("completion_id=")
	builder.WriteString(_m.CompletionID)
	builder.WriteString(", ")
	builder.WriteString("report_id=")
	builder.WriteString(_m.ReportID)
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("latest_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatestSeq))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TotalDurationMs; v != nil {
		builder.WriteString("total_duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// AgentExecutions is a parsable slice of AgentExecution.
type AgentExecutions []*AgentExecution
