// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/executionscore"
)

// ExecutionScore is the model entity for the ExecutionScore schema.
type ExecutionScore struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentExecutionID holds the value of the "agent_execution_id" field.
	AgentExecutionID string `json:"agent_execution_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind executionscore.Kind `json:"kind,omitempty"`
	// 0-100, extracted from the judge response
	Score *int `json:"score,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale *string `json:"rationale,omitempty"`
	// Status holds the value of the "status" field.
	Status executionscore.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionScoreQuery when eager-loading is set.
	Edges        ExecutionScoreEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionScoreEdges holds the relations/edges for other nodes in the graph.
type ExecutionScoreEdges struct {
	// AgentExecution holds the value of the agent_execution edge.
	AgentExecution *AgentExecution `json:"agent_execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AgentExecutionOrErr returns the AgentExecution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutionScoreEdges) AgentExecutionOrErr() (*AgentExecution, error) {
	if e.AgentExecution != nil {
		return e.AgentExecution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentexecution.Label}
	}
	return nil, &NotLoadedError{edge: "agent_execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExecutionScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case executionscore.FieldScore:
			values[i] = new(sql.NullInt64)
		case executionscore.FieldID, executionscore.FieldAgentExecutionID, executionscore.FieldKind, executionscore.FieldRationale, executionscore.FieldStatus, executionscore.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case executionscore.FieldCreatedAt, executionscore.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExecutionScore fields.
func (_m *ExecutionScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case executionscore.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case executionscore.FieldAgentExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_execution_id", values[i])
			} else if value.Valid {
				_m.AgentExecutionID = value.String
			}
		case executionscore.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = executionscore.Kind(value.String)
			}
		case executionscore.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(int)
				*_m.Score = int(value.Int64)
			}
		case executionscore.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = new(string)
				*_m.Rationale = value.String
			}
		case executionscore.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = executionscore.Status(value.String)
			}
		case executionscore.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case executionscore.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case executionscore.FieldErrorMessage:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExecutionScore.
// This includes values selected through modifiers, order, etc.
func (_m *ExecutionScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgentExecution queries the "agent_execution" edge of the ExecutionScore entity.
func (_m *ExecutionScore) QueryAgentExecution() *AgentExecutionQuery {
	return NewExecutionScoreClient(_m.config).QueryAgentExecution(_m)
}

// Update returns a builder for updating this ExecutionScore.
// Note that you need to call ExecutionScore.Unwrap() before calling this method if this ExecutionScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExecutionScore) Update() *ExecutionScoreUpdateOne {
	return NewExecutionScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExecutionScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExecutionScore) Unwrap() *ExecutionScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExecutionScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExecutionScore) String() string {
	var builder strings.Builder
	builder.WriteString("ExecutionScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_execution_id=")
	builder.WriteString(_m.AgentExecutionID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Rationale; v != nil {
		builder.WriteString("rationale=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExecutionScores is a parsable slice of ExecutionScore.
type ExecutionScores []*ExecutionScore
