// Code generated by ent, DO NOT EDIT.

package toolexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the toolexecution type in the database.
	Label = "tool_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tool_execution_id"
	// FieldAgentExecutionID holds the string denoting the agent_execution_id field in the database.
	FieldAgentExecutionID = "agent_execution_id"
	// FieldPlanDecisionID holds the string denoting the plan_decision_id field in the database.
	FieldPlanDecisionID = "plan_decision_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldToolAction holds the string denoting the tool_action field in the database.
	FieldToolAction = "tool_action"
	// FieldArguments holds the string denoting the arguments field in the database.
	FieldArguments = "arguments"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldResultSummary holds the string denoting the result_summary field in the database.
	FieldResultSummary = "result_summary"
	// FieldResultJSON holds the string denoting the result_json field in the database.
	FieldResultJSON = "result_json"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedWidgetID holds the string denoting the created_widget_id field in the database.
	FieldCreatedWidgetID = "created_widget_id"
	// FieldCreatedStepID holds the string denoting the created_step_id field in the database.
	FieldCreatedStepID = "created_step_id"
	// FieldCreatedVisualizationIds holds the string denoting the created_visualization_ids field in the database.
	FieldCreatedVisualizationIds = "created_visualization_ids"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// EdgeAgentExecution holds the string denoting the agent_execution edge name in mutations.
	EdgeAgentExecution = "agent_execution"
	// EdgePlanDecision holds the string denoting the plan_decision edge name in mutations.
	EdgePlanDecision = "plan_decision"
	// AgentExecutionFieldID holds the string denoting the ID field of the AgentExecution.
	AgentExecutionFieldID = "execution_id"
	// PlanDecisionFieldID holds the string denoting the ID field of the PlanDecision.
	PlanDecisionFieldID = "decision_id"
	// Table holds the table name of the toolexecution in the database.
	Table = "tool_executions"
	// AgentExecutionTable is the table that holds the agent_execution relation/edge.
	AgentExecutionTable = "tool_executions"
	// AgentExecutionInverseTable is the table name for the AgentExecution entity.
	// It exists in this package in order to avoid circular dependency with the "agentexecution" package.
	AgentExecutionInverseTable = "agent_executions"
	// AgentExecutionColumn is the table column denoting the agent_execution relation/edge.
	AgentExecutionColumn = "agent_execution_id"
	// PlanDecisionTable is the table that holds the plan_decision relation/edge.
	PlanDecisionTable = "tool_executions"
	// PlanDecisionInverseTable is the table name for the PlanDecision entity.
	// It exists in this package in order to avoid circular dependency with the "plandecision" package.
	PlanDecisionInverseTable = "plan_decisions"
	// PlanDecisionColumn is the table column denoting the plan_decision relation/edge.
	PlanDecisionColumn = "plan_decision_id"
)

// Columns holds all SQL columns for toolexecution fields.
var Columns = []string{
	FieldID,
	FieldAgentExecutionID,
	FieldPlanDecisionID,
	FieldSeq,
	FieldToolName,
	FieldToolAction,
	FieldArguments,
	FieldStatus,
	FieldSuccess,
	FieldAttemptNumber,
	FieldMaxRetries,
	FieldResultSummary,
	FieldResultJSON,
	FieldErrorMessage,
	FieldCreatedWidgetID,
	FieldCreatedStepID,
	FieldCreatedVisualizationIds,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// DefaultAttemptNumber holds the default value on creation for the "attempt_number" field.
	DefaultAttemptNumber int
	// DefaultMaxRetries holds the default value on creation for the "max_retries" field.
	DefaultMaxRetries int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusSuccess, StatusError:
		return nil
	default:
		return fmt.Errorf("toolexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ToolExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentExecutionID orders the results by the agent_execution_id field.
func ByAgentExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentExecutionID, opts...).ToFunc()
}

// ByPlanDecisionID orders the results by the plan_decision_id field.
func ByPlanDecisionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanDecisionID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByToolAction orders the results by the tool_action field.
func ByToolAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolAction, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByResultSummary orders the results by the result_summary field.
func ByResultSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultSummary, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedWidgetID orders the results by the created_widget_id field.
func ByCreatedWidgetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedWidgetID, opts...).ToFunc()
}

// ByCreatedStepID orders the results by the created_step_id field.
func ByCreatedStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedStepID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByAgentExecutionField orders the results by agent_execution field.
func ByAgentExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentExecutionStep(), sql.OrderByField(field, opts...))
	}
}

// ByPlanDecisionField orders the results by plan_decision field.
func ByPlanDecisionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlanDecisionStep(), sql.OrderByField(field, opts...))
	}
}
func newAgentExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentExecutionInverseTable, AgentExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentExecutionTable, AgentExecutionColumn),
	)
}
func newPlanDecisionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlanDecisionInverseTable, PlanDecisionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PlanDecisionTable, PlanDecisionColumn),
	)
}
