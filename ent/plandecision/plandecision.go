// Code generated by ent, DO NOT EDIT.

package plandecision

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the plandecision type in the database.
	Label = "plan_decision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "decision_id"
	// FieldAgentExecutionID holds the string denoting the agent_execution_id field in the database.
	FieldAgentExecutionID = "agent_execution_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldLoopIndex holds the string denoting the loop_index field in the database.
	FieldLoopIndex = "loop_index"
	// FieldPlanType holds the string denoting the plan_type field in the database.
	FieldPlanType = "plan_type"
	// FieldAnalysisComplete holds the string denoting the analysis_complete field in the database.
	FieldAnalysisComplete = "analysis_complete"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldAssistant holds the string denoting the assistant field in the database.
	FieldAssistant = "assistant"
	// FieldFinalAnswer holds the string denoting the final_answer field in the database.
	FieldFinalAnswer = "final_answer"
	// FieldActionName holds the string denoting the action_name field in the database.
	FieldActionName = "action_name"
	// FieldActionArgs holds the string denoting the action_args field in the database.
	FieldActionArgs = "action_args"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAgentExecution holds the string denoting the agent_execution edge name in mutations.
	EdgeAgentExecution = "agent_execution"
	// EdgeToolExecutions holds the string denoting the tool_executions edge name in mutations.
	EdgeToolExecutions = "tool_executions"
	// AgentExecutionFieldID holds the string denoting the ID field of the AgentExecution.
	AgentExecutionFieldID = "execution_id"
	// ToolExecutionFieldID holds the string denoting the ID field of the ToolExecution.
	ToolExecutionFieldID = "tool_execution_id"
	// Table holds the table name of the plandecision in the database.
	Table = "plan_decisions"
	// AgentExecutionTable is the table that holds the agent_execution relation/edge.
	AgentExecutionTable = "plan_decisions"
	// AgentExecutionInverseTable is the table name for the AgentExecution entity.
	// It exists in this package in order to avoid circular dependency with the "agentexecution" package.
	AgentExecutionInverseTable = "agent_executions"
	// AgentExecutionColumn is the table column denoting the agent_execution relation/edge.
	AgentExecutionColumn = "agent_execution_id"
	// ToolExecutionsTable is the table that holds the tool_executions relation/edge.
	ToolExecutionsTable = "tool_executions"
	// ToolExecutionsInverseTable is the table name for the ToolExecution entity.
	// It exists in this package in order to avoid circular dependency with the "toolexecution" package.
	ToolExecutionsInverseTable = "tool_executions"
	// ToolExecutionsColumn is the table column denoting the tool_executions relation/edge.
	ToolExecutionsColumn = "plan_decision_id"
)

// Columns holds all SQL columns for plandecision fields.
var Columns = []string{
	FieldID,
	FieldAgentExecutionID,
	FieldSeq,
	FieldLoopIndex,
	FieldPlanType,
	FieldAnalysisComplete,
	FieldReasoning,
	FieldAssistant,
	FieldFinalAnswer,
	FieldActionName,
	FieldActionArgs,
	FieldMetrics,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultAnalysisComplete holds the default value on creation for the "analysis_complete" field.
	DefaultAnalysisComplete bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// PlanType defines the type for the "plan_type" enum field.
type PlanType string

// PlanTypeResearch is the default value of the PlanType enum.
const DefaultPlanType = PlanTypeResearch

// PlanType values.
const (
	PlanTypeResearch PlanType = "research"
	PlanTypeAction   PlanType = "action"
)

func (pt PlanType) String() string {
	return string(pt)
}

// PlanTypeValidator is a validator for the "plan_type" field enum values. It is called by the builders before save.
func PlanTypeValidator(pt PlanType) error {
	switch pt {
	case PlanTypeResearch, PlanTypeAction:
		return nil
	default:
		return fmt.Errorf("plandecision: invalid enum value for plan_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the PlanDecision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentExecutionID orders the results by the agent_execution_id field.
func ByAgentExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentExecutionID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByLoopIndex orders the results by the loop_index field.
func ByLoopIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoopIndex, opts...).ToFunc()
}

// ByPlanType orders the results by the plan_type field.
func ByPlanType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanType, opts...).ToFunc()
}

// ByAnalysisComplete orders the results by the analysis_complete field.
func ByAnalysisComplete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisComplete, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByAssistant orders the results by the assistant field.
func ByAssistant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssistant, opts...).ToFunc()
}

// ByFinalAnswer orders the results by the final_answer field.
func ByFinalAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalAnswer, opts...).ToFunc()
}

// ByActionName orders the results by the action_name field.
func ByActionName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAgentExecutionField orders the results by agent_execution field.
func ByAgentExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentExecutionStep(), sql.OrderByField(field, opts...))
	}
}

// ByToolExecutionsCount orders the results by tool_executions count.
func ByToolExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newToolExecutionsStep(), opts...)
	}
}

// ByToolExecutions orders the results by tool_executions terms.
func ByToolExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToolExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAgentExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentExecutionInverseTable, AgentExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentExecutionTable, AgentExecutionColumn),
	)
}
func newToolExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolExecutionsInverseTable, ToolExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ToolExecutionsTable, ToolExecutionsColumn),
	)
}
