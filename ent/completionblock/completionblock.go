// Code generated by ent, DO NOT EDIT.

package completionblock

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the completionblock type in the database.
	Label = "completion_block"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "block_id"
	// FieldCompletionID holds the string denoting the completion_id field in the database.
	FieldCompletionID = "completion_id"
	// FieldAgentExecutionID holds the string denoting the agent_execution_id field in the database.
	FieldAgentExecutionID = "agent_execution_id"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldPlanDecisionID holds the string denoting the plan_decision_id field in the database.
	FieldPlanDecisionID = "plan_decision_id"
	// FieldToolExecutionID holds the string denoting the tool_execution_id field in the database.
	FieldToolExecutionID = "tool_execution_id"
	// FieldBlockIndex holds the string denoting the block_index field in the database.
	FieldBlockIndex = "block_index"
	// FieldLoopIndex holds the string denoting the loop_index field in the database.
	FieldLoopIndex = "loop_index"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIcon holds the string denoting the icon field in the database.
	FieldIcon = "icon"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCompletion holds the string denoting the completion edge name in mutations.
	EdgeCompletion = "completion"
	// EdgeAgentExecution holds the string denoting the agent_execution edge name in mutations.
	EdgeAgentExecution = "agent_execution"
	// CompletionFieldID holds the string denoting the ID field of the Completion.
	CompletionFieldID = "completion_id"
	// AgentExecutionFieldID holds the string denoting the ID field of the AgentExecution.
	AgentExecutionFieldID = "execution_id"
	// Table holds the table name of the completionblock in the database.
	Table = "completion_blocks"
	// CompletionTable is the table that holds the completion relation/edge.
	CompletionTable = "completion_blocks"
	// CompletionInverseTable is the table name for the Completion entity.
	// It exists in this package in order to avoid circular dependency with the "completion" package.
	CompletionInverseTable = "completions"
	// CompletionColumn is the table column denoting the completion relation/edge.
	CompletionColumn = "completion_id"
	// AgentExecutionTable is the table that holds the agent_execution relation/edge.
	AgentExecutionTable = "completion_blocks"
	// AgentExecutionInverseTable is the table name for the AgentExecution entity.
	// It exists in this package in order to avoid circular dependency with the "agentexecution" package.
	AgentExecutionInverseTable = "agent_executions"
	// AgentExecutionColumn is the table column denoting the agent_execution relation/edge.
	AgentExecutionColumn = "agent_execution_id"
)

// Columns holds all SQL columns for completionblock fields.
var Columns = []string{
	FieldID,
	FieldCompletionID,
	FieldAgentExecutionID,
	FieldSourceType,
	FieldPlanDecisionID,
	FieldToolExecutionID,
	FieldBlockIndex,
	FieldLoopIndex,
	FieldTitle,
	FieldStatus,
	FieldIcon,
	FieldContent,
	FieldReasoning,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultIcon holds the default value on creation for the "icon" field.
	DefaultIcon string
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// SourceType defines the type for the "source_type" enum field.
type SourceType string

// SourceTypeDecision is the default value of the SourceType enum.
const DefaultSourceType = SourceTypeDecision

// SourceType values.
const (
	SourceTypeDecision SourceType = "decision"
	SourceTypeTool     SourceType = "tool"
)

func (st SourceType) String() string {
	return string(st)
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st SourceType) error {
	switch st {
	case SourceTypeDecision, SourceTypeTool:
		return nil
	default:
		return fmt.Errorf("completionblock: invalid enum value for source_type field: %q", st)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
	StatusStopped    Status = "stopped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusCompleted, StatusError, StatusStopped:
		return nil
	default:
		return fmt.Errorf("completionblock: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CompletionBlock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompletionID orders the results by the completion_id field.
func ByCompletionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionID, opts...).ToFunc()
}

// ByAgentExecutionID orders the results by the agent_execution_id field.
func ByAgentExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentExecutionID, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByPlanDecisionID orders the results by the plan_decision_id field.
func ByPlanDecisionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanDecisionID, opts...).ToFunc()
}

// ByToolExecutionID orders the results by the tool_execution_id field.
func ByToolExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolExecutionID, opts...).ToFunc()
}

// ByBlockIndex orders the results by the block_index field.
func ByBlockIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockIndex, opts...).ToFunc()
}

// ByLoopIndex orders the results by the loop_index field.
func ByLoopIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoopIndex, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIcon orders the results by the icon field.
func ByIcon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIcon, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletionField orders the results by completion field.
func ByCompletionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompletionStep(), sql.OrderByField(field, opts...))
	}
}

// ByAgentExecutionField orders the results by agent_execution field.
func ByAgentExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentExecutionStep(), sql.OrderByField(field, opts...))
	}
}
func newCompletionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompletionInverseTable, CompletionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompletionTable, CompletionColumn),
	)
}
func newAgentExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentExecutionInverseTable, AgentExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentExecutionTable, AgentExecutionColumn),
	)
}
