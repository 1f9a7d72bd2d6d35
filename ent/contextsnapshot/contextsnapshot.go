// Code generated by ent, DO NOT EDIT.

package contextsnapshot

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the contextsnapshot type in the database.
	Label = "context_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "snapshot_id"
	// FieldAgentExecutionID holds the string denoting the agent_execution_id field in the database.
	FieldAgentExecutionID = "agent_execution_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldLoopIndex holds the string denoting the loop_index field in the database.
	FieldLoopIndex = "loop_index"
	// FieldContextView holds the string denoting the context_view field in the database.
	FieldContextView = "context_view"
	// FieldPromptText holds the string denoting the prompt_text field in the database.
	FieldPromptText = "prompt_text"
	// FieldPromptTokens holds the string denoting the prompt_tokens field in the database.
	FieldPromptTokens = "prompt_tokens"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAgentExecution holds the string denoting the agent_execution edge name in mutations.
	EdgeAgentExecution = "agent_execution"
	// AgentExecutionFieldID holds the string denoting the ID field of the AgentExecution.
	AgentExecutionFieldID = "execution_id"
	// Table holds the table name of the contextsnapshot in the database.
	Table = "context_snapshots"
	// AgentExecutionTable is the table that holds the agent_execution relation/edge.
	AgentExecutionTable = "context_snapshots"
	// AgentExecutionInverseTable is the table name for the AgentExecution entity.
	// It exists in this package in order to avoid circular dependency with the "agentexecution" package.
	AgentExecutionInverseTable = "agent_executions"
	// AgentExecutionColumn is the table column denoting the agent_execution relation/edge.
	AgentExecutionColumn = "agent_execution_id"
)

// Columns holds all SQL columns for contextsnapshot fields.
var Columns = []string{
	FieldID,
	FieldAgentExecutionID,
	FieldKind,
	FieldLoopIndex,
	FieldContextView,
	FieldPromptText,
	FieldPromptTokens,
	FieldCreatedAt,
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
	// DefaultLoopIndex holds the default value on creation for the "loop_index" field.
	DefaultLoopIndex int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindInitial  Kind = "initial"
	KindPreTool  Kind = "pre_tool"
	KindPostTool Kind = "post_tool"
	KindFinal    Kind = "final"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindInitial, KindPreTool, KindPostTool, KindFinal:
		return nil
	default:
		return fmt.Errorf("contextsnapshot: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the ContextSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentExecutionID orders the results by the agent_execution_id field.
func ByAgentExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentExecutionID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByLoopIndex orders the results by the loop_index field.
func ByLoopIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoopIndex, opts...).ToFunc()
}

// ByPromptText orders the results by the prompt_text field.
func ByPromptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptText, opts...).ToFunc()
}

// ByPromptTokens orders the results by the prompt_tokens field.
func ByPromptTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTokens, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAgentExecutionField orders the results by agent_execution field.
func ByAgentExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentExecutionStep(), sql.OrderByField(field, opts...))
	}
}
func newAgentExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentExecutionInverseTable, AgentExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentExecutionTable, AgentExecutionColumn),
	)
}
