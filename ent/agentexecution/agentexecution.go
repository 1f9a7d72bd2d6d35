// Code generated by ent, DO NOT EDIT.

package agentexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentexecution type in the database.
	Label = "agent_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldCompletionID holds the string denoting the completion_id field in the database.
	FieldCompletionID = "completion_id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLatestSeq holds the string denoting the latest_seq field in the database.
	FieldLatestSeq = "latest_seq"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldTotalDurationMs holds the string denoting the total_duration_ms field in the database.
	FieldTotalDurationMs = "total_duration_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeCompletion holds the string denoting the completion edge name in mutations.
	EdgeCompletion = "completion"
	// EdgeReport holds the string denoting the report edge name in mutations.
	EdgeReport = "report"
	// EdgePlanDecisions holds the string denoting the plan_decisions edge name in mutations.
	EdgePlanDecisions = "plan_decisions"
	// EdgeToolExecutions holds the string denoting the tool_executions edge name in mutations.
	EdgeToolExecutions = "tool_executions"
	// EdgeBlocks holds the string denoting the blocks edge name in mutations.
	EdgeBlocks = "blocks"
	// EdgeSnapshots holds the string denoting the snapshots edge name in mutations.
	EdgeSnapshots = "snapshots"
	// EdgeScores holds the string denoting the scores edge name in mutations.
	EdgeScores = "scores"
	// CompletionFieldID holds the string denoting the ID field of the Completion.
	CompletionFieldID = "completion_id"
	// ReportFieldID holds the string denoting the ID field of the Report.
	ReportFieldID = "report_id"
	// PlanDecisionFieldID holds the string denoting the ID field of the PlanDecision.
	PlanDecisionFieldID = "decision_id"
	// ToolExecutionFieldID holds the string denoting the ID field of the ToolExecution.
	ToolExecutionFieldID = "tool_execution_id"
	// CompletionBlockFieldID holds the string denoting the ID field of the CompletionBlock.
	CompletionBlockFieldID = "block_id"
	// ContextSnapshotFieldID holds the string denoting the ID field of the ContextSnapshot.
	ContextSnapshotFieldID = "snapshot_id"
	// ExecutionScoreFieldID holds the string denoting the ID field of the ExecutionScore.
	ExecutionScoreFieldID = "score_id"
	// Table holds the table name of the agentexecution in the database.
	Table = "agent_executions"
	// CompletionTable is the table that holds the completion relation/edge.
	CompletionTable = "agent_executions"
	// CompletionInverseTable is the table name for the Completion entity.
	// It exists in this package in order to avoid circular dependency with the "completion" package.
	CompletionInverseTable = "completions"
	// CompletionColumn is the table column denoting the completion relation/edge.
	CompletionColumn = "completion_id"
	// ReportTable is the table that holds the report relation/edge.
	ReportTable = "agent_executions"
	// ReportInverseTable is the table name for the Report entity.
	// It exists in this package in order to avoid circular dependency with the "report" package.
	ReportInverseTable = "reports"
	// ReportColumn is the table column denoting the report relation/edge.
	ReportColumn = "report_id"
	// PlanDecisionsTable is the table that holds the plan_decisions relation/edge.
	PlanDecisionsTable = "plan_decisions"
	// PlanDecisionsInverseTable is the table name for the PlanDecision entity.
	// It exists in this package in order to avoid circular dependency with the "plandecision" package.
	PlanDecisionsInverseTable = "plan_decisions"
	// PlanDecisionsColumn is the table column denoting the plan_decisions relation/edge.
	PlanDecisionsColumn = "agent_execution_id"
	// ToolExecutionsTable is the table that holds the tool_executions relation/edge.
	ToolExecutionsTable = "tool_executions"
	// ToolExecutionsInverseTable is the table name for the ToolExecution entity.
	// It exists in this package in order to avoid circular dependency with the "toolexecution" package.
	ToolExecutionsInverseTable = "tool_executions"
	// ToolExecutionsColumn is the table column denoting the tool_executions relation/edge.
	ToolExecutionsColumn = "agent_execution_id"
	// BlocksTable is the table that holds the blocks relation/edge.
	BlocksTable = "completion_blocks"
	// BlocksInverseTable is the table name for the CompletionBlock entity.
	// It exists in this package in order to avoid circular dependency with the "completionblock" package.
	BlocksInverseTable = "completion_blocks"
	// BlocksColumn is the table column denoting the blocks relation/edge.
	BlocksColumn = "agent_execution_id"
	// SnapshotsTable is the table that holds the snapshots relation/edge.
	SnapshotsTable = "context_snapshots"
	// SnapshotsInverseTable is the table name for the ContextSnapshot entity.
	// It exists in this package in order to avoid circular dependency with the "contextsnapshot" package.
	SnapshotsInverseTable = "context_snapshots"
	// SnapshotsColumn is the table column denoting the snapshots relation/edge.
	SnapshotsColumn = "agent_execution_id"
	// ScoresTable is the table that holds the scores relation/edge.
	ScoresTable = "execution_scores"
	// ScoresInverseTable is the table name for the ExecutionScore entity.
	// It exists in this package in order to avoid circular dependency with the "executionscore" package.
	ScoresInverseTable = "execution_scores"
	// ScoresColumn is the table column denoting the scores relation/edge.
	ScoresColumn = "agent_execution_id"
)

// Columns holds all SQL columns for agentexecution fields.
var Columns = []string{
	FieldID,
	FieldCompletionID,
	FieldReportID,
	FieldOrganizationID,
	FieldUserID,
	FieldStatus,
	FieldLatestSeq,
	FieldConfig,
	FieldStartedAt,
	FieldCompletedAt,
	FieldTotalDurationMs,
	FieldErrorMessage,
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
	// DefaultLatestSeq holds the default value on creation for the "latest_seq" field.
	DefaultLatestSeq int
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
	StatusSigkill    Status = "sigkill"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusSuccess, StatusError, StatusSigkill:
		return nil
	default:
		return fmt.Errorf("agentexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompletionID orders the results by the completion_id field.
func ByCompletionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLatestSeq orders the results by the latest_seq field.
func ByLatestSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestSeq, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTotalDurationMs orders the results by the total_duration_ms field.
func ByTotalDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDurationMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCompletionField orders the results by completion field.
func ByCompletionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompletionStep(), sql.OrderByField(field, opts...))
	}
}

// ByReportField orders the results by report field.
func ByReportField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportStep(), sql.OrderByField(field, opts...))
	}
}

// ByPlanDecisionsCount orders the results by plan_decisions count.
func ByPlanDecisionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPlanDecisionsStep(), opts...)
	}
}

// ByPlanDecisions orders the results by plan_decisions terms.
func ByPlanDecisions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlanDecisionsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByBlocksCount orders the results by blocks count.
func ByBlocksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBlocksStep(), opts...)
	}
}

// ByBlocks orders the results by blocks terms.
func ByBlocks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlocksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySnapshotsCount orders the results by snapshots count.
func BySnapshotsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSnapshotsStep(), opts...)
	}
}

// BySnapshots orders the results by snapshots terms.
func BySnapshots(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSnapshotsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByScoresCount orders the results by scores count.
func ByScoresCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScoresStep(), opts...)
	}
}

// ByScores orders the results by scores terms.
func ByScores(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScoresStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompletionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompletionInverseTable, CompletionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompletionTable, CompletionColumn),
	)
}
func newReportStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportInverseTable, ReportFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
	)
}
func newPlanDecisionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlanDecisionsInverseTable, PlanDecisionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PlanDecisionsTable, PlanDecisionsColumn),
	)
}
func newToolExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolExecutionsInverseTable, ToolExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ToolExecutionsTable, ToolExecutionsColumn),
	)
}
func newBlocksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlocksInverseTable, CompletionBlockFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BlocksTable, BlocksColumn),
	)
}
func newSnapshotsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SnapshotsInverseTable, ContextSnapshotFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SnapshotsTable, SnapshotsColumn),
	)
}
func newScoresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScoresInverseTable, ExecutionScoreFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScoresTable, ScoresColumn),
	)
}
