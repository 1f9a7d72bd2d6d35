// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentExecutionsColumns holds the columns for the "agent_executions" table.
	AgentExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "success", "error", "sigkill"}, Default: "in_progress"},
		{Name: "latest_seq", Type: field.TypeInt, Default: 0},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "completion_id", Type: field.TypeString},
		{Name: "report_id", Type: field.TypeString},
	}
	// AgentExecutionsTable holds the schema information for the "agent_executions" table.
	AgentExecutionsTable = &schema.Table{
		Name:       "agent_executions",
		Columns:    AgentExecutionsColumns,
		PrimaryKey: []*schema.Column{AgentExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_executions_completions_agent_executions",
				Columns:    []*schema.Column{AgentExecutionsColumns[10]},
				RefColumns: []*schema.Column{CompletionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_executions_reports_agent_executions",
				Columns:    []*schema.Column{AgentExecutionsColumns[11]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentexecution_completion_id",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[10]},
			},
			{
				Name:    "agentexecution_report_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[11], AgentExecutionsColumns[6]},
			},
			{
				Name:    "agentexecution_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[3], AgentExecutionsColumns[6]},
			},
		},
	}
	// CompletionsColumns holds the columns for the "completions" table.
	CompletionsColumns = []*schema.Column{
		{Name: "completion_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "in_progress", "completed", "stopped", "error"}, Default: "queued"},
		{Name: "prompt", Type: field.TypeJSON},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "sigkill_at", Type: field.TypeTime, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeString},
	}
	// CompletionsTable holds the schema information for the "completions" table.
	CompletionsTable = &schema.Table{
		Name:       "completions",
		Columns:    CompletionsColumns,
		PrimaryKey: []*schema.Column{CompletionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "completions_reports_completions",
				Columns:    []*schema.Column{CompletionsColumns[14]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "completion_status",
				Unique:  false,
				Columns: []*schema.Column{CompletionsColumns[3]},
			},
			{
				Name:    "completion_report_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CompletionsColumns[14], CompletionsColumns[12]},
			},
			{
				Name:    "completion_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CompletionsColumns[3], CompletionsColumns[12]},
			},
			{
				Name:    "completion_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{CompletionsColumns[3], CompletionsColumns[11]},
			},
		},
	}
	// CompletionBlocksColumns holds the columns for the "completion_blocks" table.
	CompletionBlocksColumns = []*schema.Column{
		{Name: "block_id", Type: field.TypeString, Unique: true},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"decision", "tool"}, Default: "decision"},
		{Name: "plan_decision_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "block_index", Type: field.TypeInt},
		{Name: "loop_index", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed", "error", "stopped"}, Default: "in_progress"},
		{Name: "icon", Type: field.TypeString, Default: "brain"},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_execution_id", Type: field.TypeString},
		{Name: "completion_id", Type: field.TypeString},
	}
	// CompletionBlocksTable holds the schema information for the "completion_blocks" table.
	CompletionBlocksTable = &schema.Table{
		Name:       "completion_blocks",
		Columns:    CompletionBlocksColumns,
		PrimaryKey: []*schema.Column{CompletionBlocksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "completion_blocks_agent_executions_blocks",
				Columns:    []*schema.Column{CompletionBlocksColumns[14]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "completion_blocks_completions_blocks",
				Columns:    []*schema.Column{CompletionBlocksColumns[15]},
				RefColumns: []*schema.Column{CompletionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "completionblock_agent_execution_id_loop_index_source_type",
				Unique:  true,
				Columns: []*schema.Column{CompletionBlocksColumns[14], CompletionBlocksColumns[5], CompletionBlocksColumns[1]},
			},
			{
				Name:    "completionblock_completion_id_block_index",
				Unique:  false,
				Columns: []*schema.Column{CompletionBlocksColumns[15], CompletionBlocksColumns[4]},
			},
			{
				Name:    "completionblock_agent_execution_id_block_index",
				Unique:  false,
				Columns: []*schema.Column{CompletionBlocksColumns[14], CompletionBlocksColumns[4]},
			},
		},
	}
	// ContextSnapshotsColumns holds the columns for the "context_snapshots" table.
	ContextSnapshotsColumns = []*schema.Column{
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"initial", "pre_tool", "post_tool", "final"}},
		{Name: "loop_index", Type: field.TypeInt, Default: 0},
		{Name: "context_view", Type: field.TypeJSON},
		{Name: "prompt_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prompt_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_execution_id", Type: field.TypeString},
	}
	// ContextSnapshotsTable holds the schema information for the "context_snapshots" table.
	ContextSnapshotsTable = &schema.Table{
		Name:       "context_snapshots",
		Columns:    ContextSnapshotsColumns,
		PrimaryKey: []*schema.Column{ContextSnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "context_snapshots_agent_executions_snapshots",
				Columns:    []*schema.Column{ContextSnapshotsColumns[7]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contextsnapshot_agent_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContextSnapshotsColumns[7], ContextSnapshotsColumns[6]},
			},
			{
				Name:    "contextsnapshot_agent_execution_id_kind",
				Unique:  false,
				Columns: []*schema.Column{ContextSnapshotsColumns[7], ContextSnapshotsColumns[1]},
			},
			{
				Name:    "contextsnapshot_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContextSnapshotsColumns[6]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "completion_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_completion_id_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// ExecutionScoresColumns holds the columns for the "execution_scores" table.
	ExecutionScoresColumns = []*schema.Column{
		{Name: "score_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"instruction_effectiveness", "context_effectiveness", "response_quality"}},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agent_execution_id", Type: field.TypeString},
	}
	// ExecutionScoresTable holds the schema information for the "execution_scores" table.
	ExecutionScoresTable = &schema.Table{
		Name:       "execution_scores",
		Columns:    ExecutionScoresColumns,
		PrimaryKey: []*schema.Column{ExecutionScoresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_scores_agent_executions_scores",
				Columns:    []*schema.Column{ExecutionScoresColumns[8]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionscore_agent_execution_id_kind",
				Unique:  true,
				Columns: []*schema.Column{ExecutionScoresColumns[8], ExecutionScoresColumns[1]},
			},
			{
				Name:    "executionscore_kind_score",
				Unique:  false,
				Columns: []*schema.Column{ExecutionScoresColumns[1], ExecutionScoresColumns[2]},
			},
		},
	}
	// InstructionsColumns holds the columns for the "instructions" table.
	InstructionsColumns = []*schema.Column{
		{Name: "instruction_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "load_mode", Type: field.TypeEnum, Enums: []string{"always", "intelligent"}, Default: "intelligent"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "archived"}, Default: "active"},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"user", "suggested"}, Default: "user"},
		{Name: "agent_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InstructionsTable holds the schema information for the "instructions" table.
	InstructionsTable = &schema.Table{
		Name:       "instructions",
		Columns:    InstructionsColumns,
		PrimaryKey: []*schema.Column{InstructionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "instruction_organization_id_status",
				Unique:  false,
				Columns: []*schema.Column{InstructionsColumns[1], InstructionsColumns[5]},
			},
			{
				Name:    "instruction_organization_id_load_mode",
				Unique:  false,
				Columns: []*schema.Column{InstructionsColumns[1], InstructionsColumns[4]},
			},
		},
	}
	// PlanDecisionsColumns holds the columns for the "plan_decisions" table.
	PlanDecisionsColumns = []*schema.Column{
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "loop_index", Type: field.TypeInt},
		{Name: "plan_type", Type: field.TypeEnum, Enums: []string{"research", "action"}, Default: "research"},
		{Name: "analysis_complete", Type: field.TypeBool, Default: false},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "assistant", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "final_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "action_name", Type: field.TypeString, Nullable: true},
		{Name: "action_args", Type: field.TypeJSON, Nullable: true},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_execution_id", Type: field.TypeString},
	}
	// PlanDecisionsTable holds the schema information for the "plan_decisions" table.
	PlanDecisionsTable = &schema.Table{
		Name:       "plan_decisions",
		Columns:    PlanDecisionsColumns,
		PrimaryKey: []*schema.Column{PlanDecisionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "plan_decisions_agent_executions_plan_decisions",
				Columns:    []*schema.Column{PlanDecisionsColumns[13]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "plandecision_agent_execution_id_seq",
				Unique:  true,
				Columns: []*schema.Column{PlanDecisionsColumns[13], PlanDecisionsColumns[1]},
			},
			{
				Name:    "plandecision_agent_execution_id_loop_index",
				Unique:  false,
				Columns: []*schema.Column{PlanDecisionsColumns[13], PlanDecisionsColumns[2]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "report_organization_id",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[1]},
			},
			{
				Name:    "report_organization_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[1], ReportsColumns[4]},
			},
		},
	}
	// TableUsagesColumns holds the columns for the "table_usages" table.
	TableUsagesColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "datasource", Type: field.TypeString},
		{Name: "table_name", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "feedback", Type: field.TypeInt, Default: 0},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TableUsagesTable holds the schema information for the "table_usages" table.
	TableUsagesTable = &schema.Table{
		Name:       "table_usages",
		Columns:    TableUsagesColumns,
		PrimaryKey: []*schema.Column{TableUsagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tableusage_organization_id_datasource_table_name",
				Unique:  false,
				Columns: []*schema.Column{TableUsagesColumns[1], TableUsagesColumns[2], TableUsagesColumns[3]},
			},
			{
				Name:    "tableusage_organization_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TableUsagesColumns[1], TableUsagesColumns[8]},
			},
			{
				Name:    "tableusage_created_at",
				Unique:  false,
				Columns: []*schema.Column{TableUsagesColumns[8]},
			},
		},
	}
	// ToolExecutionsColumns holds the columns for the "tool_executions" table.
	ToolExecutionsColumns = []*schema.Column{
		{Name: "tool_execution_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "tool_action", Type: field.TypeString, Nullable: true},
		{Name: "arguments", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "success", "error"}, Default: "in_progress"},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "attempt_number", Type: field.TypeInt, Default: 1},
		{Name: "max_retries", Type: field.TypeInt, Default: 0},
		{Name: "result_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "result_json", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_widget_id", Type: field.TypeString, Nullable: true},
		{Name: "created_step_id", Type: field.TypeString, Nullable: true},
		{Name: "created_visualization_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "agent_execution_id", Type: field.TypeString},
		{Name: "plan_decision_id", Type: field.TypeString, Nullable: true},
	}
	// ToolExecutionsTable holds the schema information for the "tool_executions" table.
	ToolExecutionsTable = &schema.Table{
		Name:       "tool_executions",
		Columns:    ToolExecutionsColumns,
		PrimaryKey: []*schema.Column{ToolExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_executions_agent_executions_tool_executions",
				Columns:    []*schema.Column{ToolExecutionsColumns[18]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tool_executions_plan_decisions_tool_executions",
				Columns:    []*schema.Column{ToolExecutionsColumns[19]},
				RefColumns: []*schema.Column{PlanDecisionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolexecution_agent_execution_id_seq",
				Unique:  true,
				Columns: []*schema.Column{ToolExecutionsColumns[18], ToolExecutionsColumns[1]},
			},
			{
				Name:    "toolexecution_agent_execution_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ToolExecutionsColumns[18], ToolExecutionsColumns[15]},
			},
			{
				Name:    "toolexecution_plan_decision_id",
				Unique:  false,
				Columns: []*schema.Column{ToolExecutionsColumns[19]},
			},
			{
				Name:    "toolexecution_tool_name_started_at",
				Unique:  false,
				Columns: []*schema.Column{ToolExecutionsColumns[2], ToolExecutionsColumns[15]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentExecutionsTable,
		CompletionsTable,
		CompletionBlocksTable,
		ContextSnapshotsTable,
		EventsTable,
		ExecutionScoresTable,
		InstructionsTable,
		PlanDecisionsTable,
		ReportsTable,
		TableUsagesTable,
		ToolExecutionsTable,
	}
)

func init() {
	AgentExecutionsTable.ForeignKeys[0].RefTable = CompletionsTable
	AgentExecutionsTable.ForeignKeys[1].RefTable = ReportsTable
	CompletionsTable.ForeignKeys[0].RefTable = ReportsTable
	CompletionBlocksTable.ForeignKeys[0].RefTable = AgentExecutionsTable
	CompletionBlocksTable.ForeignKeys[1].RefTable = CompletionsTable
	ContextSnapshotsTable.ForeignKeys[0].RefTable = AgentExecutionsTable
	ExecutionScoresTable.ForeignKeys[0].RefTable = AgentExecutionsTable
	PlanDecisionsTable.ForeignKeys[0].RefTable = AgentExecutionsTable
	ToolExecutionsTable.ForeignKeys[0].RefTable = AgentExecutionsTable
	ToolExecutionsTable.ForeignKeys[1].RefTable = PlanDecisionsTable
}
