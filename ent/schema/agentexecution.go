package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentExecution holds the schema definition for the AgentExecution entity.
// One per user turn: the plan→act→observe run that produces a completion.
// It exclusively owns the decisions, tool executions, blocks and snapshots
// created while it runs, and is the single writer of its event sequence.
type AgentExecution struct {
	ent.Schema
}

// Fields of the AgentExecution.
func (AgentExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("completion_id").
			Immutable(),
		field.String("report_id").
			Immutable().
			Comment("Denormalized for report-wide tool lineage queries"),
		field.String("organization_id").
			Immutable(),
		field.String("user_id").
			Immutable(),

		field.Enum("status").
			Values("in_progress", "success", "error", "sigkill").
			Default("in_progress").
			Comment("Terminal statuses are write-once: no decisions or tools may be appended after"),
		field.Int("latest_seq").
			Default(0).
			Comment("Per-run event sequence cursor, bumped under the single writer"),

		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Effective loop config (step limit, retry caps, model)"),

		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("total_duration_ms").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentExecution.
func (AgentExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("completion", Completion.Type).
			Ref("agent_executions").
			Field("completion_id").
			Unique().
			Required().
			Immutable(),
		edge.From("report", Report.Type).
			Ref("agent_executions").
			Field("report_id").
			Unique().
			Required().
			Immutable(),
		edge.To("plan_decisions", PlanDecision.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tool_executions", ToolExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("blocks", CompletionBlock.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("snapshots", ContextSnapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("scores", ExecutionScore.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentExecution.
func (AgentExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("completion_id"),
		index.Fields("report_id", "started_at"),
		index.Fields("status", "started_at"),
	}
}
