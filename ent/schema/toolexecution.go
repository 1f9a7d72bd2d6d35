package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolExecution holds the schema definition for the ToolExecution entity.
// One row per tool invocation, created when the tool starts and transitioned
// exactly once to success or error.
type ToolExecution struct {
	ent.Schema
}

// Fields of the ToolExecution.
func (ToolExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tool_execution_id").
			Unique().
			Immutable(),
		field.String("agent_execution_id").
			Immutable(),
		field.String("plan_decision_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Owning decision; nil only for runtime-internal invocations"),
		field.Int("seq").
			Immutable().
			Comment("Event sequence allocated when the tool started"),

		field.String("tool_name"),
		field.String("tool_action").
			Optional().
			Nillable(),
		field.JSON("arguments", map[string]interface{}{}),

		field.Enum("status").
			Values("in_progress", "success", "error").
			Default("in_progress"),
		field.Bool("success").
			Default(false),
		field.Int("attempt_number").
			Default(1).
			Comment("1-based; bumped by the retry policy"),
		field.Int("max_retries").
			Default(0).
			Comment("From tool metadata at dispatch time"),

		field.Text("result_summary").
			Optional().
			Nillable(),
		field.JSON("result_json", map[string]interface{}{}).
			Optional().
			Comment("Normalized tool output; widget_data is stripped before events"),
		field.Text("error_message").
			Optional().
			Nillable(),

		// Artifacts created by side-effect handlers during the run
		field.String("created_widget_id").
			Optional().
			Nillable(),
		field.String("created_step_id").
			Optional().
			Nillable(),
		field.JSON("created_visualization_ids", []string{}).
			Optional(),

		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
	}
}

// Edges of the ToolExecution.
func (ToolExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent_execution", AgentExecution.Type).
			Ref("tool_executions").
			Field("agent_execution_id").
			Unique().
			Required().
			Immutable(),
		edge.From("plan_decision", PlanDecision.Type).
			Ref("tool_executions").
			Field("plan_decision_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the ToolExecution.
func (ToolExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_execution_id", "seq").
			Unique(),
		index.Fields("agent_execution_id", "started_at"),
		index.Fields("plan_decision_id"),
		// Report-wide lineage: "what was the previous tool in this report"
		index.Fields("tool_name", "started_at"),
	}
}
