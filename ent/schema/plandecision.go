package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanDecision holds the schema definition for the PlanDecision entity.
// One row per planner output within a loop iteration. The row is pre-created
// as a skeleton with a pinned seq before streaming starts; partial and final
// updates land on the same row (UPSERT on execution_id + seq).
type PlanDecision struct {
	ent.Schema
}

// Fields of the PlanDecision.
func (PlanDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.String("agent_execution_id").
			Immutable(),
		field.Int("seq").
			Immutable().
			Comment("Pinned at decision start; shared by every partial update"),
		field.Int("loop_index").
			Immutable(),

		field.Enum("plan_type").
			Values("research", "action").
			Default("research").
			Comment("Skeleton rows start as research and are corrected by the first typed partial"),
		field.Bool("analysis_complete").
			Default(false),
		field.Text("reasoning").
			Optional().
			Nillable(),
		field.Text("assistant").
			Optional().
			Nillable(),
		field.Text("final_answer").
			Optional().
			Nillable(),
		field.String("action_name").
			Optional().
			Nillable(),
		field.JSON("action_args", map[string]interface{}{}).
			Optional(),
		field.JSON("metrics", map[string]interface{}{}).
			Optional().
			Comment("Token usage and latency reported by the planner"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PlanDecision.
func (PlanDecision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent_execution", AgentExecution.Type).
			Ref("plan_decisions").
			Field("agent_execution_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tool_executions", ToolExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PlanDecision.
func (PlanDecision) Indexes() []ent.Index {
	return []ent.Index{
		// Partial and final updates resolve to the same row
		index.Fields("agent_execution_id", "seq").
			Unique(),
		index.Fields("agent_execution_id", "loop_index"),
	}
}
