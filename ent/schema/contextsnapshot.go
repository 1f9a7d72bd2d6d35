package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContextSnapshot holds the schema definition for the ContextSnapshot entity.
// Append-only frozen copies of the context view handed to the planner, kept
// for audit and replay. Writes are best-effort: a failed snapshot never
// aborts the loop.
type ContextSnapshot struct {
	ent.Schema
}

// Fields of the ContextSnapshot.
func (ContextSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("agent_execution_id").
			Immutable(),
		field.Enum("kind").
			Values("initial", "pre_tool", "post_tool", "final").
			Immutable(),
		field.Int("loop_index").
			Default(0).
			Immutable(),
		field.JSON("context_view", map[string]interface{}{}).
			Comment("Serialized ContextView; datetimes rendered JSON-safe"),
		field.Text("prompt_text").
			Optional().
			Nillable(),
		field.Int("prompt_tokens").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ContextSnapshot.
func (ContextSnapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent_execution", AgentExecution.Type).
			Ref("snapshots").
			Field("agent_execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ContextSnapshot.
func (ContextSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_execution_id", "created_at"),
		index.Fields("agent_execution_id", "kind"),
		// Retention pruning scans by age
		index.Fields("created_at"),
	}
}
